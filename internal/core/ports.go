package core

import (
	"context"

	"threatwatch/internal/models"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainSource . ChainSource
type ChainSource interface {
	Connect(ctx context.Context) error
	LatestHeight(ctx context.Context) (uint64, error)
	Poll(ctx context.Context, from uint64) (models.BlockRange, error)
	SubscribeHeads(ctx context.Context) (models.HeadFeed, error)
}

//counterfeiter:generate -o fake -fake-name Classifier . Classifier
type Classifier interface {
	Classify(ctx context.Context, tx models.Transaction) models.RiskVerdict
	Probe(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name Reporter . Reporter
type Reporter interface {
	Submit(ctx context.Context, alert models.Alert) (models.Outcome, error)
}

//counterfeiter:generate -o fake -fake-name CheckpointStore . CheckpointStore
type CheckpointStore interface {
	Load() (models.Checkpoint, bool, error)
	Save(cp models.Checkpoint) error
}

//counterfeiter:generate -o fake -fake-name AlertRecorder . AlertRecorder
type AlertRecorder interface {
	RecordOutcome(ctx context.Context, entry models.AlertEntry) error
}

//counterfeiter:generate -o fake -fake-name EventSink . EventSink
type EventSink interface {
	Publish(ctx context.Context, alert models.Alert, outcome models.Outcome) error
}
