package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"threatwatch/internal/models"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const EventAlertOutcome = "alert.outcome"

var TimeNow = time.Now

type Envelope struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	TS   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

// AlertEvent is the published form of an alert together with its ledger outcome.
type AlertEvent struct {
	AlertID        string   `json:"alertId"`
	TxHash         string   `json:"txHash"`
	Actor          string   `json:"actor"`
	Severity       string   `json:"severity"`
	Category       string   `json:"category"`
	Confidence     uint8    `json:"confidence"`
	CompositeScore uint8    `json:"compositeScore"`
	Description    string   `json:"description"`
	ModelVersion   string   `json:"modelVersion"`
	EconomicImpact string   `json:"economicImpact"`
	RelatedAlerts  []string `json:"relatedAlerts,omitempty"`
	BlockNumber    uint64   `json:"blockNumber"`
	Status         string   `json:"status"`
	InclusionBlock uint64   `json:"inclusionBlock,omitempty"`
	BroadcastHash  string   `json:"broadcastHash,omitempty"`
	Reason         string   `json:"reason,omitempty"`
}

func NewAlertEvent(alert models.Alert, outcome models.Outcome) AlertEvent {
	event := AlertEvent{
		AlertID:        alert.ID,
		TxHash:         alert.TxHash.Hex(),
		Actor:          alert.Actor.Hex(),
		Severity:       alert.Severity.String(),
		Category:       string(alert.Category),
		Confidence:     alert.Confidence,
		CompositeScore: alert.CompositeScore,
		Description:    alert.Description,
		ModelVersion:   alert.ModelVersion,
		EconomicImpact: "0",
		BlockNumber:    alert.BlockNumber,
		Status:         string(outcome.Status),
		InclusionBlock: outcome.InclusionBlock,
		Reason:         outcome.Reason,
	}
	if alert.EconomicImpact != nil {
		event.EconomicImpact = alert.EconomicImpact.String()
	}
	for _, h := range alert.RelatedAlerts {
		event.RelatedAlerts = append(event.RelatedAlerts, h.Hex())
	}
	if outcome.BroadcastHash != ([32]byte{}) {
		event.BroadcastHash = outcome.BroadcastHash.Hex()
	}
	return event
}

// KafkaSink publishes alert outcomes keyed by the flagged transaction hash, so all events
// for one transaction land on the same partition.
type KafkaSink struct {
	topic string
	p     sarama.SyncProducer
}

func NewKafkaSink(brokers []string, topic string, cfg *sarama.Config) (*KafkaSink, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer: %w", err)
	}
	return NewKafkaSinkWithProducer(p, topic), nil
}

func NewKafkaSinkWithProducer(p sarama.SyncProducer, topic string) *KafkaSink {
	return &KafkaSink{topic: topic, p: p}
}

func (s *KafkaSink) Close() error {
	if s.p != nil {
		return s.p.Close()
	}
	return nil
}

func (s *KafkaSink) Publish(ctx context.Context, alert models.Alert, outcome models.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(NewAlertEvent(alert, outcome))
	if err != nil {
		return fmt.Errorf("encoding alert event: %w", err)
	}
	env := Envelope{
		ID:   uuid.NewString(),
		Type: EventAlertOutcome,
		TS:   TimeNow().UnixMilli(),
		Data: data,
	}
	b, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding envelope: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(alert.TxHash.Hex()),
		Value: sarama.ByteEncoder(b),
	}
	if _, _, err := s.p.SendMessage(msg); err != nil {
		return fmt.Errorf("publishing alert event: %w", err)
	}
	return nil
}
