package core

import (
	"errors"
	"time"

	"threatwatch/internal/metrics"
	"threatwatch/internal/models"
	"threatwatch/internal/retry"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
)

var ErrAlertPending = errors.New("alert has no terminal outcome yet")

var errBackingOff = errors.New("waiting before the next submission")

const (
	relatedAlertsLimit = 5
	defaultHistorySize = 500
)

type Config struct {
	PollInterval       time.Duration
	CheckpointInterval time.Duration
	StatsInterval      time.Duration
	ResubscribeDelay   time.Duration
	ShutdownGrace      time.Duration
	Concurrency        int
	// StallAttempts failed submissions mark an alert as stalled. It is still re-delivered.
	StallAttempts int
	// Redelivery spaces out the submissions of an alert that has no terminal outcome yet.
	Redelivery retry.Policy
	// StartBlock is only used when no checkpoint exists. Nil starts at the chain head.
	StartBlock  *uint64
	HistorySize int
}

func DefaultConfig() Config {
	return Config{
		PollInterval:       4 * time.Second,
		CheckpointInterval: 30 * time.Second,
		StatsInterval:      time.Minute,
		ResubscribeDelay:   15 * time.Second,
		ShutdownGrace:      20 * time.Second,
		Concurrency:        8,
		StallAttempts:      5,
		Redelivery: retry.Policy{
			BaseDelay: 4 * time.Second,
			MaxDelay:  2 * time.Minute,
			Jitter:    0.2,
		},
		HistorySize: defaultHistorySize,
	}
}

type inFlightAlert struct {
	alert     models.Alert
	attempts  int
	backoff   backoff.BackOff
	notBefore time.Time
}

type actorLock struct {
	ch   chan struct{}
	refs int
}

type Option func(*Monitor)

func WithRecorder(r AlertRecorder) Option {
	return func(m *Monitor) {
		m.recorder = r
	}
}

func WithEventSink(s EventSink) Option {
	return func(m *Monitor) {
		m.sink = s
	}
}

func WithMetrics(mm metrics.MonitorMetrics) Option {
	return func(m *Monitor) {
		m.metrics = mm
	}
}

func WithHistory(h *History) Option {
	return func(m *Monitor) {
		m.history = h
	}
}

func pendingAlerts(set map[common.Hash]*inFlightAlert) []models.Alert {
	out := make([]models.Alert, 0, len(set))
	for _, entry := range set {
		out = append(out, entry.alert)
	}
	return out
}
