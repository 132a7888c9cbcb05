package models

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var ErrAlertNotFound = errors.New("alert not found")

// Alert is the threat report submitted to the ledger.
type Alert struct {
	ID             string         `json:"id"`
	TxHash         common.Hash    `json:"txHash"`
	Actor          common.Address `json:"actor"`
	Severity       Severity       `json:"severity"`
	Category       Category       `json:"category"`
	Confidence     uint8          `json:"confidence"`
	CompositeScore uint8          `json:"compositeScore"`
	Description    string         `json:"description"`
	ModelVersion   string         `json:"modelVersion"`
	EconomicImpact *big.Int       `json:"economicImpact"`
	RelatedAlerts  []common.Hash  `json:"relatedAlerts,omitempty"`
	BlockNumber    uint64         `json:"blockNumber"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type OutcomeStatus string

const (
	OutcomeConfirmed       OutcomeStatus = "confirmed"
	OutcomeAlreadyReported OutcomeStatus = "already-reported"
	OutcomeTimedOut        OutcomeStatus = "timed-out"
	OutcomeRejected        OutcomeStatus = "rejected"
)

// Terminal reports whether no further submission attempt may be made for the alert.
func (s OutcomeStatus) Terminal() bool {
	return s != OutcomeTimedOut
}

// Outcome is the result of one ledger submission attempt.
type Outcome struct {
	Status         OutcomeStatus
	InclusionBlock uint64
	BroadcastHash  common.Hash
	Reason         string
}

// Stats are the process-wide monitor counters.
type Stats struct {
	Analyzed        uint64 `json:"analyzed"`
	ThreatsDetected uint64 `json:"threatsDetected"`
	AlertsSent      uint64 `json:"alertsSent"`
	Errors          uint64 `json:"errors"`
}

// Checkpoint is the persisted monitor state. PendingAlerts holds the alerts that passed the
// gate without reaching a terminal outcome before the checkpoint was taken.
type Checkpoint struct {
	LastConfirmedBlock uint64           `json:"lastConfirmedBlock"`
	Stats              Stats            `json:"stats"`
	Cooldowns          map[string]int64 `json:"cooldowns,omitempty"`
	PendingAlerts      []Alert          `json:"pendingAlerts,omitempty"`
	Timestamp          time.Time        `json:"timestamp"`
}

// AlertEntry is an alert together with the ledger outcome it reached.
type AlertEntry struct {
	Alert      Alert
	Outcome    Outcome
	RecordedAt time.Time
}

// Status is a point in time view of the monitor.
type Status struct {
	Stats              Stats
	LastConfirmedBlock uint64
	InFlightAlerts     int
	HeadSubscribed     bool
	StartedAt          time.Time
}
