package handler

import (
	"time"

	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type StatusView struct {
	Stats              models.Stats `json:"stats"`
	LastConfirmedBlock uint64       `json:"lastConfirmedBlock"`
	InFlightAlerts     int          `json:"inFlightAlerts"`
	HeadSubscribed     bool         `json:"headSubscribed"`
	Uptime             string       `json:"uptime"`
}

type AlertView struct {
	ID             string    `json:"id"`
	TxHash         string    `json:"txHash"`
	Actor          string    `json:"actor"`
	Severity       string    `json:"severity"`
	Category       string    `json:"category"`
	Confidence     uint8     `json:"confidence"`
	CompositeScore uint8     `json:"compositeScore"`
	Description    string    `json:"description"`
	ModelVersion   string    `json:"modelVersion"`
	EconomicImpact string    `json:"economicImpact"`
	RelatedAlerts  []string  `json:"relatedAlerts,omitempty"`
	BlockNumber    uint64    `json:"blockNumber"`
	Outcome        string    `json:"outcome"`
	InclusionBlock uint64    `json:"inclusionBlock,omitempty"`
	BroadcastHash  string    `json:"broadcastHash,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	RecordedAt     time.Time `json:"recordedAt"`
}

func newStatusView(s models.Status, now time.Time) StatusView {
	view := StatusView{
		Stats:              s.Stats,
		LastConfirmedBlock: s.LastConfirmedBlock,
		InFlightAlerts:     s.InFlightAlerts,
		HeadSubscribed:     s.HeadSubscribed,
	}
	if !s.StartedAt.IsZero() {
		view.Uptime = now.Sub(s.StartedAt).Truncate(time.Second).String()
	}
	return view
}

func newAlertView(e models.AlertEntry) AlertView {
	a := e.Alert
	view := AlertView{
		ID:             a.ID,
		TxHash:         a.TxHash.Hex(),
		Actor:          a.Actor.Hex(),
		Severity:       a.Severity.String(),
		Category:       string(a.Category),
		Confidence:     a.Confidence,
		CompositeScore: a.CompositeScore,
		Description:    a.Description,
		ModelVersion:   a.ModelVersion,
		EconomicImpact: "0",
		BlockNumber:    a.BlockNumber,
		Outcome:        string(e.Outcome.Status),
		InclusionBlock: e.Outcome.InclusionBlock,
		Reason:         e.Outcome.Reason,
		RecordedAt:     e.RecordedAt,
	}
	if a.EconomicImpact != nil {
		view.EconomicImpact = a.EconomicImpact.String()
	}
	if e.Outcome.BroadcastHash != (common.Hash{}) {
		view.BroadcastHash = e.Outcome.BroadcastHash.Hex()
	}
	for _, h := range a.RelatedAlerts {
		view.RelatedAlerts = append(view.RelatedAlerts, h.Hex())
	}
	return view
}
