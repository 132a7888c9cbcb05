package repository

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"threatwatch/internal/db"
	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

// AlertRepository keeps an audit trail of every alert that reached a ledger outcome.
type AlertRepository struct {
	db Storage
}

func NewAlertRepository(db Storage) *AlertRepository {
	return &AlertRepository{
		db: db,
	}
}

func (r *AlertRepository) Migrate() error {
	err := r.db.MigrateTable(&AlertRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *AlertRepository) RecordOutcome(ctx context.Context, entry models.AlertEntry) error {
	records := []AlertRecord{toRecord(entry)}
	err := r.db.Upsert(ctx, &records, "tx_hash")
	if err != nil {
		return fmt.Errorf("record alert outcome: %w", err)
	}
	return nil
}

func (r *AlertRepository) RecentAlerts(ctx context.Context, limit int) ([]models.AlertEntry, error) {
	var records []AlertRecord
	err := r.db.GetLatest(ctx, "recorded_at", limit, &records)
	if err != nil {
		return nil, fmt.Errorf("get recent alerts: %w", err)
	}

	entries := make([]models.AlertEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, toEntry(rec))
	}
	return entries, nil
}

func (r *AlertRepository) AlertByTxHash(ctx context.Context, txHash common.Hash) (models.AlertEntry, error) {
	var record AlertRecord
	err := r.db.GetOneBy(ctx, "tx_hash", txHash.Hex(), &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.AlertEntry{}, models.ErrAlertNotFound
		}
		return models.AlertEntry{}, fmt.Errorf("get alert by tx hash: %w", err)
	}
	return toEntry(record), nil
}

func toRecord(entry models.AlertEntry) AlertRecord {
	a, o := entry.Alert, entry.Outcome

	related := make([]string, 0, len(a.RelatedAlerts))
	for _, h := range a.RelatedAlerts {
		related = append(related, h.Hex())
	}

	impact := "0"
	if a.EconomicImpact != nil {
		impact = a.EconomicImpact.String()
	}

	var broadcast *string
	if o.BroadcastHash != (common.Hash{}) {
		h := o.BroadcastHash.Hex()
		broadcast = &h
	}

	return AlertRecord{
		ID:             a.ID,
		TxHash:         a.TxHash.Hex(),
		Actor:          a.Actor.Hex(),
		Severity:       a.Severity.String(),
		Category:       string(a.Category),
		Confidence:     a.Confidence,
		CompositeScore: a.CompositeScore,
		Description:    a.Description,
		ModelVersion:   a.ModelVersion,
		EconomicImpact: impact,
		RelatedAlerts:  strings.Join(related, ","),
		BlockNumber:    a.BlockNumber,
		Status:         string(o.Status),
		InclusionBlock: o.InclusionBlock,
		BroadcastHash:  broadcast,
		Reason:         o.Reason,
		RecordedAt:     entry.RecordedAt,
	}
}

func toEntry(rec AlertRecord) models.AlertEntry {
	impact, ok := new(big.Int).SetString(rec.EconomicImpact, 10)
	if !ok {
		impact = new(big.Int)
	}

	var related []common.Hash
	if rec.RelatedAlerts != "" {
		for _, h := range strings.Split(rec.RelatedAlerts, ",") {
			related = append(related, common.HexToHash(h))
		}
	}

	var broadcast common.Hash
	if rec.BroadcastHash != nil {
		broadcast = common.HexToHash(*rec.BroadcastHash)
	}

	return models.AlertEntry{
		Alert: models.Alert{
			ID:             rec.ID,
			TxHash:         common.HexToHash(rec.TxHash),
			Actor:          common.HexToAddress(rec.Actor),
			Severity:       models.ParseSeverity(rec.Severity),
			Category:       models.ParseCategory(rec.Category),
			Confidence:     rec.Confidence,
			CompositeScore: rec.CompositeScore,
			Description:    rec.Description,
			ModelVersion:   rec.ModelVersion,
			EconomicImpact: impact,
			RelatedAlerts:  related,
			BlockNumber:    rec.BlockNumber,
		},
		Outcome: models.Outcome{
			Status:         models.OutcomeStatus(rec.Status),
			InclusionBlock: rec.InclusionBlock,
			BroadcastHash:  broadcast,
			Reason:         rec.Reason,
		},
		RecordedAt: rec.RecordedAt,
	}
}
