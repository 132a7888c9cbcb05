package core

import (
	"context"
	"sync"

	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

// History keeps the most recent settled alerts in memory. It serves the status API when no
// database is configured.
type History struct {
	mu      sync.RWMutex
	size    int
	entries []models.AlertEntry
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{
		size:    size,
		entries: make([]models.AlertEntry, 0, size),
	}
}

func (h *History) Add(entry models.AlertEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == h.size {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.size-1]
	}
	h.entries = append(h.entries, entry)
}

// RecentAlerts returns up to limit entries, newest first.
func (h *History) RecentAlerts(_ context.Context, limit int) ([]models.AlertEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if limit <= 0 || limit > len(h.entries) {
		limit = len(h.entries)
	}
	out := make([]models.AlertEntry, 0, limit)
	for i := len(h.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, h.entries[i])
	}
	return out, nil
}

func (h *History) AlertByTxHash(_ context.Context, hash common.Hash) (models.AlertEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].Alert.TxHash == hash {
			return h.entries[i], nil
		}
	}
	return models.AlertEntry{}, models.ErrAlertNotFound
}
