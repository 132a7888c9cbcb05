package correlation

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var TimeNow = time.Now

type sighting struct {
	hash common.Hash
	at   time.Time
}

// BurstTracker counts transactions per sender inside a sliding window. A hash is only
// counted once so re-delivered ranges do not inflate the count.
type BurstTracker struct {
	window time.Duration
	limit  int

	mu      sync.Mutex
	senders map[common.Address][]sighting
}

func NewBurstTracker(window time.Duration, limit int) *BurstTracker {
	if limit <= 0 {
		limit = 1
	}
	return &BurstTracker{
		window:  window,
		limit:   limit,
		senders: make(map[common.Address][]sighting),
	}
}

// Observe records hash for sender and returns the sender's count inside the window.
func (b *BurstTracker) Observe(sender common.Address, hash common.Hash) int {
	now := TimeNow()
	cutoff := now.Add(-b.window)

	b.mu.Lock()
	defer b.mu.Unlock()

	seen := b.senders[sender]
	kept := seen[:0]
	known := false
	for _, s := range seen {
		if s.at.Before(cutoff) {
			continue
		}
		if s.hash == hash {
			known = true
		}
		kept = append(kept, s)
	}
	if !known {
		kept = append(kept, sighting{hash: hash, at: now})
	}
	b.senders[sender] = kept
	return len(kept)
}

// Prune drops senders with no activity inside the window.
func (b *BurstTracker) Prune() {
	cutoff := TimeNow().Add(-b.window)

	b.mu.Lock()
	defer b.mu.Unlock()

	for sender, seen := range b.senders {
		if len(seen) == 0 || seen[len(seen)-1].at.Before(cutoff) {
			delete(b.senders, sender)
		}
	}
}
