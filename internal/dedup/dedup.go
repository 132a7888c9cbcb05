package dedup

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Set remembers recently processed transaction hashes. Once more than capacity hashes are
// held the oldest ones are evicted first. It is safe for concurrent use.
type Set struct {
	mu   sync.Mutex
	seen *simplelru.LRU[common.Hash, struct{}]
}

func NewSet(capacity int) *Set {
	if capacity <= 0 {
		capacity = 1
	}
	// only fails for a non positive size
	seen, _ := simplelru.NewLRU[common.Hash, struct{}](capacity, nil)
	return &Set{seen: seen}
}

// Seen does not refresh the hash, so eviction stays in insertion order.
func (s *Set) Seen(id common.Hash) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seen.Contains(id)
}

func (s *Set) MarkSeen(id common.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen.Contains(id) {
		return
	}
	s.seen.Add(id, struct{}{})
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seen.Len()
}
