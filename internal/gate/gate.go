package gate

import (
	"sync"
	"time"

	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

var TimeNow = time.Now

// Gate decides whether a scored transaction should produce an alert now. At most one
// alert per actor is allowed inside the cooldown window.
type Gate struct {
	threshold float64
	cooldown  time.Duration

	mu        sync.Mutex
	lastAlert map[common.Address]time.Time
}

func NewGate(threshold float64, cooldown time.Duration) *Gate {
	return &Gate{
		threshold: threshold,
		cooldown:  cooldown,
		lastAlert: make(map[common.Address]time.Time),
	}
}

// ShouldAlert returns true iff the composite score exceeds the threshold, the verdict is
// malicious and the actor is outside its cooldown. A true result reserves the cooldown slot.
func (g *Gate) ShouldAlert(actor common.Address, compositeScore float64, verdict models.RiskVerdict) bool {
	if !g.Qualifies(compositeScore, verdict) {
		return false
	}

	now := TimeNow()

	g.mu.Lock()
	defer g.mu.Unlock()

	if last, ok := g.lastAlert[actor]; ok && now.Sub(last) < g.cooldown {
		return false
	}
	g.lastAlert[actor] = now
	return true
}

// Qualifies applies the threshold and malicious checks without touching cooldowns.
func (g *Gate) Qualifies(compositeScore float64, verdict models.RiskVerdict) bool {
	return verdict.Malicious && compositeScore > g.threshold
}

// Prune drops actors whose cooldown has expired.
func (g *Gate) Prune() int {
	now := TimeNow()

	g.mu.Lock()
	defer g.mu.Unlock()

	pruned := 0
	for actor, last := range g.lastAlert {
		if now.Sub(last) >= g.cooldown {
			delete(g.lastAlert, actor)
			pruned++
		}
	}
	return pruned
}

// Snapshot returns the active cooldowns as unix milliseconds keyed by hex address.
func (g *Gate) Snapshot() map[string]int64 {
	now := TimeNow()

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make(map[string]int64, len(g.lastAlert))
	for actor, last := range g.lastAlert {
		if now.Sub(last) < g.cooldown {
			out[actor.Hex()] = last.UnixMilli()
		}
	}
	return out
}

func (g *Gate) Restore(cooldowns map[string]int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for addr, ms := range cooldowns {
		if !common.IsHexAddress(addr) {
			continue
		}
		g.lastAlert[common.HexToAddress(addr)] = time.UnixMilli(ms)
	}
}
