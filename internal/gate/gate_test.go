package gate_test

import (
	"sync"
	"sync/atomic"
	"time"

	"threatwatch/internal/gate"
	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Gate", func() {
	var (
		g         *gate.Gate
		now       time.Time
		actor     common.Address
		other     common.Address
		malicious models.RiskVerdict
	)

	BeforeEach(func() {
		now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		gate.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { gate.TimeNow = time.Now })

		actor = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		other = common.HexToAddress("0x00000000000000000000000000000000000000b2")
		malicious = models.RiskVerdict{DangerScore: 80, Malicious: true, Category: models.CategoryMEVAbuse}

		g = gate.NewGate(70, 30*time.Second)
	})

	It("allows the first qualifying alert for an actor", func() {
		Expect(g.ShouldAlert(actor, 95, malicious)).To(BeTrue())
	})

	It("rejects scores at or below the threshold", func() {
		Expect(g.ShouldAlert(actor, 70, malicious)).To(BeFalse())
	})

	It("rejects non malicious verdicts regardless of score", func() {
		Expect(g.ShouldAlert(actor, 99, models.RiskVerdict{DangerScore: 99})).To(BeFalse())
	})

	When("the same actor qualifies again 5 seconds later", func() {
		BeforeEach(func() {
			Expect(g.ShouldAlert(actor, 95, malicious)).To(BeTrue())
			now = now.Add(5 * time.Second)
		})

		It("suppresses the second alert", func() {
			Expect(g.ShouldAlert(actor, 95, malicious)).To(BeFalse())
		})

		It("still allows a distinct actor", func() {
			Expect(g.ShouldAlert(other, 95, malicious)).To(BeTrue())
		})

		It("allows the actor again once the cooldown elapsed", func() {
			now = now.Add(25 * time.Second)
			Expect(g.ShouldAlert(actor, 95, malicious)).To(BeTrue())
		})
	})

	It("grants exactly one alert when an actor races with itself", func() {
		var granted atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if g.ShouldAlert(actor, 95, malicious) {
					granted.Add(1)
				}
			}()
		}
		wg.Wait()
		Expect(granted.Load()).To(Equal(int32(1)))
	})

	Describe("Snapshot and Restore", func() {
		It("carries active cooldowns into a fresh gate", func() {
			Expect(g.ShouldAlert(actor, 95, malicious)).To(BeTrue())
			snap := g.Snapshot()
			Expect(snap).To(HaveKey(actor.Hex()))

			restored := gate.NewGate(70, 30*time.Second)
			restored.Restore(snap)
			now = now.Add(10 * time.Second)
			Expect(restored.ShouldAlert(actor, 95, malicious)).To(BeFalse())
		})

		It("skips invalid addresses", func() {
			restored := gate.NewGate(70, 30*time.Second)
			restored.Restore(map[string]int64{"not-an-address": now.UnixMilli()})
			Expect(restored.Snapshot()).To(BeEmpty())
		})
	})

	It("prunes expired cooldowns", func() {
		Expect(g.ShouldAlert(actor, 95, malicious)).To(BeTrue())
		now = now.Add(time.Minute)
		Expect(g.Prune()).To(Equal(1))
		Expect(g.Snapshot()).To(BeEmpty())
	})
})
