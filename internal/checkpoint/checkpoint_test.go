package checkpoint_test

import (
	"math/big"
	"os"
	"path/filepath"
	"time"

	"threatwatch/internal/checkpoint"
	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileStore", func() {
	var (
		dir   string
		path  string
		store *checkpoint.FileStore
		cp    models.Checkpoint
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		path = filepath.Join(dir, "state", "monitor.ckpt")
		cp = models.Checkpoint{
			LastConfirmedBlock: 120,
			Stats:              models.Stats{Analyzed: 40, ThreatsDetected: 3, AlertsSent: 2, Errors: 1},
			Cooldowns:          map[string]int64{"0x00000000000000000000000000000000000000A1": 1700000000000},
			Timestamp:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}

		var err error
		store, err = checkpoint.NewFileStore(path)
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports a missing checkpoint", func() {
		_, ok, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("loads what was saved", func() {
		Expect(store.Save(cp)).To(Succeed())

		loaded, ok, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(loaded.LastConfirmedBlock).To(Equal(uint64(120)))
		Expect(loaded.Stats).To(Equal(cp.Stats))
		Expect(loaded.Cooldowns).To(Equal(cp.Cooldowns))
		Expect(loaded.Timestamp.Equal(cp.Timestamp)).To(BeTrue())
	})

	It("restores pending alerts in full", func() {
		cp.PendingAlerts = []models.Alert{{
			ID:             "alert-1",
			TxHash:         common.HexToHash("0x01"),
			Actor:          common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Severity:       models.SeverityCritical,
			Category:       models.CategoryMEVAbuse,
			CompositeScore: 95,
			EconomicImpact: big.NewInt(1e16),
			BlockNumber:    120,
		}}
		Expect(store.Save(cp)).To(Succeed())

		loaded, _, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.PendingAlerts).To(HaveLen(1))
		alert := loaded.PendingAlerts[0]
		Expect(alert.ID).To(Equal("alert-1"))
		Expect(alert.TxHash).To(Equal(common.HexToHash("0x01")))
		Expect(alert.Severity).To(Equal(models.SeverityCritical))
		Expect(alert.Category).To(Equal(models.CategoryMEVAbuse))
		Expect(alert.EconomicImpact.Cmp(big.NewInt(1e16))).To(BeZero())
		Expect(alert.BlockNumber).To(Equal(uint64(120)))
	})

	It("writes the documented field names", func() {
		Expect(store.Save(cp)).To(Succeed())
		raw, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(And(
			ContainSubstring(`"lastConfirmedBlock": 120`),
			ContainSubstring(`"threatsDetected": 3`),
			ContainSubstring(`"alertsSent": 2`),
			ContainSubstring(`"timestamp"`),
		))
	})

	It("leaves no temp files behind", func() {
		Expect(store.Save(cp)).To(Succeed())
		cp.LastConfirmedBlock = 121
		Expect(store.Save(cp)).To(Succeed())

		entries, err := os.ReadDir(filepath.Dir(path))
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name()).To(Equal("monitor.ckpt"))
	})

	It("refuses to move the confirmed block backwards", func() {
		Expect(store.Save(cp)).To(Succeed())
		cp.LastConfirmedBlock = 100
		Expect(store.Save(cp)).To(MatchError(checkpoint.ErrRegression))

		loaded, _, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.LastConfirmedBlock).To(Equal(uint64(120)))
	})

	It("stays monotonic across a restart", func() {
		Expect(store.Save(cp)).To(Succeed())

		restarted, err := checkpoint.NewFileStore(path)
		Expect(err).NotTo(HaveOccurred())

		cp.LastConfirmedBlock = 119
		Expect(restarted.Save(cp)).To(MatchError(checkpoint.ErrRegression))
		cp.LastConfirmedBlock = 120
		Expect(restarted.Save(cp)).To(Succeed())
	})

	It("keeps the previous checkpoint when a temp file is left over", func() {
		Expect(store.Save(cp)).To(Succeed())
		Expect(os.WriteFile(path+".123.tmp", []byte(`{"lastConfirmedBl`), 0o644)).To(Succeed())

		loaded, ok, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(loaded.LastConfirmedBlock).To(Equal(uint64(120)))
	})

	When("the checkpoint is corrupt", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(path, []byte("{not json"), 0o644)).To(Succeed())
		})

		It("fails to load", func() {
			_, _, err := store.Load()
			Expect(err).To(MatchError(checkpoint.ErrCorrupt))
		})

		It("fails to open", func() {
			_, err := checkpoint.NewFileStore(path)
			Expect(err).To(MatchError(checkpoint.ErrCorrupt))
		})
	})
})
