package repository_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"threatwatch/internal/db"
	"threatwatch/internal/models"
	"threatwatch/internal/repository"
	"threatwatch/internal/repository/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AlertRepository", func() {
	var (
		repo        *repository.AlertRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
		entry       models.AlertEntry
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewAlertRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		entry = models.AlertEntry{
			Alert: models.Alert{
				ID:             uuid.NewString(),
				TxHash:         common.HexToHash("0xfeed"),
				Actor:          common.HexToAddress("0x00000000000000000000000000000000000000a1"),
				Severity:       models.SeverityCritical,
				Category:       models.CategoryMEVAbuse,
				Confidence:     90,
				CompositeScore: 95,
				Description:    "composite 95",
				ModelVersion:   "scorer-v3",
				EconomicImpact: big.NewInt(10_000_000_000_000_000),
				RelatedAlerts:  []common.Hash{common.HexToHash("0x01"), common.HexToHash("0x02")},
				BlockNumber:    42,
			},
			Outcome: models.Outcome{
				Status:         models.OutcomeConfirmed,
				InclusionBlock: 55,
				BroadcastHash:  common.HexToHash("0xb0b"),
			},
			RecordedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}
	})

	Describe("Migrate", func() {
		It("should migrate the alert table", func() {
			Expect(repo.Migrate()).To(Succeed())
			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(1))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.AlertRecord{}))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.Migrate()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("RecordOutcome", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.RecordOutcome(ctx, entry)
		})

		It("should upsert the record keyed by tx hash", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.UpsertCallCount()).To(Equal(1))

			_, arg, conflict := fakeStorage.UpsertArgsForCall(0)
			Expect(conflict).To(Equal([]string{"tx_hash"}))

			records, ok := arg.(*[]repository.AlertRecord)
			Expect(ok).To(BeTrue())
			Expect(*records).To(HaveLen(1))
			rec := (*records)[0]
			Expect(rec.TxHash).To(Equal(entry.Alert.TxHash.Hex()))
			Expect(rec.Severity).To(Equal("critical"))
			Expect(rec.Status).To(Equal("confirmed"))
			Expect(rec.EconomicImpact).To(Equal("10000000000000000"))
			Expect(*rec.BroadcastHash).To(Equal(common.HexToHash("0xb0b").Hex()))
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.UpsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("RecentAlerts", func() {
		var (
			entries []models.AlertEntry
			err     error
		)

		JustBeforeEach(func() {
			entries, err = repo.RecentAlerts(ctx, 10)
		})

		When("records exist", func() {
			BeforeEach(func() {
				fakeStorage.UpsertStub = func(_ context.Context, records any, _ ...string) error {
					saved := *(records.(*[]repository.AlertRecord))
					fakeStorage.GetLatestStub = func(_ context.Context, _ string, _ int, dest any) error {
						*(dest.(*[]repository.AlertRecord)) = saved
						return nil
					}
					return nil
				}
				Expect(repo.RecordOutcome(ctx, entry)).To(Succeed())
			})

			It("should convert them back to entries", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].Alert.TxHash).To(Equal(entry.Alert.TxHash))
				Expect(entries[0].Alert.Severity).To(Equal(models.SeverityCritical))
				Expect(entries[0].Alert.Category).To(Equal(models.CategoryMEVAbuse))
				Expect(entries[0].Alert.EconomicImpact).To(Equal(entry.Alert.EconomicImpact))
				Expect(entries[0].Alert.RelatedAlerts).To(Equal(entry.Alert.RelatedAlerts))
				Expect(entries[0].Outcome).To(Equal(entry.Outcome))

				_, order, limit, _ := fakeStorage.GetLatestArgsForCall(0)
				Expect(order).To(Equal("recorded_at"))
				Expect(limit).To(Equal(10))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetLatestReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(entries).To(BeNil())
			})
		})
	})

	Describe("AlertByTxHash", func() {
		It("should translate a missing row", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.AlertByTxHash(ctx, entry.Alert.TxHash)
			Expect(err).To(MatchError(models.ErrAlertNotFound))

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("tx_hash"))
			Expect(value).To(Equal(entry.Alert.TxHash.Hex()))
		})

		It("should wrap other errors", func() {
			fakeStorage.GetOneByReturns(fakeErr)
			_, err := repo.AlertByTxHash(ctx, entry.Alert.TxHash)
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
