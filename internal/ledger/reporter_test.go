package ledger_test

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"time"

	"threatwatch/internal/ledger"
	"threatwatch/internal/ledger/fake"
	"threatwatch/internal/models"
	"threatwatch/internal/retry"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type revertError struct{}

func (revertError) Error() string          { return "stake below minimum" }
func (revertError) ErrorData() interface{} { return "0x08c379a0" }

var _ = Describe("Reporter", func() {
	var (
		reporter     *ledger.Reporter
		fakeContract *fake.Contract
		cfg          ledger.Config
		ctx          context.Context
		alert        models.Alert
		broadcast    common.Hash
		outcome      models.Outcome
		err          error
	)

	receipt := func(status uint64, block int64) *types.Receipt {
		return &types.Receipt{Status: status, BlockNumber: big.NewInt(block)}
	}

	BeforeEach(func() {
		ctx = context.Background()
		fakeContract = new(fake.Contract)
		cfg = ledger.Config{
			GasMarginPercent: 20,
			ConfirmTimeout:   100 * time.Millisecond,
			ConfirmBlocks:    0,
			ReceiptInterval:  5 * time.Millisecond,
			Retry:            retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
		}
		alert = models.Alert{
			ID:             "alert-1",
			TxHash:         common.HexToHash("0xfeed"),
			Actor:          common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Severity:       models.SeverityCritical,
			Category:       models.CategoryMEVAbuse,
			Confidence:     90,
			CompositeScore: 95,
			ModelVersion:   "scorer-v3",
		}
		broadcast = common.HexToHash("0xb0b")

		fakeContract.IsReportedReturns(false, nil)
		fakeContract.EstimateSubmitReturns(100_000, nil)
		fakeContract.SubmitReturns(broadcast, nil)
		fakeContract.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful, 55), nil)
		fakeContract.BlockNumberReturns(50, nil)
	})

	JustBeforeEach(func() {
		reporter = ledger.NewReporter(zap.NewNop().Sugar(), fakeContract, cfg)
		outcome, err = reporter.Submit(ctx, alert)
	})

	It("confirms a new report", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome.Status).To(Equal(models.OutcomeConfirmed))
		Expect(outcome.InclusionBlock).To(Equal(uint64(55)))
		Expect(outcome.BroadcastHash).To(Equal(broadcast))
	})

	It("adds the gas margin to the estimate", func() {
		Expect(fakeContract.SubmitCallCount()).To(Equal(1))
		_, submitted, gasLimit := fakeContract.SubmitArgsForCall(0)
		Expect(submitted.TxHash).To(Equal(alert.TxHash))
		Expect(gasLimit).To(Equal(uint64(120_000)))
	})

	It("reports a confirmed alert as already reported on resubmission", func() {
		fakeContract.IsReportedReturns(true, nil)

		again, err := reporter.Submit(ctx, alert)
		Expect(err).NotTo(HaveOccurred())
		Expect(again.Status).To(Equal(models.OutcomeAlreadyReported))
		Expect(fakeContract.SubmitCallCount()).To(Equal(1))
	})

	It("never broadcasts twice even when the ledger lags", func() {
		again, err := reporter.Submit(ctx, alert)
		Expect(err).NotTo(HaveOccurred())
		Expect(again.Status).To(Equal(models.OutcomeAlreadyReported))
		Expect(fakeContract.IsReportedCallCount()).To(Equal(2))
		Expect(fakeContract.SubmitCallCount()).To(Equal(1))
	})

	When("the ledger already has the report", func() {
		BeforeEach(func() {
			fakeContract.IsReportedReturns(true, nil)
		})

		It("returns already reported without broadcasting", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Status).To(Equal(models.OutcomeAlreadyReported))
			Expect(fakeContract.EstimateSubmitCallCount()).To(BeZero())
			Expect(fakeContract.SubmitCallCount()).To(BeZero())
		})
	})

	When("the reported state cannot be read", func() {
		BeforeEach(func() {
			fakeContract.IsReportedReturns(false, errors.New("dial tcp: connection refused"))
		})

		It("returns a transient error after retrying", func() {
			Expect(err).To(MatchError(ledger.ErrTransient))
			Expect(fakeContract.IsReportedCallCount()).To(Equal(3))
			Expect(fakeContract.SubmitCallCount()).To(BeZero())
		})
	})

	When("the estimate reverts", func() {
		BeforeEach(func() {
			fakeContract.EstimateSubmitReturns(0, errors.New("execution reverted: invalid severity"))
		})

		It("rejects the alert without retrying", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Status).To(Equal(models.OutcomeRejected))
			Expect(outcome.Reason).To(ContainSubstring("invalid severity"))
			Expect(fakeContract.EstimateSubmitCallCount()).To(Equal(1))
			Expect(fakeContract.SubmitCallCount()).To(BeZero())
		})
	})

	When("the node returns revert data", func() {
		BeforeEach(func() {
			fakeContract.EstimateSubmitReturns(0, revertError{})
		})

		It("treats it as a validation rejection", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Status).To(Equal(models.OutcomeRejected))
		})
	})

	When("the estimate fails transiently", func() {
		BeforeEach(func() {
			fakeContract.EstimateSubmitReturns(0, errors.New("i/o timeout"))
		})

		It("surfaces a transient error", func() {
			Expect(err).To(MatchError(ledger.ErrTransient))
			Expect(err.Error()).To(ContainSubstring("estimating gas"))
			Expect(fakeContract.EstimateSubmitCallCount()).To(Equal(3))
			Expect(fakeContract.SubmitCallCount()).To(BeZero())
		})
	})

	When("the broadcast fails", func() {
		BeforeEach(func() {
			fakeContract.SubmitReturns(common.Hash{}, errors.New("nonce too low"))
		})

		It("surfaces a transient error", func() {
			Expect(err).To(MatchError(ledger.ErrTransient))
			Expect(fakeContract.TransactionReceiptCallCount()).To(BeZero())
		})
	})

	When("the report transaction reverts", func() {
		BeforeEach(func() {
			fakeContract.TransactionReceiptReturns(receipt(types.ReceiptStatusFailed, 56), nil)
		})

		It("rejects the alert", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Status).To(Equal(models.OutcomeRejected))
			Expect(outcome.InclusionBlock).To(Equal(uint64(56)))
		})

		When("another reporter got there first", func() {
			BeforeEach(func() {
				fakeContract.IsReportedReturnsOnCall(1, true, nil)
			})

			It("returns already reported", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome.Status).To(Equal(models.OutcomeAlreadyReported))
			})
		})
	})

	When("the report is not included in time", func() {
		var included atomic.Bool

		BeforeEach(func() {
			included.Store(false)
			fakeContract.TransactionReceiptStub = func(context.Context, common.Hash) (*types.Receipt, error) {
				if included.Load() {
					return receipt(types.ReceiptStatusSuccessful, 60), nil
				}
				return nil, geth.NotFound
			}
		})

		It("times out", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Status).To(Equal(models.OutcomeTimedOut))
			Expect(outcome.Status.Terminal()).To(BeFalse())
			Expect(outcome.BroadcastHash).To(Equal(broadcast))
		})

		It("confirms the earlier broadcast once it lands", func() {
			included.Store(true)

			again, err := reporter.Submit(ctx, alert)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Status).To(Equal(models.OutcomeConfirmed))
			Expect(again.InclusionBlock).To(Equal(uint64(60)))
			Expect(fakeContract.SubmitCallCount()).To(Equal(1))
		})

		It("re-estimates before broadcasting again", func() {
			fakeContract.EstimateSubmitReturns(200_000, nil)

			again, err := reporter.Submit(ctx, alert)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Status).To(Equal(models.OutcomeTimedOut))
			Expect(fakeContract.EstimateSubmitCallCount()).To(Equal(2))
			Expect(fakeContract.SubmitCallCount()).To(Equal(2))
			_, _, gasLimit := fakeContract.SubmitArgsForCall(1)
			Expect(gasLimit).To(Equal(uint64(240_000)))
		})
	})

	When("the block bound passes before the time bound", func() {
		var head atomic.Uint64

		BeforeEach(func() {
			cfg.ConfirmTimeout = 10 * time.Second
			cfg.ConfirmBlocks = 3
			head.Store(50)
			fakeContract.BlockNumberStub = func(context.Context) (uint64, error) {
				return head.Add(1), nil
			}
			fakeContract.TransactionReceiptReturns(nil, geth.NotFound)
		})

		It("times out after the configured number of blocks", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Status).To(Equal(models.OutcomeTimedOut))
			Expect(head.Load()).To(BeNumerically(">=", uint64(54)))
		})
	})
})
