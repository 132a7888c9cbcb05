package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"threatwatch/internal/models"
	"threatwatch/internal/retry"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

type Config struct {
	GasMarginPercent uint64
	ConfirmTimeout   time.Duration
	ConfirmBlocks    uint64
	ReceiptInterval  time.Duration
	Retry            retry.Policy
}

func DefaultConfig() Config {
	return Config{
		GasMarginPercent: 20,
		ConfirmTimeout:   2 * time.Minute,
		ConfirmBlocks:    12,
		ReceiptInterval:  2 * time.Second,
		Retry:            retry.DefaultPolicy(),
	}
}

// Reporter submits alerts to the report contract at most once per transaction hash.
type Reporter struct {
	logs     *zap.SugaredLogger
	contract Contract
	cfg      Config

	mu      sync.Mutex
	settled map[common.Hash]models.OutcomeStatus
	// pending holds broadcasts that were not yet seen in a block, keyed by alert tx hash
	pending map[common.Hash]common.Hash
}

func NewReporter(logger *zap.SugaredLogger, contract Contract, cfg Config) *Reporter {
	if cfg.ReceiptInterval <= 0 {
		cfg.ReceiptInterval = time.Second
	}
	cfg.Retry.Classify = retryClass

	return &Reporter{
		logs:     logger,
		contract: contract,
		cfg:      cfg,
		settled:  make(map[common.Hash]models.OutcomeStatus),
		pending:  make(map[common.Hash]common.Hash),
	}
}

// Submit drives one submission attempt for alert. Validation rejections are returned as
// an OutcomeRejected outcome. Transient failures are returned as errors wrapping
// ErrTransient so the caller can retry later with a fresh estimate.
func (r *Reporter) Submit(ctx context.Context, alert models.Alert) (models.Outcome, error) {
	logs := r.logs.With("tx_hash", alert.TxHash.Hex(), "alert_id", alert.ID)

	if outcome, done, err := r.resolvePending(ctx, alert); err != nil || done {
		return outcome, err
	}

	reported, err := r.isReported(ctx, alert.TxHash)
	if err != nil {
		return models.Outcome{}, err
	}
	if reported || r.isSettled(alert.TxHash) {
		logs.Infow("alert already reported")
		r.settle(alert.TxHash, models.OutcomeAlreadyReported)
		return models.Outcome{Status: models.OutcomeAlreadyReported}, nil
	}

	var estimate uint64
	err = retry.Do(ctx, r.cfg.Retry, func(ctx context.Context) error {
		gas, err := r.contract.EstimateSubmit(ctx, alert)
		if err != nil {
			return err
		}
		estimate = gas
		return nil
	})
	if err != nil {
		return r.failure(logs, alert, "estimating gas", err)
	}

	gasLimit := estimate * (100 + r.cfg.GasMarginPercent) / 100

	broadcast, err := r.contract.Submit(ctx, alert, gasLimit)
	if err != nil {
		return r.failure(logs, alert, "submitting report", err)
	}

	r.mu.Lock()
	r.pending[alert.TxHash] = broadcast
	r.mu.Unlock()

	logs.Infow("report broadcast",
		"broadcast_hash", broadcast.Hex(),
		"gas_limit", gasLimit)

	return r.awaitReceipt(ctx, alert, broadcast)
}

// resolvePending finishes a broadcast left over from a previous timed out attempt.
func (r *Reporter) resolvePending(ctx context.Context, alert models.Alert) (models.Outcome, bool, error) {
	r.mu.Lock()
	broadcast, ok := r.pending[alert.TxHash]
	r.mu.Unlock()
	if !ok {
		return models.Outcome{}, false, nil
	}

	receipt, err := r.contract.TransactionReceipt(ctx, broadcast)
	switch {
	case errors.Is(err, geth.NotFound):
		r.dropPending(alert.TxHash)
		return models.Outcome{}, false, nil
	case err != nil:
		return models.Outcome{}, false, fmt.Errorf("fetching receipt: %w", classify(err))
	}

	if receipt.Status == types.ReceiptStatusSuccessful {
		return r.confirmed(alert, broadcast, receipt), true, nil
	}
	r.dropPending(alert.TxHash)
	return models.Outcome{}, false, nil
}

func (r *Reporter) awaitReceipt(ctx context.Context, alert models.Alert, broadcast common.Hash) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ConfirmTimeout)
	defer cancel()

	startHead, err := r.contract.BlockNumber(ctx)
	if err != nil {
		startHead = 0
	}

	ticker := time.NewTicker(r.cfg.ReceiptInterval)
	defer ticker.Stop()

	for {
		receipt, err := r.contract.TransactionReceipt(ctx, broadcast)
		switch {
		case err == nil:
			return r.included(ctx, alert, broadcast, receipt)
		case !errors.Is(err, geth.NotFound):
			r.logs.Warnw("receipt lookup failed", "broadcast_hash", broadcast.Hex(), "error", err)
		}

		if startHead > 0 && r.cfg.ConfirmBlocks > 0 {
			if head, err := r.contract.BlockNumber(ctx); err == nil && head >= startHead+r.cfg.ConfirmBlocks {
				return r.timedOut(alert, broadcast), nil
			}
		}

		select {
		case <-ctx.Done():
			return r.timedOut(alert, broadcast), nil
		case <-ticker.C:
		}
	}
}

func (r *Reporter) included(ctx context.Context, alert models.Alert, broadcast common.Hash, receipt *types.Receipt) (models.Outcome, error) {
	if receipt.Status == types.ReceiptStatusSuccessful {
		return r.confirmed(alert, broadcast, receipt), nil
	}

	r.dropPending(alert.TxHash)

	// a revert can mean another reporter won the race for this hash
	reported, err := r.isReported(context.WithoutCancel(ctx), alert.TxHash)
	if err == nil && reported {
		r.settle(alert.TxHash, models.OutcomeAlreadyReported)
		return models.Outcome{Status: models.OutcomeAlreadyReported, BroadcastHash: broadcast}, nil
	}

	r.settle(alert.TxHash, models.OutcomeRejected)
	return models.Outcome{
		Status:         models.OutcomeRejected,
		BroadcastHash:  broadcast,
		InclusionBlock: blockOf(receipt),
		Reason:         "report transaction reverted",
	}, nil
}

func (r *Reporter) confirmed(alert models.Alert, broadcast common.Hash, receipt *types.Receipt) models.Outcome {
	r.dropPending(alert.TxHash)
	r.settle(alert.TxHash, models.OutcomeConfirmed)

	r.logs.Infow("report confirmed",
		"tx_hash", alert.TxHash.Hex(),
		"broadcast_hash", broadcast.Hex(),
		"block", blockOf(receipt))

	return models.Outcome{
		Status:         models.OutcomeConfirmed,
		InclusionBlock: blockOf(receipt),
		BroadcastHash:  broadcast,
	}
}

func (r *Reporter) timedOut(alert models.Alert, broadcast common.Hash) models.Outcome {
	r.logs.Warnw("report not included in time",
		"tx_hash", alert.TxHash.Hex(),
		"broadcast_hash", broadcast.Hex())
	return models.Outcome{
		Status:        models.OutcomeTimedOut,
		BroadcastHash: broadcast,
		Reason:        "confirmation wait exceeded",
	}
}

func (r *Reporter) failure(logs *zap.SugaredLogger, alert models.Alert, step string, err error) (models.Outcome, error) {
	err = classify(err)
	if errors.Is(err, ErrValidationRejected) {
		logs.Errorw("report rejected", "step", step, "error", err)
		r.settle(alert.TxHash, models.OutcomeRejected)
		return models.Outcome{Status: models.OutcomeRejected, Reason: err.Error()}, nil
	}
	return models.Outcome{}, fmt.Errorf("%s: %w", step, err)
}

func (r *Reporter) isReported(ctx context.Context, txHash common.Hash) (bool, error) {
	var reported bool
	err := retry.Do(ctx, r.cfg.Retry, func(ctx context.Context) error {
		ok, err := r.contract.IsReported(ctx, txHash)
		if err != nil {
			return err
		}
		reported = ok
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("checking reported state: %w", classify(err))
	}
	return reported, nil
}

func (r *Reporter) isSettled(txHash common.Hash) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	status, ok := r.settled[txHash]
	return ok && (status == models.OutcomeConfirmed || status == models.OutcomeAlreadyReported)
}

func (r *Reporter) settle(txHash common.Hash, status models.OutcomeStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settled[txHash] = status
}

func (r *Reporter) dropPending(txHash common.Hash) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, txHash)
}

func blockOf(receipt *types.Receipt) uint64 {
	if receipt == nil || receipt.BlockNumber == nil {
		return 0
	}
	return receipt.BlockNumber.Uint64()
}
