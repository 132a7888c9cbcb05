package ledger

import (
	"context"

	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Contract . Contract
type Contract interface {
	IsReported(ctx context.Context, txHash common.Hash) (bool, error)
	EstimateSubmit(ctx context.Context, alert models.Alert) (uint64, error)
	Submit(ctx context.Context, alert models.Alert, gasLimit uint64) (common.Hash, error)
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}
