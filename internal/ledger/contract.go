package ledger

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"threatwatch/internal/models"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const reportABI = `[
	{"type":"function","name":"isReported","stateMutability":"view",
	 "inputs":[{"name":"txHash","type":"bytes32"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"submitThreatReport","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"txHash","type":"bytes32"},
		{"name":"flaggedAddress","type":"address"},
		{"name":"severity","type":"uint8"},
		{"name":"category","type":"string"},
		{"name":"confidenceScore","type":"uint8"},
		{"name":"riskScore","type":"uint8"},
		{"name":"description","type":"string"},
		{"name":"modelVersion","type":"string"},
		{"name":"economicImpact","type":"uint256"},
		{"name":"relatedAlerts","type":"bytes32[]"}],
	 "outputs":[]}
]`

const (
	methodIsReported = "isReported"
	methodSubmit     = "submitThreatReport"
)

// Backend is the node connection the report contract is bound to. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// ReportContract talks to the threat report contract at a fixed address.
type ReportContract struct {
	backend  Backend
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
	auth     *bind.TransactOpts
}

func NewReportContract(backend Backend, address common.Address, key *ecdsa.PrivateKey, chainID *big.Int) (*ReportContract, error) {
	parsed, err := abi.JSON(strings.NewReader(reportABI))
	if err != nil {
		return nil, fmt.Errorf("parsing report abi: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("creating transactor: %w", err)
	}

	return &ReportContract{
		backend:  backend,
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		auth:     auth,
	}, nil
}

func (c *ReportContract) Reporter() common.Address {
	return c.auth.From
}

func (c *ReportContract) IsReported(ctx context.Context, txHash common.Hash) (bool, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodIsReported, [32]byte(txHash))
	if err != nil {
		return false, classify(err)
	}
	if len(out) != 1 {
		return false, fmt.Errorf("%w: isReported returned %d values", ErrValidationRejected, len(out))
	}

	reported := *abi.ConvertType(out[0], new(bool)).(*bool)
	return reported, nil
}

func (c *ReportContract) EstimateSubmit(ctx context.Context, alert models.Alert) (uint64, error) {
	data, err := c.abi.Pack(methodSubmit, submitArgs(alert)...)
	if err != nil {
		return 0, fmt.Errorf("%w: packing report: %w", ErrValidationRejected, err)
	}

	gas, err := c.backend.EstimateGas(ctx, geth.CallMsg{
		From: c.auth.From,
		To:   &c.address,
		Data: data,
	})
	if err != nil {
		return 0, classify(err)
	}
	return gas, nil
}

func (c *ReportContract) Submit(ctx context.Context, alert models.Alert, gasLimit uint64) (common.Hash, error) {
	opts := *c.auth
	opts.Context = ctx
	opts.GasLimit = gasLimit

	tx, err := c.contract.Transact(&opts, methodSubmit, submitArgs(alert)...)
	if err != nil {
		return common.Hash{}, classify(err)
	}
	return tx.Hash(), nil
}

func (c *ReportContract) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return c.backend.TransactionReceipt(ctx, hash)
}

func (c *ReportContract) BlockNumber(ctx context.Context) (uint64, error) {
	return c.backend.BlockNumber(ctx)
}

func submitArgs(alert models.Alert) []interface{} {
	related := make([][32]byte, 0, len(alert.RelatedAlerts))
	for _, h := range alert.RelatedAlerts {
		related = append(related, [32]byte(h))
	}

	impact := alert.EconomicImpact
	if impact == nil {
		impact = new(big.Int)
	}

	return []interface{}{
		[32]byte(alert.TxHash),
		alert.Actor,
		uint8(alert.Severity),
		string(alert.Category),
		alert.Confidence,
		alert.CompositeScore,
		alert.Description,
		alert.ModelVersion,
		impact,
		related,
	}
}
