package models

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNoNewBlocks is returned by a chain source when the requested height is above the chain head.
var ErrNoNewBlocks = errors.New("no new blocks")

// Transaction is an immutable view of a transaction observed on chain.
type Transaction struct {
	Hash        common.Hash
	From        common.Address
	To          *common.Address // nil for contract creation
	Value       *big.Int
	GasPrice    *big.Int
	GasLimit    uint64
	Data        []byte
	Nonce       uint64
	BlockNumber uint64
}

func (t Transaction) IsContractCreation() bool {
	return t.To == nil
}

// BlockRange holds the transactions of the inclusive height range [From, To] in block order.
type BlockRange struct {
	From         uint64
	To           uint64
	Transactions []Transaction
}

// HeadFeed delivers new chain head heights until Err yields a value.
type HeadFeed interface {
	Heads() <-chan uint64
	Err() <-chan error
	Unsubscribe()
}
