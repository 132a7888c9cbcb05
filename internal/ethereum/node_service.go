package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"threatwatch/internal/models"
	"threatwatch/internal/retry"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EthService reads confirmed blocks from an Ethereum node.
type EthService struct {
	logs   *zap.SugaredLogger
	client EthClient
	cfg    Config

	mu     sync.RWMutex
	signer types.Signer
}

func NewEthService(logger *zap.SugaredLogger, ethClient EthClient, cfg Config) *EthService {
	if cfg.MaxBlockRange == 0 {
		cfg.MaxBlockRange = 1
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 1
	}
	return &EthService{
		logs:   logger,
		client: ethClient,
		cfg:    cfg,
	}
}

// Connect resolves the chain id used to recover transaction senders.
func (s *EthService) Connect(ctx context.Context) error {
	var chainID *big.Int
	err := retry.Do(ctx, s.cfg.Retry, func(ctx context.Context) error {
		id, err := s.client.ChainID(ctx)
		if err != nil {
			return err
		}
		chainID = id
		return nil
	})
	if err != nil {
		return fmt.Errorf("fetching chain id: %w", err)
	}

	s.mu.Lock()
	s.signer = types.LatestSignerForChainID(chainID)
	s.mu.Unlock()

	s.logs.Infow("connected to chain", "chain_id", chainID.String())
	return nil
}

func (s *EthService) LatestHeight(ctx context.Context) (uint64, error) {
	var head uint64
	err := retry.Do(ctx, s.cfg.Retry, func(ctx context.Context) error {
		h, err := s.client.BlockNumber(ctx)
		if err != nil {
			return err
		}
		head = h
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("fetching block number: %w", err)
	}
	return head, nil
}

// Poll returns the transactions of the blocks [from, min(head, from+MaxBlockRange-1)] in block
// order. models.ErrNoNewBlocks is returned when from is above the chain head.
func (s *EthService) Poll(ctx context.Context, from uint64) (models.BlockRange, error) {
	signer := s.currentSigner()
	if signer == nil {
		return models.BlockRange{}, ErrNotConnected
	}

	head, err := s.LatestHeight(ctx)
	if err != nil {
		return models.BlockRange{}, err
	}
	if from > head {
		return models.BlockRange{}, models.ErrNoNewBlocks
	}

	to := head
	if head-from >= s.cfg.MaxBlockRange {
		to = from + s.cfg.MaxBlockRange - 1
	}

	blocks := make([]*types.Block, to-from+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FetchConcurrency)
	for i := range blocks {
		number := from + uint64(i)
		g.Go(func() error {
			block, err := s.fetchBlock(gctx, number)
			if err != nil {
				return fmt.Errorf("fetching block %d: %w", number, err)
			}
			blocks[i] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.BlockRange{}, err
	}

	result := models.BlockRange{From: from, To: to}
	for _, block := range blocks {
		result.Transactions = append(result.Transactions, s.decodeBlock(signer, block)...)
	}
	return result, nil
}

func (s *EthService) fetchBlock(ctx context.Context, number uint64) (*types.Block, error) {
	var block *types.Block
	err := retry.Do(ctx, s.cfg.Retry, func(ctx context.Context) error {
		b, err := s.client.BlockByNumber(ctx, new(big.Int).SetUint64(number))
		if err != nil {
			return err
		}
		block = b
		return nil
	})
	return block, err
}

func (s *EthService) decodeBlock(signer types.Signer, block *types.Block) []models.Transaction {
	txs := make([]models.Transaction, 0, len(block.Transactions()))
	for _, tx := range block.Transactions() {
		from, err := types.Sender(signer, tx)
		if err != nil {
			s.logs.Warnw("skipping transaction with undecodable sender",
				"tx_hash", tx.Hash().Hex(),
				"block", block.NumberU64(),
				"error", err)
			continue
		}

		txs = append(txs, models.Transaction{
			Hash:        tx.Hash(),
			From:        from,
			To:          tx.To(),
			Value:       tx.Value(),
			GasPrice:    tx.GasPrice(),
			GasLimit:    tx.Gas(),
			Data:        tx.Data(),
			Nonce:       tx.Nonce(),
			BlockNumber: block.NumberU64(),
		})
	}
	return txs
}

func (s *EthService) currentSigner() types.Signer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signer
}
