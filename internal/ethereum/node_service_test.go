package ethereum_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sync"
	"time"

	"threatwatch/internal/ethereum"
	"threatwatch/internal/ethereum/fake"
	"threatwatch/internal/models"
	"threatwatch/internal/retry"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
		chainID    *big.Int
		signer     types.Signer
		key        *ecdsa.PrivateKey
		cfg        ethereum.Config
	)

	signedTx := func(nonce uint64) *types.Transaction {
		to := common.HexToAddress("0x00000000000000000000000000000000000000c3")
		tx := types.NewTransaction(nonce, to, big.NewInt(int64(nonce+1)), 21000, big.NewInt(1_000_000_000), nil)
		signed, err := types.SignTx(tx, signer, key)
		Expect(err).NotTo(HaveOccurred())
		return signed
	}

	block := func(number int64, txs ...*types.Transaction) *types.Block {
		return types.NewBlockWithHeader(&types.Header{Number: big.NewInt(number)}).
			WithBody(types.Body{Transactions: txs})
	}

	BeforeEach(func() {
		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		chainID = big.NewInt(5)
		signer = types.LatestSignerForChainID(chainID)
		fakeClient = new(fake.EthClient)
		fakeClient.ChainIDReturns(chainID, nil)
		testErr = errors.New("test error")
		ctx = context.Background()
		cfg = ethereum.Config{
			MaxBlockRange:    20,
			FetchConcurrency: 4,
			Retry:            retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
		}
	})

	JustBeforeEach(func() {
		service = ethereum.NewEthService(zap.NewNop().Sugar(), fakeClient, cfg)
	})

	Describe("Connect", func() {
		It("retries the chain id lookup", func() {
			fakeClient.ChainIDReturnsOnCall(0, nil, testErr)
			Expect(service.Connect(ctx)).To(Succeed())
			Expect(fakeClient.ChainIDCallCount()).To(Equal(2))
		})

		It("fails once the attempts are exhausted", func() {
			fakeClient.ChainIDReturns(nil, testErr)
			Expect(service.Connect(ctx)).To(MatchError(testErr))
			Expect(fakeClient.ChainIDCallCount()).To(Equal(3))
		})
	})

	Describe("Poll", func() {
		var (
			result models.BlockRange
			err    error
			from   uint64
			blocks map[uint64]*types.Block
			mu     sync.Mutex
		)

		BeforeEach(func() {
			from = 100
			blocks = map[uint64]*types.Block{
				100: block(100, signedTx(0), signedTx(1)),
				101: block(101),
				102: block(102, signedTx(2)),
			}
			fakeClient.BlockNumberReturns(102, nil)
			fakeClient.BlockByNumberStub = func(_ context.Context, n *big.Int) (*types.Block, error) {
				mu.Lock()
				defer mu.Unlock()
				b, ok := blocks[n.Uint64()]
				if !ok {
					return nil, geth.NotFound
				}
				return b, nil
			}
		})

		JustBeforeEach(func() {
			Expect(service.Connect(ctx)).To(Succeed())
			result, err = service.Poll(ctx, from)
		})

		It("returns the transactions of the range in block order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.From).To(Equal(uint64(100)))
			Expect(result.To).To(Equal(uint64(102)))
			Expect(result.Transactions).To(HaveLen(3))
			Expect(result.Transactions[0].Nonce).To(Equal(uint64(0)))
			Expect(result.Transactions[1].Nonce).To(Equal(uint64(1)))
			Expect(result.Transactions[2].Nonce).To(Equal(uint64(2)))
			Expect(result.Transactions[2].BlockNumber).To(Equal(uint64(102)))
		})

		It("recovers the sender", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Transactions[0].From).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))
			Expect(result.Transactions[0].GasPrice).To(Equal(big.NewInt(1_000_000_000)))
		})

		When("the start height is above the head", func() {
			BeforeEach(func() {
				from = 103
			})

			It("reports no new blocks", func() {
				Expect(err).To(MatchError(models.ErrNoNewBlocks))
				Expect(fakeClient.BlockByNumberCallCount()).To(BeZero())
			})
		})

		When("the range is larger than the maximum", func() {
			BeforeEach(func() {
				cfg.MaxBlockRange = 2
			})

			It("caps the range", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.To).To(Equal(uint64(101)))
				Expect(result.Transactions).To(HaveLen(2))
			})
		})

		When("a block keeps failing", func() {
			BeforeEach(func() {
				delete(blocks, 101)
			})

			It("fails the whole range", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("fetching block 101"))
				Expect(result.Transactions).To(BeEmpty())
			})
		})

		When("a transaction sender cannot be recovered", func() {
			BeforeEach(func() {
				unsigned := types.NewTransaction(9, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)
				blocks[101] = block(101, unsigned)
			})

			It("skips it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Transactions).To(HaveLen(3))
			})
		})
	})

	It("refuses to poll before connecting", func() {
		_, err := service.Poll(ctx, 1)
		Expect(err).To(MatchError(ethereum.ErrNotConnected))
	})

	Describe("SubscribeHeads", func() {
		var (
			headers chan<- *types.Header
			subErr  chan error
		)

		BeforeEach(func() {
			subErr = make(chan error, 1)
			fakeClient.SubscribeNewHeadStub = func(_ context.Context, ch chan<- *types.Header) (geth.Subscription, error) {
				headers = ch
				return event.NewSubscription(func(quit <-chan struct{}) error {
					select {
					case <-quit:
						return nil
					case err := <-subErr:
						return err
					}
				}), nil
			}
		})

		It("forwards head heights", func() {
			feed, err := service.SubscribeHeads(ctx)
			Expect(err).NotTo(HaveOccurred())
			defer feed.Unsubscribe()

			headers <- &types.Header{Number: big.NewInt(77)}
			Eventually(feed.Heads()).Should(Receive(Equal(uint64(77))))
		})

		It("surfaces subscription errors", func() {
			feed, err := service.SubscribeHeads(ctx)
			Expect(err).NotTo(HaveOccurred())
			defer feed.Unsubscribe()

			subErr <- testErr
			Eventually(feed.Err()).Should(Receive(MatchError(testErr)))
		})

		It("fails when the transport cannot subscribe", func() {
			fakeClient.SubscribeNewHeadStub = nil
			fakeClient.SubscribeNewHeadReturns(nil, testErr)
			_, err := service.SubscribeHeads(ctx)
			Expect(err).To(MatchError(testErr))
		})
	})
})
