package ethereum

import (
	"context"
	"fmt"
	"sync"

	"threatwatch/internal/models"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

// SubscribeHeads streams new head heights. It fails when the node transport does not
// support subscriptions, in which case callers fall back to polling.
func (s *EthService) SubscribeHeads(ctx context.Context) (models.HeadFeed, error) {
	headers := make(chan *types.Header, headBuffer)
	sub, err := s.client.SubscribeNewHead(ctx, headers)
	if err != nil {
		return nil, fmt.Errorf("subscribing to new heads: %w", err)
	}

	feed := &headFeed{
		sub:   sub,
		heads: make(chan uint64, headBuffer),
		errs:  make(chan error, 1),
		quit:  make(chan struct{}),
	}
	go feed.forward(headers)
	return feed, nil
}

type headFeed struct {
	sub   geth.Subscription
	heads chan uint64
	errs  chan error
	quit  chan struct{}
	once  sync.Once
}

func (f *headFeed) Heads() <-chan uint64 { return f.heads }

func (f *headFeed) Err() <-chan error { return f.errs }

func (f *headFeed) Unsubscribe() {
	f.once.Do(func() {
		close(f.quit)
		f.sub.Unsubscribe()
	})
}

func (f *headFeed) forward(headers <-chan *types.Header) {
	for {
		select {
		case <-f.quit:
			return
		case err, ok := <-f.sub.Err():
			if !ok {
				return
			}
			select {
			case f.errs <- err:
			default:
			}
			return
		case h := <-headers:
			if h == nil || h.Number == nil {
				continue
			}
			// heads are wake-ups only, a full buffer means the consumer is already behind
			select {
			case f.heads <- h.Number.Uint64():
			default:
			}
		}
	}
}
