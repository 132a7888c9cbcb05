package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type Class int

const (
	Retriable Class = iota
	Permanent
)

// Policy is the single retry policy shared by the chain source, the ledger reporter and
// alert re-delivery.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Jitter randomizes every wait by up to this fraction of it, 0 disables it.
	Jitter float64

	// Classify decides whether an error is worth another attempt. Nil retries every
	// error except context cancellation.
	Classify func(error) Class

	OnRetry func(attempt int, wait time.Duration, err error)
}

// DefaultPolicy is used where the caller has no specific requirements.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 4,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    5 * time.Second,
		Jitter:      0.2,
	}
}

func (p Policy) classify(err error) Class {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Permanent
	}
	if p.Classify == nil {
		return Retriable
	}
	return p.Classify(err)
}

// NewBackOff returns the exponential wait schedule of the policy, without an attempt or
// elapsed time limit.
func (p Policy) NewBackOff() *backoff.ExponentialBackOff {
	if p.MaxDelay < p.BaseDelay {
		p.MaxDelay = p.BaseDelay
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.MaxInterval = p.MaxDelay
	b.Multiplier = 2
	b.RandomizationFactor = p.Jitter
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Do runs fn until it succeeds, returns a permanent error, the attempts are exhausted or
// ctx is done. The last error from fn is returned.
func Do(ctx context.Context, p Policy, fn func(context.Context) error) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = 100 * time.Millisecond
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var last error
	operation := func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		last = err
		if p.classify(err) == Permanent {
			return backoff.Permanent(err)
		}
		return err
	}

	attempt := 0
	notify := func(err error, wait time.Duration) {
		attempt++
		if p.OnRetry != nil {
			p.OnRetry(attempt, wait, err)
		}
	}

	schedule := backoff.WithContext(backoff.WithMaxRetries(p.NewBackOff(), uint64(p.MaxAttempts-1)), ctx)
	err := backoff.RetryNotify(operation, schedule, notify)
	if ctxErr := ctx.Err(); ctxErr != nil && last != nil && errors.Is(err, ctxErr) && !errors.Is(last, ctxErr) {
		return errors.Join(last, ctxErr)
	}
	return err
}
