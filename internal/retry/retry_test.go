package retry_test

import (
	"context"
	"errors"
	"time"

	"threatwatch/internal/retry"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Do", func() {
	var (
		policy   retry.Policy
		calls    int
		retried  []int
		fakeErr  error
		fatalErr error
		ctx      context.Context
	)

	BeforeEach(func() {
		calls = 0
		retried = nil
		fakeErr = errors.New("rpc unavailable")
		fatalErr = errors.New("bad request")
		ctx = context.Background()
		policy = retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    2 * time.Millisecond,
			Classify: func(err error) retry.Class {
				if errors.Is(err, fatalErr) {
					return retry.Permanent
				}
				return retry.Retriable
			},
			OnRetry: func(attempt int, _ time.Duration, _ error) {
				retried = append(retried, attempt)
			},
		}
	})

	When("the call eventually succeeds", func() {
		It("stops retrying", func() {
			err := retry.Do(ctx, policy, func(context.Context) error {
				calls++
				if calls < 2 {
					return fakeErr
				}
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(Equal(2))
			Expect(retried).To(Equal([]int{1}))
		})
	})

	When("every attempt fails", func() {
		It("returns the last error after max attempts", func() {
			err := retry.Do(ctx, policy, func(context.Context) error {
				calls++
				return fakeErr
			})
			Expect(err).To(MatchError(fakeErr))
			Expect(calls).To(Equal(3))
		})
	})

	When("the error is permanent", func() {
		It("does not retry", func() {
			err := retry.Do(ctx, policy, func(context.Context) error {
				calls++
				return fatalErr
			})
			Expect(err).To(MatchError(fatalErr))
			Expect(calls).To(Equal(1))
		})
	})

	When("the context is cancelled", func() {
		It("gives up without calling fn", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			err := retry.Do(cctx, policy, func(context.Context) error {
				calls++
				return nil
			})
			Expect(err).To(MatchError(context.Canceled))
			Expect(calls).To(BeZero())
		})

		It("returns the last error together with the cancellation", func() {
			policy.BaseDelay = time.Hour
			policy.MaxDelay = time.Hour
			cctx, cancel := context.WithCancel(ctx)
			policy.OnRetry = func(int, time.Duration, error) { cancel() }

			err := retry.Do(cctx, policy, func(context.Context) error {
				calls++
				return fakeErr
			})
			Expect(err).To(MatchError(fakeErr))
			Expect(err).To(MatchError(context.Canceled))
			Expect(calls).To(Equal(1))
		})
	})
})

var _ = Describe("NewBackOff", func() {
	It("doubles the wait up to the maximum", func() {
		b := retry.Policy{BaseDelay: time.Second, MaxDelay: 5 * time.Second}.NewBackOff()
		var waits []time.Duration
		for i := 0; i < 5; i++ {
			waits = append(waits, b.NextBackOff())
		}
		Expect(waits).To(Equal([]time.Duration{
			time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second,
		}))
	})

	It("keeps jittered waits inside the configured fraction", func() {
		b := retry.Policy{BaseDelay: time.Second, MaxDelay: time.Second, Jitter: 0.5}.NewBackOff()
		for i := 0; i < 20; i++ {
			Expect(b.NextBackOff()).To(BeNumerically("~", time.Second, 500*time.Millisecond))
		}
	})
})
