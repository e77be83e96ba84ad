package llm

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryProvider retries transient failures with capped exponential
// backoff. Rate limits and unavailable providers are retried up to
// MaxAttempts; an invalid response is retried once.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    logrus.FieldLogger

	// jitter returns a factor in [-1, 1) scaling the ±20% jitter.
	jitter func() float64
	sleep  func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps p with retries. A nil log discards retry messages.
func WithRetry(p Provider, cfg RetryConfig, log logrus.FieldLogger) *RetryProvider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if log == nil {
		log = discardLogger()
	}
	return &RetryProvider{
		inner:  p,
		config: cfg,
		log:    log,
		jitter: func() float64 { return 2*rand.Float64() - 1 },
		sleep:  sleepCtx,
	}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidSeen := false
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		var invalid *ErrInvalidResponse
		isInvalid := errors.As(err, &invalid)
		if !retryable(err) || (isInvalid && invalidSeen) || attempt >= r.config.MaxAttempts {
			return nil, err
		}
		invalidSeen = invalidSeen || isInvalid

		wait := r.delay(attempt, err)
		r.log.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt,
			"wait":    wait.String(),
		}).Warn("retrying llm request")
		if err := r.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

// retryable reports whether err is worth another attempt.
func retryable(err error) bool {
	var (
		rl      *ErrRateLimit
		unavail *ErrProviderUnavailable
		invalid *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.As(err, &rl), errors.As(err, &unavail), errors.As(err, &invalid):
		return true
	}
	return false
}

// delay is the wait after the given 1-based attempt. A server-provided
// Retry-After wins over the computed backoff.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt-1))
	wait = math.Min(wait, float64(r.config.MaxWait))
	wait += wait * 0.2 * r.jitter()
	return time.Duration(math.Max(wait, 0))
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
