package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nba-highlights-service/internal/clutch"
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/logging"
	"github.com/preston-bernstein/nba-highlights-service/internal/metrics"
)

const (
	defaultRetryAttempts = 2
	defaultBackoff       = 250 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a DataProvider with retry/backoff behavior and per-attempt metrics.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Only transient failures are retried; 4xx responses, decode errors and context errors fail fast.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = initial
			exp.MaxInterval = maxBackoff
			exp.MaxElapsedTime = 0
			return exp
		},
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context) ([]domaingames.Game, error) {
	return retryCall(ctx, r, FeedSchedule, func(ctx context.Context) ([]domaingames.Game, error) {
		return r.inner.FetchSchedule(ctx)
	})
}

func (r *retryingProvider) FetchPlayByPlay(ctx context.Context, gameID string) ([]clutch.Action, error) {
	return retryCall(ctx, r, FeedPlayByPlay, func(ctx context.Context) ([]clutch.Action, error) {
		return r.inner.FetchPlayByPlay(ctx, gameID)
	})
}

func (r *retryingProvider) FetchVideoEvents(ctx context.Context, q VideoQuery) ([]highlights.Event, error) {
	return retryCall(ctx, r, FeedVideo, func(ctx context.Context) ([]highlights.Event, error) {
		return r.inner.FetchVideoEvents(ctx, q)
	})
}

func retryCall[T any](ctx context.Context, r *retryingProvider, feed string, fn func(context.Context) (T, error)) (T, error) {
	if r.inner == nil {
		var zero T
		logWithFeed(ctx, r.logger, slog.LevelWarn, feed, "provider unavailable")
		return zero, ErrProviderUnavailable
	}

	policy := &retryAfterBackOff{next: r.newBackOff()}
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	op := func() (T, error) {
		attempt++
		start := time.Now()
		v, err := fn(ctx)
		r.record(feed, time.Since(start), err)
		policy.last = err
		if err != nil && !Retryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}
	notify := func(err error, delay time.Duration) {
		logWithFeed(ctx, r.logger, slog.LevelWarn, feed, "provider fetch retry",
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}

	v, err := backoff.RetryNotifyWithData(op, b, notify)
	if err != nil && attempt > 1 {
		logWithFeed(ctx, r.logger, slog.LevelWarn, feed, "provider fetch failed", "attempts", attempt, "error", err)
	}
	return v, err
}

func (r *retryingProvider) record(feed string, duration time.Duration, err error) {
	if r.metrics == nil {
		return
	}
	outcome := metrics.OutcomeOK
	switch {
	case IsTimeout(err):
		outcome = metrics.OutcomeTimeout
	case err != nil:
		outcome = metrics.OutcomeError
	}
	r.metrics.RecordUpstreamCall(feed, duration, outcome)
	if rlErr, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(feed, rlErr.RetryAfter)
	}
}

// retryAfterBackOff defers to the upstream Retry-After hint when the last attempt was rate limited.
type retryAfterBackOff struct {
	next backoff.BackOff
	last error
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	d := b.next.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if rlErr, ok := AsRateLimitError(b.last); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	return d
}

func (b *retryAfterBackOff) Reset() {
	b.last = nil
	b.next.Reset()
}
