package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/logging"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential backoff retries.
// Rate limit responses are not retried; the caller decides how to wait.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	maxAttempts int
	initial     time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts or initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, initialInterval time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		initial:     initialInterval,
	}
}

func (r *retryingProvider) FetchStandings(ctx context.Context) ([]standings.TeamRecord, error) {
	return retryFetch(ctx, r, "standings", func() ([]standings.TeamRecord, error) {
		return r.inner.FetchStandings(ctx)
	})
}

func (r *retryingProvider) FetchScoreboard(ctx context.Context, query WeekQuery) (domaingames.WeeklyResponse, error) {
	return retryFetch(ctx, r, "scoreboard", func() (domaingames.WeeklyResponse, error) {
		return r.inner.FetchScoreboard(ctx, query)
	})
}

func (r *retryingProvider) FetchBracket(ctx context.Context, year int) (domainplayoffs.Bracket, error) {
	return retryFetch(ctx, r, "bracket", func() (domainplayoffs.Bracket, error) {
		return r.inner.FetchBracket(ctx, year)
	})
}

func retryFetch[T any](ctx context.Context, r *retryingProvider, op string, fetch func() (T, error)) (T, error) {
	var result T

	attempt := 0
	operation := func() error {
		attempt++
		out, err := fetch()
		if err == nil {
			result = out
			return nil
		}
		if _, ok := AsRateLimitError(err); ok {
			return backoff.Permanent(err)
		}
		if attempt < r.maxAttempts {
			logging.Warn(r.logger, "provider fetch retry",
				"op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initial

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx))
	if err != nil {
		logging.Warn(r.logger, "provider fetch failed", "op", op, "attempts", attempt, "err", err)
		var zero T
		return zero, err
	}
	return result, nil
}
