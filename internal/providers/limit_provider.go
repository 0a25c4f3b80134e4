package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/logging"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval
// between upstream calls across all fetch kinds.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	lastCall time.Time
}

// NewRateLimitedProvider returns a DataProvider that spaces calls at least
// the given interval apart. Calls block until their slot arrives to avoid
// hammering the public feed.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context) ([]standings.TeamRecord, error) {
	if err := p.wait(ctx, "standings"); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx)
}

func (p *rateLimitedProvider) FetchScoreboard(ctx context.Context, query WeekQuery) (domaingames.WeeklyResponse, error) {
	if err := p.wait(ctx, "scoreboard"); err != nil {
		return domaingames.WeeklyResponse{}, err
	}
	return p.next.FetchScoreboard(ctx, query)
}

func (p *rateLimitedProvider) FetchBracket(ctx context.Context, year int) (domainplayoffs.Bracket, error) {
	if err := p.wait(ctx, "bracket"); err != nil {
		return domainplayoffs.Bracket{}, err
	}
	return p.next.FetchBracket(ctx, year)
}

// wait blocks until the next call slot. The first call goes through
// immediately.
func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}

	p.mu.Lock()
	now := time.Now()
	next := p.lastCall.Add(p.interval)
	if next.Before(now) {
		next = now
	}
	p.lastCall = next
	p.mu.Unlock()

	delay := time.Until(next)
	if delay <= 0 {
		return nil
	}

	logging.Info(p.logger, "rate-limited provider waiting", "op", op, "delay", delay)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
