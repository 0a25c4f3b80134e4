package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/logging"
	"github.com/lightscore/nfl-playoff-service/internal/metrics"
)

// instrumentedProvider records per-call latency, errors, and rate limit
// events for the wrapped provider.
type instrumentedProvider struct {
	next     DataProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedProvider wraps a provider with metrics and logging. The
// name labels every recorded attempt.
func NewInstrumentedProvider(next DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		next:     next,
		name:     name,
		logger:   logger,
		recorder: recorder,
	}
}

func (p *instrumentedProvider) FetchStandings(ctx context.Context) ([]standings.TeamRecord, error) {
	start := time.Now()
	out, err := p.next.FetchStandings(ctx)
	p.record("standings", start, err)
	return out, err
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, query WeekQuery) (domaingames.WeeklyResponse, error) {
	start := time.Now()
	out, err := p.next.FetchScoreboard(ctx, query)
	p.record("scoreboard", start, err)
	return out, err
}

func (p *instrumentedProvider) FetchBracket(ctx context.Context, year int) (domainplayoffs.Bracket, error) {
	start := time.Now()
	out, err := p.next.FetchBracket(ctx, year)
	p.record("bracket", start, err)
	return out, err
}

func (p *instrumentedProvider) record(op string, start time.Time, err error) {
	duration := time.Since(start)
	p.recorder.RecordProviderAttempt(p.name, duration, err)

	if rl, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(p.name, rl.RetryAfter)
		logging.Warn(p.logger, "provider rate limited",
			logging.FieldProvider, p.name, "op", op, "retry_after", rl.RetryAfter)
		return
	}
	if err != nil {
		logging.Error(p.logger, "provider fetch error", err,
			logging.FieldProvider, p.name, "op", op,
			logging.FieldDurationMS, duration.Milliseconds())
		return
	}
	logging.Info(p.logger, "provider fetch ok",
		logging.FieldProvider, p.name, "op", op,
		logging.FieldDurationMS, duration.Milliseconds())
}
