package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/logging"
	"github.com/lightscore/nfl-playoff-service/internal/metrics"
	"github.com/lightscore/nfl-playoff-service/internal/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
	"github.com/lightscore/nfl-playoff-service/internal/store"
)

const defaultInterval = 2 * time.Minute

// StandingsCacheWriter persists the latest standings snapshot to disk.
type StandingsCacheWriter interface {
	SaveStandings(records []standings.TeamRecord) error
}

// Poller refreshes the in-memory store from the upstream provider on an
// interval. Every cycle fetches the current scoreboard and standings;
// during the postseason it also rebuilds the bracket.
type Poller struct {
	provider providers.DataProvider
	store    *store.MemoryStore
	cache    StandingsCacheWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults. The cache writer may be nil.
func New(provider providers.DataProvider, st *store.MemoryStore, cache StandingsCacheWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		store:    st,
		cache:    cache,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	var errs []error
	if err := p.refreshWeekly(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := p.refreshStandings(ctx); err != nil {
		errs = append(errs, err)
	}

	// The bracket only changes during the postseason, keyed off whichever
	// weekly context we have, current or last known.
	if weekly, ok := p.store.Weekly(); ok {
		if playoffs.ModeForSeasonType(weekly.Context.SeasonType) == playoffs.ModePostseason {
			if err := p.refreshBracket(ctx, weekly.Context.Year); err != nil {
				errs = append(errs, err)
			}
		}
	}

	err := errors.Join(errs...)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(p.logger, "poller cycle failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds())
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed datasets",
		logging.FieldDurationMS, time.Since(start).Milliseconds())
}

func (p *Poller) refreshWeekly(ctx context.Context) error {
	start := time.Now()
	resp, err := p.provider.FetchScoreboard(ctx, providers.WeekQuery{})
	if p.metrics != nil {
		p.metrics.RecordDatasetRefresh(metrics.DatasetScoreboard, time.Since(start), err)
	}
	if err != nil {
		return err
	}

	p.store.SetWeekly(resp)
	logging.Info(p.logger, "poller refreshed scoreboard",
		logging.FieldYear, resp.Context.Year,
		logging.FieldWeek, resp.Context.Week,
		logging.FieldCount, len(resp.Games),
	)
	return nil
}

func (p *Poller) refreshStandings(ctx context.Context) error {
	start := time.Now()
	records, err := p.provider.FetchStandings(ctx)
	if p.metrics != nil {
		p.metrics.RecordDatasetRefresh(metrics.DatasetStandings, time.Since(start), err)
	}
	if err != nil {
		return err
	}

	p.store.SetStandings(records)
	if p.cache != nil {
		if writeErr := p.cache.SaveStandings(records); writeErr != nil {
			logging.Error(p.logger, "poller standings cache write failed", writeErr)
		}
	}
	logging.Info(p.logger, "poller refreshed standings", logging.FieldCount, len(records))
	return nil
}

func (p *Poller) refreshBracket(ctx context.Context, year int) error {
	start := time.Now()
	bracket, err := p.provider.FetchBracket(ctx, year)
	if p.metrics != nil {
		p.metrics.RecordDatasetRefresh(metrics.DatasetBracket, time.Since(start), err)
	}
	if err != nil {
		return err
	}

	p.store.SetBracket(bracket)
	logging.Info(p.logger, "poller refreshed bracket",
		logging.FieldYear, bracket.SeasonYear,
		logging.FieldCount, len(bracket.Games),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.DataProvider {
	return p.provider
}
