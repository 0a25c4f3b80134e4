package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Standings []standings.TeamRecord
	Weekly    domaingames.WeeklyResponse
	Bracket   domainplayoffs.Bracket

	StandingsErr  error
	ScoreboardErr error
	BracketErr    error

	StandingsCalls  atomic.Int32
	ScoreboardCalls atomic.Int32
	BracketCalls    atomic.Int32

	Notify chan struct{}
}

// FetchStandings returns the configured records and error while tracking calls.
func (s *StubProvider) FetchStandings(ctx context.Context) ([]standings.TeamRecord, error) {
	_ = ctx
	s.notify()
	s.StandingsCalls.Add(1)
	return s.Standings, s.StandingsErr
}

// FetchScoreboard returns the configured weekly response and error while tracking calls.
func (s *StubProvider) FetchScoreboard(ctx context.Context, query providers.WeekQuery) (domaingames.WeeklyResponse, error) {
	_ = ctx
	_ = query
	s.notify()
	s.ScoreboardCalls.Add(1)
	return s.Weekly, s.ScoreboardErr
}

// FetchBracket returns the configured bracket and error while tracking calls.
func (s *StubProvider) FetchBracket(ctx context.Context, year int) (domainplayoffs.Bracket, error) {
	_ = ctx
	_ = year
	s.notify()
	s.BracketCalls.Add(1)
	return s.Bracket, s.BracketErr
}

func (s *StubProvider) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case <-s.Notify:
	default:
		close(s.Notify)
	}
}

// StubCacheWriter is a test double for poller.StandingsCacheWriter.
type StubCacheWriter struct {
	mu      sync.Mutex
	Written [][]standings.TeamRecord
	Err     error
}

// SaveStandings records the snapshot for verification in tests.
func (w *StubCacheWriter) SaveStandings(records []standings.TeamRecord) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Written = append(w.Written, records)
	return nil
}

// Writes returns how many snapshots have been saved so far.
func (w *StubCacheWriter) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Written)
}
