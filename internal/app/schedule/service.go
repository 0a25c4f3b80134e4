package schedule

import (
	"context"
	"errors"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
	"github.com/lightscore/nfl-playoff-service/internal/season"
)

// ErrUnavailable is returned when no weekly snapshot exists and the
// provider cannot supply one.
var ErrUnavailable = errors.New("weekly games not available")

// Store reads the in-memory weekly scoreboard snapshot.
type Store interface {
	Weekly() (domaingames.WeeklyResponse, bool)
}

// Service serves weekly scoreboards. The current week comes from the
// store; explicit week queries go through the provider so users can browse
// past and future weeks without disturbing the polled snapshot.
type Service struct {
	store    Store
	provider providers.ScoreboardProvider
}

// NewService constructs a Service.
func NewService(store Store, provider providers.ScoreboardProvider) *Service {
	return &Service{store: store, provider: provider}
}

// Weekly returns games for the requested week. A zero query means the
// current week.
func (s *Service) Weekly(ctx context.Context, query providers.WeekQuery) (domaingames.WeeklyResponse, error) {
	if query == (providers.WeekQuery{}) {
		if resp, ok := s.store.Weekly(); ok {
			return resp, nil
		}
	}
	if s.provider == nil {
		return domaingames.WeeklyResponse{}, ErrUnavailable
	}
	return s.provider.FetchScoreboard(ctx, query)
}

// Context returns the week context of the stored snapshot.
func (s *Service) Context() (domaingames.WeekContext, bool) {
	resp, ok := s.store.Weekly()
	if !ok {
		return domaingames.WeekContext{}, false
	}
	return resp.Context, true
}

// Navigate steps one week forward or back from the given context, rolling
// across season type and year boundaries.
func (s *Service) Navigate(ctx domaingames.WeekContext, direction string) (domaingames.WeekContext, error) {
	return season.Navigate(season.ClampContext(ctx), direction)
}
