package standings

import (
	"errors"

	domainstandings "github.com/lightscore/nfl-playoff-service/internal/domain/standings"
)

// ErrUnavailable is returned when neither the store nor the disk cache has
// a standings snapshot yet.
var ErrUnavailable = errors.New("standings data not available")

// Store reads the in-memory standings snapshot.
type Store interface {
	Standings() ([]domainstandings.TeamRecord, bool)
}

// CacheLoader reads the on-disk standings snapshot written by the poller.
type CacheLoader interface {
	LoadStandings() ([]domainstandings.TeamRecord, error)
}

// Service serves the latest standings, falling back to the disk cache when
// the store has not been warmed yet (cold start with the upstream down).
type Service struct {
	store Store
	cache CacheLoader
}

// NewService constructs a Service. The cache loader may be nil.
func NewService(store Store, cache CacheLoader) *Service {
	return &Service{store: store, cache: cache}
}

// Live returns the current standings snapshot.
func (s *Service) Live() ([]domainstandings.TeamRecord, error) {
	if records, ok := s.store.Standings(); ok {
		return records, nil
	}
	if s.cache != nil {
		if records, err := s.cache.LoadStandings(); err == nil && len(records) > 0 {
			return records, nil
		}
	}
	return nil, ErrUnavailable
}
