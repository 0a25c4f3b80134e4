package store

import (
	"sync"
	"time"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
)

// MemoryStore keeps thread-safe snapshots of the latest upstream data in
// memory. Each dataset is replaced wholesale on refresh.
type MemoryStore struct {
	mu sync.RWMutex

	records    []standings.TeamRecord
	recordsAt  time.Time
	hasRecords bool

	weekly    domaingames.WeeklyResponse
	weeklyAt  time.Time
	hasWeekly bool

	bracket    domainplayoffs.Bracket
	bracketAt  time.Time
	hasBracket bool

	now func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// SetStandings replaces the standings snapshot.
func (s *MemoryStore) SetStandings(records []standings.TeamRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]standings.TeamRecord, len(records))
	copy(s.records, records)
	s.recordsAt = s.now()
	s.hasRecords = true
}

// Standings returns a copy of the standings snapshot and whether one exists.
func (s *MemoryStore) Standings() ([]standings.TeamRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasRecords {
		return nil, false
	}
	out := make([]standings.TeamRecord, len(s.records))
	copy(out, s.records)
	return out, true
}

// SetWeekly replaces the weekly scoreboard snapshot.
func (s *MemoryStore) SetWeekly(resp domaingames.WeeklyResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weekly = resp
	s.weekly.Games = make([]domaingames.WeeklyGame, len(resp.Games))
	copy(s.weekly.Games, resp.Games)
	s.weeklyAt = s.now()
	s.hasWeekly = true
}

// Weekly returns a copy of the weekly scoreboard snapshot and whether one exists.
func (s *MemoryStore) Weekly() (domaingames.WeeklyResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasWeekly {
		return domaingames.WeeklyResponse{}, false
	}
	out := s.weekly
	out.Games = make([]domaingames.WeeklyGame, len(s.weekly.Games))
	copy(out.Games, s.weekly.Games)
	return out, true
}

// SetBracket replaces the postseason bracket snapshot.
func (s *MemoryStore) SetBracket(b domainplayoffs.Bracket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bracket = copyBracket(b)
	s.bracketAt = s.now()
	s.hasBracket = true
}

// Bracket returns a copy of the bracket snapshot and whether one exists.
func (s *MemoryStore) Bracket() (domainplayoffs.Bracket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasBracket {
		return domainplayoffs.Bracket{}, false
	}
	return copyBracket(s.bracket), true
}

// UpdatedAt reports when each dataset was last replaced. Zero times mean
// the dataset has never been stored.
func (s *MemoryStore) UpdatedAt() (standingsAt, weeklyAt, bracketAt time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recordsAt, s.weeklyAt, s.bracketAt
}

func copyBracket(b domainplayoffs.Bracket) domainplayoffs.Bracket {
	out := b
	out.AFCSeeds = make([]domainplayoffs.SeedEntry, len(b.AFCSeeds))
	copy(out.AFCSeeds, b.AFCSeeds)
	out.NFCSeeds = make([]domainplayoffs.SeedEntry, len(b.NFCSeeds))
	copy(out.NFCSeeds, b.NFCSeeds)
	out.Games = make([]domainplayoffs.BracketGame, len(b.Games))
	copy(out.Games, b.Games)
	return out
}
