package playoffs

import (
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
)

// Mode selects which computation stage builds the playoff picture.
type Mode int

const (
	ModeRegularSeason Mode = iota
	ModePostseason
)

// Season type codes used by the upstream feed (1=pre, 2=regular, 3=post).
const (
	SeasonTypePreseason  = 1
	SeasonTypeRegular    = 2
	SeasonTypePostseason = 3
)

// ModeForSeasonType routes a season type to the matching stage. Anything
// other than the postseason code falls back to regular-season behavior.
func ModeForSeasonType(seasonType int) Mode {
	if seasonType == SeasonTypePostseason {
		return ModePostseason
	}
	return ModeRegularSeason
}

// Abbreviator maps a team display name to its short code. It is a data
// dependency of the engine, injected so callers can supply their own table.
type Abbreviator func(team string) string

// Engine computes playoff pictures from standings or bracket snapshots.
// It is a pure computation over value inputs: no I/O, no shared mutable
// state, safe for concurrent use from any number of requests.
type Engine struct {
	abbrev Abbreviator
}

// NewEngine constructs an Engine. A nil abbreviator uses the built-in table.
func NewEngine(abbrev Abbreviator) *Engine {
	if abbrev == nil {
		abbrev = TeamAbbreviation
	}
	return &Engine{abbrev: abbrev}
}

// Conferences groups per-team playoff statuses by conference.
type Conferences struct {
	AFC []domainplayoffs.TeamStatus
	NFC []domainplayoffs.TeamStatus
}
