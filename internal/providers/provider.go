package providers

import (
	"context"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
)

// StandingsProvider fetches normalized league standings.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) ([]standings.TeamRecord, error)
}

// ScoreboardProvider fetches one week of games plus the week context the
// upstream resolved. Zero values in the query mean "current" and are passed
// through so the upstream picks the active week.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, query WeekQuery) (domaingames.WeeklyResponse, error)
}

// BracketProvider assembles the postseason bracket for a season year.
// A zero year means the current season.
type BracketProvider interface {
	FetchBracket(ctx context.Context, year int) (domainplayoffs.Bracket, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	StandingsProvider
	ScoreboardProvider
	BracketProvider
}

// WeekQuery selects which week's scoreboard to fetch. Zero fields are
// omitted from the upstream request.
type WeekQuery struct {
	Year       int
	Week       int
	SeasonType int
}
