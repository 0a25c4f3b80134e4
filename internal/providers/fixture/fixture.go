// Package fixture serves a deterministic season snapshot for local
// development and tests, with no network access.
package fixture

import (
	"context"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	engine "github.com/lightscore/nfl-playoff-service/internal/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
)

const (
	// FixtureSeasonYear is the season the fixture data describes.
	FixtureSeasonYear = 2024
	// FixtureWeek is the regular-season week of the fixture scoreboard.
	FixtureWeek = 15
)

// Provider returns a static late-season snapshot useful for local testing
// and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchStandings returns a full 32-team standings grid at week 15.
func (p *Provider) FetchStandings(ctx context.Context) ([]standings.TeamRecord, error) {
	_ = ctx
	return fixtureStandings(), nil
}

// FetchScoreboard returns a deterministic slate with one final, one live,
// and one upcoming game. The query's context fields are echoed back the
// way the upstream would resolve them.
func (p *Provider) FetchScoreboard(ctx context.Context, query providers.WeekQuery) (domaingames.WeeklyResponse, error) {
	_ = ctx

	wc := domaingames.WeekContext{
		Year:       query.Year,
		Week:       query.Week,
		SeasonType: query.SeasonType,
	}
	if wc.Year == 0 {
		wc.Year = FixtureSeasonYear
	}
	if wc.Week == 0 {
		wc.Week = FixtureWeek
	}
	if wc.SeasonType == 0 {
		wc.SeasonType = engine.SeasonTypeRegular
	}

	finalA, finalB := 27, 17
	liveA, liveB := 10, 14

	return domaingames.WeeklyResponse{
		Context: wc,
		Games: []domaingames.WeeklyGame{
			{
				TeamA:     "Houston Texans",
				TeamB:     "Kansas City Chiefs",
				Status:    domaingames.StateFinal,
				StartTime: "2024-12-15T18:00Z",
				ScoreA:    &finalB,
				ScoreB:    &finalA,
			},
			{
				TeamA:     "Philadelphia Eagles",
				TeamB:     "Detroit Lions",
				Status:    domaingames.StateLive,
				StartTime: "2024-12-15T21:25Z",
				GameTime:  "Q3 04:12",
				ScoreA:    &liveA,
				ScoreB:    &liveB,
			},
			{
				TeamA:          "Buffalo Bills",
				TeamB:          "Baltimore Ravens",
				Status:         domaingames.StateUpcoming,
				StartTime:      "2024-12-16T01:20Z",
				StartTimeLocal: "03:20",
				StartDateLocal: "Mon 16.12. 03:20",
			},
		},
	}, nil
}

// FetchBracket returns a mid-postseason bracket with the conference
// rounds still in progress.
func (p *Provider) FetchBracket(ctx context.Context, year int) (domainplayoffs.Bracket, error) {
	_ = ctx
	if year == 0 {
		year = FixtureSeasonYear
	}
	return fixtureBracket(year), nil
}

func fixtureStandings() []standings.TeamRecord {
	return []standings.TeamRecord{
		{Team: "Buffalo Bills", Division: "AFC East", Wins: 10, Losses: 3},
		{Team: "Miami Dolphins", Division: "AFC East", Wins: 8, Losses: 5},
		{Team: "New York Jets", Division: "AFC East", Wins: 4, Losses: 9},
		{Team: "New England Patriots", Division: "AFC East", Wins: 3, Losses: 10},
		{Team: "Baltimore Ravens", Division: "AFC North", Wins: 9, Losses: 4},
		{Team: "Pittsburgh Steelers", Division: "AFC North", Wins: 9, Losses: 4},
		{Team: "Cincinnati Bengals", Division: "AFC North", Wins: 7, Losses: 6},
		{Team: "Cleveland Browns", Division: "AFC North", Wins: 4, Losses: 9},
		{Team: "Houston Texans", Division: "AFC South", Wins: 8, Losses: 5},
		{Team: "Indianapolis Colts", Division: "AFC South", Wins: 6, Losses: 7},
		{Team: "Jacksonville Jaguars", Division: "AFC South", Wins: 3, Losses: 10},
		{Team: "Tennessee Titans", Division: "AFC South", Wins: 3, Losses: 10},
		{Team: "Kansas City Chiefs", Division: "AFC West", Wins: 12, Losses: 1},
		{Team: "Los Angeles Chargers", Division: "AFC West", Wins: 8, Losses: 5},
		{Team: "Denver Broncos", Division: "AFC West", Wins: 8, Losses: 5},
		{Team: "Las Vegas Raiders", Division: "AFC West", Wins: 2, Losses: 11},
		{Team: "Philadelphia Eagles", Division: "NFC East", Wins: 11, Losses: 2},
		{Team: "Washington Commanders", Division: "NFC East", Wins: 9, Losses: 4},
		{Team: "Dallas Cowboys", Division: "NFC East", Wins: 5, Losses: 8},
		{Team: "New York Giants", Division: "NFC East", Wins: 2, Losses: 11},
		{Team: "Detroit Lions", Division: "NFC North", Wins: 12, Losses: 1},
		{Team: "Minnesota Vikings", Division: "NFC North", Wins: 11, Losses: 2},
		{Team: "Green Bay Packers", Division: "NFC North", Wins: 9, Losses: 4},
		{Team: "Chicago Bears", Division: "NFC North", Wins: 4, Losses: 9},
		{Team: "Tampa Bay Buccaneers", Division: "NFC South", Wins: 7, Losses: 6},
		{Team: "Atlanta Falcons", Division: "NFC South", Wins: 6, Losses: 7},
		{Team: "New Orleans Saints", Division: "NFC South", Wins: 5, Losses: 8},
		{Team: "Carolina Panthers", Division: "NFC South", Wins: 3, Losses: 10},
		{Team: "Seattle Seahawks", Division: "NFC West", Wins: 8, Losses: 5},
		{Team: "Los Angeles Rams", Division: "NFC West", Wins: 7, Losses: 6},
		{Team: "Arizona Cardinals", Division: "NFC West", Wins: 6, Losses: 7},
		{Team: "San Francisco 49ers", Division: "NFC West", Wins: 5, Losses: 8},
	}
}

func fixtureBracket(year int) domainplayoffs.Bracket {
	score := func(v int) *int { return &v }
	seed := func(v int) *int { return &v }

	return domainplayoffs.Bracket{
		SeasonYear: year,
		AFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 1, Team: "Kansas City Chiefs", Abbreviation: "KC"},
			{Seed: 2, Team: "Buffalo Bills", Abbreviation: "BUF"},
			{Seed: 3, Team: "Baltimore Ravens", Abbreviation: "BAL", Eliminated: true},
			{Seed: 4, Team: "Houston Texans", Abbreviation: "HOU", Eliminated: true},
			{Seed: 5, Team: "Los Angeles Chargers", Abbreviation: "LAC", Eliminated: true},
			{Seed: 6, Team: "Pittsburgh Steelers", Abbreviation: "PIT", Eliminated: true},
			{Seed: 7, Team: "Denver Broncos", Abbreviation: "DEN", Eliminated: true},
		},
		NFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 1, Team: "Detroit Lions", Abbreviation: "DET", Eliminated: true},
			{Seed: 2, Team: "Philadelphia Eagles", Abbreviation: "PHI"},
			{Seed: 3, Team: "Tampa Bay Buccaneers", Abbreviation: "TB", Eliminated: true},
			{Seed: 4, Team: "Los Angeles Rams", Abbreviation: "LAR", Eliminated: true},
			{Seed: 5, Team: "Minnesota Vikings", Abbreviation: "MIN", Eliminated: true},
			{Seed: 6, Team: "Washington Commanders", Abbreviation: "WAS"},
			{Seed: 7, Team: "Green Bay Packers", Abbreviation: "GB", Eliminated: true},
		},
		Games: []domainplayoffs.BracketGame{
			{
				Round: domainplayoffs.RoundWildCard, RoundNumber: 1, Conference: standings.ConferenceAFC,
				HomeTeam: "Houston Texans", HomeSeed: seed(4), HomeScore: score(32),
				AwayTeam: "Los Angeles Chargers", AwaySeed: seed(5), AwayScore: score(12),
				Status: domaingames.StateFinal, Winner: "Houston Texans",
			},
			{
				Round: domainplayoffs.RoundWildCard, RoundNumber: 1, Conference: standings.ConferenceAFC,
				HomeTeam: "Baltimore Ravens", HomeSeed: seed(3), HomeScore: score(28),
				AwayTeam: "Pittsburgh Steelers", AwaySeed: seed(6), AwayScore: score(14),
				Status: domaingames.StateFinal, Winner: "Baltimore Ravens",
			},
			{
				Round: domainplayoffs.RoundWildCard, RoundNumber: 1, Conference: standings.ConferenceAFC,
				HomeTeam: "Buffalo Bills", HomeSeed: seed(2), HomeScore: score(31),
				AwayTeam: "Denver Broncos", AwaySeed: seed(7), AwayScore: score(7),
				Status: domaingames.StateFinal, Winner: "Buffalo Bills",
			},
			{
				Round: domainplayoffs.RoundWildCard, RoundNumber: 1, Conference: standings.ConferenceNFC,
				HomeTeam: "Tampa Bay Buccaneers", HomeSeed: seed(3), HomeScore: score(20),
				AwayTeam: "Washington Commanders", AwaySeed: seed(6), AwayScore: score(23),
				Status: domaingames.StateFinal, Winner: "Washington Commanders",
			},
			{
				Round: domainplayoffs.RoundWildCard, RoundNumber: 1, Conference: standings.ConferenceNFC,
				HomeTeam: "Philadelphia Eagles", HomeSeed: seed(2), HomeScore: score(22),
				AwayTeam: "Green Bay Packers", AwaySeed: seed(7), AwayScore: score(10),
				Status: domaingames.StateFinal, Winner: "Philadelphia Eagles",
			},
			{
				Round: domainplayoffs.RoundWildCard, RoundNumber: 1, Conference: standings.ConferenceNFC,
				HomeTeam: "Los Angeles Rams", HomeSeed: seed(4), HomeScore: score(27),
				AwayTeam: "Minnesota Vikings", AwaySeed: seed(5), AwayScore: score(9),
				Status: domaingames.StateFinal, Winner: "Los Angeles Rams",
			},
			{
				Round: domainplayoffs.RoundDivisional, RoundNumber: 2, Conference: standings.ConferenceAFC,
				HomeTeam: "Kansas City Chiefs", HomeSeed: seed(1), HomeScore: score(23),
				AwayTeam: "Houston Texans", AwaySeed: seed(4), AwayScore: score(14),
				Status: domaingames.StateFinal, Winner: "Kansas City Chiefs",
			},
			{
				Round: domainplayoffs.RoundDivisional, RoundNumber: 2, Conference: standings.ConferenceAFC,
				HomeTeam: "Buffalo Bills", HomeSeed: seed(2), HomeScore: score(27),
				AwayTeam: "Baltimore Ravens", AwaySeed: seed(3), AwayScore: score(25),
				Status: domaingames.StateFinal, Winner: "Buffalo Bills",
			},
			{
				Round: domainplayoffs.RoundDivisional, RoundNumber: 2, Conference: standings.ConferenceNFC,
				HomeTeam: "Detroit Lions", HomeSeed: seed(1), HomeScore: score(31),
				AwayTeam: "Washington Commanders", AwaySeed: seed(6), AwayScore: score(45),
				Status: domaingames.StateFinal, Winner: "Washington Commanders",
			},
			{
				Round: domainplayoffs.RoundDivisional, RoundNumber: 2, Conference: standings.ConferenceNFC,
				HomeTeam: "Philadelphia Eagles", HomeSeed: seed(2), HomeScore: score(28),
				AwayTeam: "Los Angeles Rams", AwaySeed: seed(4), AwayScore: score(22),
				Status: domaingames.StateFinal, Winner: "Philadelphia Eagles",
			},
			{
				Round: domainplayoffs.RoundConference, RoundNumber: 3, Conference: standings.ConferenceAFC,
				HomeTeam: "Kansas City Chiefs", HomeSeed: seed(1),
				AwayTeam: "Buffalo Bills", AwaySeed: seed(2),
				Status: domaingames.StateUpcoming,
			},
			{
				Round: domainplayoffs.RoundConference, RoundNumber: 3, Conference: standings.ConferenceNFC,
				HomeTeam: "Philadelphia Eagles", HomeSeed: seed(2),
				AwayTeam: "Washington Commanders", AwaySeed: seed(6),
				Status: domaingames.StateUpcoming,
			},
		},
	}
}
