package playoffs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
)

func finalGame(conf, round string, roundNumber int, home, away, winner string) domainplayoffs.BracketGame {
	return domainplayoffs.BracketGame{
		Round:       round,
		RoundNumber: roundNumber,
		Conference:  conf,
		HomeTeam:    home,
		AwayTeam:    away,
		Status:      domaingames.StateFinal,
		Winner:      winner,
	}
}

func sampleBracket() domainplayoffs.Bracket {
	return domainplayoffs.Bracket{
		SeasonYear: 2024,
		AFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 1, Team: "Kansas City Chiefs"},
			{Seed: 2, Team: "Buffalo Bills"},
			{Seed: 3, Team: "Baltimore Ravens"},
			{Seed: 4, Team: "Houston Texans", Eliminated: true},
			{Seed: 5, Team: "Los Angeles Chargers", Eliminated: true},
			{Seed: 6, Team: "Pittsburgh Steelers", Eliminated: true},
			{Seed: 7, Team: "Denver Broncos", Eliminated: true},
		},
		NFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 1, Team: "Detroit Lions", Eliminated: true},
			{Seed: 2, Team: "Philadelphia Eagles"},
			{Seed: 3, Team: "Tampa Bay Buccaneers", Eliminated: true},
			{Seed: 4, Team: "Los Angeles Rams", Eliminated: true},
			{Seed: 5, Team: "Minnesota Vikings", Eliminated: true},
			{Seed: 6, Team: "Washington Commanders", Eliminated: true},
			{Seed: 7, Team: "Green Bay Packers", Eliminated: true},
		},
		Games: []domainplayoffs.BracketGame{
			finalGame(standings.ConferenceAFC, domainplayoffs.RoundWildCard, 1, "Houston Texans", "Los Angeles Chargers", "Houston Texans"),
			finalGame(standings.ConferenceAFC, domainplayoffs.RoundWildCard, 1, "Baltimore Ravens", "Pittsburgh Steelers", "Baltimore Ravens"),
			finalGame(standings.ConferenceAFC, domainplayoffs.RoundWildCard, 1, "Buffalo Bills", "Denver Broncos", "Buffalo Bills"),
			finalGame(standings.ConferenceAFC, domainplayoffs.RoundDivisional, 2, "Kansas City Chiefs", "Houston Texans", "Kansas City Chiefs"),
			finalGame(standings.ConferenceAFC, domainplayoffs.RoundDivisional, 2, "Buffalo Bills", "Baltimore Ravens", "Buffalo Bills"),
			finalGame(standings.ConferenceNFC, domainplayoffs.RoundWildCard, 1, "Tampa Bay Buccaneers", "Washington Commanders", "Washington Commanders"),
			finalGame(standings.ConferenceNFC, domainplayoffs.RoundWildCard, 1, "Philadelphia Eagles", "Green Bay Packers", "Philadelphia Eagles"),
			finalGame(standings.ConferenceNFC, domainplayoffs.RoundWildCard, 1, "Los Angeles Rams", "Minnesota Vikings", "Los Angeles Rams"),
			finalGame(standings.ConferenceNFC, domainplayoffs.RoundDivisional, 2, "Detroit Lions", "Washington Commanders", "Washington Commanders"),
			finalGame(standings.ConferenceNFC, domainplayoffs.RoundDivisional, 2, "Philadelphia Eagles", "Los Angeles Rams", "Philadelphia Eagles"),
			finalGame(standings.ConferenceNFC, domainplayoffs.RoundConference, 3, "Philadelphia Eagles", "Washington Commanders", "Philadelphia Eagles"),
			{
				Round:       domainplayoffs.RoundConference,
				RoundNumber: 3,
				Conference:  standings.ConferenceAFC,
				HomeTeam:    "Kansas City Chiefs",
				AwayTeam:    "Buffalo Bills",
				Status:      domaingames.StateUpcoming,
			},
		},
	}
}

func TestPostseasonReplaysWinsAndLosses(t *testing.T) {
	engine := NewEngine(nil)
	got := engine.Postseason(sampleBracket())

	afc := statusByTeam(got.AFC)
	nfc := statusByTeam(got.NFC)

	texans := afc["Houston Texans"]
	assert.Equal(t, 1, texans.PlayoffWins)
	assert.Equal(t, 1, texans.PlayoffLosses)
	assert.Equal(t, domainplayoffs.RoundDivisional, texans.EliminatedRound)
	assert.Equal(t, domainplayoffs.StatusEliminated, texans.Status)
	assert.Equal(t, "Eliminated in Divisional", texans.StatusDetail)

	chargers := afc["Los Angeles Chargers"]
	assert.Equal(t, 0, chargers.PlayoffWins)
	assert.Equal(t, 1, chargers.PlayoffLosses)
	assert.Equal(t, domainplayoffs.RoundWildCard, chargers.EliminatedRound)

	// Conference title game is not final yet, so both participants stay alive
	// with only their completed games counted.
	chiefs := afc["Kansas City Chiefs"]
	assert.Equal(t, 1, chiefs.PlayoffWins)
	assert.Equal(t, 0, chiefs.PlayoffLosses)
	assert.Equal(t, domainplayoffs.StatusAlive, chiefs.Status)
	assert.Equal(t, "Still alive", chiefs.StatusDetail)

	eagles := nfc["Philadelphia Eagles"]
	assert.Equal(t, 3, eagles.PlayoffWins)
	assert.Equal(t, 0, eagles.PlayoffLosses)
	assert.Equal(t, domainplayoffs.StatusAlive, eagles.Status)
}

func TestPostseasonGameCountsMatchFinals(t *testing.T) {
	engine := NewEngine(nil)
	bracket := sampleBracket()
	got := engine.Postseason(bracket)

	finals := func(team string) int {
		n := 0
		for _, g := range bracket.Games {
			if g.Status != domaingames.StateFinal {
				continue
			}
			if g.HomeTeam == team || g.AwayTeam == team {
				n++
			}
		}
		return n
	}
	for _, st := range append(got.AFC, got.NFC...) {
		assert.Equalf(t, finals(st.Team), st.PlayoffWins+st.PlayoffLosses,
			"win/loss total for %s must equal its final games", st.Team)
	}
}

func TestPostseasonLastMatchingLossSetsRound(t *testing.T) {
	engine := NewEngine(nil)
	// Games arrive out of round order; the replay keeps input order, so the
	// last listed loss determines the elimination round.
	bracket := domainplayoffs.Bracket{
		SeasonYear: 2024,
		AFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 3, Team: "Baltimore Ravens", Eliminated: true},
		},
		Games: []domainplayoffs.BracketGame{
			finalGame(standings.ConferenceAFC, domainplayoffs.RoundDivisional, 2, "Buffalo Bills", "Baltimore Ravens", "Buffalo Bills"),
			finalGame(standings.ConferenceAFC, domainplayoffs.RoundWildCard, 1, "Baltimore Ravens", "Pittsburgh Steelers", "Baltimore Ravens"),
		},
	}

	got := engine.Postseason(bracket).AFC
	require.Len(t, got, 1)
	assert.Equal(t, domainplayoffs.RoundDivisional, got[0].EliminatedRound)
	assert.Equal(t, 1, got[0].PlayoffWins)
	assert.Equal(t, 1, got[0].PlayoffLosses)
}

func TestPostseasonSuperBowlOverridesElimination(t *testing.T) {
	engine := NewEngine(nil)
	bracket := sampleBracket()
	bracket.Games[len(bracket.Games)-1].Status = domaingames.StateFinal
	bracket.Games[len(bracket.Games)-1].Winner = "Kansas City Chiefs"
	bracket.AFCSeeds[1].Eliminated = true
	bracket.Games = append(bracket.Games, domainplayoffs.BracketGame{
		Round:       domainplayoffs.RoundSuperBowl,
		RoundNumber: 4,
		Conference:  domainplayoffs.ConferenceSuperBowl,
		HomeTeam:    "Kansas City Chiefs",
		AwayTeam:    "Philadelphia Eagles",
		Status:      domaingames.StateUpcoming,
	})
	// Stale upstream flag: a Super Bowl participant marked eliminated must
	// still be reported as in the Super Bowl.
	bracket.NFCSeeds[1].Eliminated = true

	got := engine.Postseason(bracket)
	afc := statusByTeam(got.AFC)
	nfc := statusByTeam(got.NFC)

	assert.Equal(t, domainplayoffs.StatusSuperBowl, afc["Kansas City Chiefs"].Status)
	assert.Equal(t, "In the Super Bowl", afc["Kansas City Chiefs"].StatusDetail)
	assert.Equal(t, domainplayoffs.StatusSuperBowl, nfc["Philadelphia Eagles"].Status)

	bills := afc["Buffalo Bills"]
	assert.Equal(t, domainplayoffs.StatusEliminated, bills.Status)
	assert.Equal(t, domainplayoffs.RoundConference, bills.EliminatedRound)
	assert.Equal(t, "Eliminated in Conference", bills.StatusDetail)
}

func TestPostseasonEliminatedWithoutRecordedLoss(t *testing.T) {
	engine := NewEngine(nil)
	bracket := domainplayoffs.Bracket{
		SeasonYear: 2024,
		AFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 7, Team: "Denver Broncos", Eliminated: true},
		},
	}

	got := engine.Postseason(bracket).AFC
	require.Len(t, got, 1)
	assert.Equal(t, domainplayoffs.StatusEliminated, got[0].Status)
	assert.Equal(t, "Eliminated", got[0].StatusDetail)
	assert.Empty(t, got[0].EliminatedRound)
}

func TestPostseasonFillsMissingAbbreviations(t *testing.T) {
	engine := NewEngine(nil)
	bracket := domainplayoffs.Bracket{
		AFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 1, Team: "Kansas City Chiefs"},
			{Seed: 2, Team: "Buffalo Bills", Abbreviation: "BUF"},
		},
	}

	got := engine.Postseason(bracket).AFC
	require.Len(t, got, 2)
	assert.Equal(t, "KC", got[0].Abbreviation)
	assert.Equal(t, "BUF", got[1].Abbreviation)
	require.NotNil(t, got[0].Seed)
	assert.Equal(t, 1, *got[0].Seed)
}

func TestSuperBowlTeams(t *testing.T) {
	games := []domainplayoffs.BracketGame{
		finalGame(standings.ConferenceAFC, domainplayoffs.RoundConference, 3, "Kansas City Chiefs", "Buffalo Bills", "Kansas City Chiefs"),
	}
	assert.Empty(t, SuperBowlTeams(games))

	games = append(games, domainplayoffs.BracketGame{
		Round:       domainplayoffs.RoundSuperBowl,
		RoundNumber: 4,
		Conference:  domainplayoffs.ConferenceSuperBowl,
		HomeTeam:    "Kansas City Chiefs",
		AwayTeam:    "Philadelphia Eagles",
		Status:      domaingames.StateUpcoming,
	})
	assert.Equal(t, []string{"Kansas City Chiefs", "Philadelphia Eagles"}, SuperBowlTeams(games))
}

func TestModeForSeasonType(t *testing.T) {
	assert.Equal(t, ModePostseason, ModeForSeasonType(SeasonTypePostseason))
	assert.Equal(t, ModeRegularSeason, ModeForSeasonType(SeasonTypeRegular))
	assert.Equal(t, ModeRegularSeason, ModeForSeasonType(SeasonTypePreseason))
	assert.Equal(t, ModeRegularSeason, ModeForSeasonType(0))
}
