package espn

import (
	"context"
	"sort"
	"strings"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/logging"
	engine "github.com/lightscore/nfl-playoff-service/internal/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
	"github.com/lightscore/nfl-playoff-service/internal/season"
)

// FetchBracket assembles the postseason bracket for a season year by
// replaying every postseason scoreboard week. A zero year resolves to the
// upstream's current season. Weeks that fail to fetch are skipped so a
// partial bracket still renders.
func (c *Client) FetchBracket(ctx context.Context, year int) (domainplayoffs.Bracket, error) {
	if year == 0 {
		year = c.resolveSeasonYear(ctx)
	}

	records, err := c.FetchStandings(ctx)
	if err != nil {
		return domainplayoffs.Bracket{}, err
	}
	confMap := conferenceMap(records)

	bracket := domainplayoffs.Bracket{SeasonYear: year}
	allSeeds := make(map[string]int)

	for week := 1; week <= postseasonWeeks; week++ {
		payload, err := c.fetchScoreboardPayload(ctx, providers.WeekQuery{
			Year:       year,
			Week:       week,
			SeasonType: engine.SeasonTypePostseason,
		})
		if err != nil {
			logging.Warn(c.logger, "playoff week fetch failed",
				logging.FieldYear, year, logging.FieldWeek, week, "err", err)
			continue
		}

		games, seeds := extractPlayoffGames(payload, week, confMap)
		bracket.Games = append(bracket.Games, games...)
		for team, seed := range seeds {
			allSeeds[team] = seed
		}
	}

	eliminated := eliminatedTeams(bracket.Games)
	for team, seed := range allSeeds {
		entry := domainplayoffs.SeedEntry{
			Seed:         seed,
			Team:         team,
			Abbreviation: engine.TeamAbbreviation(team),
			Eliminated:   eliminated[team],
		}
		switch confMap[team] {
		case standings.ConferenceAFC:
			bracket.AFCSeeds = append(bracket.AFCSeeds, entry)
		case standings.ConferenceNFC:
			bracket.NFCSeeds = append(bracket.NFCSeeds, entry)
		}
	}
	sortSeeds(bracket.AFCSeeds)
	sortSeeds(bracket.NFCSeeds)

	return bracket, nil
}

// resolveSeasonYear asks the default scoreboard which season is current.
func (c *Client) resolveSeasonYear(ctx context.Context) int {
	resp, err := c.FetchScoreboard(ctx, providers.WeekQuery{})
	if err != nil {
		logging.Warn(c.logger, "season year lookup failed", "err", err)
		return season.DefaultYear
	}
	return resp.Context.Year
}

// conferenceMap indexes team names by conference based on the division
// prefix. Teams with an unrecognized division are left out.
func conferenceMap(records []standings.TeamRecord) map[string]string {
	out := make(map[string]string, len(records))
	for _, rec := range records {
		switch {
		case strings.HasPrefix(rec.Division, standings.ConferenceAFC):
			out[rec.Team] = standings.ConferenceAFC
		case strings.HasPrefix(rec.Division, standings.ConferenceNFC):
			out[rec.Team] = standings.ConferenceNFC
		}
	}
	return out
}

// eliminatedTeams marks the loser of every final bracket game.
func eliminatedTeams(games []domainplayoffs.BracketGame) map[string]bool {
	out := make(map[string]bool)
	for _, g := range games {
		if g.Status != domaingames.StateFinal || g.Winner == "" {
			continue
		}
		loser := g.HomeTeam
		if g.Winner == g.HomeTeam {
			loser = g.AwayTeam
		}
		out[loser] = true
	}
	return out
}

func sortSeeds(seeds []domainplayoffs.SeedEntry) {
	sort.Slice(seeds, func(i, j int) bool { return seeds[i].Seed < seeds[j].Seed })
}
