package espn

import (
	"fmt"
	"strings"
	"time"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/season"
	"github.com/lightscore/nfl-playoff-service/internal/timeutil"
)

// mapStandings flattens the grouped standings payload into team records.
// The payload nests conference groups above division groups; only the
// division level carries entries.
func mapStandings(payload standingsPayload) []standings.TeamRecord {
	var out []standings.TeamRecord
	for _, conf := range payload.Content.Standings.Groups {
		for _, div := range conf.Groups {
			division := divisionName(div)
			for _, entry := range div.Standings.Entries {
				rec, ok := mapStandingsEntry(entry, division)
				if !ok {
					continue
				}
				out = append(out, rec)
			}
		}
	}
	return out
}

func divisionName(g standingsGroup) string {
	if g.Name != "" {
		return g.Name
	}
	if g.Abbreviation != "" {
		return g.Abbreviation
	}
	return g.ShortName
}

func mapStandingsEntry(entry standingsEntry, division string) (standings.TeamRecord, bool) {
	if entry.Team.DisplayName == "" {
		return standings.TeamRecord{}, false
	}

	stats := make(map[string]flexInt, len(entry.Stats))
	for _, s := range entry.Stats {
		stats[s.Name] = s.Value
	}

	wins, losses := stats["wins"], stats["losses"]
	if !wins.ok || !losses.ok {
		return standings.TeamRecord{}, false
	}

	rec := standings.TeamRecord{
		Team:     entry.Team.DisplayName,
		Division: division,
		Wins:     wins.value,
		Losses:   losses.value,
	}
	if ties := stats["ties"]; ties.ok {
		rec.Ties = ties.value
	}
	return rec, true
}

// mapWeekContext extracts the resolved season context, substituting
// defaults for missing or implausible values.
func mapWeekContext(payload scoreboardPayload) domaingames.WeekContext {
	ctx := domaingames.WeekContext{
		Year:       payload.Season.Year,
		Week:       payload.Week.Number,
		SeasonType: payload.Season.Type,
	}
	if ctx.Week == 0 {
		ctx.Week = 1
	}
	return season.ClampContext(ctx)
}

func mapState(ev eventPayload, comp competitionPayload) domaingames.State {
	state := comp.Status.Type.State
	if state == "" {
		state = ev.Status.Type.State
	}
	switch strings.ToLower(state) {
	case "in":
		return domaingames.StateLive
	case "post":
		return domaingames.StateFinal
	default:
		return domaingames.StateUpcoming
	}
}

// gameClock renders the live clock as "Q2 08:15". Empty when the game is
// not in progress.
func gameClock(status statusPayload) string {
	if status.Type.Name != "STATUS_IN_PROGRESS" {
		return ""
	}
	if status.DisplayClock != "" && status.Period > 0 {
		return fmt.Sprintf("Q%d %s", status.Period, status.DisplayClock)
	}
	if status.Period > 0 {
		return fmt.Sprintf("Q%d", status.Period)
	}
	return ""
}

func competitorName(c competitorPayload) string {
	switch {
	case c.Team.DisplayName != "":
		return c.Team.DisplayName
	case c.Team.ShortDisplayName != "":
		return c.Team.ShortDisplayName
	case c.Team.Name != "":
		return c.Team.Name
	default:
		return "Unknown"
	}
}

func competitorScore(c competitorPayload) *int {
	if !c.Score.ok {
		return nil
	}
	score := c.Score.value
	return &score
}

func competitorSeed(c competitorPayload) *int {
	rank := c.CuratedRank.Current
	if !rank.ok || rank.value <= 0 || rank.value == unrankedSeed {
		return nil
	}
	seed := rank.value
	return &seed
}

// splitHomeAway returns the away and home competitors, falling back to
// positional order when the homeAway markers are missing.
func splitHomeAway(competitors []competitorPayload) (away, home competitorPayload, ok bool) {
	if len(competitors) < 2 {
		return competitorPayload{}, competitorPayload{}, false
	}
	away, home = competitors[0], competitors[1]
	for _, c := range competitors {
		switch c.HomeAway {
		case "away":
			away = c
		case "home":
			home = c
		}
	}
	return away, home, true
}

// mapWeeklyGame converts one scoreboard event. Away maps to TeamA and home
// to TeamB so the pairing order is stable.
func mapWeeklyGame(ev eventPayload, loc *time.Location) (domaingames.WeeklyGame, bool) {
	if len(ev.Competitions) == 0 {
		return domaingames.WeeklyGame{}, false
	}
	comp := ev.Competitions[0]

	away, home, ok := splitHomeAway(comp.Competitors)
	if !ok {
		return domaingames.WeeklyGame{}, false
	}

	game := domaingames.WeeklyGame{
		TeamA:     competitorName(away),
		TeamB:     competitorName(home),
		ScoreA:    competitorScore(away),
		ScoreB:    competitorScore(home),
		Status:    mapState(ev, comp),
		StartTime: ev.Date,
	}

	switch game.Status {
	case domaingames.StateUpcoming:
		if ev.Date != "" {
			game.StartTimeLocal = timeutil.LocalClock(ev.Date, loc)
			game.StartDateLocal = timeutil.LocalDateClock(ev.Date, loc)
		}
	case domaingames.StateLive:
		game.GameTime = gameClock(comp.Status)
	}
	return game, true
}

// extractPlayoffGames converts one postseason week's events into bracket
// games and collects any seeds the feed exposes via curatedRank.
func extractPlayoffGames(payload scoreboardPayload, week int, confMap map[string]string) ([]domainplayoffs.BracketGame, map[string]int) {
	roundName := RoundName(week)
	seeds := make(map[string]int)
	var games []domainplayoffs.BracketGame

	for _, ev := range payload.Events {
		// The Pro Bowl shares the postseason scoreboard; it is not a
		// bracket game.
		if strings.Contains(ev.Name, "Pro Bowl") {
			continue
		}
		if len(ev.Competitions) == 0 {
			continue
		}
		comp := ev.Competitions[0]

		away, home, ok := splitHomeAway(comp.Competitors)
		if !ok {
			continue
		}

		awayName, homeName := competitorName(away), competitorName(home)
		awayScore, homeScore := competitorScore(away), competitorScore(home)
		awaySeed, homeSeed := competitorSeed(away), competitorSeed(home)

		if awaySeed != nil {
			seeds[awayName] = *awaySeed
		}
		if homeSeed != nil {
			seeds[homeName] = *homeSeed
		}

		status := mapState(ev, comp)

		var winner string
		if status == domaingames.StateFinal && awayScore != nil && homeScore != nil {
			switch {
			case *awayScore > *homeScore:
				winner = awayName
			case *homeScore > *awayScore:
				winner = homeName
			}
		}

		games = append(games, domainplayoffs.BracketGame{
			Round:       roundName,
			RoundNumber: week,
			Conference:  bracketConference(roundName, week, homeName, awayName, confMap),
			HomeTeam:    homeName,
			HomeSeed:    homeSeed,
			HomeScore:   homeScore,
			AwayTeam:    awayName,
			AwaySeed:    awaySeed,
			AwayScore:   awayScore,
			Status:      status,
			Winner:      winner,
		})
	}
	return games, seeds
}

func bracketConference(roundName string, week int, homeTeam, awayTeam string, confMap map[string]string) string {
	if roundName == domainplayoffs.RoundSuperBowl || week >= 4 {
		return domainplayoffs.ConferenceSuperBowl
	}
	if conf, ok := confMap[homeTeam]; ok {
		return conf
	}
	if conf, ok := confMap[awayTeam]; ok {
		return conf
	}
	return "Unknown"
}
