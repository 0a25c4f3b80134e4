package playoffs

import (
	"fmt"
	"sort"

	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
)

// RegularSeasonGames is the length of the regular season schedule.
const RegularSeasonGames = 17

const (
	divisionWinnerSeeds = 4
	wildCardSeeds       = 3
	playoffSeeds        = divisionWinnerSeeds + wildCardSeeds
)

// contender decorates a standings record with its remaining-games bounds.
type contender struct {
	rec       standings.TeamRecord
	remaining int
	maxWins   int
}

func newContender(r standings.TeamRecord) contender {
	remaining := RegularSeasonGames - (r.Wins + r.Losses + r.Ties)
	if remaining < 0 {
		remaining = 0
	}
	return contender{
		rec:       r,
		remaining: remaining,
		maxWins:   r.Wins + remaining,
	}
}

// recordLess is the single ordering used everywhere records are compared:
// more wins first, then fewer losses, then name. The name tie-break is a
// documented simplification of the official procedure and keeps the ordering
// total and deterministic.
func recordLess(a, b contender) bool {
	if a.rec.Wins != b.rec.Wins {
		return a.rec.Wins > b.rec.Wins
	}
	if a.rec.Losses != b.rec.Losses {
		return a.rec.Losses < b.rec.Losses
	}
	return a.rec.Team < b.rec.Team
}

// RegularSeason partitions the standings by conference and seeds each side.
// The result is deterministic for identical input regardless of input order.
func (e *Engine) RegularSeason(records []standings.TeamRecord) Conferences {
	var afc, nfc []standings.TeamRecord
	for _, r := range records {
		if r.Conference() == standings.ConferenceAFC {
			afc = append(afc, r)
		} else {
			nfc = append(nfc, r)
		}
	}
	return Conferences{
		AFC: e.seedConference(standings.ConferenceAFC, afc),
		NFC: e.seedConference(standings.ConferenceNFC, nfc),
	}
}

// seedConference assigns seeds 1-7 and classifies every team in one
// conference. Conferences with fewer than the full seed count are returned
// unseeded and unclassified rather than treated as an error.
func (e *Engine) seedConference(conf string, recs []standings.TeamRecord) []domainplayoffs.TeamStatus {
	teams := make([]contender, 0, len(recs))
	for _, r := range recs {
		teams = append(teams, newContender(r))
	}

	if len(teams) < playoffSeeds {
		sort.Slice(teams, func(i, j int) bool { return recordLess(teams[i], teams[j]) })
		out := make([]domainplayoffs.TeamStatus, 0, len(teams))
		for _, t := range teams {
			out = append(out, e.baseStatus(conf, t))
		}
		return out
	}

	leaders := divisionLeaders(teams)

	byDivision := make(map[string][]contender)
	for _, t := range teams {
		byDivision[t.rec.Division] = append(byDivision[t.rec.Division], t)
	}

	var winners, pool []contender
	for _, t := range teams {
		if leader, ok := leaders[t.rec.Division]; ok && leader.rec.Team == t.rec.Team {
			winners = append(winners, t)
		} else {
			pool = append(pool, t)
		}
	}
	sort.Slice(winners, func(i, j int) bool { return recordLess(winners[i], winners[j]) })
	sort.Slice(pool, func(i, j int) bool { return recordLess(pool[i], pool[j]) })

	out := make([]domainplayoffs.TeamStatus, 0, len(teams))
	out = append(out, e.seedDivisionWinners(conf, winners, byDivision)...)
	out = append(out, e.seedWildCards(conf, pool)...)
	out = append(out, e.classifyRemaining(conf, pool, leaders)...)
	return out
}

// seedDivisionWinners assigns seeds 1-4 ordered by record. A winner has
// clinched once its win total exceeds every division rival's best possible
// finish.
func (e *Engine) seedDivisionWinners(conf string, winners []contender, byDivision map[string][]contender) []domainplayoffs.TeamStatus {
	out := make([]domainplayoffs.TeamStatus, 0, len(winners))
	for i, w := range winners {
		st := e.baseStatus(conf, w)
		seed := i + 1
		st.Seed = &seed

		if w.rec.Wins > rivalsBestFinish(byDivision[w.rec.Division], w) {
			if i == 0 {
				st.Status = domainplayoffs.StatusClinchedBye
				st.StatusDetail = "Clinched #1 seed and first-round bye"
			} else {
				st.Status = domainplayoffs.StatusClinchedDivision
				st.StatusDetail = fmt.Sprintf("Clinched division (#%d seed)", seed)
			}
		} else {
			st.Status = domainplayoffs.StatusInPosition
			st.StatusDetail = fmt.Sprintf("Division leader (#%d seed)", seed)
		}
		out = append(out, st)
	}
	return out
}

// seedWildCards assigns seeds 5-7 to the three best non-winners. The clinch
// reference is the best possible finish of the first team outside the seeds.
func (e *Engine) seedWildCards(conf string, pool []contender) []domainplayoffs.TeamStatus {
	eighthPlaceMax := 0
	if len(pool) > wildCardSeeds {
		eighthPlaceMax = pool[wildCardSeeds].maxWins
	}

	count := wildCardSeeds
	if len(pool) < count {
		count = len(pool)
	}
	out := make([]domainplayoffs.TeamStatus, 0, count)
	for i := 0; i < count; i++ {
		t := pool[i]
		st := e.baseStatus(conf, t)
		seed := divisionWinnerSeeds + 1 + i
		st.Seed = &seed

		if t.rec.Wins > eighthPlaceMax {
			st.Status = domainplayoffs.StatusClinchedWildcard
			st.StatusDetail = fmt.Sprintf("Clinched wild card (#%d seed)", seed)
		} else {
			st.Status = domainplayoffs.StatusInPosition
			st.StatusDetail = fmt.Sprintf("Wild card (#%d seed)", seed)
		}
		out = append(out, st)
	}
	return out
}

// classifyRemaining handles every team outside the top seven: still in its
// division race, chasing the wild card, or mathematically out.
func (e *Engine) classifyRemaining(conf string, pool []contender, leaders map[string]contender) []domainplayoffs.TeamStatus {
	if len(pool) <= wildCardSeeds {
		return nil
	}

	seventhPlaceWins := pool[wildCardSeeds-1].rec.Wins

	out := make([]domainplayoffs.TeamStatus, 0, len(pool)-wildCardSeeds)
	for _, t := range pool[wildCardSeeds:] {
		st := e.baseStatus(conf, t)

		if leader, ok := leaders[t.rec.Division]; ok && t.maxWins >= leader.rec.Wins {
			st.Status = domainplayoffs.StatusInHunt
			if gb := leader.rec.Wins - t.rec.Wins; gb > 0 {
				st.StatusDetail = fmt.Sprintf("%s in division race", gamesBackPhrase(gb))
			} else {
				st.StatusDetail = "In division race"
			}
			out = append(out, st)
			continue
		}

		strictlyAhead, atSameLevel := 0, 0
		for _, other := range pool {
			if other.rec.Team == t.rec.Team {
				continue
			}
			switch {
			case other.rec.Wins > t.maxWins:
				strictlyAhead++
			case other.rec.Wins == t.maxWins:
				atSameLevel++
			}
		}

		switch {
		case strictlyAhead >= wildCardSeeds:
			st.Status = domainplayoffs.StatusEliminated
			st.StatusDetail = "Eliminated from playoff contention"
		case strictlyAhead+atSameLevel >= wildCardSeeds:
			st.Status = domainplayoffs.StatusInHunt
			st.StatusDetail = "In the wild card hunt (long shot)"
		case t.maxWins < seventhPlaceWins:
			st.Status = domainplayoffs.StatusEliminated
			st.StatusDetail = "Eliminated from playoff contention"
		default:
			st.Status = domainplayoffs.StatusInHunt
			if gb := seventhPlaceWins - t.rec.Wins; gb > 0 {
				st.StatusDetail = fmt.Sprintf("%s of the 7th seed", gamesBackPhrase(gb))
			} else {
				st.StatusDetail = "In the wild card hunt"
			}
		}
		out = append(out, st)
	}
	return out
}

func (e *Engine) baseStatus(conf string, t contender) domainplayoffs.TeamStatus {
	return domainplayoffs.TeamStatus{
		Team:            t.rec.Team,
		Abbreviation:    e.abbrev(t.rec.Team),
		Conference:      conf,
		Division:        t.rec.Division,
		Wins:            t.rec.Wins,
		Losses:          t.rec.Losses,
		Ties:            t.rec.Ties,
		GamesRemaining:  t.remaining,
		MaxPossibleWins: t.maxWins,
	}
}

// divisionLeaders picks the best record per division, name breaking ties.
func divisionLeaders(teams []contender) map[string]contender {
	leaders := make(map[string]contender)
	for _, t := range teams {
		cur, ok := leaders[t.rec.Division]
		if !ok || recordLess(t, cur) {
			leaders[t.rec.Division] = t
		}
	}
	return leaders
}

// rivalsBestFinish returns the highest maxPossibleWins among the other teams
// in the division.
func rivalsBestFinish(division []contender, self contender) int {
	best := 0
	for _, t := range division {
		if t.rec.Team == self.rec.Team {
			continue
		}
		if t.maxWins > best {
			best = t.maxWins
		}
	}
	return best
}

func gamesBackPhrase(n int) string {
	if n == 1 {
		return "1 game back"
	}
	return fmt.Sprintf("%d games back", n)
}
