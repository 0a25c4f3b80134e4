package playoffs

import (
	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
)

// Postseason replays the bracket's game history and classifies every seeded
// team. Regular-season record fields are left at zero; the bracket does not
// carry them.
func (e *Engine) Postseason(bracket domainplayoffs.Bracket) Conferences {
	inSuperBowl := superBowlParticipants(bracket.Games)
	return Conferences{
		AFC: e.trackSeeds(standings.ConferenceAFC, bracket.AFCSeeds, bracket.Games, inSuperBowl),
		NFC: e.trackSeeds(standings.ConferenceNFC, bracket.NFCSeeds, bracket.Games, inSuperBowl),
	}
}

// SuperBowlTeams lists the Super Bowl participants in bracket game order.
// Empty until the matchup is known.
func SuperBowlTeams(games []domainplayoffs.BracketGame) []string {
	seen := superBowlParticipants(games)
	out := make([]string, 0, 2)
	for _, g := range games {
		if g.Conference != domainplayoffs.ConferenceSuperBowl {
			continue
		}
		for _, team := range []string{g.HomeTeam, g.AwayTeam} {
			if team == "" || !seen[team] {
				continue
			}
			delete(seen, team)
			out = append(out, team)
		}
	}
	return out
}

func superBowlParticipants(games []domainplayoffs.BracketGame) map[string]bool {
	set := make(map[string]bool)
	for _, g := range games {
		if g.Conference != domainplayoffs.ConferenceSuperBowl {
			continue
		}
		if g.HomeTeam != "" {
			set[g.HomeTeam] = true
		}
		if g.AwayTeam != "" {
			set[g.AwayTeam] = true
		}
	}
	return set
}

// trackSeeds replays every final game involving each seed entry. Games are
// scanned in input order, so the elimination round reflects the last
// matching loss, matching the upstream assembly which is not guaranteed to
// be sorted by round.
func (e *Engine) trackSeeds(conf string, seeds []domainplayoffs.SeedEntry, games []domainplayoffs.BracketGame, inSuperBowl map[string]bool) []domainplayoffs.TeamStatus {
	out := make([]domainplayoffs.TeamStatus, 0, len(seeds))
	for _, entry := range seeds {
		seed := entry.Seed
		st := domainplayoffs.TeamStatus{
			Team:         entry.Team,
			Abbreviation: entry.Abbreviation,
			Conference:   conf,
			Seed:         &seed,
		}
		if st.Abbreviation == "" {
			st.Abbreviation = e.abbrev(entry.Team)
		}

		for _, g := range games {
			if g.Conference != conf && g.Conference != domainplayoffs.ConferenceSuperBowl {
				continue
			}
			if g.Status != domaingames.StateFinal {
				continue
			}
			if g.HomeTeam != entry.Team && g.AwayTeam != entry.Team {
				continue
			}
			if g.Winner == entry.Team {
				st.PlayoffWins++
			} else {
				st.PlayoffLosses++
				st.EliminatedRound = g.Round
			}
		}

		switch {
		case inSuperBowl[entry.Team]:
			// Reaching the Super Bowl overrides the eliminated flag.
			st.Status = domainplayoffs.StatusSuperBowl
			st.StatusDetail = "In the Super Bowl"
		case entry.Eliminated:
			st.Status = domainplayoffs.StatusEliminated
			if st.EliminatedRound != "" {
				st.StatusDetail = "Eliminated in " + st.EliminatedRound
			} else {
				st.StatusDetail = "Eliminated"
			}
		default:
			st.Status = domainplayoffs.StatusAlive
			st.StatusDetail = "Still alive"
		}
		out = append(out, st)
	}
	return out
}
