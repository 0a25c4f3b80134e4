package espn

import (
	"time"

	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
)

const (
	providerName = "espn"

	defaultStandingsURL  = "https://cdn.espn.com/core/nfl/standings?xhr=1"
	defaultScoreboardURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"
	defaultHTTPTimeout   = 10 * time.Second

	// The postseason spans five scoreboard weeks; week 4 is the Pro Bowl
	// gap and week 5 the Super Bowl, but either may carry the title game.
	postseasonWeeks = 5

	// curatedRank uses 99 for unranked teams.
	unrankedSeed = 99
)

var roundNames = map[int]string{
	1: domainplayoffs.RoundWildCard,
	2: domainplayoffs.RoundDivisional,
	3: domainplayoffs.RoundConference,
	4: domainplayoffs.RoundSuperBowl,
	5: domainplayoffs.RoundSuperBowl,
}

// RoundName maps a postseason week number to its display round.
func RoundName(week int) string {
	if name, ok := roundNames[week]; ok {
		return name
	}
	return "Unknown"
}
