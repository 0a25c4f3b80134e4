package playoffs

import (
	"sort"
	"strings"

	"github.com/lightscore/nfl-playoff-service/internal/domain/games"
)

// teamAbbreviations maps full display names to the short codes used by the
// bracket view. Kept in sync with the upstream feed's naming.
var teamAbbreviations = map[string]string{
	"Arizona Cardinals":     "ARI",
	"Atlanta Falcons":       "ATL",
	"Baltimore Ravens":      "BAL",
	"Buffalo Bills":         "BUF",
	"Carolina Panthers":     "CAR",
	"Chicago Bears":         "CHI",
	"Cincinnati Bengals":    "CIN",
	"Cleveland Browns":      "CLE",
	"Dallas Cowboys":        "DAL",
	"Denver Broncos":        "DEN",
	"Detroit Lions":         "DET",
	"Green Bay Packers":     "GB",
	"Houston Texans":        "HOU",
	"Indianapolis Colts":    "IND",
	"Jacksonville Jaguars":  "JAX",
	"Kansas City Chiefs":    "KC",
	"Las Vegas Raiders":     "LV",
	"Los Angeles Chargers":  "LAC",
	"Los Angeles Rams":      "LAR",
	"Miami Dolphins":        "MIA",
	"Minnesota Vikings":     "MIN",
	"New England Patriots":  "NE",
	"New Orleans Saints":    "NO",
	"New York Giants":       "NYG",
	"New York Jets":         "NYJ",
	"Philadelphia Eagles":   "PHI",
	"Pittsburgh Steelers":   "PIT",
	"San Francisco 49ers":   "SF",
	"Seattle Seahawks":      "SEA",
	"Tampa Bay Buccaneers":  "TB",
	"Tennessee Titans":      "TEN",
	"Washington Commanders": "WAS",
}

// TeamAbbreviation returns the short code for a team display name. Unknown
// names fall back to the first three letters uppercased, or "UNK" for empty
// names, so an unmapped team never becomes an error.
func TeamAbbreviation(team string) string {
	if abbr, ok := teamAbbreviations[team]; ok {
		return abbr
	}
	if team == "" {
		return "UNK"
	}
	if len(team) > 3 {
		team = team[:3]
	}
	return strings.ToUpper(team)
}

// KnownTeams returns the full abbreviation table sorted by team name,
// suitable for the /teams endpoint.
func KnownTeams() []games.TeamInfo {
	out := make([]games.TeamInfo, 0, len(teamAbbreviations))
	for team, abbr := range teamAbbreviations {
		out = append(out, games.TeamInfo{Team: team, Abbreviation: abbr})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Team < out[j].Team })
	return out
}
