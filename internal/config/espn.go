package config

import "time"

const (
	envEspnStandingsURL  = "ESPN_STANDINGS_URL"
	envEspnScoreboardURL = "ESPN_SCOREBOARD_URL"
	envEspnTimeout       = "ESPN_TIMEOUT"

	defaultEspnStandingsURL  = "https://cdn.espn.com/core/nfl/standings?xhr=1"
	defaultEspnScoreboardURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"
	defaultEspnTimeout       = 10 * Duration(time.Second)
)

// ESPNConfig controls how we talk to the ESPN public endpoints.
type ESPNConfig struct {
	StandingsURL  string
	ScoreboardURL string
	Timeout       Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		StandingsURL:  envOrDefault(envEspnStandingsURL, defaultEspnStandingsURL),
		ScoreboardURL: envOrDefault(envEspnScoreboardURL, defaultEspnScoreboardURL),
		Timeout:       durationEnvOrDefault(envEspnTimeout, defaultEspnTimeout),
	}
}
