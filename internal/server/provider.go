package server

import (
	"log/slog"
	"time"

	"github.com/lightscore/nfl-playoff-service/internal/config"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
	"github.com/lightscore/nfl-playoff-service/internal/providers/espn"
	"github.com/lightscore/nfl-playoff-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "espn":
		return espn.NewClient(espn.Config{
			StandingsURL:  cfg.ESPN.StandingsURL,
			ScoreboardURL: cfg.ESPN.ScoreboardURL,
			Timeout:       time.Duration(cfg.ESPN.Timeout),
			Timezone:      cfg.Timezone,
			Logger:        logger,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

func normalizeProviderName(name string) string {
	switch name {
	case "espn":
		return "espn"
	default:
		return "fixture"
	}
}
