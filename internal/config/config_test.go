package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Timezone != defaultTimezone {
		t.Fatalf("expected default timezone %s, got %s", defaultTimezone, cfg.Timezone)
	}
	if cfg.ESPN.StandingsURL != defaultEspnStandingsURL {
		t.Fatalf("expected default standings url %s, got %s", defaultEspnStandingsURL, cfg.ESPN.StandingsURL)
	}
	if cfg.ESPN.ScoreboardURL != defaultEspnScoreboardURL {
		t.Fatalf("expected default scoreboard url %s, got %s", defaultEspnScoreboardURL, cfg.ESPN.ScoreboardURL)
	}
	if cfg.ESPN.Timeout != defaultEspnTimeout {
		t.Fatalf("expected default espn timeout %s, got %s", defaultEspnTimeout, cfg.ESPN.Timeout)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Path != defaultCachePath {
		t.Fatalf("expected default cache settings, got %+v", cfg.Cache)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "espn")
	t.Setenv(envTimezone, "UTC")
	t.Setenv(envEspnStandingsURL, "http://example.com/standings")
	t.Setenv(envEspnScoreboardURL, "http://example.com/scoreboard")
	t.Setenv(envEspnTimeout, "3s")
	t.Setenv(envCachePath, "/tmp/standings.json")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "espn" {
		t.Fatalf("expected provider espn, got %s", cfg.Provider)
	}
	if cfg.Timezone != "UTC" {
		t.Fatalf("expected timezone UTC, got %s", cfg.Timezone)
	}
	if cfg.ESPN.StandingsURL != "http://example.com/standings" {
		t.Fatalf("expected standings url override, got %s", cfg.ESPN.StandingsURL)
	}
	if cfg.ESPN.ScoreboardURL != "http://example.com/scoreboard" {
		t.Fatalf("expected scoreboard url override, got %s", cfg.ESPN.ScoreboardURL)
	}
	if cfg.ESPN.Timeout != 3*time.Second {
		t.Fatalf("expected espn timeout 3s, got %s", cfg.ESPN.Timeout)
	}
	if cfg.Cache.Path != "/tmp/standings.json" {
		t.Fatalf("expected cache path override, got %s", cfg.Cache.Path)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "0s")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on non-positive value, got %s", cfg.PollInterval)
	}
}
