package server

import (
	"log/slog"
	"time"

	"github.com/lightscore/nfl-playoff-service/internal/config"
	"github.com/lightscore/nfl-playoff-service/internal/metrics"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers
// (instrumentation + rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider)

	instrumented := providers.NewInstrumentedProvider(base, name, f.logger, f.metrics)
	// Space upstream calls out a little; the public feed has no auth but
	// throttles aggressive clients.
	limited := providers.NewRateLimitedProvider(instrumented, time.Second, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, 0, 0)
}
