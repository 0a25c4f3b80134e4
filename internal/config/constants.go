package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envTimezone     = "LOCAL_TIMEZONE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envCacheOn      = "STANDINGS_CACHE_ENABLED"
	envCachePath    = "STANDINGS_CACHE_PATH"

	defaultPort = "4000"
	// Conservative default poll interval; the upstream feed updates score
	// data roughly once a minute.
	defaultPollInterval = 2 * Duration(time.Minute)
	defaultProvider     = "fixture"
	// Kickoff times are rendered in this zone by default.
	defaultTimezone    = "Europe/Helsinki"
	defaultMetricsPort = "9090"
	defaultCacheOn     = true
	defaultCachePath   = "standings_cache.json"
)
