package config

// CacheConfig controls the on-disk standings fallback cache.
type CacheConfig struct {
	Enabled bool
	Path    string
}

func loadCache() CacheConfig {
	return CacheConfig{
		Enabled: boolEnvOrDefault(envCacheOn, defaultCacheOn),
		Path:    envOrDefault(envCachePath, defaultCachePath),
	}
}
