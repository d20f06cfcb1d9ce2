package config

import "time"

// Config is the service configuration.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Weather    WeatherConfig    `mapstructure:"weather"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// Addr is the listen address for net/http.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	ProviderFixed  = "fixed"
	ProviderGemini = "gemini"
)

type ClassifierConfig struct {
	Provider string `mapstructure:"provider"`
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
}

// CacheConfig controls memoisation of region lookups. A zero RegionTTL
// disables the cache.
type CacheConfig struct {
	RegionTTL       time.Duration `mapstructure:"region_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// WeatherConfig seeds the forecast jitter. Seed 0 uses the shared generator.
type WeatherConfig struct {
	Seed int64 `mapstructure:"seed"`
}
