package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	MapView   MapViewConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Debug          bool     `mapstructure:"debug"`
}

// StoreConfig says where the catalog and the shopping list live
type StoreConfig struct {
	CatalogSource string   `mapstructure:"catalog_source"` // "file" or "http"
	CatalogPath   string   `mapstructure:"catalog_path"`
	CatalogURL    string   `mapstructure:"catalog_url"`
	CatalogAPIKey string   `mapstructure:"catalog_api_key"`
	ListPath      string   `mapstructure:"list_path"`
	Stopwords     []string `mapstructure:"stopwords"` // unset selects the built-in list
}

// MapViewConfig points at the page that draws a route on the store map
type MapViewConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds route cache configuration
type CacheConfig struct {
	Type            string        `mapstructure:"type"` // only "memory"
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig holds rate limiting configuration, in requests per minute
type RateLimitConfig struct {
	PerIP   int `mapstructure:"per_ip"`
	Catalog int `mapstructure:"catalog"`
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shoproute/")

	// SHOPROUTE_SERVER_PORT -> server.port
	v.SetEnvPrefix("SHOPROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	for _, key := range []string{"store.catalog_api_key", "store.stopwords"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", key, err)
		}
	}

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env when present. Variables already set in the environment win.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://127.0.0.1:3000", "http://localhost:3000"})
	v.SetDefault("server.debug", false)

	// Store defaults
	v.SetDefault("store.catalog_source", "file")
	v.SetDefault("store.catalog_path", "productLocation.json")
	v.SetDefault("store.catalog_url", "")
	v.SetDefault("store.list_path", "itemList.json")

	// Map view defaults
	v.SetDefault("mapview.base_url", "http://127.0.0.1:3000/rota.html")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.cleanup_interval", "10m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.catalog", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required (set SHOPROUTE_SERVER_PORT)")
	}

	switch config.Store.CatalogSource {
	case "file":
		if config.Store.CatalogPath == "" {
			return fmt.Errorf("catalog path is required when catalog source is 'file' (set SHOPROUTE_STORE_CATALOG_PATH)")
		}
	case "http":
		if config.Store.CatalogURL == "" {
			return fmt.Errorf("catalog URL is required when catalog source is 'http' (set SHOPROUTE_STORE_CATALOG_URL)")
		}
	default:
		return fmt.Errorf("catalog source must be 'file' or 'http', got: %s", config.Store.CatalogSource)
	}

	if config.Store.ListPath == "" {
		return fmt.Errorf("list path is required (set SHOPROUTE_STORE_LIST_PATH)")
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Catalog < 0 {
		return fmt.Errorf("rate limits cannot be negative")
	}

	return nil
}
