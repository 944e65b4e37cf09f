package config

import (
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration assembled from the environment.
type Config struct {
	Server   ServerConfig
	Client   ClientConfig
	Cache    CacheConfig
	Frontend FrontendConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// ClientConfig describes how to reach the InvenTree REST backend.
type ClientConfig struct {
	BaseURL        string
	Token          string
	TimeoutSeconds int
}

// CacheConfig selects and configures the session store backing the
// server API state.
type CacheConfig struct {
	Enabled           bool
	RedisURL          string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	SessionTTLSeconds int
	SessionKeyPrefix  string
}

// FrontendConfig feeds the settings and bundle served to the web app.
type FrontendConfig struct {
	Debug        bool
	URLBase      string
	Settings     string
	ManifestPath string
}

var (
	once     sync.Once
	instance *Config
)

// Load reads the process configuration once. Subsequent calls return the
// same instance.
func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		instance = FromViper(viper.GetViper())
	})

	return instance
}

// FromViper builds a Config from v, registering defaults and environment
// bindings on it first.
func FromViper(v *viper.Viper) *Config {
	setDefaults(v)

	// Read from environment variables
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			Mode:           v.GetString("SERVER_MODE"),
			ReadTimeout:    v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:   v.GetInt("SERVER_WRITE_TIMEOUT"),
			AllowedOrigins: splitList(v.GetStringSlice("SERVER_ALLOWED_ORIGINS")),
		},
		Client: ClientConfig{
			BaseURL:        v.GetString("INVENTREE_SERVER"),
			Token:          v.GetString("INVENTREE_API_TOKEN"),
			TimeoutSeconds: v.GetInt("INVENTREE_TIMEOUT_SECONDS"),
		},
		Cache: CacheConfig{
			Enabled:           v.GetBool("CACHE_ENABLED"),
			RedisURL:          v.GetString("REDIS_URL"),
			RedisHost:         v.GetString("REDIS_HOST"),
			RedisPort:         v.GetString("REDIS_PORT"),
			RedisPassword:     v.GetString("REDIS_PASSWORD"),
			RedisDB:           v.GetInt("REDIS_DB"),
			SessionTTLSeconds: v.GetInt("CACHE_SESSION_TTL_SECONDS"),
			SessionKeyPrefix:  v.GetString("CACHE_SESSION_KEY_PREFIX"),
		},
		Frontend: FrontendConfig{
			Debug:        v.GetBool("INVENTREE_DEBUG"),
			URLBase:      v.GetString("INVENTREE_PUI_URL_BASE"),
			Settings:     v.GetString("INVENTREE_PUI_SETTINGS"),
			ManifestPath: v.GetString("FRONTEND_MANIFEST_PATH"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_MODE", "debug")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("INVENTREE_SERVER", "http://localhost:8000")
	v.SetDefault("INVENTREE_API_TOKEN", "")
	v.SetDefault("INVENTREE_TIMEOUT_SECONDS", 10)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_SESSION_TTL_SECONDS", 3600)
	v.SetDefault("CACHE_SESSION_KEY_PREFIX", "session:default")
	v.SetDefault("INVENTREE_DEBUG", false)
	v.SetDefault("INVENTREE_PUI_URL_BASE", "")
	v.SetDefault("INVENTREE_PUI_SETTINGS", "")
	v.SetDefault("FRONTEND_MANIFEST_PATH", "static/web/manifest.json")
}

// Timeout returns the client request timeout as a duration.
func (c ClientConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// splitList expands comma separated entries coming from a single env value.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
