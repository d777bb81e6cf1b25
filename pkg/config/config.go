// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, probe, and fetch settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Probe contains image probe configuration
	Probe ProbeConfig

	// Fetch contains page retrieval configuration
	Fetch FetchConfig

	// API contains inbound API protection configuration
	API APIConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel is the logging verbosity (debug/info/warn/error)
	LogLevel string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// ProbeConfig holds image probe configuration
type ProbeConfig struct {
	// TimeoutSeconds bounds each HEAD probe, connection setup included
	TimeoutSeconds int

	// UserAgent sent with probe requests
	UserAgent string
}

// FetchConfig holds page retrieval configuration
type FetchConfig struct {
	// TimeoutSeconds bounds each page download
	TimeoutSeconds int

	// MaxBodyBytes caps the downloaded document size
	MaxBodyBytes int

	// CacheTTLSeconds is how long fetched pages are reused
	CacheTTLSeconds int
}

// APIConfig holds inbound rate limiting configuration
type APIConfig struct {
	// RateLimit is requests per second allowed per client IP
	RateLimit int

	// RateBurst is the per-IP burst size
	RateBurst int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8000"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Probe: ProbeConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("PROBE_TIMEOUT", 5),
			UserAgent:      getEnvOrDefault("PROBE_USER_AGENT", "RustySEO/1.0"),
		},
		Fetch: FetchConfig{
			TimeoutSeconds:  getEnvAsIntOrDefault("FETCH_TIMEOUT", 10),
			MaxBodyBytes:    getEnvAsIntOrDefault("FETCH_MAX_BODY", 5*1024*1024),
			CacheTTLSeconds: getEnvAsIntOrDefault("FETCH_CACHE_TTL", 900),
		},
		API: APIConfig{
			RateLimit: getEnvAsIntOrDefault("API_RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("API_RATE_BURST", 20),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Probe.TimeoutSeconds < 1 {
		return errors.New("probe timeout must be at least 1 second")
	}

	if c.Fetch.TimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.API.RateLimit < 1 {
		return errors.New("API rate limit must be at least 1 request per second")
	}

	return nil
}
