// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, page fetching, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - cache/redis: Redis-based cache implementation
// - fetch/colly: Page fetcher built on the Colly scraping framework
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger implementation backed by logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	config := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(config)
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient GET
// failures; HEAD probes are issued exactly once so that the observed
// status can be reported back unchanged:
//
//	client := standard.NewStandardHTTPClient(5 * time.Second)
//	resp, err := client.Head(ctx, "https://example.com/logo.png")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger("info")
//	logger.Info("Probing image", map[string]interface{}{
//	    "url": "https://example.com/logo.png",
//	})
//
package infrastructure
