// ABOUTME: PageFetcher implementation backed by the colly scraping collector
// ABOUTME: Downloads raw page HTML with UA, body-size, and timeout limits

package colly

import (
	"context"
	"fmt"
	"time"

	gocolly "github.com/gocolly/colly"
)

const (
	defaultUserAgent = "RustySEO/1.0"
	defaultMaxBody   = 5 * 1024 * 1024 // 5MB
	defaultTimeout   = 10 * time.Second
)

// Config controls the collector built for each fetch.
type Config struct {
	// UserAgent sent with the page request; empty uses the default
	UserAgent string

	// MaxBodySize caps the downloaded document in bytes; 0 uses the default
	MaxBodySize int

	// Timeout bounds the whole page request; 0 uses the default
	Timeout time.Duration
}

// Fetcher implements the PageFetcher interface using colly
type Fetcher struct {
	cfg Config
}

// NewFetcher creates a new colly-backed page fetcher
func NewFetcher(cfg Config) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = defaultMaxBody
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Fetcher{cfg: cfg}
}

// FetchPage downloads the page at pageURL and returns its raw HTML.
// Collectors are single-use here: colly keeps visit state per collector,
// and a fresh one per call keeps fetches independent.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := gocolly.NewCollector(
		gocolly.UserAgent(f.cfg.UserAgent),
		gocolly.MaxBodySize(f.cfg.MaxBodySize),
		gocolly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.cfg.Timeout)

	var body []byte
	var statusCode int

	c.OnResponse(func(r *gocolly.Response) {
		statusCode = r.StatusCode
		body = r.Body
	})

	var visitErr error
	c.OnError(func(r *gocolly.Response, err error) {
		if r != nil {
			statusCode = r.StatusCode
		}
		visitErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if visitErr != nil {
		return "", fmt.Errorf("fetch %s (status %d): %w", pageURL, statusCode, visitErr)
	}

	return string(body), nil
}
