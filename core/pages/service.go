// ABOUTME: Page service retrieves raw HTML for analysis, cache-first
// ABOUTME: Provides the document text that asset extraction operates on

package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	coreerrors "github.com/deltacodepl/RustySEO/core/errors"
	"github.com/deltacodepl/RustySEO/core/interfaces"
)

// DefaultCacheTTL is how long fetched pages stay reusable.
const DefaultCacheTTL = 15 * time.Minute

// Service handles page retrieval and caching
type Service struct {
	deps     interfaces.Dependencies
	fetcher  interfaces.PageFetcher
	cacheTTL time.Duration
}

// NewService creates a new page service instance. A non-positive cacheTTL
// falls back to DefaultCacheTTL.
func NewService(deps interfaces.Dependencies, fetcher interfaces.PageFetcher, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &Service{
		deps:     deps,
		fetcher:  fetcher,
		cacheTTL: cacheTTL,
	}
}

// GetPage returns the raw HTML of the page at pageURL, serving from cache
// when a fresh copy exists. Only the fetched document is cached; nothing
// derived from it (extraction or probe results) ever is.
func (s *Service) GetPage(ctx context.Context, pageURL string) (string, error) {
	if pageURL == "" {
		return "", errors.New("page URL cannot be empty")
	}

	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", errors.New("invalid URL format")
	}

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey(pageURL)); err == nil && data != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Debug("Page served from cache", map[string]interface{}{
					"url": pageURL,
				})
			}
			return string(data), nil
		}
	}

	if s.fetcher == nil {
		return "", errors.New("page fetcher not configured")
	}

	html, err := s.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		html, err = s.fetchDirect(ctx, pageURL, err)
		if err != nil {
			return "", err
		}
	}

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey(pageURL), []byte(html), s.cacheTTL)
	}

	return html, nil
}

// fetchDirect retries the download over the plain HTTP client after the
// scraper-based fetch failed. Some origins reject scraper traffic that a
// straight GET with retries still gets through.
func (s *Service) fetchDirect(ctx context.Context, pageURL string, fetchErr error) (string, error) {
	if s.deps.HTTPClient == nil {
		return "", coreerrors.WrapError(fetchErr, "failed to fetch page")
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Warn("Page fetch failed, retrying over plain HTTP", map[string]interface{}{
			"url":   pageURL,
			"error": fetchErr.Error(),
		})
	}

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to fetch page")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("failed to fetch page: HTTP %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to read page body")
	}

	return string(body), nil
}

func cacheKey(pageURL string) string {
	return "page:" + pageURL
}
