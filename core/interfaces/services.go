package interfaces

import (
	"context"
	"net/url"

	"github.com/deltacodepl/RustySEO/core/domain"
)

// AssetService extracts and verifies page assets.
type AssetService interface {
	// ExtractImagesWithSizes extracts every image reference from html and
	// probes each one; results match extraction order and count.
	ExtractImagesWithSizes(ctx context.Context, html string, base *url.URL) ([]domain.ImageProbeResult, error)

	// VerifyImages probes already-extracted assets, preserving order.
	VerifyImages(ctx context.Context, images []domain.ImageAsset) []domain.ImageProbeResult
}

// PageService retrieves raw page HTML for analysis.
type PageService interface {
	// GetPage returns the raw HTML of the page at url, cache-first.
	GetPage(ctx context.Context, url string) (string, error)
}
