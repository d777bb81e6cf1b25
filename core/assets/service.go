// ABOUTME: Asset service orchestrating extraction and concurrent image verification
// ABOUTME: Fans one probe out per image and joins results in input order

package assets

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/deltacodepl/RustySEO/core/domain"
	"github.com/deltacodepl/RustySEO/core/interfaces"
)

// Service handles asset extraction and image verification
type Service struct {
	deps   interfaces.Dependencies
	prober *Prober
}

// NewService creates a new asset service instance. probeTimeout bounds each
// individual image probe; pass 0 for the default.
func NewService(deps interfaces.Dependencies, probeTimeout time.Duration) *Service {
	return &Service{
		deps:   deps,
		prober: NewProber(deps.HTTPClient, probeTimeout),
	}
}

// VerifyImages probes every asset concurrently and returns one result per
// asset, in the same order. Each goroutine is paired with its slot before
// dispatch, so completion order never reorders the output. A failed probe
// yields a zeroed result for that slot and a warning log naming the URL;
// it never drops the entry or fails the batch.
func (s *Service) VerifyImages(ctx context.Context, images []domain.ImageAsset) []domain.ImageProbeResult {
	results := make([]domain.ImageProbeResult, len(images))
	var wg sync.WaitGroup

	for i, img := range images {
		wg.Add(1)
		go func(idx int, asset domain.ImageAsset) {
			defer wg.Done()

			sizeKB, contentType, statusCode, err := s.prober.Probe(ctx, asset.URL)
			if err != nil {
				if s.deps.Logger != nil {
					s.deps.Logger.Warn("Image probe failed", map[string]interface{}{
						"url":   asset.URL,
						"error": err.Error(),
					})
				}
				results[idx] = domain.ImageProbeResult{
					URL: asset.URL,
					Alt: asset.Alt,
				}
				return
			}

			results[idx] = domain.ImageProbeResult{
				URL:         asset.URL,
				Alt:         asset.Alt,
				SizeKB:      sizeKB,
				ContentType: contentType,
				StatusCode:  statusCode,
			}
		}(i, img)
	}

	wg.Wait()
	return results
}

// ExtractImagesWithSizes extracts every image reference from html and
// verifies each one over the network. The returned slice always matches the
// extraction count and order; the error return exists for conditions that
// would prevent attempting the batch at all, and is currently always nil
// since per-item failures are absorbed.
func (s *Service) ExtractImagesWithSizes(ctx context.Context, html string, base *url.URL) ([]domain.ImageProbeResult, error) {
	images := ExtractImages(html, base)
	return s.VerifyImages(ctx, images), nil
}
