package assets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/deltacodepl/RustySEO/core/domain"
	"github.com/deltacodepl/RustySEO/core/interfaces"
)

func TestNewService(t *testing.T) {
	deps := interfaces.Dependencies{}

	service := NewService(deps, 0)

	if service == nil {
		t.Fatal("NewService returned nil")
	}
	if service.prober == nil {
		t.Error("NewService did not create a prober")
	}
}

func TestVerifyImages_EmptyInput(t *testing.T) {
	service := NewService(interfaces.Dependencies{HTTPClient: &mockHTTPClient{}}, 0)

	results := service.VerifyImages(context.Background(), nil)

	if len(results) != 0 {
		t.Errorf("VerifyImages returned %d results, want 0", len(results))
	}
}

func TestVerifyImages_OneResultPerAssetSameOrder(t *testing.T) {
	// Respond slower for earlier assets so completion order is reversed
	// relative to input order; output order must not change.
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			switch {
			case strings.Contains(url, "first"):
				time.Sleep(60 * time.Millisecond)
			case strings.Contains(url, "second"):
				time.Sleep(30 * time.Millisecond)
			}
			return &mockResponse{
				statusCode: 200,
				headers: map[string]string{
					"Content-Type":   "image/png",
					"Content-Length": "1024",
				},
			}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, 0)

	assets := []domain.ImageAsset{
		{URL: "https://x.test/first.png", Alt: "1"},
		{URL: "https://x.test/second.png", Alt: "2"},
		{URL: "https://x.test/third.png", Alt: "3"},
	}

	results := service.VerifyImages(context.Background(), assets)

	if len(results) != len(assets) {
		t.Fatalf("got %d results, want %d", len(results), len(assets))
	}
	for i, asset := range assets {
		if results[i].URL != asset.URL {
			t.Errorf("results[%d].URL = %s, want %s", i, results[i].URL, asset.URL)
		}
		if results[i].Alt != asset.Alt {
			t.Errorf("results[%d].Alt = %s, want %s", i, results[i].Alt, asset.Alt)
		}
	}
}

func TestVerifyImages_FailureAbsorbedToZeroedResult(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "bad") {
				return nil, errors.New("connection refused")
			}
			return &mockResponse{
				statusCode: 200,
				headers: map[string]string{
					"Content-Type":   "image/png",
					"Content-Length": "2048",
				},
			}, nil
		},
	}

	var mu sync.Mutex
	var warnings []string
	logger := &mockLogger{
		warnFunc: func(msg string, fields map[string]interface{}) {
			mu.Lock()
			defer mu.Unlock()
			warnings = append(warnings, fmt.Sprintf("%s %v", msg, fields["url"]))
		},
	}

	service := NewService(interfaces.Dependencies{HTTPClient: client, Logger: logger}, 0)

	assets := []domain.ImageAsset{
		{URL: "https://x.test/good.png", Alt: "ok"},
		{URL: "https://x.test/bad.png", Alt: "broken"},
	}

	results := service.VerifyImages(context.Background(), assets)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 - failures must not drop entries", len(results))
	}

	good := results[0]
	if good.SizeKB != 2 || good.StatusCode != 200 || good.ContentType != "image/png" {
		t.Errorf("good result = %+v, want size 2, status 200, image/png", good)
	}

	bad := results[1]
	if bad.URL != "https://x.test/bad.png" || bad.Alt != "broken" {
		t.Errorf("failed result keeps url and alt, got %+v", bad)
	}
	if bad.SizeKB != 0 || bad.ContentType != "" || bad.StatusCode != 0 {
		t.Errorf("failed result = %+v, want (0, \"\", 0)", bad)
	}

	if len(warnings) != 1 || !strings.Contains(warnings[0], "https://x.test/bad.png") {
		t.Errorf("warnings = %v, want one naming the failed URL", warnings)
	}
}

func TestVerifyImages_NonImage200AbsorbedToZeros(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				headers: map[string]string{
					"Content-Type":   "text/html",
					"Content-Length": "5000",
				},
			}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, 0)

	results := service.VerifyImages(context.Background(), []domain.ImageAsset{
		{URL: "https://x.test/soft-404.png", Alt: "a"},
	})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.SizeKB != 0 || r.ContentType != "" || r.StatusCode != 0 {
		t.Errorf("200-with-wrong-type must collapse to zeros, got %+v", r)
	}
}

func TestVerifyImages_404ReportedAsRealOutcome(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 404,
				headers:    map[string]string{"Content-Type": "text/plain"},
			}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, 0)

	results := service.VerifyImages(context.Background(), []domain.ImageAsset{
		{URL: "https://x.test/missing.png"},
	})

	r := results[0]
	if r.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404 preserved", r.StatusCode)
	}
	if r.ContentType != "text/plain" {
		t.Errorf("ContentType = %s, want the observed type", r.ContentType)
	}
	if r.SizeKB != 0 {
		t.Errorf("SizeKB = %d, want 0", r.SizeKB)
	}
}

func TestExtractImagesWithSizes_EndToEnd(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				headers: map[string]string{
					"Content-Type":   "image/webp",
					"Content-Length": "10240",
				},
			}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, 0)

	base := mustParseURL(t, "https://x.test/")
	html := `<img src="/a.png" alt="A"><img data-src="b.jpg">`

	results, err := service.ExtractImagesWithSizes(context.Background(), html, base)

	if err != nil {
		t.Fatalf("ExtractImagesWithSizes returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].URL != "https://x.test/a.png" || results[0].Alt != "A" {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].URL != "https://x.test/b.jpg" || results[1].Alt != "" {
		t.Errorf("results[1] = %+v", results[1])
	}
	for i, r := range results {
		if r.SizeKB != 10 {
			t.Errorf("results[%d].SizeKB = %d, want 10", i, r.SizeKB)
		}
	}
}

func TestExtractImagesWithSizes_NoImages(t *testing.T) {
	service := NewService(interfaces.Dependencies{HTTPClient: &mockHTTPClient{}}, 0)

	base := mustParseURL(t, "https://x.test/")
	results, err := service.ExtractImagesWithSizes(context.Background(), "<p>text only</p>", base)

	if err != nil {
		t.Fatalf("ExtractImagesWithSizes returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
