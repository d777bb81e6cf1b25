// ABOUTME: Single-image metadata probe using bounded-time HEAD requests
// ABOUTME: Classifies responses into size, content type, and status code

package assets

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	coreerrors "github.com/deltacodepl/RustySEO/core/errors"
	"github.com/deltacodepl/RustySEO/core/interfaces"
)

// DefaultProbeTimeout bounds the whole HEAD exchange, connection setup included.
const DefaultProbeTimeout = 5 * time.Second

// Prober characterizes a single image URL with a metadata-only request.
type Prober struct {
	client  interfaces.HTTPClient
	timeout time.Duration
}

// NewProber creates a prober using the given HTTP client. A non-positive
// timeout falls back to DefaultProbeTimeout.
func NewProber(client interfaces.HTTPClient, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Prober{
		client:  client,
		timeout: timeout,
	}
}

// Probe issues a HEAD request against imageURL and returns the declared
// size in whole kilobytes, the content type, and the HTTP status code.
//
// A non-success status is not an error: the real status and observed
// content type are returned with size 0. The error path is reserved for
// timeouts, transport failures, and a 200 response whose content type is
// not an image; those return a *coreerrors.ProbeError.
func (p *Prober) Probe(ctx context.Context, imageURL string) (uint64, string, uint16, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Head(ctx, imageURL)
	if err != nil {
		kind := coreerrors.ProbeTransport
		if errors.Is(err, context.DeadlineExceeded) {
			kind = coreerrors.ProbeTimeout
		}
		return 0, "", 0, &coreerrors.ProbeError{URL: imageURL, Kind: kind, Err: err}
	}
	defer resp.Body().Close()

	statusCode := uint16(resp.StatusCode())
	contentType := resp.Header("Content-Type")

	var contentLength uint64
	if resp.StatusCode() == http.StatusOK {
		if !strings.Contains(contentType, "image") {
			return 0, "", 0, &coreerrors.ProbeError{URL: imageURL, Kind: coreerrors.ProbeNonImageContent}
		}

		// Absent or unparseable Content-Length reads as 0, not an error.
		if v, err := strconv.ParseUint(resp.Header("Content-Length"), 10, 64); err == nil {
			contentLength = v
		}
	}

	// Truncating division: 2047 bytes is 1 KB.
	return contentLength / 1024, contentType, statusCode, nil
}
