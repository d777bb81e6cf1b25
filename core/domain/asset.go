// ABOUTME: Domain types for page asset extraction and verification
// ABOUTME: Defines image assets, probe results, and discovered PDF links

package domain

// ImageAsset represents one image reference discovered in a document.
// URL is always absolute; Alt may be empty. Assets keep document order and
// are not deduplicated: two elements referencing the same image produce
// two assets.
type ImageAsset struct {
	// URL is the absolute URL of the image
	URL string `json:"url"`

	// Alt is the image's descriptive text, empty when the element has none
	Alt string `json:"alt"`
}

// ImageProbeResult is the outcome of verifying one ImageAsset.
// StatusCode 0 means the probe itself failed (timeout, transport error, or
// a success response that did not carry image content); SizeKB and
// ContentType are zero/empty in that case. A real non-success HTTP status
// is reported as-is with SizeKB 0.
type ImageProbeResult struct {
	// URL is the absolute URL of the probed image
	URL string `json:"url"`

	// Alt is carried over from the extracted asset
	Alt string `json:"alt"`

	// SizeKB is the declared content length in whole kilobytes (truncated)
	SizeKB uint64 `json:"size_kb"`

	// ContentType is the declared content type, empty when unavailable
	ContentType string `json:"content_type"`

	// StatusCode is the observed HTTP status, 0 when the probe failed
	StatusCode uint16 `json:"status_code"`
}

// Failed reports whether the probe never produced a real HTTP status.
func (r ImageProbeResult) Failed() bool {
	return r.StatusCode == 0
}

// PdfLinks holds the absolute URLs of PDF documents linked from a page.
// APIs surface it as *PdfLinks where nil means no PDF links were found;
// a non-nil value always contains at least one link.
type PdfLinks struct {
	// Links are the absolute PDF URLs in document order
	Links []string `json:"pdf_links"`
}
