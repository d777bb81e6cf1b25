// ABOUTME: Response DTOs for asset-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// ImageResultResponse represents one probed image in API responses
type ImageResultResponse struct {
	URL         string `json:"url" doc:"Absolute image URL"`
	Alt         string `json:"alt" doc:"Image alt text, empty when the element has none"`
	SizeKB      uint64 `json:"size_kb" doc:"Declared size in whole kilobytes, 0 when unknown"`
	ContentType string `json:"content_type" doc:"Declared content type, empty when the probe failed"`
	StatusCode  uint16 `json:"status_code" doc:"Observed HTTP status, 0 when the probe failed"`
}

// PageAssetsResponse represents the assets discovered on one page
type PageAssetsResponse struct {
	Images   []ImageResultResponse `json:"images" doc:"Probed images in document order"`
	PDFLinks []string              `json:"pdf_links,omitempty" doc:"Absolute PDF link URLs; omitted when the page links no PDFs"`
}
