// ABOUTME: Mappers converting asset domain types to response DTOs
// ABOUTME: Keeps the API surface decoupled from core domain structs

package mappers

import (
	"github.com/deltacodepl/RustySEO/api/dto/responses"
	"github.com/deltacodepl/RustySEO/core/domain"
)

// ToImageResultResponse converts a probe result to its response DTO
func ToImageResultResponse(r domain.ImageProbeResult) responses.ImageResultResponse {
	return responses.ImageResultResponse{
		URL:         r.URL,
		Alt:         r.Alt,
		SizeKB:      r.SizeKB,
		ContentType: r.ContentType,
		StatusCode:  r.StatusCode,
	}
}

// ToPageAssetsResponse builds the page-level response. A nil pdfs keeps
// PDFLinks absent from the JSON output, preserving the none-found signal.
func ToPageAssetsResponse(results []domain.ImageProbeResult, pdfs *domain.PdfLinks) responses.PageAssetsResponse {
	resp := responses.PageAssetsResponse{
		Images: make([]responses.ImageResultResponse, 0, len(results)),
	}

	for _, r := range results {
		resp.Images = append(resp.Images, ToImageResultResponse(r))
	}

	if pdfs != nil {
		resp.PDFLinks = pdfs.Links
	}

	return resp
}
