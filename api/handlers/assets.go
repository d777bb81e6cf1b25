// ABOUTME: Asset handlers for extracting and verifying page assets over HTTP
// ABOUTME: Serves analysis of caller-supplied HTML and of fetched live pages

package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/deltacodepl/RustySEO/api/dto/mappers"
	"github.com/deltacodepl/RustySEO/api/dto/responses"
	"github.com/deltacodepl/RustySEO/core/assets"
	"github.com/deltacodepl/RustySEO/core/interfaces"
)

// AssetsHandler handles asset extraction endpoints
type AssetsHandler struct {
	assetService interfaces.AssetService
	pageService  interfaces.PageService
}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler(assetService interfaces.AssetService, pageService interfaces.PageService) *AssetsHandler {
	return &AssetsHandler{
		assetService: assetService,
		pageService:  pageService,
	}
}

// RegisterRoutes registers asset routes
func (h *AssetsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeAssets",
		Method:      http.MethodPost,
		Path:        "/assets/analyze",
		Summary:     "Analyze assets in supplied HTML",
		Description: "Extracts image and PDF references from the given HTML, resolves them against the base URL, and verifies every image with a metadata probe",
		Tags:        []string{"Assets"},
	}, h.AnalyzeAssets)

	huma.Register(api, huma.Operation{
		OperationID: "inspectPageAssets",
		Method:      http.MethodPost,
		Path:        "/assets/inspect",
		Summary:     "Fetch a page and analyze its assets",
		Description: "Downloads the page at the given URL, then extracts and verifies its image and PDF references",
		Tags:        []string{"Assets"},
	}, h.InspectPageAssets)
}

// AnalyzeInput defines the input for HTML asset analysis
type AnalyzeInput struct {
	Body struct {
		HTML    string `json:"html" doc:"Raw HTML document to analyze"`
		BaseURL string `json:"base_url" doc:"Absolute base URL used to resolve relative references"`
	}
}

// AssetsOutput defines the output for asset analysis
type AssetsOutput struct {
	Body responses.PageAssetsResponse
}

// AnalyzeAssets handles the POST /assets/analyze endpoint
func (h *AssetsHandler) AnalyzeAssets(ctx context.Context, input *AnalyzeInput) (*AssetsOutput, error) {
	if input.Body.HTML == "" {
		return nil, huma.Error400BadRequest("No HTML provided")
	}

	base, err := parseAbsoluteURL(input.Body.BaseURL)
	if err != nil {
		return nil, huma.Error400BadRequest("base_url must be a valid absolute URL")
	}

	return h.analyze(ctx, input.Body.HTML, base)
}

// InspectInput defines the input for live page inspection
type InspectInput struct {
	Body struct {
		URL string `json:"url" doc:"Absolute URL of the page to fetch and analyze"`
	}
}

// InspectPageAssets handles the POST /assets/inspect endpoint
func (h *AssetsHandler) InspectPageAssets(ctx context.Context, input *InspectInput) (*AssetsOutput, error) {
	base, err := parseAbsoluteURL(input.Body.URL)
	if err != nil {
		return nil, huma.Error400BadRequest("url must be a valid absolute URL")
	}

	html, err := h.pageService.GetPage(ctx, input.Body.URL)
	if err != nil {
		return nil, huma.Error502BadGateway("Failed to fetch page", err)
	}

	return h.analyze(ctx, html, base)
}

// analyze runs extraction and verification over one document.
func (h *AssetsHandler) analyze(ctx context.Context, html string, base *url.URL) (*AssetsOutput, error) {
	results, err := h.assetService.ExtractImagesWithSizes(ctx, html, base)
	if err != nil {
		return nil, toHumaError(err)
	}

	pdfs := assets.ExtractPDFLinks(html, base)

	output := &AssetsOutput{}
	output.Body = mappers.ToPageAssetsResponse(results, pdfs)
	return output, nil
}

// parseAbsoluteURL validates that raw is a usable absolute URL.
func parseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: raw, Err: errNotAbsolute}
	}
	return u, nil
}
