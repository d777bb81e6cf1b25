// Package core contains the business logic for the page assets service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ImageAsset, ImageProbeResult, PdfLinks)
// - assets: Asset extraction and image verification service
// - pages: Cached page retrieval service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies beyond the HTML parser
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/deltacodepl/RustySEO/core/assets"
//	    "github.com/deltacodepl/RustySEO/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	assetService := assets.NewService(deps, 5*time.Second)
//
//	// Extract and verify images
//	results, err := assetService.ExtractImagesWithSizes(ctx, html, baseURL)
//
package core
