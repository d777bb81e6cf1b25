// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "github.com/deltacodepl/RustySEO/core/errors"
)

var errNotAbsolute = errors.New("URL is not absolute")

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if coreerrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// Probe errors are absorbed per item inside the batch and should not
	// reach here; if one does, treat it as an upstream failure.
	var probeErr *coreerrors.ProbeError
	if errors.As(err, &probeErr) {
		return huma.Error502BadGateway("Asset probe failed", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
