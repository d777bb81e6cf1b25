// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for probe failure classification

package errors

import (
	"errors"
	"fmt"
)

// ProbeErrorKind classifies why an image probe failed.
type ProbeErrorKind int

const (
	// ProbeTimeout means the probe exceeded its wall-clock deadline.
	ProbeTimeout ProbeErrorKind = iota

	// ProbeTransport means the request failed below HTTP (DNS, connect, TLS).
	ProbeTransport

	// ProbeNonImageContent means the server answered 200 but the declared
	// content type is not an image.
	ProbeNonImageContent
)

// String returns a human-readable name for the kind.
func (k ProbeErrorKind) String() string {
	switch k {
	case ProbeTimeout:
		return "timeout"
	case ProbeTransport:
		return "transport error"
	case ProbeNonImageContent:
		return "non-image content"
	default:
		return "unknown"
	}
}

// ProbeError represents a failed image probe.
// It carries the probed URL so batch callers can log the offending item
// without tracking it separately.
type ProbeError struct {
	URL  string
	Kind ProbeErrorKind
	Err  error
}

// Error implements the error interface
func (e *ProbeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s while probing %s: %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("%s while probing %s", e.Kind, e.URL)
}

// Unwrap returns the underlying cause, if any.
func (e *ProbeError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsProbeTimeout checks if an error is a ProbeError with kind ProbeTimeout
func IsProbeTimeout(err error) bool {
	return probeKindIs(err, ProbeTimeout)
}

// IsProbeTransport checks if an error is a ProbeError with kind ProbeTransport
func IsProbeTransport(err error) bool {
	return probeKindIs(err, ProbeTransport)
}

// IsNonImageContent checks if an error is a ProbeError with kind ProbeNonImageContent
func IsNonImageContent(err error) bool {
	return probeKindIs(err, ProbeNonImageContent)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func probeKindIs(err error, kind ProbeErrorKind) bool {
	var probeErr *ProbeError
	return errors.As(err, &probeErr) && probeErr.Kind == kind
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
