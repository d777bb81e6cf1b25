// ABOUTME: Health check handler for liveness probes
// ABOUTME: Reports service status without touching downstream dependencies

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles liveness checks
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, h.Check)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body struct {
		Status string `json:"status" doc:"Always 'ok' while the service is up"`
	}
}

// Check handles the GET /healthz endpoint
func (h *HealthHandler) Check(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	output := &HealthOutput{}
	output.Body.Status = "ok"
	return output, nil
}
