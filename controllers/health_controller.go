package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogem/goodhome/services"
)

const healthCheckTimeout = 2 * time.Second

// HealthController reports service health
type HealthController struct {
	services *services.Services
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services) *HealthController {
	return &HealthController{
		services: services,
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Journal string `json:"journal,omitempty"`
}

// Check handles GET /health
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "healthy", Service: "goodhome"}
	statusCode := http.StatusOK

	if c.services.Journal != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		resp.Journal = "ok"
		if err := c.services.Journal.Healthy(ctx); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("error journal unreachable")
			resp.Status = "degraded"
			resp.Journal = "unreachable"
			statusCode = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
