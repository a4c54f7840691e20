package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/middleware"
)

const healthCheckTimeout = 5 * time.Second

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// HealthHandler reports whether the service and its dependencies are up
type HealthHandler struct {
	env    string
	checks map[string]HealthCheck
}

// NewHealthHandler creates a new health handler running checks on each request
func NewHealthHandler(env string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{env: env, checks: checks}
}

// Register registers the health route
func (h *HealthHandler) Register(e *echo.Echo) {
	e.GET("/health", h.CheckHealth)
}

// CheckResult is the outcome of one dependency check
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// CheckHealth returns 200 when every check passes and 503 otherwise
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	resp := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.env,
		Checks:      make(map[string]CheckResult, len(h.checks)),
	}

	for name, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		start := time.Now()
		err := check(ctx)
		cancel()

		result := CheckResult{Status: "healthy", ResponseTime: time.Since(start).String()}
		if err != nil {
			result.Status = "unhealthy"
			result.Error = err.Error()
			resp.Status = "unhealthy"
			logger.Error().Err(err).Str("check", name).Msg("health check failed")
		}
		resp.Checks[name] = result
	}

	if resp.Status != "healthy" {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
