package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/clientdesk/crm-api/internal/infrastructure/config"
)

const readinessTimeout = 3 * time.Second

// HealthHandler serves the unauthenticated status probes.
type HealthHandler struct {
	db      *sqlx.DB
	cfg     *config.Config
	started time.Time
}

func NewHealthHandler(db *sqlx.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg, started: time.Now()}
}

type statusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// Status handles GET /health — basic service status.
func (h *HealthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		Status:  "ok",
		Service: "crm-api",
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}

// Liveness handles GET /health/live — returns 200 immediately; confirms
// the process is alive.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness handles GET /health/ready — checks configuration completeness
// and database reachability before declaring the service ready.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Required settings present ---
	if missing := h.cfg.MissingSettings(); len(missing) > 0 {
		deps["config"] = dependencyStatus{Status: "unhealthy", Error: "missing: " + strings.Join(missing, ", ")}
		healthy = false
	} else {
		deps["config"] = dependencyStatus{Status: "ok"}
	}

	// --- Database ping ---
	if err := h.db.PingContext(ctx); err != nil {
		deps["database"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["database"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
