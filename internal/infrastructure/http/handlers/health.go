package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

const readinessTimeout = 3 * time.Second

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up. It never touches dependencies.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type HealthDependenciesHandler struct {
	db *mongo.Database
}

func NewHealthDependenciesHandler(db *mongo.Database) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db}
}

// Readiness pings MongoDB and reports degraded with 503 when the store is
// unreachable.
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	status := map[string]string{"status": "ok", "mongo": "ok"}
	code := http.StatusOK

	if err := h.db.Client().Ping(ctx, nil); err != nil {
		status["status"] = "degraded"
		status["mongo"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, status)
}
