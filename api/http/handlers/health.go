package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/scholarship/api/http/presenter"
	"github.com/artem13815/scholarship/pkg/health"
)

const defaultReadyTimeout = 2 * time.Second

type HealthHandler struct {
	svc     health.ReadinessUseCase
	log     *zap.Logger
	timeout time.Duration
}

// NewHealthHandler bounds every readiness run by timeout; zero picks the default.
func NewHealthHandler(svc health.ReadinessUseCase, log *zap.Logger, timeout time.Duration) *HealthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultReadyTimeout
	}
	return &HealthHandler{svc: svc, log: log, timeout: timeout}
}

// Health reports that the process is serving.
// @Summary Liveness check
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.StatusResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, presenter.StatusResponse{Status: "ok"})
}

// Ready checks the catalog store and, when configured, the cache.
// @Summary Readiness check
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.StatusResponse
// @Failure 503 {object} presenter.StatusResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		h.log.Warn("readiness check failed", zap.Error(err))
		return presenter.JSON(c, http.StatusServiceUnavailable, presenter.StatusResponse{
			Status:  "not_ready",
			Details: err.Error(),
		})
	}
	return presenter.JSON(c, http.StatusOK, presenter.StatusResponse{Status: "ready"})
}
