package handler

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports store and cache reachability.
type HealthHandler struct {
	db    Pinger
	cache domain.Cache // nil when no cache is configured
}

func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Healthz godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Services: map[string]string{}}
	healthy := true

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Warn("Database health check failed", zap.Error(err))
		resp.Services["database"] = "down"
		healthy = false
	} else {
		resp.Services["database"] = "up"
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache health check failed", zap.Error(err))
			resp.Services["cache"] = "down"
			healthy = false
		} else {
			resp.Services["cache"] = "up"
		}
	}

	if !healthy {
		resp.Status = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
