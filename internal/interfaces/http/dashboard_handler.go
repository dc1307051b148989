package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// DashboardHandler contadores del dashboard y estado del servicio.
type DashboardHandler struct {
	uc     *billing.StatsUseCase
	health repository.HealthChecker
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *billing.StatsUseCase, health repository.HealthChecker) *DashboardHandler {
	return &DashboardHandler{uc: uc, health: health}
}

// Stats GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Get(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

// Health GET /api/health
//
// 200 {"status":"ok","database":"connected","timestamp":...} si la base responde;
// 500 {"status":"error","database":"disconnected","message":...} si no.
func (h *DashboardHandler) Health(c *fiber.Ctx) error {
	if err := h.health.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.HealthResponse{
			Status:   "error",
			Database: "disconnected",
			Message:  err.Error(),
		})
	}
	now := time.Now().UTC()
	return c.JSON(dto.HealthResponse{Status: "ok", Database: "connected", Timestamp: &now})
}
