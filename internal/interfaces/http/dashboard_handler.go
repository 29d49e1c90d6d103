package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/norteindustrial/norte-erp/internal/application/analytics"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
)

// DashboardHandler KPIs del mes y menú de navegación por rol.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      KPIs del mes en curso (ingresos, utilidad, pipeline, pulso)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Navigation godoc
// @Summary      Menú de navegación permitido para el rol del token
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  authz.NavEntry
// @Router       /api/navigation [get]
func (h *DashboardHandler) Navigation(c *fiber.Ctx) error {
	_, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(authz.NavigationFor(role))
}
