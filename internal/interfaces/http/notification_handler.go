package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/application/usecase"
)

// NotificationHandler la campanita: avisos del usuario autenticado.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListMine godoc
// @Summary      Avisos del usuario autenticado (recientes primero)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListMine(GetUserID(c), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar aviso como leído (solo los propios)
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  string  true  "ID del aviso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.MarkRead(id, GetUserID(c)); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
