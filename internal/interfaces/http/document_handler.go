package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/application/usecase"
)

// DocumentHandler extracción de datos fiscales con IA (protegido).
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Parse godoc
// @Summary      Extraer RFC, razón social y CP de una Constancia de Situación Fiscal
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParseDocumentRequest  true  "Texto plano de la constancia"
// @Success      200   {object}  dto.ConstanciaDataDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents/parse [post]
func (h *DocumentHandler) Parse(c *fiber.Ctx) error {
	var in dto.ParseDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ParseConstancia(c.UserContext(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
