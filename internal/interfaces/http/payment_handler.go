package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/application/finance"
)

// PaymentHandler cobros sobre órdenes (solo FINANCE y administración).
type PaymentHandler struct {
	uc *finance.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *finance.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar pago sobre una orden COMPLETED
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.RegisterPaymentRequest  true  "Monto, método y referencia"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/payments [post]
func (h *PaymentHandler) Register(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.UserContext(), GetUserID(c), orderID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByOrder godoc
// @Summary      Listar pagos de una orden
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/orders/{id}/payments [get]
func (h *PaymentHandler) ListByOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListByOrder(orderID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
