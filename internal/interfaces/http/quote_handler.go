package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/application/sales"
)

// QuoteHandler ciclo de vida de cotizaciones (protegido).
type QuoteHandler struct {
	uc *sales.QuoteUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *sales.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cotización en DRAFT
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "Cliente, moneda y partidas"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	actorID, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id es requerido"})
	}
	out, err := h.uc.Create(actorID, role, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización (SALES solo las propias)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	actorID, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(actorID, role, id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones (filtrable por estado)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "DRAFT|SENT|FINALIZED|CANCELLED"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.QuoteListResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	actorID, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(actorID, role, c.Query("status"), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cotización (solo en DRAFT; recalcula totales)
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cotización"
// @Param        body  body  dto.UpdateQuoteRequest  true  "Cambios"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [put]
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	actorID, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actorID, role, id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Enviar cotización (congela el snapshot de precios)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *fiber.Ctx) error {
	actorID, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.Send(actorID, role, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Marcar cotización como aceptada por el cliente
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/finalize [post]
func (h *QuoteHandler) Finalize(c *fiber.Ctx) error {
	actorID, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.Finalize(actorID, role, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar cotización (no aplica a FINALIZED)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/cancel [post]
func (h *QuoteHandler) Cancel(c *fiber.Ctx) error {
	actorID, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.Cancel(actorID, role, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar la cotización en PDF
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	actorID, role, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	data, filename, err := h.uc.GeneratePDF(actorID, role, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
