package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
)

// actor extrae el UserID y el Role del contexto ya autenticado. Si el rol
// del token no es reconocido se niega el acceso (fail-closed).
func actor(c *fiber.Ctx) (string, authz.Role, bool) {
	userID := GetUserID(c)
	role, ok := authz.ParseRole(GetRole(c))
	if userID == "" || !ok {
		return "", "", false
	}
	return userID, role, true
}

// domainError mapea los errores sentinela del dominio a respuestas HTTP.
// Los handlers chequean primero sus casos propios (códigos más específicos)
// y caen aquí para el resto.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para este usuario"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidLineItem),
		errors.Is(err, domain.ErrUnsupportedCurrencyPair),
		errors.Is(err, domain.ErrInvalidConfiguration):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// unauthorized respuesta estándar cuando el contexto no trae actor válido.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida"})
}
