package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del motor de precios.
	ErrInvalidLineItem         = errors.New("partida inválida: montos negativos o cantidad no positiva")
	ErrUnsupportedCurrencyPair = errors.New("par de monedas no soportado")
	ErrInvalidConfiguration    = errors.New("configuración inválida: tipo de cambio o tasa de impuesto fuera de rango")

	// Transición de estado no permitida para cotizaciones/órdenes.
	ErrInvalidStatusTransition = errors.New("transición de estado no permitida")
)
