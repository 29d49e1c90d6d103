package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
)

// Métodos de pago aceptados por finanzas.
const (
	PaymentMethodCash     = "CASH"
	PaymentMethodTransfer = "TRANSFER"
	PaymentMethodCheck    = "CHECK"
)

// Payment pago registrado contra una orden. Inmutable una vez creado.
type Payment struct {
	ID           string
	OrderID      string
	Amount       decimal.Decimal
	Currency     pricing.Currency
	Method       string
	Reference    string // folio de transferencia o cheque
	RegisteredBy string // usuario FINANCE que capturó el pago
	CreatedAt    time.Time
}
