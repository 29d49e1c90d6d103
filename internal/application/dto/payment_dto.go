package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest body para POST /api/orders/:id/payments (FINANCE).
type RegisterPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"` // CASH | TRANSFER | CHECK
	Reference string          `json:"reference,omitempty"`
}

// PaymentResponse pago registrado.
type PaymentResponse struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Method       string          `json:"method"`
	Reference    string          `json:"reference,omitempty"`
	RegisteredBy string          `json:"registered_by"`
	CreatedAt    time.Time       `json:"created_at"`
}
