package entity

import (
	"time"

	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
)

// Estados de una orden de venta.
const (
	OrderStatusPending   = "PENDING"   // creada desde una cotización finalizada
	OrderStatusApproved  = "APPROVED"  // aprobada internamente
	OrderStatusPOSent    = "PO_SENT"   // orden de compra enviada al proveedor
	OrderStatusCompleted = "COMPLETED" // entregada
	OrderStatusPaid      = "PAID"      // pago registrado por finanzas
	OrderStatusCancelled = "CANCELLED"
)

// Order orden de venta: cotización aceptada en seguimiento de cumplimiento
// y cobro. Hereda el snapshot financiero de la cotización de origen; nunca
// lo recalcula.
type Order struct {
	ID         string
	Folio      string // ej. ORD-2026-00087
	QuoteID    string
	ClientID   string
	SalesRepID string
	Status     string
	Items      []pricing.LineItem
	Financials pricing.Financials
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusApproved:  {OrderStatusPOSent, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusPOSent:    {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {OrderStatusPaid},
	OrderStatusPaid:      {},
	OrderStatusCancelled: {},
}

// CanTransitionTo reporta si el cambio de estado es válido.
func (o *Order) CanTransitionTo(next string) bool {
	for _, s := range orderTransitions[o.Status] {
		if s == next {
			return true
		}
	}
	return false
}
