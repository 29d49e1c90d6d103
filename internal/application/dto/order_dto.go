package dto

import "time"

// CreateOrderRequest body para POST /api/orders: convierte una cotización
// FINALIZED en orden de venta.
type CreateOrderRequest struct {
	QuoteID string `json:"quote_id"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"` // APPROVED | PO_SENT | COMPLETED | CANCELLED
}

// OrderResponse orden completa. Hereda partidas y snapshot de la cotización.
type OrderResponse struct {
	ID         string              `json:"id"`
	Folio      string              `json:"folio"`
	QuoteID    string              `json:"quote_id"`
	ClientID   string              `json:"client_id"`
	ClientName string              `json:"client_name,omitempty"`
	SalesRepID string              `json:"sales_rep_id"`
	Status     string              `json:"status"`
	Items      []QuoteItemResponse `json:"items"`
	Financials FinancialsResponse  `json:"financials"`
	Notes      string              `json:"notes,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
