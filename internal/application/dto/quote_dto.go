package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemRequest partida de cotización en el body. Si los costos van en
// cero y hay ProductID, se pre-llenan del catálogo; el margen en cero toma
// el default de ajustes.
type QuoteItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int64           `json:"quantity"`
	BasePrice   decimal.Decimal `json:"base_price"`
	ImportCost  decimal.Decimal `json:"import_cost,omitempty"`
	FreightCost decimal.Decimal `json:"freight_cost,omitempty"`
	Margin      decimal.Decimal `json:"margin,omitempty"`
	Currency    string          `json:"currency,omitempty"` // default MXN
}

// CreateQuoteRequest body para POST /api/quotes.
type CreateQuoteRequest struct {
	ClientID string             `json:"client_id"`
	Currency string             `json:"currency"` // moneda objetivo de la cotización
	Items    []QuoteItemRequest `json:"items"`
	Notes    string             `json:"notes,omitempty"`
}

// UpdateQuoteRequest body para PUT /api/quotes/:id. Solo en DRAFT.
type UpdateQuoteRequest struct {
	Currency *string            `json:"currency,omitempty"`
	Items    []QuoteItemRequest `json:"items,omitempty"`
	Notes    *string            `json:"notes,omitempty"`
}

// QuoteItemResponse partida en respuestas, con precio unitario calculado
// en la moneda de la cotización.
type QuoteItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	BasePrice   decimal.Decimal `json:"base_price"`
	ImportCost  decimal.Decimal `json:"import_cost"`
	FreightCost decimal.Decimal `json:"freight_cost"`
	Margin      decimal.Decimal `json:"margin"`
	Currency    string          `json:"currency"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// FinancialsResponse resumen financiero del documento.
type FinancialsResponse struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// QuoteResponse cotización completa.
type QuoteResponse struct {
	ID          string              `json:"id"`
	Folio       string              `json:"folio"`
	ClientID    string              `json:"client_id"`
	ClientName  string              `json:"client_name,omitempty"`
	SalesRepID  string              `json:"sales_rep_id"`
	Status      string              `json:"status"`
	Items       []QuoteItemResponse `json:"items"`
	Financials  FinancialsResponse  `json:"financials"`
	Notes       string              `json:"notes,omitempty"`
	SentAt      *time.Time          `json:"sent_at,omitempty"`
	FinalizedAt *time.Time          `json:"finalized_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// QuoteListResponse listado paginado.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
