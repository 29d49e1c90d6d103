package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
	ImportCost  decimal.Decimal `json:"import_cost,omitempty"`
	FreightCost decimal.Decimal `json:"freight_cost,omitempty"`
	Currency    string          `json:"currency"` // MXN | USD
	Unit        string          `json:"unit,omitempty"`
	SupplierID  string          `json:"supplier_id,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
	ImportCost  *decimal.Decimal `json:"import_cost,omitempty"`
	FreightCost *decimal.Decimal `json:"freight_cost,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	SupplierID  *string          `json:"supplier_id,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
	ImportCost  decimal.Decimal `json:"import_cost"`
	FreightCost decimal.Decimal `json:"freight_cost"`
	Currency    string          `json:"currency"`
	Unit        string          `json:"unit,omitempty"`
	SupplierID  string          `json:"supplier_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
