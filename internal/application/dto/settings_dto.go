package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest body para PUT /api/settings (ADMIN/SUPERADMIN).
type UpdateSettingsRequest struct {
	DefaultMargin  *decimal.Decimal `json:"default_margin,omitempty"`
	ExchangeRate   *decimal.Decimal `json:"exchange_rate,omitempty"` // MXN por 1 USD
	DefaultTaxRate *decimal.Decimal `json:"default_tax_rate,omitempty"`
}

// SettingsResponse ajustes comerciales vigentes.
type SettingsResponse struct {
	DefaultMargin  decimal.Decimal `json:"default_margin"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate"`
	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
	UpdatedBy      string          `json:"updated_by,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
