package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
)

// Product producto del catálogo. Sus costos pre-llenan las partidas de una
// cotización; una vez en la cotización, la partida vive por su cuenta.
type Product struct {
	ID          string
	Name        string
	SKU         string
	Description string
	BasePrice   decimal.Decimal
	ImportCost  decimal.Decimal
	FreightCost decimal.Decimal
	Currency    pricing.Currency
	Unit        string // PZA, M, KG
	SupplierID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
