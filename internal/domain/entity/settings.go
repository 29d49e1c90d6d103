package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID clave del documento único de ajustes.
const SettingsID = "global"

// Settings ajustes comerciales globales (documento único, editable solo por
// administración). El tipo de cambio se captura como MXN por 1 USD.
type Settings struct {
	ID             string
	DefaultMargin  decimal.Decimal
	ExchangeRate   decimal.Decimal
	DefaultTaxRate decimal.Decimal
	UpdatedBy      string
	UpdatedAt      time.Time
}
