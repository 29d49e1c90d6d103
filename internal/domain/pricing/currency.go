package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/domain"
)

// Currency moneda soportada. Conjunto cerrado: MXN y USD.
type Currency string

const (
	MXN Currency = "MXN"
	USD Currency = "USD"
)

// ParseCurrency valida un código de moneda. Cualquier valor fuera del
// conjunto soportado se rechaza; nunca se deja pasar en silencio.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case MXN, USD:
		return Currency(s), nil
	}
	return "", domain.ErrUnsupportedCurrencyPair
}

// Valid reporta si la moneda pertenece al conjunto soportado.
func (c Currency) Valid() bool {
	return c == MXN || c == USD
}

// convert pasa un monto de una moneda a otra usando la paridad vigente. El
// tipo de cambio se captura como "1 USD = ? MXN", por lo que USD→MXN
// multiplica y MXN→USD divide; cualquier otro par es un error explícito, no
// un passthrough.
func convert(amount decimal.Decimal, from, to Currency, exchangeRate decimal.Decimal) (decimal.Decimal, error) {
	if !from.Valid() || !to.Valid() {
		return decimal.Zero, domain.ErrUnsupportedCurrencyPair
	}
	if from == to {
		return amount, nil
	}
	// Solo aquí interviene la paridad: una conversión real exige rate > 0.
	if exchangeRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidConfiguration
	}
	switch {
	case from == USD && to == MXN:
		return amount.Mul(exchangeRate), nil
	case from == MXN && to == USD:
		return amount.Div(exchangeRate), nil
	}
	return decimal.Zero, domain.ErrUnsupportedCurrencyPair
}
