// Package pricing implementa el motor de precios de cotizaciones y órdenes:
// convierte partidas con costos en monedas mixtas a un resumen financiero
// normalizado en la moneda de la cotización, con margen e impuesto.
//
// Todo el cálculo usa decimal (nunca float64) y es determinista: mismos
// argumentos, mismos totales. El redondeo a 2 decimales se aplica una sola
// vez sobre el snapshot final (Round2), no línea por línea, para no acumular
// error de redondeo.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/domain"
)

// LineItem una partida de cotización u orden. Los montos están en la moneda
// propia de la partida (Currency), no en la de la cotización.
type LineItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	ImportCost  decimal.Decimal `json:"importCost"`
	FreightCost decimal.Decimal `json:"freightCost"`
	Margin      decimal.Decimal `json:"margin"` // fracción: 0.30 = 30%
	Currency    Currency        `json:"currency"`
}

// Validate verifica los invariantes de la partida: cantidad positiva,
// montos no negativos, margen no negativo y moneda soportada.
func (it LineItem) Validate() error {
	if it.Quantity <= 0 {
		return domain.ErrInvalidLineItem
	}
	if it.BasePrice.IsNegative() || it.ImportCost.IsNegative() || it.FreightCost.IsNegative() {
		return domain.ErrInvalidLineItem
	}
	if it.Margin.IsNegative() {
		return domain.ErrInvalidLineItem
	}
	if !it.Currency.Valid() {
		return domain.ErrUnsupportedCurrencyPair
	}
	return nil
}

// Cost devuelve la base de costo: precio base + costo de importación + flete.
func (it LineItem) Cost() decimal.Decimal {
	return it.BasePrice.Add(it.ImportCost).Add(it.FreightCost)
}

// Financials resumen financiero derivado de las partidas. Nunca se edita
// a mano: se recalcula ante cualquier cambio de partidas, margen o paridad,
// y se congela como snapshot al enviar/finalizar el documento.
type Financials struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	Total        decimal.Decimal `json:"total"`
	Currency     Currency        `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// Round2 devuelve el snapshot con montos redondeados a 2 decimales.
// Se usa únicamente al congelar o presentar el documento.
func (f Financials) Round2() Financials {
	f.Subtotal = f.Subtotal.Round(2)
	f.TaxAmount = f.TaxAmount.Round(2)
	f.Total = f.Total.Round(2)
	return f
}

// ComputeLineUnitPrice calcula el precio unitario de una partida en la moneda
// objetivo: costo * (1 + margen), convertido con la paridad si la moneda de la
// partida difiere de la objetivo.
//
// Errores:
//   - domain.ErrInvalidLineItem si la partida viola sus invariantes.
//   - domain.ErrUnsupportedCurrencyPair si interviene una moneda fuera de {MXN, USD}.
//   - domain.ErrInvalidConfiguration si la conversión requiere paridad y esta es <= 0.
//     Una partida en la misma moneda nunca toca la paridad.
func ComputeLineUnitPrice(item LineItem, targetCurrency Currency, exchangeRate decimal.Decimal) (decimal.Decimal, error) {
	if err := item.Validate(); err != nil {
		return decimal.Zero, err
	}
	if !targetCurrency.Valid() {
		return decimal.Zero, domain.ErrUnsupportedCurrencyPair
	}
	price := item.Cost().Mul(decimal.NewFromInt(1).Add(item.Margin))
	return convert(price, item.Currency, targetCurrency, exchangeRate)
}

// ComputeQuoteFinancials calcula el resumen financiero de un conjunto de
// partidas: subtotal, impuesto y total en la moneda objetivo.
//
// Lista vacía no es error: produce subtotal/impuesto/total en cero.
// taxRate es fracción (0.08 o 0.16 en los regímenes observados); negativa es
// domain.ErrInvalidConfiguration. El resultado conserva precisión completa;
// aplicar Round2 solo al congelar el documento.
func ComputeQuoteFinancials(items []LineItem, targetCurrency Currency, exchangeRate, taxRate decimal.Decimal) (Financials, error) {
	if !targetCurrency.Valid() {
		return Financials{}, domain.ErrUnsupportedCurrencyPair
	}
	if taxRate.IsNegative() {
		return Financials{}, domain.ErrInvalidConfiguration
	}

	subtotal := decimal.Zero
	for _, item := range items {
		unitPrice, err := ComputeLineUnitPrice(item, targetCurrency, exchangeRate)
		if err != nil {
			return Financials{}, err
		}
		subtotal = subtotal.Add(unitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}

	taxAmount := subtotal.Mul(taxRate)
	return Financials{
		Subtotal:     subtotal,
		TaxRate:      taxRate,
		TaxAmount:    taxAmount,
		Total:        subtotal.Add(taxAmount),
		Currency:     targetCurrency,
		ExchangeRate: exchangeRate,
	}, nil
}
