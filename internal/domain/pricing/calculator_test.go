package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Partida de referencia: basePrice=100, importCost=10, freightCost=20,
// margin=0.30, USD → costo 130, precio 169 USD.
func usdItem() pricing.LineItem {
	return pricing.LineItem{
		ProductID:   "prod-usd-1",
		ProductName: "Sensor Pro",
		Quantity:    1,
		BasePrice:   d("100"),
		ImportCost:  d("10"),
		FreightCost: d("20"),
		Margin:      d("0.30"),
		Currency:    pricing.USD,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeLineUnitPrice
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeLineUnitPrice_MismaMoneda_NoConvierte(t *testing.T) {
	item := usdItem()
	price, err := pricing.ComputeLineUnitPrice(item, pricing.USD, d("18.20"))
	require.NoError(t, err)
	assert.True(t, d("169").Equal(price), "costo 130 * 1.30 = 169 USD, obtuvo %s", price)
}

func TestComputeLineUnitPrice_USDaMXN_Multiplica(t *testing.T) {
	price, err := pricing.ComputeLineUnitPrice(usdItem(), pricing.MXN, d("18.20"))
	require.NoError(t, err)
	assert.True(t, d("3075.80").Equal(price), "169 USD * 18.20 = 3075.80 MXN, obtuvo %s", price)
}

func TestComputeLineUnitPrice_MXNaUSD_Divide(t *testing.T) {
	item := usdItem()
	item.Currency = pricing.MXN
	item.BasePrice = d("3045.80")
	item.ImportCost = decimal.Zero
	item.FreightCost = d("30")
	item.Margin = decimal.Zero
	// costo 3075.80 MXN / 18.20 = 169 USD
	price, err := pricing.ComputeLineUnitPrice(item, pricing.USD, d("18.20"))
	require.NoError(t, err)
	assert.True(t, d("169").Equal(price), "3075.80 MXN / 18.20 = 169 USD, obtuvo %s", price)
}

// Ida y vuelta: convertir USD→MXN y dividir entre la paridad recupera el
// precio original en USD sin pérdida (aritmética decimal exacta).
func TestComputeLineUnitPrice_IdaYVuelta(t *testing.T) {
	rate := d("18.20")
	priceUSD, err := pricing.ComputeLineUnitPrice(usdItem(), pricing.USD, rate)
	require.NoError(t, err)
	priceMXN, err := pricing.ComputeLineUnitPrice(usdItem(), pricing.MXN, rate)
	require.NoError(t, err)

	recovered := priceMXN.Div(rate)
	assert.True(t, priceUSD.Sub(recovered).Abs().LessThan(d("0.000001")),
		"priceMXN/rate debe recuperar priceUSD: %s vs %s", recovered, priceUSD)
}

// Monotonicidad: subir cualquier componente de costo o el margen nunca baja
// el precio unitario.
func TestComputeLineUnitPrice_MonotonoEnCostosYMargen(t *testing.T) {
	base := usdItem()
	basePrice, err := pricing.ComputeLineUnitPrice(base, pricing.MXN, d("18.20"))
	require.NoError(t, err)

	bump := d("5")
	cases := map[string]pricing.LineItem{
		"basePrice":   {ProductID: base.ProductID, Quantity: 1, BasePrice: base.BasePrice.Add(bump), ImportCost: base.ImportCost, FreightCost: base.FreightCost, Margin: base.Margin, Currency: base.Currency},
		"importCost":  {ProductID: base.ProductID, Quantity: 1, BasePrice: base.BasePrice, ImportCost: base.ImportCost.Add(bump), FreightCost: base.FreightCost, Margin: base.Margin, Currency: base.Currency},
		"freightCost": {ProductID: base.ProductID, Quantity: 1, BasePrice: base.BasePrice, ImportCost: base.ImportCost, FreightCost: base.FreightCost.Add(bump), Margin: base.Margin, Currency: base.Currency},
		"margin":      {ProductID: base.ProductID, Quantity: 1, BasePrice: base.BasePrice, ImportCost: base.ImportCost, FreightCost: base.FreightCost, Margin: base.Margin.Add(d("0.05")), Currency: base.Currency},
	}
	for name, item := range cases {
		bumped, err := pricing.ComputeLineUnitPrice(item, pricing.MXN, d("18.20"))
		require.NoError(t, err, name)
		assert.True(t, bumped.GreaterThanOrEqual(basePrice),
			"subir %s no debe bajar el precio (%s < %s)", name, bumped, basePrice)
	}
}

func TestComputeLineUnitPrice_MontosNegativos_ErrInvalidLineItem(t *testing.T) {
	for name, mutate := range map[string]func(*pricing.LineItem){
		"basePrice negativo":   func(it *pricing.LineItem) { it.BasePrice = d("-1") },
		"importCost negativo":  func(it *pricing.LineItem) { it.ImportCost = d("-0.01") },
		"freightCost negativo": func(it *pricing.LineItem) { it.FreightCost = d("-20") },
		"margen negativo":      func(it *pricing.LineItem) { it.Margin = d("-0.10") },
		"cantidad cero":        func(it *pricing.LineItem) { it.Quantity = 0 },
		"cantidad negativa":    func(it *pricing.LineItem) { it.Quantity = -3 },
	} {
		item := usdItem()
		mutate(&item)
		_, err := pricing.ComputeLineUnitPrice(item, pricing.MXN, d("18.20"))
		assert.ErrorIs(t, err, domain.ErrInvalidLineItem, name)
	}
}

func TestComputeLineUnitPrice_MonedaDesconocida_ErrUnsupportedCurrencyPair(t *testing.T) {
	item := usdItem()
	item.Currency = pricing.Currency("EUR")
	_, err := pricing.ComputeLineUnitPrice(item, pricing.MXN, d("18.20"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrencyPair)

	_, err = pricing.ComputeLineUnitPrice(usdItem(), pricing.Currency("EUR"), d("18.20"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrencyPair)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeQuoteFinancials
// ──────────────────────────────────────────────────────────────────────────────

// Vector end-to-end de referencia: 2 x 20000 MXN sin costos extra ni margen,
// IVA frontera 8% → subtotal 40000, impuesto 3200, total 43200.
func TestComputeQuoteFinancials_VectorMXN(t *testing.T) {
	items := []pricing.LineItem{{
		ProductID:   "prod-mxn-1",
		ProductName: "Panel Serie 5000",
		Quantity:    2,
		BasePrice:   d("20000"),
		ImportCost:  decimal.Zero,
		FreightCost: decimal.Zero,
		Margin:      decimal.Zero,
		Currency:    pricing.MXN,
	}}

	fin, err := pricing.ComputeQuoteFinancials(items, pricing.MXN, d("18.20"), d("0.08"))
	require.NoError(t, err)

	assert.True(t, d("40000").Equal(fin.Subtotal), "subtotal: %s", fin.Subtotal)
	assert.True(t, d("3200").Equal(fin.TaxAmount), "taxAmount: %s", fin.TaxAmount)
	assert.True(t, d("43200").Equal(fin.Total), "total: %s", fin.Total)
	assert.Equal(t, pricing.MXN, fin.Currency)
	assert.True(t, d("0.08").Equal(fin.TaxRate))
}

// Invariantes estructurales: total = subtotal + impuesto; impuesto = subtotal * tasa.
func TestComputeQuoteFinancials_InvariantesDeTotales(t *testing.T) {
	items := []pricing.LineItem{
		usdItem(),
		{ProductID: "p2", Quantity: 3, BasePrice: d("1500"), ImportCost: d("25.50"), FreightCost: d("80"), Margin: d("0.25"), Currency: pricing.MXN},
	}
	fin, err := pricing.ComputeQuoteFinancials(items, pricing.MXN, d("17.35"), d("0.16"))
	require.NoError(t, err)

	assert.True(t, fin.Total.Equal(fin.Subtotal.Add(fin.TaxAmount)), "total == subtotal + taxAmount")
	assert.True(t, fin.TaxAmount.Equal(fin.Subtotal.Mul(fin.TaxRate)), "taxAmount == subtotal * taxRate")
}

func TestComputeQuoteFinancials_ListaVacia_TodoCeroSinError(t *testing.T) {
	fin, err := pricing.ComputeQuoteFinancials(nil, pricing.MXN, d("18.20"), d("0.16"))
	require.NoError(t, err)
	assert.True(t, fin.Subtotal.IsZero())
	assert.True(t, fin.TaxAmount.IsZero())
	assert.True(t, fin.Total.IsZero())
}

// Idempotencia: dos llamadas con los mismos argumentos producen exactamente
// el mismo resultado.
func TestComputeQuoteFinancials_Idempotente(t *testing.T) {
	items := []pricing.LineItem{usdItem(), usdItem()}
	a, err1 := pricing.ComputeQuoteFinancials(items, pricing.MXN, d("18.20"), d("0.08"))
	b, err2 := pricing.ComputeQuoteFinancials(items, pricing.MXN, d("18.20"), d("0.08"))
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.TaxAmount.Equal(b.TaxAmount))
	assert.True(t, a.Total.Equal(b.Total))
}

// Paridad no positiva: error solo si alguna partida efectivamente requiere
// conversión. Con partidas en la misma moneda la paridad no interviene.
func TestComputeQuoteFinancials_ParidadNoPositiva(t *testing.T) {
	cross := []pricing.LineItem{usdItem()}
	_, err := pricing.ComputeQuoteFinancials(cross, pricing.MXN, decimal.Zero, d("0.08"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration, "paridad 0 con partida cruzada")

	_, err = pricing.ComputeQuoteFinancials(cross, pricing.MXN, d("-18.20"), d("0.08"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration, "paridad negativa con partida cruzada")

	same := []pricing.LineItem{{
		ProductID: "p-mxn", Quantity: 1, BasePrice: d("100"),
		Margin: d("0.30"), Currency: pricing.MXN,
	}}
	fin, err := pricing.ComputeQuoteFinancials(same, pricing.MXN, decimal.Zero, d("0.08"))
	require.NoError(t, err, "misma moneda no debe tocar la paridad")
	assert.True(t, d("130").Equal(fin.Subtotal))
}

func TestComputeQuoteFinancials_TasaImpuestoNegativa_ErrInvalidConfiguration(t *testing.T) {
	_, err := pricing.ComputeQuoteFinancials([]pricing.LineItem{usdItem()}, pricing.MXN, d("18.20"), d("-0.08"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestComputeQuoteFinancials_PartidaInvalida_RechazaTodoElCalculo(t *testing.T) {
	bad := usdItem()
	bad.BasePrice = d("-100")
	_, err := pricing.ComputeQuoteFinancials([]pricing.LineItem{usdItem(), bad}, pricing.MXN, d("18.20"), d("0.08"))
	assert.ErrorIs(t, err, domain.ErrInvalidLineItem,
		"una partida malformada invalida el cálculo completo, nunca se coerciona a cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Round2
// ──────────────────────────────────────────────────────────────────────────────

// El redondeo se aplica solo en el snapshot final; la precisión intermedia
// se conserva completa.
func TestFinancials_Round2_SoloEnSnapshot(t *testing.T) {
	items := []pricing.LineItem{{
		ProductID: "p1", Quantity: 3, BasePrice: d("33.335"),
		Margin: d("0.10"), Currency: pricing.MXN,
	}}
	fin, err := pricing.ComputeQuoteFinancials(items, pricing.MXN, d("18.20"), d("0.16"))
	require.NoError(t, err)

	// 3 * 33.335 * 1.10 = 110.0055 → snapshot 110.01
	assert.True(t, d("110.0055").Equal(fin.Subtotal), "precisión completa antes del snapshot: %s", fin.Subtotal)

	snap := fin.Round2()
	assert.True(t, d("110.01").Equal(snap.Subtotal), "snapshot a 2 decimales: %s", snap.Subtotal)
	// El receptor no se muta.
	assert.True(t, d("110.0055").Equal(fin.Subtotal))
}

func TestParseCurrency(t *testing.T) {
	c, err := pricing.ParseCurrency("MXN")
	require.NoError(t, err)
	assert.Equal(t, pricing.MXN, c)

	c, err = pricing.ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, pricing.USD, c)

	_, err = pricing.ParseCurrency("EUR")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrencyPair)

	_, err = pricing.ParseCurrency("")
	assert.Error(t, err)
}
