// Package pdf implementa la representación imprimible de una cotización
// (la que el vendedor manda al cliente).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Norte Industrial   │  Folio + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Razón social + RFC + contacto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Importe               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL (+ paridad si aplica)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: vigencia y condiciones                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/application/sales"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ sales.QuotePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa sales.QuotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	companyName string
}

// NewMarotoPDFGenerator construye el generador con el nombre comercial que
// encabeza el documento.
func NewMarotoPDFGenerator(companyName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{companyName: companyName}
}

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(quote *entity.Quote, client *entity.Client) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+quote.Folio, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(quote) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(quote))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(quote))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(quote *entity.Quote) core.Row {
	fecha := quote.CreatedAt.Format("02/01/2006")
	if quote.SentAt != nil {
		fecha = quote.SentAt.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Suministros industriales", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(quote.Folio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func clientRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RFC: %s   |   Atención: %s   |   Condiciones: %s",
				client.RFC,
				nonEmpty(client.ContactName, "—"),
				nonEmpty(client.CreditTerms, "Contado"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por partida, con el precio en la moneda del
// documento calculado con el tipo de cambio del snapshot.
func tableItemRows(quote *entity.Quote) []core.Row {
	fin := quote.Financials
	result := make([]core.Row, 0, len(quote.Items))
	for _, it := range quote.Items {
		unit, err := pricing.ComputeLineUnitPrice(it, fin.Currency, fin.ExchangeRate)
		if err != nil {
			unit = decimal.Zero
		}
		importe := unit.Mul(decimal.NewFromInt(it.Quantity))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(unit.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(importe.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(quote *entity.Quote) core.Row {
	fin := quote.Financials
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}
	ivaPct := fin.TaxRate.Mul(decimal.NewFromInt(100)).StringFixed(0)

	return row.New(22).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label("IVA ("+ivaPct+"%):"),
			grandLabel("TOTAL "+string(fin.Currency)+":"),
		),
		col.New(4).Add(
			value("$"+formatMoney(fin.Subtotal.StringFixed(2))),
			value("$"+formatMoney(fin.TaxAmount.StringFixed(2))),
			grandValue("$"+formatMoney(fin.Total.StringFixed(2))),
		),
		col.New(1),
	)
}

func footerRow(quote *entity.Quote) core.Row {
	fin := quote.Financials
	leyenda := "Cotización válida por 15 días naturales. Precios sujetos a cambio sin previo aviso después de la vigencia."
	if fin.ExchangeRate.IsPositive() && hasForeignItems(quote.Items, fin.Currency) {
		leyenda += fmt.Sprintf(" Paridad aplicada: 1 USD = %s MXN.", fin.ExchangeRate.StringFixed(2))
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(leyenda, props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func hasForeignItems(items []pricing.LineItem, target pricing.Currency) bool {
	for _, it := range items {
		if it.Currency != target {
			return true
		}
	}
	return false
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta comas de miles en un monto ya fijado a dos decimales.
// Ej: "3075.80" → "3,075.80", "1000000.00" → "1,000,000.00"
func formatMoney(s string) string {
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}
	n := len(intPart)
	if n <= 3 {
		if neg {
			return "-" + intPart + frac
		}
		return intPart + frac
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf) + frac
	if neg {
		out = "-" + out
	}
	return out
}
