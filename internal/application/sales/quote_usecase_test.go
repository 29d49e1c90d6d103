package sales

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
)

// ────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ────────────────────────────────────────────────────────────────────────────

type fakeQuoteRepo struct {
	quotes map[string]*entity.Quote
	folio  int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[string]*entity.Quote)}
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error {
	cp := *q
	r.quotes[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuoteRepo) Update(q *entity.Quote) error {
	if _, ok := r.quotes[q.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *q
	r.quotes[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	out := make([]*entity.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeQuoteRepo) ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.quotes {
		if q.SalesRepID == salesRepID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) ListByStatus(status string, limit, offset int) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.quotes {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) ListBySalesRepAndStatus(salesRepID, status string, limit, offset int) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.quotes {
		if q.SalesRepID == salesRepID && q.Status == status {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) NextFolio(year int) (string, error) {
	r.folio++
	return fmt.Sprintf("COT-%d-%05d", year, r.folio), nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*entity.Client)}
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) GetByRFC(rfc string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.RFC == rfc {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeClientRepo) Update(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeClientRepo) ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.SalesRepID == salesRepID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeClientRepo) Delete(id string) error { delete(r.clients, id); return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}
func (r *fakeNotificationRepo) ListByUser(userID string, limit, offset int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}
func (r *fakeNotificationRepo) MarkRead(id, userID string) error { return nil }

type fakeSettings struct {
	cfg *entity.Settings
}

func (s *fakeSettings) Current() (*entity.Settings, error) { return s.cfg, nil }

type fakePDFGen struct{}

func (fakePDFGen) GenerateQuotePDF(q *entity.Quote, c *entity.Client) ([]byte, error) {
	return []byte("%PDF-1.7 " + q.Folio), nil
}

// ────────────────────────────────────────────────────────────────────────────
// Arnés
// ────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type quoteFixture struct {
	uc       *QuoteUseCase
	quotes   *fakeQuoteRepo
	clients  *fakeClientRepo
	products *fakeProductRepo
	notifs   *fakeNotificationRepo
	settings *fakeSettings
}

func newQuoteFixture(t *testing.T) *quoteFixture {
	t.Helper()
	f := &quoteFixture{
		quotes:   newFakeQuoteRepo(),
		clients:  newFakeClientRepo(),
		products: newFakeProductRepo(),
		notifs:   &fakeNotificationRepo{},
		settings: &fakeSettings{cfg: &entity.Settings{
			ID:             entity.SettingsID,
			DefaultMargin:  d("0.30"),
			ExchangeRate:   d("18.20"),
			DefaultTaxRate: d("0.08"),
		}},
	}
	f.clients.clients["cli-1"] = &entity.Client{
		ID:          "cli-1",
		RazonSocial: "Aceros del Norte SA de CV",
		RFC:         "ANO010203AB1",
		TaxRate:     d("0.08"),
		SalesRepID:  "rep-1",
	}
	f.uc = NewQuoteUseCase(f.quotes, f.clients, f.products, f.notifs, f.settings, fakePDFGen{})
	return f
}

func usdItemRequest() dto.QuoteItemRequest {
	return dto.QuoteItemRequest{
		ProductName: "Motor trifásico 5HP",
		Quantity:    1,
		BasePrice:   d("100"),
		ImportCost:  d("10"),
		FreightCost: d("20"),
		Margin:      d("0.30"),
		Currency:    "USD",
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Crear
// ────────────────────────────────────────────────────────────────────────────

func TestCrearCotizacion_ConvierteUSDaMXN(t *testing.T) {
	f := newQuoteFixture(t)

	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Currency: "MXN",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	// costo 130 USD, margen 0.30: precio 169 USD, a 18.20 son 3075.80 MXN
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].UnitPrice.Equal(d("3075.80")),
		"precio unitario esperado 3075.80, obtuvo %s", resp.Items[0].UnitPrice)
	assert.True(t, resp.Financials.Subtotal.Equal(d("3075.80")))
	assert.True(t, resp.Financials.TaxAmount.Equal(d("246.064")))
	assert.True(t, resp.Financials.Total.Equal(d("3321.864")))
	assert.Equal(t, entity.QuoteStatusDraft, resp.Status)
	assert.Equal(t, "COT-"+fmt.Sprint(time.Now().Year())+"-00001", resp.Folio)
	assert.Equal(t, "Aceros del Norte SA de CV", resp.ClientName)
}

func TestCrearCotizacion_PreLlenaDesdeCatalogo(t *testing.T) {
	f := newQuoteFixture(t)
	f.products.products["prod-1"] = &entity.Product{
		ID:          "prod-1",
		Name:        "Tubería galvanizada 2in",
		SKU:         "TUB-GAL-2",
		BasePrice:   d("20000"),
		Currency:    pricing.MXN,
		Unit:        "M",
	}

	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Currency: "MXN",
		Items: []dto.QuoteItemRequest{{
			ProductID: "prod-1",
			Quantity:  2,
			Margin:    d("0.2"),
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tubería galvanizada 2in", resp.Items[0].ProductName)
	assert.True(t, resp.Items[0].BasePrice.Equal(d("20000")))
	// 20000 * 1.2 = 24000 por unidad, dos unidades
	assert.True(t, resp.Financials.Subtotal.Equal(d("48000")))
}

func TestCrearCotizacion_MargenCeroTomaDefault(t *testing.T) {
	f := newQuoteFixture(t)
	item := usdItemRequest()
	item.Margin = decimal.Zero
	item.Currency = "USD"

	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Currency: "USD",
		Items:    []dto.QuoteItemRequest{item},
	})
	require.NoError(t, err)

	// margen default 0.30: 130 * 1.30 = 169 en la misma moneda
	assert.True(t, resp.Items[0].UnitPrice.Equal(d("169")))
	assert.True(t, resp.Items[0].Margin.Equal(d("0.30")))
}

func TestCrearCotizacion_ClienteInexistente(t *testing.T) {
	f := newQuoteFixture(t)

	_, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "no-existe",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearCotizacion_SinPartidas(t *testing.T) {
	f := newQuoteFixture(t)

	_, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{ClientID: "cli-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearCotizacion_MonedaDesconocida(t *testing.T) {
	f := newQuoteFixture(t)

	_, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Currency: "EUR",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrencyPair)
}

// ────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ────────────────────────────────────────────────────────────────────────────

func TestEnviarCotizacion_CongelaSnapshotRedondeado(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Currency: "MXN",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	sent, err := f.uc.Send("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)
	// el total en DRAFT era 3321.864; el snapshot se congela a centavos
	assert.True(t, sent.Financials.TaxAmount.Equal(d("246.06")))
	assert.True(t, sent.Financials.Total.Equal(d("3321.86")))

	// un cambio de paridad posterior no toca el documento enviado
	f.settings.cfg.ExchangeRate = d("25.00")
	got, err := f.uc.GetByID("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)
	assert.True(t, got.Financials.Total.Equal(d("3321.86")))
}

func TestEnviarCotizacion_TomaParidadVigente(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Currency: "MXN",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	// la paridad cambia entre la captura y el envío; el snapshot se congela
	// con la vigente, no con la que había al editar
	f.settings.cfg.ExchangeRate = d("19.00")

	sent, err := f.uc.Send("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)
	assert.True(t, sent.Financials.Subtotal.Equal(d("3211.00")), "subtotal %s", sent.Financials.Subtotal)
	assert.True(t, sent.Financials.TaxAmount.Equal(d("256.88")), "tax %s", sent.Financials.TaxAmount)
	assert.True(t, sent.Financials.Total.Equal(d("3467.88")), "total %s", sent.Financials.Total)
	assert.True(t, sent.Financials.ExchangeRate.Equal(d("19.00")))
}

func TestActualizarCotizacion_SoloEnDraft(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)
	_, err = f.uc.Send("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)

	notes := "cambio tardío"
	_, err = f.uc.Update("rep-1", authz.RoleSales, resp.ID, dto.UpdateQuoteRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestActualizarCotizacion_RecalculaTotales(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Currency: "MXN",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	item := usdItemRequest()
	item.Quantity = 2
	updated, err := f.uc.Update("rep-1", authz.RoleSales, resp.ID, dto.UpdateQuoteRequest{
		Items: []dto.QuoteItemRequest{item},
	})
	require.NoError(t, err)
	assert.True(t, updated.Financials.Subtotal.Equal(d("6151.60")),
		"subtotal esperado 6151.60, obtuvo %s", updated.Financials.Subtotal)
}

func TestFinalizarCotizacion_RequiereEnviada(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	_, err = f.uc.Finalize("rep-1", authz.RoleSales, resp.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestFinalizarCotizacion_NotificaAlVendedor(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)
	_, err = f.uc.Send("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)

	final, err := f.uc.Finalize("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusFinalized, final.Status)
	require.NotNil(t, final.FinalizedAt)

	notifs, err := f.notifs.ListByUser("rep-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, entity.NotificationQuoteFinalized, notifs[0].Type)
	assert.Contains(t, notifs[0].Message, final.Folio)
}

func TestCancelarCotizacion_FinalizadaEsInmutable(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)
	_, err = f.uc.Send("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)
	_, err = f.uc.Finalize("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)

	_, err = f.uc.Cancel("rep-1", authz.RoleSales, resp.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

// ────────────────────────────────────────────────────────────────────────────
// Visibilidad por rol
// ────────────────────────────────────────────────────────────────────────────

func TestVendedorNoVeCotizacionesAjenas(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	_, err = f.uc.GetByID("rep-2", authz.RoleSales, resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// ADMIN sí puede
	got, err := f.uc.GetByID("admin-1", authz.RoleAdmin, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}

func TestListarCotizaciones_VendedorSoloLasPropias(t *testing.T) {
	f := newQuoteFixture(t)
	_, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)
	_, err = f.uc.Create("rep-2", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	mine, err := f.uc.List("rep-1", authz.RoleSales, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, mine.Items, 1)

	all, err := f.uc.List("admin-1", authz.RoleAdmin, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestListarCotizaciones_FiltroEstadoRespetaVendedor(t *testing.T) {
	f := newQuoteFixture(t)
	mine, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)
	other, err := f.uc.Create("rep-2", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)
	_, err = f.uc.Send("rep-1", authz.RoleSales, mine.ID)
	require.NoError(t, err)
	_, err = f.uc.Send("rep-2", authz.RoleSales, other.ID)
	require.NoError(t, err)

	got, err := f.uc.List("rep-1", authz.RoleSales, entity.QuoteStatusSent, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, mine.ID, got.Items[0].ID)
}

// ────────────────────────────────────────────────────────────────────────────
// PDF
// ────────────────────────────────────────────────────────────────────────────

func TestGenerarPDF_NombraPorFolio(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)
	_, err = f.uc.Send("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)

	data, filename, err := f.uc.GeneratePDF("rep-1", authz.RoleSales, resp.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, resp.Folio+".pdf", filename)
}

func TestGenerarPDF_RechazaBorrador(t *testing.T) {
	f := newQuoteFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	_, _, err = f.uc.GeneratePDF("rep-1", authz.RoleSales, resp.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}
