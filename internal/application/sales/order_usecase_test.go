package sales

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	folio  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetByQuoteID(quoteID string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.QuoteID == quoteID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SalesRepID == salesRepID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByStatus(status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListBySalesRepAndStatus(salesRepID, status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SalesRepID == salesRepID && o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) NextFolio(year int) (string, error) {
	r.folio++
	return fmt.Sprintf("ORD-%d-%05d", year, r.folio), nil
}

// fakeOrderTx pasa los repos tal cual; la atomicidad real la prueba la
// capa postgres.
type fakeOrderTx struct {
	quotes repository.QuoteRepository
	orders repository.OrderRepository
}

func (t *fakeOrderTx) RunOrderCreation(ctx context.Context, fn func(repository.QuoteRepository, repository.OrderRepository) error) error {
	return fn(t.quotes, t.orders)
}

type orderFixture struct {
	*quoteFixture
	orders  *fakeOrderRepo
	orderUC *OrderUseCase
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	qf := newQuoteFixture(t)
	orders := newFakeOrderRepo()
	return &orderFixture{
		quoteFixture: qf,
		orders:       orders,
		orderUC:      NewOrderUseCase(orders, qf.quotes, &fakeOrderTx{quotes: qf.quotes, orders: orders}),
	}
}

// finalizedQuote crea, envía y finaliza una cotización lista para convertirse.
func (f *orderFixture) finalizedQuote(t *testing.T, repID string) *dto.QuoteResponse {
	t.Helper()
	resp, err := f.uc.Create(repID, authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Currency: "MXN",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)
	_, err = f.uc.Send(repID, authz.RoleSales, resp.ID)
	require.NoError(t, err)
	final, err := f.uc.Finalize(repID, authz.RoleSales, resp.ID)
	require.NoError(t, err)
	return final
}

func TestCrearOrden_HeredaSnapshotDeCotizacion(t *testing.T) {
	f := newOrderFixture(t)
	quote := f.finalizedQuote(t, "rep-1")

	order, err := f.orderUC.CreateFromQuote(context.Background(), "rep-1", authz.RoleSales, dto.CreateOrderRequest{QuoteID: quote.ID})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, quote.ID, order.QuoteID)
	assert.Equal(t, quote.ClientID, order.ClientID)
	assert.Equal(t, quote.SalesRepID, order.SalesRepID)
	// el snapshot congelado pasa intacto
	assert.True(t, order.Financials.Total.Equal(quote.Financials.Total))
	assert.Len(t, order.Items, len(quote.Items))
}

func TestCrearOrden_RechazaCotizacionNoFinalizada(t *testing.T) {
	f := newOrderFixture(t)
	resp, err := f.uc.Create("rep-1", authz.RoleSales, dto.CreateQuoteRequest{
		ClientID: "cli-1",
		Items:    []dto.QuoteItemRequest{usdItemRequest()},
	})
	require.NoError(t, err)

	_, err = f.orderUC.CreateFromQuote(context.Background(), "rep-1", authz.RoleSales, dto.CreateOrderRequest{QuoteID: resp.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestCrearOrden_DuplicadoEsConflicto(t *testing.T) {
	f := newOrderFixture(t)
	quote := f.finalizedQuote(t, "rep-1")

	_, err := f.orderUC.CreateFromQuote(context.Background(), "rep-1", authz.RoleSales, dto.CreateOrderRequest{QuoteID: quote.ID})
	require.NoError(t, err)

	_, err = f.orderUC.CreateFromQuote(context.Background(), "rep-1", authz.RoleSales, dto.CreateOrderRequest{QuoteID: quote.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestActualizarEstadoOrden_ValidaTransiciones(t *testing.T) {
	f := newOrderFixture(t)
	quote := f.finalizedQuote(t, "rep-1")
	order, err := f.orderUC.CreateFromQuote(context.Background(), "rep-1", authz.RoleSales, dto.CreateOrderRequest{QuoteID: quote.ID})
	require.NoError(t, err)

	// PENDING no puede brincar a COMPLETED
	_, err = f.orderUC.UpdateStatus("rep-1", authz.RoleSales, order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCompleted})
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	approved, err := f.orderUC.UpdateStatus("rep-1", authz.RoleSales, order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, approved.Status)
}

func TestActualizarEstadoOrden_PaidSoloPorPago(t *testing.T) {
	f := newOrderFixture(t)
	quote := f.finalizedQuote(t, "rep-1")
	order, err := f.orderUC.CreateFromQuote(context.Background(), "rep-1", authz.RoleSales, dto.CreateOrderRequest{QuoteID: quote.ID})
	require.NoError(t, err)

	_, err = f.orderUC.UpdateStatus("rep-1", authz.RoleSales, order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusPaid})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrden_VendedorNoVeAjenas(t *testing.T) {
	f := newOrderFixture(t)
	quote := f.finalizedQuote(t, "rep-1")
	order, err := f.orderUC.CreateFromQuote(context.Background(), "rep-1", authz.RoleSales, dto.CreateOrderRequest{QuoteID: quote.ID})
	require.NoError(t, err)

	_, err = f.orderUC.GetByID("rep-2", authz.RoleSales, order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListarOrdenes_FiltroEstadoRespetaVendedor(t *testing.T) {
	f := newOrderFixture(t)
	mine, err := f.orderUC.CreateFromQuote(context.Background(), "rep-1", authz.RoleSales, dto.CreateOrderRequest{QuoteID: f.finalizedQuote(t, "rep-1").ID})
	require.NoError(t, err)
	_, err = f.orderUC.CreateFromQuote(context.Background(), "rep-2", authz.RoleSales, dto.CreateOrderRequest{QuoteID: f.finalizedQuote(t, "rep-2").ID})
	require.NoError(t, err)

	got, err := f.orderUC.List("rep-1", authz.RoleSales, entity.OrderStatusPending, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, mine.ID, got.Items[0].ID)
}
