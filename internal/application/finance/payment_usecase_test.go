package finance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (r *fakeOrderRepo) Create(o *entity.Order) error { r.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (r *fakeOrderRepo) GetByQuoteID(quoteID string) (*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}
func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) ListByStatus(status string, limit, offset int) ([]*entity.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) ListBySalesRepAndStatus(salesRepID, status string, limit, offset int) ([]*entity.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) NextFolio(year int) (string, error) { return "ORD-2026-00001", nil }

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}
func (r *fakePaymentRepo) ListByOrder(orderID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}
func (r *fakeNotificationRepo) ListByUser(userID string, limit, offset int) ([]*entity.Notification, error) {
	return r.notifications, nil
}
func (r *fakeNotificationRepo) MarkRead(id, userID string) error { return nil }

type fakePaymentTx struct {
	orders        *fakeOrderRepo
	payments      *fakePaymentRepo
	notifications *fakeNotificationRepo
}

func (t *fakePaymentTx) RunPayment(ctx context.Context, fn func(repository.OrderRepository, repository.PaymentRepository, repository.NotificationRepository) error) error {
	return fn(t.orders, t.payments, t.notifications)
}

type paymentFixture struct {
	uc     *PaymentUseCase
	orders *fakeOrderRepo
	pays   *fakePaymentRepo
	notifs *fakeNotificationRepo
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		orders: &fakeOrderRepo{orders: make(map[string]*entity.Order)},
		pays:   &fakePaymentRepo{},
		notifs: &fakeNotificationRepo{},
	}
	f.orders.orders["ord-1"] = &entity.Order{
		ID:         "ord-1",
		Folio:      "ORD-2026-00001",
		SalesRepID: "rep-1",
		Status:     entity.OrderStatusCompleted,
		Financials: pricing.Financials{
			Total:    d("43200.00"),
			Currency: pricing.MXN,
		},
	}
	f.uc = NewPaymentUseCase(f.pays, &fakePaymentTx{orders: f.orders, payments: f.pays, notifications: f.notifs})
	return f
}

func TestRegistrarPago_LiquidaYNotifica(t *testing.T) {
	f := newPaymentFixture(t)

	pay, err := f.uc.Register(context.Background(), "fin-1", "ord-1", dto.RegisterPaymentRequest{
		Amount:    d("43200.00"),
		Method:    entity.PaymentMethodTransfer,
		Reference: "SPEI-778812",
	})
	require.NoError(t, err)
	assert.Equal(t, "fin-1", pay.RegisteredBy)
	assert.Equal(t, "MXN", pay.Currency)

	order, err := f.orders.GetByID("ord-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)

	require.Len(t, f.notifs.notifications, 1)
	assert.Equal(t, "rep-1", f.notifs.notifications[0].UserID)
	assert.Equal(t, entity.NotificationPaymentReceived, f.notifs.notifications[0].Type)
}

func TestRegistrarPago_ParcialNoLiquida(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.uc.Register(context.Background(), "fin-1", "ord-1", dto.RegisterPaymentRequest{
		Amount: d("20000.00"),
		Method: entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	order, _ := f.orders.GetByID("ord-1")
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.Empty(t, f.notifs.notifications)

	// el segundo pago completa el total y liquida
	_, err = f.uc.Register(context.Background(), "fin-1", "ord-1", dto.RegisterPaymentRequest{
		Amount: d("23200.00"),
		Method: entity.PaymentMethodTransfer,
	})
	require.NoError(t, err)
	order, _ = f.orders.GetByID("ord-1")
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
}

func TestRegistrarPago_NoExcedeElTotal(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.uc.Register(context.Background(), "fin-1", "ord-1", dto.RegisterPaymentRequest{
		Amount: d("50000.00"),
		Method: entity.PaymentMethodTransfer,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrarPago_SoloOrdenesCompletadas(t *testing.T) {
	f := newPaymentFixture(t)
	f.orders.orders["ord-1"].Status = entity.OrderStatusApproved

	_, err := f.uc.Register(context.Background(), "fin-1", "ord-1", dto.RegisterPaymentRequest{
		Amount: d("43200.00"),
		Method: entity.PaymentMethodTransfer,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestRegistrarPago_ValidaMontoYMetodo(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.uc.Register(context.Background(), "fin-1", "ord-1", dto.RegisterPaymentRequest{
		Amount: d("-1"),
		Method: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Register(context.Background(), "fin-1", "ord-1", dto.RegisterPaymentRequest{
		Amount: d("100"),
		Method: "BITCOIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
