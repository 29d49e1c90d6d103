package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// PaymentTxRunner ejecuta el registro de un pago en una transacción: el alta
// del pago, el cambio de estado de la orden y la notificación al vendedor se
// confirman juntos o no se confirma nada.
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(orders repository.OrderRepository, payments repository.PaymentRepository, notifications repository.NotificationRepository) error) error
}

// PaymentUseCase registro de cobros contra órdenes de venta (rol FINANCE).
// Acepta pagos parciales; la orden pasa a PAID cuando lo cobrado cubre el
// total del snapshot.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	txRunner    PaymentTxRunner
}

// NewPaymentUseCase construye el caso de uso de pagos.
func NewPaymentUseCase(paymentRepo repository.PaymentRepository, txRunner PaymentTxRunner) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, txRunner: txRunner}
}

// validMethods métodos de pago aceptados.
var validMethods = map[string]bool{
	entity.PaymentMethodCash:     true,
	entity.PaymentMethodTransfer: true,
	entity.PaymentMethodCheck:    true,
}

// Register captura un pago contra una orden COMPLETED. El monto va en la
// moneda del documento; lo cobrado jamás excede el total.
func (uc *PaymentUseCase) Register(ctx context.Context, actorID, orderID string, in dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.IsPositive() || !validMethods[in.Method] {
		return nil, domain.ErrInvalidInput
	}
	var created *entity.Payment
	err := uc.txRunner.RunPayment(ctx, func(orders repository.OrderRepository, payments repository.PaymentRepository, notifications repository.NotificationRepository) error {
		order, err := orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusCompleted {
			return domain.ErrInvalidStatusTransition
		}
		paid, err := totalPaid(payments, orderID)
		if err != nil {
			return err
		}
		if paid.Add(in.Amount).GreaterThan(order.Financials.Total) {
			return domain.ErrInvalidInput
		}
		now := time.Now()
		created = &entity.Payment{
			ID:           uuid.New().String(),
			OrderID:      order.ID,
			Amount:       in.Amount,
			Currency:     order.Financials.Currency,
			Method:       in.Method,
			Reference:    in.Reference,
			RegisteredBy: actorID,
			CreatedAt:    now,
		}
		if err := payments.Create(created); err != nil {
			return err
		}
		if paid.Add(in.Amount).Equal(order.Financials.Total) {
			order.Status = entity.OrderStatusPaid
			order.UpdatedAt = now
			if err := orders.Update(order); err != nil {
				return err
			}
			notif := &entity.Notification{
				ID:        uuid.New().String(),
				UserID:    order.SalesRepID,
				Message:   fmt.Sprintf("Pago recibido: orden %s liquidada por %s %s", order.Folio, order.Financials.Total.StringFixed(2), order.Financials.Currency),
				Href:      "/dashboard/sales/orders/" + order.ID,
				Type:      entity.NotificationPaymentReceived,
				CreatedAt: now,
			}
			if err := notifications.Create(notif); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(created), nil
}

// ListByOrder lista los pagos registrados contra una orden.
func (uc *PaymentUseCase) ListByOrder(orderID string) ([]dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

func totalPaid(payments repository.PaymentRepository, orderID string) (decimal.Decimal, error) {
	existing, err := payments.ListByOrder(orderID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range existing {
		total = total.Add(p.Amount)
	}
	return total, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		Currency:     string(p.Currency),
		Method:       p.Method,
		Reference:    p.Reference,
		RegisteredBy: p.RegisteredBy,
		CreatedAt:    p.CreatedAt,
	}
}
