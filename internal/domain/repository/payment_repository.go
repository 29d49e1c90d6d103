package repository

import "github.com/norteindustrial/norte-erp/internal/domain/entity"

// PaymentRepository puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByOrder(orderID string) ([]*entity.Payment, error)
}
