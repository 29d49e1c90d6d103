package postgres

import (
	"context"
	"fmt"

	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago. Los pagos son inmutables: no hay Update ni Delete.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, order_id, amount, currency, method, reference, registered_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.OrderID, payment.Amount, payment.Currency, payment.Method,
		nullIfEmpty(payment.Reference), payment.RegisteredBy, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByOrder lista los pagos de una orden en orden de captura.
func (r *PaymentRepo) ListByOrder(orderID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, order_id, amount, currency, method, reference, registered_by, created_at
		FROM payments WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		var reference *string
		err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Currency, &p.Method, &reference, &p.RegisteredBy, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if reference != nil {
			p.Reference = *reference
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
