package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/norteindustrial/norte-erp/internal/application/finance"
	"github.com/norteindustrial/norte-erp/internal/application/sales"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// Ensure TxRunner implements sales.OrderTxRunner and finance.PaymentTxRunner.
var _ sales.OrderTxRunner = (*TxRunner)(nil)
var _ finance.PaymentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrderCreation inicia una transacción con repos de cotizaciones y órdenes
// atados a la tx y hace Commit o Rollback. Lo usa la conversión de cotización
// a orden: el chequeo de duplicado y el alta quedan en la misma tx.
func (r *TxRunner) RunOrderCreation(ctx context.Context, fn func(
	quotes repository.QuoteRepository,
	orders repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuoteRepository(tx), NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayment inicia una transacción con repos de órdenes, pagos y
// notificaciones (para registrar cobros y liquidar la orden en un solo paso).
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	notifications repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx), NewPaymentRepository(tx), NewNotificationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
