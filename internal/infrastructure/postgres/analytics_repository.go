package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los KPIs del dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetRevenueMetrics suma lo cobrado (órdenes PAID en el rango) y su costo de
// venta, ambos en MXN. Los documentos en USD se convierten con el tipo de
// cambio congelado en su propio snapshot, no con la paridad vigente.
func (r *AnalyticsRepo) GetRevenueMetrics(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	const revenueQuery = `
	SELECT COALESCE(SUM(
	    CASE WHEN o.currency = 'USD' THEN o.total * o.exchange_rate ELSE o.total END
	), 0)
	FROM orders o
	WHERE o.status = 'PAID' AND o.updated_at >= $1 AND o.updated_at < $2`

	var revenue decimal.Decimal
	if err := r.pool.QueryRow(ctx, revenueQuery, from, to).Scan(&revenue); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetRevenueMetrics revenue: %w", err)
	}

	const costQuery = `
	SELECT COALESCE(SUM(
	    (i.base_price + i.import_cost + i.freight_cost) * i.quantity
	    * CASE WHEN i.currency = 'USD' THEN o.exchange_rate ELSE 1 END
	), 0)
	FROM orders o
	JOIN order_items i ON i.order_id = o.id
	WHERE o.status = 'PAID' AND o.updated_at >= $1 AND o.updated_at < $2`

	var cost decimal.Decimal
	if err := r.pool.QueryRow(ctx, costQuery, from, to).Scan(&cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetRevenueMetrics cost: %w", err)
	}
	return revenue, cost, nil
}

// CountQuotesByStatus cuenta cotizaciones en un estado dentro del rango.
func (r *AnalyticsRepo) CountQuotesByStatus(ctx context.Context, status string, from, to time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM quotes WHERE status = $1 AND created_at >= $2 AND created_at < $3`
	var n int
	if err := r.pool.QueryRow(ctx, query, status, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountQuotesByStatus: %w", err)
	}
	return n, nil
}

// CountActiveOrders cuenta órdenes en seguimiento activo.
func (r *AnalyticsRepo) CountActiveOrders(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE status = ANY($1)`
	active := []string{entity.OrderStatusPending, entity.OrderStatusApproved, entity.OrderStatusPOSent}
	var n int
	if err := r.pool.QueryRow(ctx, query, active).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountActiveOrders: %w", err)
	}
	return n, nil
}
