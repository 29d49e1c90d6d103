package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas read-only para el dashboard.
// A diferencia de los repos CRUD, lleva context porque son agregaciones
// potencialmente caras que conviene poder cancelar.
type AnalyticsRepository interface {
	// GetRevenueMetrics devuelve ingresos cobrados (órdenes PAID) y costo de
	// venta en el rango, en MXN.
	GetRevenueMetrics(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error)
	// CountQuotesByStatus cuenta cotizaciones en un estado dentro del rango.
	CountQuotesByStatus(ctx context.Context, status string, from, to time.Time) (int, error)
	// CountActiveOrders cuenta órdenes en estados activos (PENDING/APPROVED/PO_SENT).
	CountActiveOrders(ctx context.Context) (int, error)
}
