package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// DashboardUseCase KPIs del panel principal. Las tres consultas de agregación
// corren en paralelo; cualquier error tira el resumen completo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Summary arma el resumen del mes en curso: ingresos cobrados, utilidad
// bruta, pipeline de cotizaciones y órdenes activas, más el pulso del negocio.
func (uc *DashboardUseCase) Summary(ctx context.Context, now time.Time) (*dto.DashboardSummaryDTO, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	type revenueResult struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		err     error
	}
	type countResult struct {
		n   int
		err error
	}

	revenueCh := make(chan revenueResult, 1)
	quotesCh := make(chan countResult, 1)
	ordersCh := make(chan countResult, 1)

	go func() {
		revenue, cost, err := uc.analyticsRepo.GetRevenueMetrics(ctx, from, to)
		revenueCh <- revenueResult{revenue: revenue, cost: cost, err: err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountQuotesByStatus(ctx, entity.QuoteStatusSent, from, to)
		quotesCh <- countResult{n: n, err: err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountActiveOrders(ctx)
		ordersCh <- countResult{n: n, err: err}
	}()

	rev := <-revenueCh
	quotes := <-quotesCh
	orders := <-ordersCh
	for _, err := range []error{rev.err, quotes.err, orders.err} {
		if err != nil {
			return nil, err
		}
	}

	netProfit := rev.revenue.Sub(rev.cost)
	return &dto.DashboardSummaryDTO{
		Revenue:       rev.revenue,
		NetProfit:     netProfit,
		PendingQuotes: quotes.n,
		ActiveDeals:   orders.n,
		Pulse:         businessPulse(rev.revenue, netProfit, quotes.n),
		DateLabel:     fmt.Sprintf("%s %d", spanishMonths[now.Month()-1], now.Year()),
	}, nil
}

// businessPulse clasifica la salud del mes según margen de utilidad y
// pipeline. Los umbrales de margen son 25% (excelente) y 10% (sano).
func businessPulse(revenue, netProfit decimal.Decimal, pendingQuotes int) dto.BusinessPulseDTO {
	if revenue.IsZero() {
		if pendingQuotes > 0 {
			return dto.BusinessPulseDTO{
				Sentiment:      "WARNING",
				Title:          "Mes sin cobros",
				Message:        fmt.Sprintf("Aún no hay ingresos este mes, pero hay %d cotizaciones en el aire.", pendingQuotes),
				Recommendation: "Dar seguimiento a las cotizaciones enviadas para cerrar las primeras ventas del mes.",
			}
		}
		return dto.BusinessPulseDTO{
			Sentiment:      "CRITICAL",
			Title:          "Sin movimiento",
			Message:        "No hay ingresos ni cotizaciones activas este mes.",
			Recommendation: "Activar al equipo de ventas: sin pipeline no habrá cierres.",
		}
	}
	margin := netProfit.Div(revenue)
	switch {
	case margin.GreaterThanOrEqual(decimal.NewFromFloat(0.25)):
		return dto.BusinessPulseDTO{
			Sentiment:      "EXCELLENT",
			Title:          "Mes excelente",
			Message:        fmt.Sprintf("Margen de utilidad de %s%% sobre lo cobrado.", margin.Mul(decimal.NewFromInt(100)).StringFixed(1)),
			Recommendation: "Mantener la disciplina de márgenes en las cotizaciones nuevas.",
		}
	case margin.GreaterThanOrEqual(decimal.NewFromFloat(0.10)):
		return dto.BusinessPulseDTO{
			Sentiment:      "GOOD",
			Title:          "Mes sano",
			Message:        fmt.Sprintf("Margen de utilidad de %s%%, dentro del rango operativo.", margin.Mul(decimal.NewFromInt(100)).StringFixed(1)),
			Recommendation: "Revisar las partidas con margen bajo para subir el promedio.",
		}
	case margin.IsPositive():
		return dto.BusinessPulseDTO{
			Sentiment:      "WARNING",
			Title:          "Margen apretado",
			Message:        fmt.Sprintf("Margen de utilidad de solo %s%%.", margin.Mul(decimal.NewFromInt(100)).StringFixed(1)),
			Recommendation: "Verificar costos de importación y flete antes de cotizar con el margen default.",
		}
	default:
		return dto.BusinessPulseDTO{
			Sentiment:      "CRITICAL",
			Title:          "Mes en números rojos",
			Message:        "Lo cobrado no cubre el costo de venta del mes.",
			Recommendation: "Frenar cotizaciones por debajo de costo y revisar la paridad configurada.",
		}
	}
}
