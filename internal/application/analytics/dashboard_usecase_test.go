package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeAnalyticsRepo struct {
	revenue decimal.Decimal
	cost    decimal.Decimal
	sent    int
	active  int
	err     error
}

func (r *fakeAnalyticsRepo) GetRevenueMetrics(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	return r.revenue, r.cost, r.err
}

func (r *fakeAnalyticsRepo) CountQuotesByStatus(ctx context.Context, status string, from, to time.Time) (int, error) {
	return r.sent, r.err
}

func (r *fakeAnalyticsRepo) CountActiveOrders(ctx context.Context) (int, error) {
	return r.active, r.err
}

func TestResumenDashboard_CalculaUtilidadYEtiqueta(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{
		revenue: d("100000"),
		cost:    d("60000"),
		sent:    4,
		active:  2,
	})

	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	sum, err := uc.Summary(context.Background(), now)
	require.NoError(t, err)

	assert.True(t, sum.NetProfit.Equal(d("40000")))
	assert.Equal(t, 4, sum.PendingQuotes)
	assert.Equal(t, 2, sum.ActiveDeals)
	assert.Equal(t, "Agosto 2026", sum.DateLabel)
	// 40% de margen rebasa el umbral de excelente
	assert.Equal(t, "EXCELLENT", sum.Pulse.Sentiment)
}

func TestPulsoDeNegocio_Umbrales(t *testing.T) {
	cases := []struct {
		name      string
		revenue   string
		profit    string
		pending   int
		sentiment string
	}{
		{"margen excelente", "100000", "25000", 0, "EXCELLENT"},
		{"margen sano", "100000", "15000", 0, "GOOD"},
		{"margen apretado", "100000", "3000", 0, "WARNING"},
		{"números rojos", "100000", "-5000", 0, "CRITICAL"},
		{"sin cobros con pipeline", "0", "0", 3, "WARNING"},
		{"sin movimiento", "0", "0", 0, "CRITICAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pulse := businessPulse(d(tc.revenue), d(tc.profit), tc.pending)
			assert.Equal(t, tc.sentiment, pulse.Sentiment)
			assert.NotEmpty(t, pulse.Title)
			assert.NotEmpty(t, pulse.Recommendation)
		})
	}
}

func TestResumenDashboard_PropagaErrores(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{err: boom})

	_, err := uc.Summary(context.Background(), time.Now())
	assert.ErrorIs(t, err, boom)
}
