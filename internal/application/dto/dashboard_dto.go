package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los KPIs que alimentan el panel según el rol del usuario.
type DashboardSummaryDTO struct {
	// Ingresos cobrados del mes en curso (órdenes PAID), en MXN.
	Revenue decimal.Decimal `json:"revenue"`
	// Utilidad bruta del mes (revenue - costo de venta), en MXN.
	NetProfit decimal.Decimal `json:"net_profit"`
	// Cotizaciones SENT sin resolver (pipeline).
	PendingQuotes int `json:"pending_quotes"`
	// Órdenes activas (PENDING/APPROVED/PO_SENT).
	ActiveDeals int `json:"active_deals"`
	// Pulso del negocio derivado de los umbrales (ver BusinessPulse).
	Pulse BusinessPulseDTO `json:"pulse"`
	// Etiqueta del período, ej. "Agosto 2026".
	DateLabel string `json:"date_label"`
}

// BusinessPulseDTO clasificación cualitativa de la salud del negocio.
type BusinessPulseDTO struct {
	Sentiment      string `json:"sentiment"` // EXCELLENT | GOOD | WARNING | CRITICAL
	Title          string `json:"title"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}
