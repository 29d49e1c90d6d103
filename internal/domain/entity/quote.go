package entity

import (
	"time"

	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
)

// Estados de una cotización.
const (
	QuoteStatusDraft     = "DRAFT"     // editable, totales recalculados ante cada cambio
	QuoteStatusSent      = "SENT"      // enviada al cliente, snapshot financiero congelado
	QuoteStatusFinalized = "FINALIZED" // aceptada/ganada, lista para convertirse en orden
	QuoteStatusCancelled = "CANCELLED"
)

// Quote cotización: propuesta de venta con partidas y resumen financiero
// calculado. Tras enviarse/finalizarse, las partidas y el snapshot son
// inmutables: un cambio de paridad posterior no altera documentos históricos.
type Quote struct {
	ID          string
	Folio       string // consecutivo legible, ej. COT-2026-00042
	ClientID    string
	SalesRepID  string
	Status      string
	Items       []pricing.LineItem
	Financials  pricing.Financials
	Notes       string
	SentAt      *time.Time
	FinalizedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// quoteTransitions transiciones permitidas del ciclo de vida.
var quoteTransitions = map[string][]string{
	QuoteStatusDraft:     {QuoteStatusSent, QuoteStatusCancelled},
	QuoteStatusSent:      {QuoteStatusFinalized, QuoteStatusCancelled},
	QuoteStatusFinalized: {},
	QuoteStatusCancelled: {},
}

// CanTransitionTo reporta si el cambio de estado es válido. Los estados solo
// avanzan por acción explícita del usuario; no hay timeouts automáticos.
func (q *Quote) CanTransitionTo(next string) bool {
	for _, s := range quoteTransitions[q.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// Editable reporta si la cotización admite cambios de partidas.
func (q *Quote) Editable() bool {
	return q.Status == QuoteStatusDraft
}
