package sales

import (
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
)

// itemResponses mapea las partidas calculando el precio unitario en la
// moneda del documento con el tipo de cambio del snapshot. Partidas
// persistidas ya pasaron la validación; un error de conversión aquí solo
// deja el precio en cero en lugar de tirar la respuesta.
func itemResponses(items []pricing.LineItem, fin pricing.Financials) []dto.QuoteItemResponse {
	out := make([]dto.QuoteItemResponse, 0, len(items))
	for _, it := range items {
		unit, err := pricing.ComputeLineUnitPrice(it, fin.Currency, fin.ExchangeRate)
		if err != nil {
			unit = decimal.Zero
		}
		out = append(out, dto.QuoteItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			BasePrice:   it.BasePrice,
			ImportCost:  it.ImportCost,
			FreightCost: it.FreightCost,
			Margin:      it.Margin,
			Currency:    string(it.Currency),
			UnitPrice:   unit,
			LineTotal:   unit.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	return out
}

func financialsResponse(fin pricing.Financials) dto.FinancialsResponse {
	return dto.FinancialsResponse{
		Subtotal:     fin.Subtotal,
		TaxRate:      fin.TaxRate,
		TaxAmount:    fin.TaxAmount,
		Total:        fin.Total,
		Currency:     string(fin.Currency),
		ExchangeRate: fin.ExchangeRate,
	}
}

// ToQuoteResponse mapea la cotización completa a su DTO de salida.
func ToQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:          q.ID,
		Folio:       q.Folio,
		ClientID:    q.ClientID,
		SalesRepID:  q.SalesRepID,
		Status:      q.Status,
		Items:       itemResponses(q.Items, q.Financials),
		Financials:  financialsResponse(q.Financials),
		Notes:       q.Notes,
		SentAt:      q.SentAt,
		FinalizedAt: q.FinalizedAt,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// ToOrderResponse mapea la orden completa a su DTO de salida.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		Folio:      o.Folio,
		QuoteID:    o.QuoteID,
		ClientID:   o.ClientID,
		SalesRepID: o.SalesRepID,
		Status:     o.Status,
		Items:      itemResponses(o.Items, o.Financials),
		Financials: financialsResponse(o.Financials),
		Notes:      o.Notes,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
