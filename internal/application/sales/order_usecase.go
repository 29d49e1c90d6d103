package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de venta: conversión desde cotización
// finalizada y seguimiento del ciclo PENDING a PAID.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	quoteRepo repository.QuoteRepository
	txRunner  OrderTxRunner
}

// NewOrderUseCase construye el caso de uso de órdenes.
func NewOrderUseCase(orderRepo repository.OrderRepository, quoteRepo repository.QuoteRepository, txRunner OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, quoteRepo: quoteRepo, txRunner: txRunner}
}

// CreateFromQuote convierte una cotización FINALIZED en orden de venta.
// La orden hereda partidas y snapshot financiero tal cual; jamás recalcula.
// La verificación de duplicado y el alta corren en la misma transacción
// para que dos conversiones concurrentes no produzcan dos órdenes.
func (uc *OrderUseCase) CreateFromQuote(ctx context.Context, actorID string, role authz.Role, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.QuoteID == "" {
		return nil, domain.ErrInvalidInput
	}
	var created *entity.Order
	err := uc.txRunner.RunOrderCreation(ctx, func(quotes repository.QuoteRepository, orders repository.OrderRepository) error {
		quote, err := quotes.GetByID(in.QuoteID)
		if err != nil {
			return err
		}
		if quote == nil {
			return domain.ErrNotFound
		}
		if role == authz.RoleSales && quote.SalesRepID != actorID {
			return domain.ErrForbidden
		}
		if quote.Status != entity.QuoteStatusFinalized {
			return domain.ErrInvalidStatusTransition
		}
		if existing, err := orders.GetByQuoteID(quote.ID); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrConflict
		}
		now := time.Now()
		folio, err := orders.NextFolio(now.Year())
		if err != nil {
			return err
		}
		created = &entity.Order{
			ID:         uuid.New().String(),
			Folio:      folio,
			QuoteID:    quote.ID,
			ClientID:   quote.ClientID,
			SalesRepID: quote.SalesRepID,
			Status:     entity.OrderStatusPending,
			Items:      quote.Items,
			Financials: quote.Financials,
			Notes:      in.Notes,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return orders.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(created), nil
}

// GetByID obtiene una orden aplicando la regla de visibilidad.
func (uc *OrderUseCase) GetByID(actorID string, role authz.Role, id string) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(actorID, role, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List lista órdenes paginadas; SALES solo las propias.
func (uc *OrderUseCase) List(actorID string, role authz.Role, status string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	var (
		orders []*entity.Order
		err    error
	)
	switch {
	case status != "" && role == authz.RoleSales:
		orders, err = uc.orderRepo.ListBySalesRepAndStatus(actorID, status, page.Limit, page.Offset)
	case status != "":
		orders, err = uc.orderRepo.ListByStatus(status, page.Limit, page.Offset)
	case role == authz.RoleSales:
		orders, err = uc.orderRepo.ListBySalesRep(actorID, page.Limit, page.Offset)
	default:
		orders, err = uc.orderRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, o := range orders {
		out.Items = append(out.Items, *ToOrderResponse(o))
	}
	return out, nil
}

// UpdateStatus avanza el estado de la orden validando la máquina de estados.
// PAID no se acepta por aquí: ese estado solo lo produce el registro de un
// pago en finanzas.
func (uc *OrderUseCase) UpdateStatus(actorID string, role authz.Role, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if in.Status == "" || in.Status == entity.OrderStatusPaid {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.ownedOrder(actorID, role, id)
	if err != nil {
		return nil, err
	}
	if !order.CanTransitionTo(in.Status) {
		return nil, domain.ErrInvalidStatusTransition
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

func (uc *OrderUseCase) ownedOrder(actorID string, role authz.Role, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if role == authz.RoleSales && order.SalesRepID != actorID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}
