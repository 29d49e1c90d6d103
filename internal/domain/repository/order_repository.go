package repository

import "github.com/norteindustrial/norte-erp/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes de venta.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetByQuoteID(quoteID string) (*entity.Order, error)
	Update(order *entity.Order) error
	List(limit, offset int) ([]*entity.Order, error)
	ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Order, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Order, error)
	ListBySalesRepAndStatus(salesRepID, status string, limit, offset int) ([]*entity.Order, error)
	NextFolio(year int) (string, error)
}
