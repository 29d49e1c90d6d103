package repository

import "github.com/norteindustrial/norte-erp/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
