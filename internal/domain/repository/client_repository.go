package repository

import "github.com/norteindustrial/norte-erp/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByRFC(rfc string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
