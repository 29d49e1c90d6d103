package repository

import "github.com/norteindustrial/norte-erp/internal/domain/entity"

// QuoteRepository puerto de persistencia para cotizaciones.
// Las partidas y el snapshot financiero se guardan junto a la cabecera:
// Create/Update persisten el documento completo.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	Update(quote *entity.Quote) error
	List(limit, offset int) ([]*entity.Quote, error)
	ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Quote, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Quote, error)
	ListBySalesRepAndStatus(salesRepID, status string, limit, offset int) ([]*entity.Quote, error)
	// NextFolio reserva el siguiente consecutivo COT-<año>-<n>.
	NextFolio(year int) (string, error)
}
