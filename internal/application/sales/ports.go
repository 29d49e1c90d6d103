package sales

import (
	"context"

	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// SettingsProvider expone los ajustes comerciales vigentes (margen default,
// tipo de cambio, IVA default). Lo implementa el use case de settings con
// su caché; las cotizaciones lo consumen sin conocer la persistencia.
type SettingsProvider interface {
	Current() (*entity.Settings, error)
}

// OrderTxRunner ejecuta la conversión cotización a orden dentro de una
// transacción: marcar la cotización como convertida y crear la orden deben
// confirmarse juntos.
type OrderTxRunner interface {
	RunOrderCreation(ctx context.Context, fn func(quotes repository.QuoteRepository, orders repository.OrderRepository) error) error
}

// QuotePDFGenerator genera el PDF imprimible de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(quote *entity.Quote, client *entity.Client) ([]byte, error)
}
