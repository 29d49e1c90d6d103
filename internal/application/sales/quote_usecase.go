package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// QuoteUseCase casos de uso de cotizaciones: captura, recálculo de precios,
// ciclo de vida DRAFT/SENT/FINALIZED/CANCELLED y PDF.
//
// Regla de visibilidad: un usuario SALES solo ve y toca sus propias
// cotizaciones; ADMIN y SUPERADMIN ven todas.
type QuoteUseCase struct {
	quoteRepo   repository.QuoteRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	notifRepo   repository.NotificationRepository
	settings    SettingsProvider
	pdfGen      QuotePDFGenerator
}

// NewQuoteUseCase construye el caso de uso de cotizaciones.
func NewQuoteUseCase(
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	notifRepo repository.NotificationRepository,
	settings SettingsProvider,
	pdfGen QuotePDFGenerator,
) *QuoteUseCase {
	return &QuoteUseCase{
		quoteRepo:   quoteRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		notifRepo:   notifRepo,
		settings:    settings,
		pdfGen:      pdfGen,
	}
}

// Create captura una cotización nueva en DRAFT. Los costos de las partidas
// se pre-llenan del catálogo cuando llega product_id sin precios; el margen
// en cero toma el default de ajustes. El IVA sale del régimen del cliente.
func (uc *QuoteUseCase) Create(actorID string, role authz.Role, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	cfg, err := uc.settings.Current()
	if err != nil {
		return nil, err
	}
	target, err := targetCurrency(in.Currency)
	if err != nil {
		return nil, err
	}
	items, err := uc.buildItems(in.Items, cfg.DefaultMargin)
	if err != nil {
		return nil, err
	}
	fin, err := pricing.ComputeQuoteFinancials(items, target, cfg.ExchangeRate, clientTaxRate(client, cfg))
	if err != nil {
		return nil, err
	}
	now := time.Now()
	folio, err := uc.quoteRepo.NextFolio(now.Year())
	if err != nil {
		return nil, err
	}
	quote := &entity.Quote{
		ID:         uuid.New().String(),
		Folio:      folio,
		ClientID:   client.ID,
		SalesRepID: actorID,
		Status:     entity.QuoteStatusDraft,
		Items:      items,
		Financials: fin,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, err
	}
	resp := ToQuoteResponse(quote)
	resp.ClientName = client.RazonSocial
	return resp, nil
}

// GetByID obtiene una cotización aplicando la regla de visibilidad.
func (uc *QuoteUseCase) GetByID(actorID string, role authz.Role, id string) (*dto.QuoteResponse, error) {
	quote, err := uc.ownedQuote(actorID, role, id)
	if err != nil {
		return nil, err
	}
	return ToQuoteResponse(quote), nil
}

// List lista cotizaciones paginadas; SALES solo las propias. El filtro de
// estado es opcional.
func (uc *QuoteUseCase) List(actorID string, role authz.Role, status string, page dto.PageRequest) (*dto.QuoteListResponse, error) {
	page.DefaultPage()
	var (
		quotes []*entity.Quote
		err    error
	)
	switch {
	case status != "" && role == authz.RoleSales:
		quotes, err = uc.quoteRepo.ListBySalesRepAndStatus(actorID, status, page.Limit, page.Offset)
	case status != "":
		quotes, err = uc.quoteRepo.ListByStatus(status, page.Limit, page.Offset)
	case role == authz.RoleSales:
		quotes, err = uc.quoteRepo.ListBySalesRep(actorID, page.Limit, page.Offset)
	default:
		quotes, err = uc.quoteRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.QuoteListResponse{
		Items: make([]dto.QuoteResponse, 0, len(quotes)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, q := range quotes {
		out.Items = append(out.Items, *ToQuoteResponse(q))
	}
	return out, nil
}

// Update modifica partidas, moneda o notas de una cotización en DRAFT y
// recalcula el resumen financiero con los ajustes vigentes. Fuera de DRAFT
// el documento es inmutable.
func (uc *QuoteUseCase) Update(actorID string, role authz.Role, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, err := uc.ownedQuote(actorID, role, id)
	if err != nil {
		return nil, err
	}
	if !quote.Editable() {
		return nil, domain.ErrInvalidStatusTransition
	}
	cfg, err := uc.settings.Current()
	if err != nil {
		return nil, err
	}
	if in.Currency != nil {
		target, err := targetCurrency(*in.Currency)
		if err != nil {
			return nil, err
		}
		quote.Financials.Currency = target
	}
	if in.Items != nil {
		items, err := uc.buildItems(in.Items, cfg.DefaultMargin)
		if err != nil {
			return nil, err
		}
		quote.Items = items
	}
	if in.Notes != nil {
		quote.Notes = *in.Notes
	}
	client, err := uc.clientRepo.GetByID(quote.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	fin, err := pricing.ComputeQuoteFinancials(quote.Items, quote.Financials.Currency, cfg.ExchangeRate, clientTaxRate(client, cfg))
	if err != nil {
		return nil, err
	}
	quote.Financials = fin
	quote.UpdatedAt = time.Now()
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	resp := ToQuoteResponse(quote)
	resp.ClientName = client.RazonSocial
	return resp, nil
}

// Send pasa la cotización de DRAFT a SENT. Los totales se recalculan con los
// ajustes vigentes al momento del envío y se congelan redondeados a centavos;
// cambios de paridad posteriores ya no la afectan.
func (uc *QuoteUseCase) Send(actorID string, role authz.Role, id string) (*dto.QuoteResponse, error) {
	quote, err := uc.ownedQuote(actorID, role, id)
	if err != nil {
		return nil, err
	}
	if !quote.CanTransitionTo(entity.QuoteStatusSent) {
		return nil, domain.ErrInvalidStatusTransition
	}
	cfg, err := uc.settings.Current()
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(quote.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	fin, err := pricing.ComputeQuoteFinancials(quote.Items, quote.Financials.Currency, cfg.ExchangeRate, clientTaxRate(client, cfg))
	if err != nil {
		return nil, err
	}
	now := time.Now()
	quote.Status = entity.QuoteStatusSent
	quote.Financials = fin.Round2()
	quote.SentAt = &now
	quote.UpdatedAt = now
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	resp := ToQuoteResponse(quote)
	resp.ClientName = client.RazonSocial
	return resp, nil
}

// Finalize marca la cotización como ganada (SENT a FINALIZED) y avisa al
// vendedor responsable; desde ahí puede convertirse en orden de venta.
func (uc *QuoteUseCase) Finalize(actorID string, role authz.Role, id string) (*dto.QuoteResponse, error) {
	resp, err := uc.transition(actorID, role, id, entity.QuoteStatusFinalized, func(q *entity.Quote, now time.Time) {
		q.FinalizedAt = &now
	})
	if err != nil {
		return nil, err
	}
	notif := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    resp.SalesRepID,
		Message:   fmt.Sprintf("Cotización %s finalizada por un total de %s %s", resp.Folio, resp.Financials.Total.StringFixed(2), resp.Financials.Currency),
		Href:      "/dashboard/sales/quotes/" + resp.ID,
		Type:      entity.NotificationQuoteFinalized,
		CreatedAt: time.Now(),
	}
	// La notificación es cortesía; si falla no revierte la transición.
	_ = uc.notifRepo.Create(notif)
	return resp, nil
}

// Cancel cancela una cotización en DRAFT o SENT.
func (uc *QuoteUseCase) Cancel(actorID string, role authz.Role, id string) (*dto.QuoteResponse, error) {
	return uc.transition(actorID, role, id, entity.QuoteStatusCancelled, nil)
}

// GeneratePDF genera el PDF imprimible de la cotización. Un borrador todavía
// no tiene snapshot congelado, por lo que no es exportable.
func (uc *QuoteUseCase) GeneratePDF(actorID string, role authz.Role, id string) ([]byte, string, error) {
	quote, err := uc.ownedQuote(actorID, role, id)
	if err != nil {
		return nil, "", err
	}
	if quote.Status == entity.QuoteStatusDraft {
		return nil, "", domain.ErrInvalidStatusTransition
	}
	client, err := uc.clientRepo.GetByID(quote.ClientID)
	if err != nil {
		return nil, "", err
	}
	if client == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.pdfGen.GenerateQuotePDF(quote, client)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("%s.pdf", quote.Folio), nil
}

// transition aplica un cambio de estado validado por la máquina de la entidad.
func (uc *QuoteUseCase) transition(actorID string, role authz.Role, id, next string, mutate func(*entity.Quote, time.Time)) (*dto.QuoteResponse, error) {
	quote, err := uc.ownedQuote(actorID, role, id)
	if err != nil {
		return nil, err
	}
	if !quote.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStatusTransition
	}
	now := time.Now()
	quote.Status = next
	quote.UpdatedAt = now
	if mutate != nil {
		mutate(quote, now)
	}
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	return ToQuoteResponse(quote), nil
}

// ownedQuote carga la cotización y verifica visibilidad: SALES solo accede
// a las propias.
func (uc *QuoteUseCase) ownedQuote(actorID string, role authz.Role, id string) (*entity.Quote, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if role == authz.RoleSales && quote.SalesRepID != actorID {
		return nil, domain.ErrForbidden
	}
	return quote, nil
}

// buildItems arma las partidas: pre-llena costos del catálogo cuando llega
// product_id sin precio base, aplica el margen default donde falte y valida
// cada partida.
func (uc *QuoteUseCase) buildItems(reqs []dto.QuoteItemRequest, defaultMargin decimal.Decimal) ([]pricing.LineItem, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]pricing.LineItem, 0, len(reqs))
	for _, r := range reqs {
		item := pricing.LineItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			BasePrice:   r.BasePrice,
			ImportCost:  r.ImportCost,
			FreightCost: r.FreightCost,
			Margin:      r.Margin,
			Currency:    pricing.MXN,
		}
		if r.Currency != "" {
			cur, err := pricing.ParseCurrency(r.Currency)
			if err != nil {
				return nil, err
			}
			item.Currency = cur
		}
		if r.ProductID != "" && r.BasePrice.IsZero() {
			product, err := uc.productRepo.GetByID(r.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrNotFound
			}
			item.ProductName = product.Name
			item.BasePrice = product.BasePrice
			item.ImportCost = product.ImportCost
			item.FreightCost = product.FreightCost
			item.Currency = product.Currency
		}
		if item.Margin.IsZero() {
			item.Margin = defaultMargin
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// targetCurrency interpreta la moneda objetivo del documento; vacía es MXN.
func targetCurrency(s string) (pricing.Currency, error) {
	if s == "" {
		return pricing.MXN, nil
	}
	return pricing.ParseCurrency(s)
}

// clientTaxRate resuelve el IVA aplicable: el del cliente si está definido,
// si no el default global.
func clientTaxRate(client *entity.Client, cfg *entity.Settings) decimal.Decimal {
	if client.TaxRate.IsPositive() {
		return client.TaxRate
	}
	return cfg.DefaultTaxRate
}
