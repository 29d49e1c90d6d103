package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// ClientUseCase cartera de clientes. SALES ve solo sus cuentas asignadas;
// ADMIN y SUPERADMIN ven todo.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso de clientes.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create da de alta un cliente. El RFC se normaliza a mayúsculas y debe ser
// único; un vendedor queda como responsable de la cuenta por default.
func (uc *ClientUseCase) Create(actorID string, role authz.Role, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.RazonSocial == "" || in.RFC == "" {
		return nil, domain.ErrInvalidInput
	}
	rfc := strings.ToUpper(strings.TrimSpace(in.RFC))
	existing, err := uc.clientRepo.GetByRFC(rfc)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	salesRepID := in.SalesRepID
	if salesRepID == "" && role == authz.RoleSales {
		salesRepID = actorID
	}
	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		RazonSocial: in.RazonSocial,
		RFC:         rfc,
		Email:       in.Email,
		Phone:       in.Phone,
		ContactName: in.ContactName,
		TaxRate:     in.TaxRate,
		SalesRepID:  salesRepID,
		CreditTerms: in.CreditTerms,
		Street:      in.Street,
		City:        in.City,
		State:       in.State,
		ZipCode:     in.ZipCode,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes paginados; SALES solo sus cuentas.
func (uc *ClientUseCase) List(actorID string, role authz.Role, page dto.PageRequest) (*dto.ClientListResponse, error) {
	page.DefaultPage()
	var (
		clients []*entity.Client
		err     error
	)
	if role == authz.RoleSales {
		clients, err = uc.clientRepo.ListBySalesRep(actorID, page.Limit, page.Offset)
	} else {
		clients, err = uc.clientRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.ClientListResponse{
		Items: make([]dto.ClientResponse, 0, len(clients)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range clients {
		out.Items = append(out.Items, *toClientResponse(c))
	}
	return out, nil
}

// Update modifica campos del cliente. El RFC no se toca después del alta:
// un RFC distinto es otro contribuyente, no una corrección.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&client.RazonSocial, in.RazonSocial)
	applyString(&client.Email, in.Email)
	applyString(&client.Phone, in.Phone)
	applyString(&client.ContactName, in.ContactName)
	applyString(&client.SalesRepID, in.SalesRepID)
	applyString(&client.CreditTerms, in.CreditTerms)
	applyString(&client.Street, in.Street)
	applyString(&client.City, in.City)
	applyString(&client.State, in.State)
	applyString(&client.ZipCode, in.ZipCode)
	applyString(&client.Notes, in.Notes)
	if in.TaxRate != nil {
		if in.TaxRate.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		client.TaxRate = *in.TaxRate
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:          c.ID,
		RazonSocial: c.RazonSocial,
		RFC:         c.RFC,
		Email:       c.Email,
		Phone:       c.Phone,
		ContactName: c.ContactName,
		TaxRate:     c.TaxRate,
		SalesRepID:  c.SalesRepID,
		CreditTerms: c.CreditTerms,
		Street:      c.Street,
		City:        c.City,
		State:       c.State,
		ZipCode:     c.ZipCode,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
