package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// SupplierUseCase catálogo de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso de proveedores.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create da de alta un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		RFC:         strings.ToUpper(strings.TrimSpace(in.RFC)),
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		CreditTerms: in.CreditTerms,
		Street:      in.Street,
		City:        in.City,
		State:       in.State,
		ZipCode:     in.ZipCode,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores paginados.
func (uc *SupplierUseCase) List(page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.supplierRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SupplierListResponse{
		Items: make([]dto.SupplierResponse, 0, len(suppliers)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range suppliers {
		out.Items = append(out.Items, *toSupplierResponse(s))
	}
	return out, nil
}

// Update modifica campos del proveedor.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&supplier.Name, in.Name)
	applyString(&supplier.ContactName, in.ContactName)
	applyString(&supplier.Email, in.Email)
	applyString(&supplier.Phone, in.Phone)
	applyString(&supplier.CreditTerms, in.CreditTerms)
	applyString(&supplier.Street, in.Street)
	applyString(&supplier.City, in.City)
	applyString(&supplier.State, in.State)
	applyString(&supplier.ZipCode, in.ZipCode)
	applyString(&supplier.Notes, in.Notes)
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		RFC:         s.RFC,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		CreditTerms: s.CreditTerms,
		Street:      s.Street,
		City:        s.City,
		State:       s.State,
		ZipCode:     s.ZipCode,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
