package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// ProductUseCase catálogo de productos. Los costos capturados aquí son los
// que pre-llenan las partidas de cotización.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, supplierRepo: supplierRepo}
}

// Create da de alta un producto. SKU único; costos no negativos; la moneda
// debe ser del conjunto soportado.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BasePrice.LessThan(decimal.Zero) || in.ImportCost.LessThan(decimal.Zero) || in.FreightCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	currency := pricing.MXN
	if in.Currency != "" {
		cur, err := pricing.ParseCurrency(in.Currency)
		if err != nil {
			return nil, err
		}
		currency = cur
	}
	sku := strings.ToUpper(strings.TrimSpace(in.SKU))
	existing, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         sku,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		ImportCost:  in.ImportCost,
		FreightCost: in.FreightCost,
		Currency:    currency,
		Unit:        in.Unit,
		SupplierID:  in.SupplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos paginados; supplier_id filtra opcionalmente.
func (uc *ProductUseCase) List(supplierID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	var (
		products []*entity.Product
		err      error
	)
	if supplierID != "" {
		products, err = uc.productRepo.ListBySupplier(supplierID, page.Limit, page.Offset)
	} else {
		products, err = uc.productRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// Update modifica un producto. Cambios de costo solo afectan cotizaciones
// futuras; las partidas ya capturadas conservan sus valores.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	applyMoney := func(dst *decimal.Decimal, src *decimal.Decimal) error {
		if src == nil {
			return nil
		}
		if src.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		*dst = *src
		return nil
	}
	if err := applyMoney(&product.BasePrice, in.BasePrice); err != nil {
		return nil, err
	}
	if err := applyMoney(&product.ImportCost, in.ImportCost); err != nil {
		return nil, err
	}
	if err := applyMoney(&product.FreightCost, in.FreightCost); err != nil {
		return nil, err
	}
	if in.Currency != nil {
		cur, err := pricing.ParseCurrency(*in.Currency)
		if err != nil {
			return nil, err
		}
		product.Currency = cur
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.SupplierID != nil {
		if *in.SupplierID != "" {
			supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
			if err != nil {
				return nil, err
			}
			if supplier == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.SupplierID = *in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		ImportCost:  p.ImportCost,
		FreightCost: p.FreightCost,
		Currency:    string(p.Currency),
		Unit:        p.Unit,
		SupplierID:  p.SupplierID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
