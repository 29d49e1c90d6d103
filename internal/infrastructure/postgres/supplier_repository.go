package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, rfc, contact_name, email, phone, credit_terms, street, city, state, zip_code, notes, created_at, updated_at`

// Create persiste un proveedor nuevo.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, rfc, contact_name, email, phone, credit_terms, street, city, state, zip_code, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, nullIfEmpty(supplier.RFC), nullIfEmpty(supplier.ContactName),
		nullIfEmpty(supplier.Email), nullIfEmpty(supplier.Phone), nullIfEmpty(supplier.CreditTerms),
		nullIfEmpty(supplier.Street), nullIfEmpty(supplier.City), nullIfEmpty(supplier.State),
		nullIfEmpty(supplier.ZipCode), nullIfEmpty(supplier.Notes), supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_name = $3, email = $4, phone = $5, credit_terms = $6,
		    street = $7, city = $8, state = $9, zip_code = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, nullIfEmpty(supplier.ContactName), nullIfEmpty(supplier.Email),
		nullIfEmpty(supplier.Phone), nullIfEmpty(supplier.CreditTerms), nullIfEmpty(supplier.Street),
		nullIfEmpty(supplier.City), nullIfEmpty(supplier.State), nullIfEmpty(supplier.ZipCode),
		nullIfEmpty(supplier.Notes), supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var rfc, contact, email, phone, credit, street, city, state, zip, notes *string
	err := row.Scan(
		&s.ID, &s.Name, &rfc, &contact, &email, &phone, &credit,
		&street, &city, &state, &zip, &notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&s.RFC, rfc)
	assign(&s.ContactName, contact)
	assign(&s.Email, email)
	assign(&s.Phone, phone)
	assign(&s.CreditTerms, credit)
	assign(&s.Street, street)
	assign(&s.City, city)
	assign(&s.State, state)
	assign(&s.ZipCode, zip)
	assign(&s.Notes, notes)
	return &s, nil
}
