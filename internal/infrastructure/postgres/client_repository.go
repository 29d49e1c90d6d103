package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, razon_social, rfc, email, phone, contact_name, tax_rate, sales_rep_id, credit_terms, street, city, state, zip_code, notes, created_at, updated_at`

// Create persiste un cliente nuevo. RFC duplicado es domain.ErrDuplicate.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, razon_social, rfc, email, phone, contact_name, tax_rate, sales_rep_id, credit_terms, street, city, state, zip_code, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.RazonSocial, client.RFC, nullIfEmpty(client.Email), nullIfEmpty(client.Phone),
		nullIfEmpty(client.ContactName), client.TaxRate, nullIfEmpty(client.SalesRepID), nullIfEmpty(client.CreditTerms),
		nullIfEmpty(client.Street), nullIfEmpty(client.City), nullIfEmpty(client.State), nullIfEmpty(client.ZipCode),
		nullIfEmpty(client.Notes), client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByRFC obtiene un cliente por RFC.
func (r *ClientRepo) GetByRFC(rfc string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE rfc = $1`
	return r.scanOne(query, rfc)
}

func (r *ClientRepo) scanOne(query string, arg any) (*entity.Client, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// Update actualiza un cliente. El RFC no se toca.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET razon_social = $2, email = $3, phone = $4, contact_name = $5, tax_rate = $6,
		    sales_rep_id = $7, credit_terms = $8, street = $9, city = $10, state = $11,
		    zip_code = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.RazonSocial, nullIfEmpty(client.Email), nullIfEmpty(client.Phone),
		nullIfEmpty(client.ContactName), client.TaxRate, nullIfEmpty(client.SalesRepID),
		nullIfEmpty(client.CreditTerms), nullIfEmpty(client.Street), nullIfEmpty(client.City),
		nullIfEmpty(client.State), nullIfEmpty(client.ZipCode), nullIfEmpty(client.Notes), client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// List lista clientes con paginación.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY razon_social LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListBySalesRep lista los clientes asignados a un vendedor.
func (r *ClientRepo) ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE sales_rep_id = $1 ORDER BY razon_social LIMIT $2 OFFSET $3`
	return r.scanMany(query, salesRepID, limit, offset)
}

func (r *ClientRepo) scanMany(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var email, phone, contact, salesRep, credit, street, city, state, zip, notes *string
	err := row.Scan(
		&c.ID, &c.RazonSocial, &c.RFC, &email, &phone, &contact, &c.TaxRate, &salesRep,
		&credit, &street, &city, &state, &zip, &notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&c.Email, email)
	assign(&c.Phone, phone)
	assign(&c.ContactName, contact)
	assign(&c.SalesRepID, salesRep)
	assign(&c.CreditTerms, credit)
	assign(&c.Street, street)
	assign(&c.City, city)
	assign(&c.State, state)
	assign(&c.ZipCode, zip)
	assign(&c.Notes, notes)
	return &c, nil
}
