package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL.
// La cabecera vive en quotes y las partidas en quote_items; Create y Update
// persisten el documento completo.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, folio, client_id, sales_rep_id, status, subtotal, tax_rate, tax_amount, total, currency, exchange_rate, notes, sent_at, finalized_at, created_at, updated_at`

// Create persiste la cotización con sus partidas.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, folio, client_id, sales_rep_id, status, subtotal, tax_rate, tax_amount, total, currency, exchange_rate, notes, sent_at, finalized_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Folio, quote.ClientID, quote.SalesRepID, quote.Status,
		quote.Financials.Subtotal, quote.Financials.TaxRate, quote.Financials.TaxAmount,
		quote.Financials.Total, quote.Financials.Currency, quote.Financials.ExchangeRate,
		nullIfEmpty(quote.Notes), quote.SentAt, quote.FinalizedAt, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("quote folio already exists: %w", err)
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return r.insertItems(quote.ID, quote.Items)
}

// Update actualiza cabecera y reemplaza las partidas completas.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes
		SET status = $2, subtotal = $3, tax_rate = $4, tax_amount = $5, total = $6,
		    currency = $7, exchange_rate = $8, notes = $9, sent_at = $10, finalized_at = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Status, quote.Financials.Subtotal, quote.Financials.TaxRate,
		quote.Financials.TaxAmount, quote.Financials.Total, quote.Financials.Currency,
		quote.Financials.ExchangeRate, nullIfEmpty(quote.Notes), quote.SentAt, quote.FinalizedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM quote_items WHERE quote_id = $1`, quote.ID); err != nil {
		return fmt.Errorf("delete quote items: %w", err)
	}
	return r.insertItems(quote.ID, quote.Items)
}

func (r *QuoteRepo) insertItems(quoteID string, items []pricing.LineItem) error {
	query := `
		INSERT INTO quote_items (id, quote_id, position, product_id, product_name, quantity, base_price, import_cost, freight_cost, margin, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for i, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			uuid.New().String(), quoteID, i, nullIfEmpty(it.ProductID), it.ProductName,
			it.Quantity, it.BasePrice, it.ImportCost, it.FreightCost, it.Margin, it.Currency,
		)
		if err != nil {
			return fmt.Errorf("insert quote item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cotización completa, con partidas en orden de captura.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	itemsByQuote, err := r.loadItems([]string{quote.ID})
	if err != nil {
		return nil, err
	}
	quote.Items = itemsByQuote[quote.ID]
	return quote, nil
}

// List lista cotizaciones con paginación, recientes primero.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListBySalesRep lista las cotizaciones de un vendedor.
func (r *QuoteRepo) ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE sales_rep_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, salesRepID, limit, offset)
}

// ListByStatus lista cotizaciones en un estado.
func (r *QuoteRepo) ListByStatus(status string, limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, status, limit, offset)
}

// ListBySalesRepAndStatus lista las cotizaciones de un vendedor en un estado,
// con la paginación aplicada ya sobre el conjunto filtrado.
func (r *QuoteRepo) ListBySalesRepAndStatus(salesRepID, status string, limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE sales_rep_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.scanMany(query, salesRepID, status, limit, offset)
}

// NextFolio reserva el siguiente consecutivo COT-<año>-<n> de forma atómica.
func (r *QuoteRepo) NextFolio(year int) (string, error) {
	return nextFolio(r.q, "COT", year)
}

func (r *QuoteRepo) scanMany(query string, args ...any) ([]*entity.Quote, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	var ids []string
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, q)
		ids = append(ids, q.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	itemsByQuote, err := r.loadItems(ids)
	if err != nil {
		return nil, err
	}
	for _, q := range list {
		q.Items = itemsByQuote[q.ID]
	}
	return list, nil
}

// loadItems carga las partidas de varios documentos en una sola consulta.
func (r *QuoteRepo) loadItems(quoteIDs []string) (map[string][]pricing.LineItem, error) {
	query := `
		SELECT quote_id, product_id, product_name, quantity, base_price, import_cost, freight_cost, margin, currency
		FROM quote_items WHERE quote_id = ANY($1) ORDER BY quote_id, position`
	rows, err := r.q.Query(context.Background(), query, quoteIDs)
	if err != nil {
		return nil, fmt.Errorf("load quote items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]pricing.LineItem)
	for rows.Next() {
		var quoteID string
		var productID *string
		var it pricing.LineItem
		err := rows.Scan(&quoteID, &productID, &it.ProductName, &it.Quantity,
			&it.BasePrice, &it.ImportCost, &it.FreightCost, &it.Margin, &it.Currency)
		if err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		if productID != nil {
			it.ProductID = *productID
		}
		out[quoteID] = append(out[quoteID], it)
	}
	return out, rows.Err()
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	var notes *string
	err := row.Scan(
		&q.ID, &q.Folio, &q.ClientID, &q.SalesRepID, &q.Status,
		&q.Financials.Subtotal, &q.Financials.TaxRate, &q.Financials.TaxAmount,
		&q.Financials.Total, &q.Financials.Currency, &q.Financials.ExchangeRate,
		&notes, &q.SentAt, &q.FinalizedAt, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		q.Notes = *notes
	}
	return &q, nil
}

// nextFolio incrementa el consecutivo del tipo de documento y año dados.
// El UPSERT con RETURNING hace la reserva atómica aun con capturas concurrentes.
func nextFolio(q Querier, docType string, year int) (string, error) {
	query := `
		INSERT INTO folio_counters (doc_type, year, counter) VALUES ($1, $2, 1)
		ON CONFLICT (doc_type, year) DO UPDATE SET counter = folio_counters.counter + 1
		RETURNING counter`
	var counter int64
	if err := q.QueryRow(context.Background(), query, docType, year).Scan(&counter); err != nil {
		return "", fmt.Errorf("next folio %s: %w", docType, err)
	}
	return fmt.Sprintf("%s-%d-%05d", docType, year, counter), nil
}
