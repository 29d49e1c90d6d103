package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Igual que las cotizaciones: cabecera en orders, partidas en order_items.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, folio, quote_id, client_id, sales_rep_id, status, subtotal, tax_rate, tax_amount, total, currency, exchange_rate, notes, created_at, updated_at`

// Create persiste la orden con sus partidas. La columna quote_id tiene
// constraint UNIQUE: una cotización produce a lo más una orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, folio, quote_id, client_id, sales_rep_id, status, subtotal, tax_rate, tax_amount, total, currency, exchange_rate, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Folio, order.QuoteID, order.ClientID, order.SalesRepID, order.Status,
		order.Financials.Subtotal, order.Financials.TaxRate, order.Financials.TaxAmount,
		order.Financials.Total, order.Financials.Currency, order.Financials.ExchangeRate,
		nullIfEmpty(order.Notes), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}
	itemQuery := `
		INSERT INTO order_items (id, order_id, position, product_id, product_name, quantity, base_price, import_cost, freight_cost, margin, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for i, it := range order.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			uuid.New().String(), order.ID, i, nullIfEmpty(it.ProductID), it.ProductName,
			it.Quantity, it.BasePrice, it.ImportCost, it.FreightCost, it.Margin, it.Currency,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden completa.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOneWithItems(query, id)
}

// GetByQuoteID obtiene la orden derivada de una cotización, si existe.
func (r *OrderRepo) GetByQuoteID(quoteID string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE quote_id = $1`
	return r.scanOneWithItems(query, quoteID)
}

func (r *OrderRepo) scanOneWithItems(query string, arg any) (*entity.Order, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	itemsByOrder, err := r.loadItems([]string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = itemsByOrder[order.ID]
	return order, nil
}

// Update actualiza la cabecera de la orden. Las partidas heredadas de la
// cotización son inmutables; no se tocan.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `UPDATE orders SET status = $2, notes = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, nullIfEmpty(order.Notes), order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List lista órdenes con paginación, recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListBySalesRep lista las órdenes de un vendedor.
func (r *OrderRepo) ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE sales_rep_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, salesRepID, limit, offset)
}

// ListByStatus lista órdenes en un estado.
func (r *OrderRepo) ListByStatus(status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, status, limit, offset)
}

// ListBySalesRepAndStatus lista las órdenes de un vendedor en un estado, con
// la paginación aplicada ya sobre el conjunto filtrado.
func (r *OrderRepo) ListBySalesRepAndStatus(salesRepID, status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE sales_rep_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.scanMany(query, salesRepID, status, limit, offset)
}

// NextFolio reserva el siguiente consecutivo ORD-<año>-<n>.
func (r *OrderRepo) NextFolio(year int) (string, error) {
	return nextFolio(r.q, "ORD", year)
}

func (r *OrderRepo) scanMany(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	itemsByOrder, err := r.loadItems(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = itemsByOrder[o.ID]
	}
	return list, nil
}

func (r *OrderRepo) loadItems(orderIDs []string) (map[string][]pricing.LineItem, error) {
	query := `
		SELECT order_id, product_id, product_name, quantity, base_price, import_cost, freight_cost, margin, currency
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]pricing.LineItem)
	for rows.Next() {
		var orderID string
		var productID *string
		var it pricing.LineItem
		err := rows.Scan(&orderID, &productID, &it.ProductName, &it.Quantity,
			&it.BasePrice, &it.ImportCost, &it.FreightCost, &it.Margin, &it.Currency)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if productID != nil {
			it.ProductID = *productID
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var notes *string
	err := row.Scan(
		&o.ID, &o.Folio, &o.QuoteID, &o.ClientID, &o.SalesRepID, &o.Status,
		&o.Financials.Subtotal, &o.Financials.TaxRate, &o.Financials.TaxAmount,
		&o.Financials.Total, &o.Financials.Currency, &o.Financials.ExchangeRate,
		&notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		o.Notes = *notes
	}
	return &o, nil
}
