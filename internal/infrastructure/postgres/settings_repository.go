package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La tabla settings guarda un solo documento con id fijo.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get obtiene el documento de ajustes; nil si aún no existe.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT id, default_margin, exchange_rate, default_tax_rate, updated_by, updated_at
		FROM settings WHERE id = $1`
	var s entity.Settings
	var updatedBy *string
	err := r.q.QueryRow(context.Background(), query, entity.SettingsID).Scan(
		&s.ID, &s.DefaultMargin, &s.ExchangeRate, &s.DefaultTaxRate, &updatedBy, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if updatedBy != nil {
		s.UpdatedBy = *updatedBy
	}
	return &s, nil
}

// Upsert crea o reemplaza el documento de ajustes.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, default_margin, exchange_rate, default_tax_rate, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET default_margin = EXCLUDED.default_margin,
		    exchange_rate = EXCLUDED.exchange_rate,
		    default_tax_rate = EXCLUDED.default_tax_rate,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.DefaultMargin, settings.ExchangeRate, settings.DefaultTaxRate,
		nullIfEmpty(settings.UpdatedBy), settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
