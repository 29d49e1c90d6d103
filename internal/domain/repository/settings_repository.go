package repository

import "github.com/norteindustrial/norte-erp/internal/domain/entity"

// SettingsRepository puerto de persistencia para el documento único de ajustes.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	// Upsert crea el documento si no existe; si existe, lo reemplaza.
	Upsert(settings *entity.Settings) error
}
