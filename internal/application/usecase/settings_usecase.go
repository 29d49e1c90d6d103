package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/application/ports"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

const (
	settingsCacheKey = "settings:global"
	settingsCacheTTL = 5 * time.Minute
)

// SettingsDefaults valores de arranque cuando el documento de ajustes aún
// no existe en la base (vienen de configuración).
type SettingsDefaults struct {
	DefaultMargin  decimal.Decimal
	ExchangeRate   decimal.Decimal
	DefaultTaxRate decimal.Decimal
}

// SettingsUseCase ajustes comerciales globales con caché de lectura.
// Todo consumo pasa por Current(): la caché es explícita y su invalidación
// ocurre en el único punto de escritura (Update).
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	cache        ports.Cache
	defaults     SettingsDefaults
}

// NewSettingsUseCase construye el caso de uso de ajustes.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository, cache ports.Cache, defaults SettingsDefaults) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo, cache: cache, defaults: defaults}
}

// Current devuelve los ajustes vigentes, sirviendo de caché cuando hay hit.
// Si el documento no existe todavía se responden los defaults de
// configuración sin persistirlos.
func (uc *SettingsUseCase) Current() (*entity.Settings, error) {
	if v, ok := uc.cache.Get(settingsCacheKey); ok {
		if s, ok := v.(*entity.Settings); ok {
			return s, nil
		}
	}
	s, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &entity.Settings{
			ID:             entity.SettingsID,
			DefaultMargin:  uc.defaults.DefaultMargin,
			ExchangeRate:   uc.defaults.ExchangeRate,
			DefaultTaxRate: uc.defaults.DefaultTaxRate,
		}
	}
	uc.cache.Set(settingsCacheKey, s, settingsCacheTTL)
	return s, nil
}

// Get devuelve los ajustes vigentes como DTO.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.Current()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// Update modifica los ajustes (solo administración). El tipo de cambio y las
// tasas deben ser positivos; la caché se invalida para que la siguiente
// cotización ya use la paridad nueva.
func (uc *SettingsUseCase) Update(actorID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	current, err := uc.Current()
	if err != nil {
		return nil, err
	}
	next := *current
	if in.DefaultMargin != nil {
		if in.DefaultMargin.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidConfiguration
		}
		next.DefaultMargin = *in.DefaultMargin
	}
	if in.ExchangeRate != nil {
		if !in.ExchangeRate.IsPositive() {
			return nil, domain.ErrInvalidConfiguration
		}
		next.ExchangeRate = *in.ExchangeRate
	}
	if in.DefaultTaxRate != nil {
		if in.DefaultTaxRate.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidConfiguration
		}
		next.DefaultTaxRate = *in.DefaultTaxRate
	}
	next.ID = entity.SettingsID
	next.UpdatedBy = actorID
	next.UpdatedAt = time.Now()
	if err := uc.settingsRepo.Upsert(&next); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(settingsCacheKey)
	return toSettingsResponse(&next), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		DefaultMargin:  s.DefaultMargin,
		ExchangeRate:   s.ExchangeRate,
		DefaultTaxRate: s.DefaultTaxRate,
		UpdatedBy:      s.UpdatedBy,
		UpdatedAt:      s.UpdatedAt,
	}
}
