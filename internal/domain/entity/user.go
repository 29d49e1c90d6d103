package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/norteindustrial/norte-erp/internal/domain/authz"
)

// User cuenta del sistema. El rol solo lo cambia un administrador
// (UserUseCase.Update); nunca el propio usuario.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Name         string
	Role         authz.Role
	Status       string          // active, inactive, suspended
	MonthlyGoal  decimal.Decimal // meta mensual de venta (solo SALES la usa)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
