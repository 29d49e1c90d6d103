package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUserRequest entrada para crear usuario (solo ADMIN/SUPERADMIN).
// El password llega en texto y se hashea en el use case.
type CreateUserRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Role        string          `json:"role" validate:"required,oneof=SUPERADMIN ADMIN SALES WAREHOUSE FINANCE"`
	MonthlyGoal decimal.Decimal `json:"monthly_goal,omitempty"`
}

// UpdateUserRequest entrada para actualizar usuario (solo ADMIN/SUPERADMIN).
// El rol se cambia por aquí y solo por aquí: nunca por el propio titular.
type UpdateUserRequest struct {
	Name        *string          `json:"name,omitempty"`
	Role        *string          `json:"role,omitempty"`
	Status      *string          `json:"status,omitempty"`
	MonthlyGoal *decimal.Decimal `json:"monthly_goal,omitempty"`
}

// ResetPasswordRequest entrada del reset administrativo de credenciales.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Status      string          `json:"status"`
	MonthlyGoal decimal.Decimal `json:"monthly_goal"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
