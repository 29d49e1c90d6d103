package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	appauth "github.com/norteindustrial/norte-erp/internal/application/auth"
	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// UserUseCase administración de cuentas (solo ADMIN/SUPERADMIN llegan aquí;
// el middleware de rutas lo garantiza). El cambio de rol pasa por Update y
// nunca lo ejecuta el propio titular sobre su cuenta.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create da de alta una cuenta con rol asignado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || len(in.Password) < 8 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	role, ok := authz.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		MonthlyGoal:  in.MonthlyGoal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return appauth.ToUserResponse(user), nil
}

// GetByID obtiene una cuenta.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return appauth.ToUserResponse(user), nil
}

// List lista cuentas paginadas.
func (uc *UserUseCase) List(page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *appauth.ToUserResponse(u))
	}
	return out, nil
}

// Update modifica nombre, rol, estatus o meta mensual. Un administrador no
// puede cambiarse el rol a sí mismo; eso evita dejarse fuera por accidente.
func (uc *UserUseCase) Update(actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if actorID == id {
			return nil, domain.ErrForbidden
		}
		role, ok := authz.ParseRole(*in.Role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.Status != nil {
		switch *in.Status {
		case "active", "inactive", "suspended":
			user.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.MonthlyGoal != nil {
		user.MonthlyGoal = *in.MonthlyGoal
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return appauth.ToUserResponse(user), nil
}

// ResetPassword asigna una credencial nueva (reset administrativo).
func (uc *UserUseCase) ResetPassword(id string, in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// Delete elimina una cuenta. Nadie se elimina a sí mismo.
func (uc *UserUseCase) Delete(actorID, id string) error {
	if actorID == id {
		return domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}
