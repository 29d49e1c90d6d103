package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain"
	"github.com/norteindustrial/norte-erp/internal/domain/authz"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
	"github.com/norteindustrial/norte-erp/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y setup inicial.
// El alta normal de usuarios la hace UserUseCase (solo administración);
// aquí solo vive Setup, que crea el primer SUPERADMIN cuando la tabla
// de usuarios está vacía.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT con el rol y retorna token + usuario.
// Cualquier fallo de credenciales es domain.ErrUnauthorized; una cuenta
// válida pero no activa es domain.ErrForbidden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Setup crea el primer usuario SUPERADMIN. Solo procede si no existe ningún
// usuario; con la tabla poblada devuelve domain.ErrConflict (el endpoint
// queda inerte después del arranque inicial).
func (uc *AuthUseCase) Setup(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.List(1, 0)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domain.ErrConflict
	}
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         authz.RoleSuperAdmin,
		Status:       "active",
		MonthlyGoal:  decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad a su DTO de salida (sin password hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		Status:      u.Status,
		MonthlyGoal: u.MonthlyGoal,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
