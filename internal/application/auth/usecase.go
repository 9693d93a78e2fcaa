package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain"
	"github.com/jhoicas/factory-api/internal/domain/entity"
	"github.com/jhoicas/factory-api/internal/domain/repository"
	"github.com/jhoicas/factory-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y gestión de usuarios.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida el rol, hashea el password con bcrypt y
// persiste. Devuelve domain.ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("role %q desconocido: %w", in.Role, domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Login verifica username/password y emite un JWT con user_id y role.
// Usuario inexistente y password incorrecto devuelven el mismo error
// genérico para no filtrar cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, string(u.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(u),
	}, nil
}

// GetUser obtiene un usuario por ID; (nil, nil) si no existe.
func (uc *AuthUseCase) GetUser(id int64) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUserResponse(u), nil
}

// UpdateUser actualiza password y/o role de un usuario.
func (uc *AuthUseCase) UpdateUser(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("role %q desconocido: %w", *in.Role, domain.ErrInvalidInput)
		}
		u.Role = role
	}
	u.UpdatedAt = time.Now()
	if err := uc.users.Update(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// DeleteUser elimina un usuario; false si el id no existe.
func (uc *AuthUseCase) DeleteUser(id int64) (bool, error) {
	return uc.users.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
