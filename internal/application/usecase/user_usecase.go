package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/cmms-inventario/internal/application/auth"
	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// CreateUserInput datos para dar de alta un usuario (usado por el seed).
type CreateUserInput struct {
	Username    string
	Email       string
	FullName    string
	Password    string
	IsSuperuser bool
}

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// EnsureUser crea el usuario si no existe; si ya existe lo devuelve sin tocarlo.
// El bool indica si fue creado.
func (uc *UserUseCase) EnsureUser(ctx context.Context, in CreateUserInput) (*dto.UserResponse, bool, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, false, domain.Invalid("username y password son requeridos")
	}
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return entityToUserResponse(existing), false, nil
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, false, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		IsActive:     true,
		IsSuperuser:  in.IsSuperuser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return entityToUserResponse(user), true, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}
