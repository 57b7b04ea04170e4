package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo repository.LocationRepository
	now  func() time.Time
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, now: time.Now}
}

// Create crea una nueva ubicación.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name es requerido")
	}
	now := uc.now()
	location := &entity.Location{
		Name:        name,
		Description: in.Description,
		Address:     in.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, location); err != nil {
		return nil, err
	}
	out := dto.NewLocationResponse(location)
	return &out, nil
}

// GetByID obtiene una ubicación; domain.ErrNotFound si no existe.
func (uc *LocationUseCase) GetByID(ctx context.Context, id int64) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.Missing("ubicación", id)
	}
	out := dto.NewLocationResponse(location)
	return &out, nil
}

// Update aplica un parche parcial sobre la ubicación.
func (uc *LocationUseCase) Update(ctx context.Context, id int64, patch dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.Missing("ubicación", id)
	}
	updated := ApplyLocationPatch(*current, patch)
	if updated.Name == "" {
		return nil, domain.Invalid("name no puede quedar vacío")
	}
	updated.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	out := dto.NewLocationResponse(&updated)
	return &out, nil
}

// List lista ubicaciones con paginación.
func (uc *LocationUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.LocationListResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.NewLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ApplyLocationPatch devuelve base con los campos presentes en patch aplicados.
func ApplyLocationPatch(base entity.Location, patch dto.UpdateLocationRequest) entity.Location {
	if patch.Name != nil {
		base.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		base.Description = *patch.Description
	}
	if patch.Address != nil {
		base.Address = *patch.Address
	}
	return base
}
