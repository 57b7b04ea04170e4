package repository

import (
	"context"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id int64) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	// List ordena por nombre; limit <= 0 devuelve todas.
	List(ctx context.Context, limit, offset int) ([]*entity.Location, error)
}
