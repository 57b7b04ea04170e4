package repository

import (
	"context"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// PartFilter filtros para listar el catálogo de repuestos.
type PartFilter struct {
	Category    string
	Criticality string
	Search      string // coincide con código o nombre (ILIKE)
	Limit       int
	Offset      int
}

// PartRepository define el puerto de persistencia para el catálogo maestro (DIP).
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id int64) (*entity.Part, error)
	GetByCode(ctx context.Context, code string) (*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	List(ctx context.Context, filter PartFilter) ([]*entity.Part, error)
	// Categories y Criticalities devuelven los valores distintos no nulos (para filtros de la UI).
	Categories(ctx context.Context) ([]string, error)
	Criticalities(ctx context.Context) ([]string, error)
}
