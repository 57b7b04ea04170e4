package repository

import (
	"context"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// InflowView recepción con nombres resueltos para el historial.
type InflowView struct {
	entity.Inflow
	PartCode     string
	PartName     string
	LocationName string
	ReceiverName string
}

// InflowRepository define el puerto de persistencia para recepciones (solo inserción y lectura).
type InflowRepository interface {
	Create(ctx context.Context, inflow *entity.Inflow) error
	List(ctx context.Context, limit, offset int) ([]InflowView, error)
	ListByPart(ctx context.Context, partID int64) ([]InflowView, error)
}
