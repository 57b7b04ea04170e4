package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// TransferItemView línea de traslado con datos del repuesto.
type TransferItemView struct {
	PartID   int64
	PartCode string
	PartName string
	Quantity int64
	UnitCost *decimal.Decimal
}

// TransferView traslado con nombres de ubicaciones, usuario e ítems.
type TransferView struct {
	entity.TransferHeader
	FromLocationName  string
	ToLocationName    string
	TransferredByName string
	Items             []TransferItemView
}

// TransferRepository define el puerto de persistencia para traslados.
type TransferRepository interface {
	CreateHeader(ctx context.Context, header *entity.TransferHeader) error
	CreateItem(ctx context.Context, item *entity.TransferItem) error
	GetByID(ctx context.Context, id int64) (*TransferView, error)
	List(ctx context.Context, limit, offset int) ([]TransferView, error)
}
