package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// BalanceView saldo enriquecido con datos del repuesto y la ubicación (lecturas).
type BalanceView struct {
	entity.Balance
	PartCode        string
	PartName        string
	UnitOfIssue     string
	UnitPrice       *decimal.Decimal
	MinimumQuantity int64
	Criticality     string
	LocationName    string
}

// BalanceRepository define el puerto del libro de saldos por (repuesto, ubicación).
// Get y GetForUpdate devuelven (nil, nil) si no existe saldo: ausencia equivale a stock cero.
type BalanceRepository interface {
	Get(ctx context.Context, partID, locationID int64) (*entity.Balance, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, partID, locationID int64) (*entity.Balance, error)
	// Create inserta un saldo nuevo; devuelve domain.ErrConflict si el par ya existe.
	Create(ctx context.Context, balance *entity.Balance) error
	Update(ctx context.Context, balance *entity.Balance) error
	ListByLocation(ctx context.Context, locationID int64) ([]BalanceView, error)
	ListByPart(ctx context.Context, partID int64) ([]BalanceView, error)
	// ListBelowMinimum saldos con in_stock < minimum_quantity del repuesto.
	// locationID == 0 considera todas las ubicaciones.
	ListBelowMinimum(ctx context.Context, locationID int64) ([]BalanceView, error)
}
