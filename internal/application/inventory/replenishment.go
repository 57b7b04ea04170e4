package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición: saldos por debajo de la cantidad mínima
// del repuesto, priorizados por criticidad.
type ReplenishmentUseCase struct {
	balances repository.BalanceRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(balances repository.BalanceRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{balances: balances}
}

// GenerateReplenishmentList devuelve los saldos bajo mínimo con la cantidad sugerida de pedido.
// locationID 0 considera todas las ubicaciones.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, locationID int64) ([]dto.LowStockSuggestionDTO, error) {
	rows, err := uc.balances.ListBelowMinimum(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []dto.LowStockSuggestionDTO{}, nil
	}

	suggestions := make([]dto.LowStockSuggestionDTO, 0, len(rows))
	for _, r := range rows {
		suggested := IdealStock(r.MinimumQuantity) - r.InStock
		if suggested < 0 {
			suggested = 0
		}
		price := costOrZero(r.UnitPrice)
		suggestions = append(suggestions, dto.LowStockSuggestionDTO{
			SparePartID:     r.PartID,
			PartCode:        r.PartCode,
			PartName:        r.PartName,
			LocationID:      r.LocationID,
			LocationName:    r.LocationName,
			Criticality:     r.Criticality,
			InStock:         r.InStock,
			MinimumQuantity: r.MinimumQuantity,
			SuggestedQty:    suggested,
			UnitPrice:       price,
			EstimatedCost:   price.Mul(decimal.NewFromInt(suggested)),
		})
	}

	// Primero mayor criticidad, luego mayor déficit bajo el mínimo, y por último código.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if ra, rb := criticalityRank(a.Criticality), criticalityRank(b.Criticality); ra != rb {
			return ra < rb
		}
		da, db := a.MinimumQuantity-a.InStock, b.MinimumQuantity-b.InStock
		if da != db {
			return da > db
		}
		return a.PartCode < b.PartCode
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

// IdealStock nivel objetivo tras reponer: 1.5 veces el mínimo, redondeado hacia arriba.
func IdealStock(minimum int64) int64 {
	return (minimum*3 + 1) / 2
}

func criticalityRank(c string) int {
	switch c {
	case entity.CriticalityHigh:
		return 0
	case entity.CriticalityMedium:
		return 1
	case entity.CriticalityLow:
		return 2
	default:
		return 3
	}
}
