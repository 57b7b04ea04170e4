package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/cmms-inventario/internal/application/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

func TestIdealStock(t *testing.T) {
	assert.Equal(t, int64(0), appinv.IdealStock(0))
	assert.Equal(t, int64(2), appinv.IdealStock(1))
	assert.Equal(t, int64(3), appinv.IdealStock(2))
	assert.Equal(t, int64(8), appinv.IdealStock(5))
}

func TestGenerateReplenishmentList_PriorizaCriticidad(t *testing.T) {
	f := newFixture()
	price := decimal.RequireFromString("10")
	partR := f.store.AddPart(entity.Part{
		Code: "R-001", Name: "Filtro hidráulico", MinimumQuantity: 10,
		Criticality: entity.CriticalityMedium, UnitPrice: &price,
	})
	f.store.SetBalance(f.partQ, f.locA, 0) // low, mínimo 2
	f.store.SetBalance(f.partP, f.locA, 4) // high, mínimo 5
	f.store.SetBalance(partR, f.locA, 3)   // medium, mínimo 10
	f.store.SetBalance(f.partP, f.locB, 9) // sobre el mínimo

	uc := appinv.NewReplenishmentUseCase(f.store.Balances())
	list, err := uc.GenerateReplenishmentList(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "P-001", list[0].PartCode)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, int64(4), list[0].SuggestedQty) // ceil(7.5)=8 - 4

	assert.Equal(t, "R-001", list[1].PartCode)
	assert.Equal(t, int64(12), list[1].SuggestedQty) // 15 - 3
	assert.True(t, list[1].EstimatedCost.Equal(decimal.NewFromInt(120)))

	assert.Equal(t, "Q-001", list[2].PartCode)
	assert.Equal(t, 3, list[2].Priority)
}

func TestGenerateReplenishmentList_FiltraPorUbicacion(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 1)
	f.store.SetBalance(f.partP, f.locB, 1)

	uc := appinv.NewReplenishmentUseCase(f.store.Balances())
	list, err := uc.GenerateReplenishmentList(context.Background(), f.locB)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.locB, list[0].LocationID)

	none, err := uc.GenerateReplenishmentList(context.Background(), f.locC)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
