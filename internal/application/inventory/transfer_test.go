package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/cmms-inventario/internal/application/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

func transferOf(f *fixture, from, to int64, items ...appinv.TransferItemInput) appinv.TransferInput {
	return appinv.TransferInput{
		FromLocationID: from,
		ToLocationID:   to,
		TransferredBy:  f.userID,
		Notes:          "reposición de taller",
		Items:          items,
	}
}

func TestTransfer_CreaSaldoDestino(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 10)

	id, err := f.transfer.Transfer(context.Background(),
		transferOf(f, f.locA, f.locB, appinv.TransferItemInput{PartID: f.partP, Quantity: 4}))
	require.NoError(t, err)

	assert.Equal(t, int64(6), f.store.Balance(f.partP, f.locA).InStock)
	dst := f.store.Balance(f.partP, f.locB)
	require.NotNil(t, dst)
	assert.Equal(t, int64(4), dst.InStock)
	assert.Equal(t, int64(4), dst.TotalReceived)
	assert.Equal(t, int64(0), dst.TotalConsumption)

	headers := f.store.TransferHeaders()
	require.Len(t, headers, 1)
	assert.Equal(t, id, headers[0].ID)
	assert.Equal(t, entity.TransferStatusCompleted, headers[0].Status)

	items := f.store.TransferItems()
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].TransferID)
	assert.Equal(t, int64(4), items[0].Quantity)
}

func TestTransfer_StockInsuficienteRevierteTodo(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 10)

	_, err := f.transfer.Transfer(context.Background(),
		transferOf(f, f.locA, f.locB, appinv.TransferItemInput{PartID: f.partP, Quantity: 15}))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var se *domain.StockError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, f.partP, se.PartID)
	assert.Equal(t, int64(10), se.Available)
	assert.Equal(t, int64(15), se.Requested)

	assert.Equal(t, int64(10), f.store.Balance(f.partP, f.locA).InStock)
	assert.Nil(t, f.store.Balance(f.partP, f.locB))
	assert.Empty(t, f.store.TransferHeaders())
	assert.Empty(t, f.store.TransferItems())
}

func TestTransfer_SinSaldoEnOrigen(t *testing.T) {
	f := newFixture()

	_, err := f.transfer.Transfer(context.Background(),
		transferOf(f, f.locA, f.locB, appinv.TransferItemInput{PartID: f.partQ, Quantity: 1}))

	var se *domain.StockError
	require.True(t, errors.As(err, &se))
	assert.True(t, se.NoBalance)
	assert.Equal(t, f.partQ, se.PartID)
	assert.Contains(t, err.Error(), "no hay stock del repuesto")
	assert.Empty(t, f.store.TransferHeaders())
}

func TestTransfer_FalloEnTercerItemDeshaceLosAnteriores(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 10)
	f.store.SetBalance(f.partQ, f.locA, 3)
	f.store.SetBalance(f.partP, f.locB, 1)

	_, err := f.transfer.Transfer(context.Background(), transferOf(f, f.locA, f.locB,
		appinv.TransferItemInput{PartID: f.partP, Quantity: 2},
		appinv.TransferItemInput{PartID: f.partQ, Quantity: 3},
		appinv.TransferItemInput{PartID: f.partP, Quantity: 9},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), f.store.Balance(f.partP, f.locA).InStock)
	assert.Equal(t, int64(3), f.store.Balance(f.partQ, f.locA).InStock)
	assert.Equal(t, int64(1), f.store.Balance(f.partP, f.locB).InStock)
	assert.Nil(t, f.store.Balance(f.partQ, f.locB))
	assert.Empty(t, f.store.TransferHeaders())
	assert.Empty(t, f.store.TransferItems())
}

func TestTransfer_ConservaStockTotalYNoTocaAcumulados(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 10)
	f.store.SetBalance(f.partP, f.locB, 5)
	srcBefore := f.store.Balance(f.partP, f.locA)
	dstBefore := f.store.Balance(f.partP, f.locB)

	_, err := f.transfer.Transfer(context.Background(), transferOf(f, f.locA, f.locB,
		appinv.TransferItemInput{PartID: f.partP, Quantity: 3},
		appinv.TransferItemInput{PartID: f.partP, Quantity: 2},
	))
	require.NoError(t, err)

	src := f.store.Balance(f.partP, f.locA)
	dst := f.store.Balance(f.partP, f.locB)
	assert.Equal(t, srcBefore.InStock+dstBefore.InStock, src.InStock+dst.InStock)
	assert.Equal(t, int64(5), src.InStock)
	assert.Equal(t, int64(10), dst.InStock)
	assert.Equal(t, srcBefore.TotalReceived, src.TotalReceived)
	assert.Equal(t, dstBefore.TotalReceived, dst.TotalReceived)
	assert.Equal(t, srcBefore.TotalConsumption, src.TotalConsumption)
	assert.Len(t, f.store.TransferItems(), 2)
}

func TestTransfer_MismoRepuestoEnVariasLineasCreaUnSoloSaldoDestino(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 10)
	before := f.store.BalanceCount()

	_, err := f.transfer.Transfer(context.Background(), transferOf(f, f.locA, f.locB,
		appinv.TransferItemInput{PartID: f.partP, Quantity: 4},
		appinv.TransferItemInput{PartID: f.partP, Quantity: 3},
	))
	require.NoError(t, err)

	assert.Equal(t, int64(3), f.store.Balance(f.partP, f.locA).InStock)
	dst := f.store.Balance(f.partP, f.locB)
	require.NotNil(t, dst)
	assert.Equal(t, int64(7), dst.InStock)
	assert.Equal(t, int64(4), dst.TotalReceived, "la segunda línea deposita sobre el saldo recién creado")
	assert.Equal(t, before+1, f.store.BalanceCount())
	assert.Len(t, f.store.TransferItems(), 2)
}

func TestTransfer_MismoRepuestoExcedeEnLaSegundaLineaRevierteTodo(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 3)
	before := f.store.BalanceCount()

	_, err := f.transfer.Transfer(context.Background(), transferOf(f, f.locA, f.locB,
		appinv.TransferItemInput{PartID: f.partP, Quantity: 2},
		appinv.TransferItemInput{PartID: f.partP, Quantity: 2},
	))
	var se *domain.StockError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, int64(1), se.Available)
	assert.Equal(t, int64(2), se.Requested)

	assert.Equal(t, int64(3), f.store.Balance(f.partP, f.locA).InStock)
	assert.Nil(t, f.store.Balance(f.partP, f.locB))
	assert.Equal(t, before, f.store.BalanceCount())
	assert.Empty(t, f.store.TransferHeaders())
	assert.Empty(t, f.store.TransferItems())
}

func TestTransfer_Validaciones(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 10)

	cases := map[string]appinv.TransferInput{
		"sin items":          transferOf(f, f.locA, f.locB),
		"cantidad cero":      transferOf(f, f.locA, f.locB, appinv.TransferItemInput{PartID: f.partP, Quantity: 0}),
		"cantidad negativa":  transferOf(f, f.locA, f.locB, appinv.TransferItemInput{PartID: f.partP, Quantity: -2}),
		"misma ubicacion":    transferOf(f, f.locA, f.locA, appinv.TransferItemInput{PartID: f.partP, Quantity: 1}),
		"repuesto sin id":    transferOf(f, f.locA, f.locB, appinv.TransferItemInput{Quantity: 1}),
		"origen sin definir": transferOf(f, 0, f.locB, appinv.TransferItemInput{PartID: f.partP, Quantity: 1}),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.transfer.Transfer(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.store.TransferHeaders())
	assert.Equal(t, int64(10), f.store.Balance(f.partP, f.locA).InStock)
}

func TestTransfer_ReferenciasInexistentes(t *testing.T) {
	f := newFixture()
	f.store.SetBalance(f.partP, f.locA, 10)

	_, err := f.transfer.Transfer(context.Background(),
		transferOf(f, f.locA, 999, appinv.TransferItemInput{PartID: f.partP, Quantity: 1}))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.transfer.Transfer(context.Background(),
		transferOf(f, f.locA, f.locB, appinv.TransferItemInput{PartID: 999, Quantity: 1}))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := transferOf(f, f.locA, f.locB, appinv.TransferItemInput{PartID: f.partP, Quantity: 1})
	in.TransferredBy = 999
	_, err = f.transfer.Transfer(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
