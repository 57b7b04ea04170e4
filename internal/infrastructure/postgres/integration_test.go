package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/cmms-inventario/internal/application/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/cmms-inventario/pkg/config"
)

// Estos tests requieren un PostgreSQL vacío: TEST_DATABASE_URL=postgres://...
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool, zerolog.Nop()))
	require.NoError(t, postgres.Migrate(ctx, pool, zerolog.Nop()), "Migrate debe ser idempotente")
	return pool
}

type seeded struct {
	partID, locA, locB, userID int64
}

func seed(t *testing.T, pool *pgxpool.Pool) seeded {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	suffix := fmt.Sprintf("%d", now.UnixNano())

	price := decimal.RequireFromString("15.75")
	part := &entity.Part{Code: "IT-" + suffix, Name: "Rodamiento", UnitPrice: &price, MinimumQuantity: 3, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, postgres.NewPartRepository(pool).Create(ctx, part))

	locs := postgres.NewLocationRepository(pool)
	a := &entity.Location{Name: "A-" + suffix, CreatedAt: now, UpdatedAt: now}
	b := &entity.Location{Name: "B-" + suffix, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, locs.Create(ctx, a))
	require.NoError(t, locs.Create(ctx, b))

	user := &entity.User{Username: "it-" + suffix, PasswordHash: "x", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, postgres.NewUserRepository(pool).Create(ctx, user))

	return seeded{partID: part.ID, locA: a.ID, locB: b.ID, userID: user.ID}
}

func useCases(pool *pgxpool.Pool) (*appinv.ReceivePartsUseCase, *appinv.TransferPartsUseCase) {
	tx := postgres.NewTxRunner(pool)
	parts := postgres.NewPartRepository(pool)
	locs := postgres.NewLocationRepository(pool)
	users := postgres.NewUserRepository(pool)
	return appinv.NewReceivePartsUseCase(tx, parts, locs, users, zerolog.Nop()),
		appinv.NewTransferPartsUseCase(tx, parts, locs, users, zerolog.Nop())
}

func TestIntegracion_RecepcionYTraslado(t *testing.T) {
	pool := testPool(t)
	s := seed(t, pool)
	ctx := context.Background()
	receive, transfer := useCases(pool)
	balances := postgres.NewBalanceRepository(pool)

	_, err := receive.Receive(ctx, appinv.ReceiveInput{
		PartID: s.partID, LocationID: s.locA, Quantity: 10, ReceivedBy: s.userID, Supplier: "Acme", ReferenceNumber: "PO-1",
	})
	require.NoError(t, err)

	id, err := transfer.Transfer(ctx, appinv.TransferInput{
		FromLocationID: s.locA, ToLocationID: s.locB, TransferredBy: s.userID,
		Items: []appinv.TransferItemInput{{PartID: s.partID, Quantity: 4}},
	})
	require.NoError(t, err)

	a, err := balances.Get(ctx, s.partID, s.locA)
	require.NoError(t, err)
	b, err := balances.Get(ctx, s.partID, s.locB)
	require.NoError(t, err)
	assert.Equal(t, int64(6), a.InStock)
	assert.Equal(t, int64(4), b.InStock)

	view, err := postgres.NewTransferRepository(pool).GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, entity.TransferStatusCompleted, view.Status)

	_, err = transfer.Transfer(ctx, appinv.TransferInput{
		FromLocationID: s.locA, ToLocationID: s.locB, TransferredBy: s.userID,
		Items: []appinv.TransferItemInput{{PartID: s.partID, Quantity: 100}},
	})
	var se *domain.StockError
	require.True(t, errors.As(err, &se))

	a, err = balances.Get(ctx, s.partID, s.locA)
	require.NoError(t, err)
	assert.Equal(t, int64(6), a.InStock)

	below, err := balances.ListBelowMinimum(ctx, s.locB)
	require.NoError(t, err)
	assert.Empty(t, below)
}

func TestIntegracion_TrasladosOpuestosConcurrentesConservanStock(t *testing.T) {
	pool := testPool(t)
	s := seed(t, pool)
	ctx := context.Background()
	receive, transfer := useCases(pool)

	for _, loc := range []int64{s.locA, s.locB} {
		_, err := receive.Receive(ctx, appinv.ReceiveInput{PartID: s.partID, LocationID: loc, Quantity: 50, ReceivedBy: s.userID})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 20; i++ {
		from, to := s.locA, s.locB
		if i%2 == 1 {
			from, to = to, from
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := transfer.Transfer(ctx, appinv.TransferInput{
				FromLocationID: from, ToLocationID: to, TransferredBy: s.userID,
				Items: []appinv.TransferItemInput{{PartID: s.partID, Quantity: 1}},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	balances := postgres.NewBalanceRepository(pool)
	a, err := balances.Get(ctx, s.partID, s.locA)
	require.NoError(t, err)
	b, err := balances.Get(ctx, s.partID, s.locB)
	require.NoError(t, err)
	assert.Equal(t, int64(100), a.InStock+b.InStock)
}

func TestIntegracion_SaldoDuplicadoEsConflicto(t *testing.T) {
	pool := testPool(t)
	s := seed(t, pool)
	ctx := context.Background()
	balances := postgres.NewBalanceRepository(pool)
	now := time.Now()

	require.NoError(t, balances.Create(ctx, &entity.Balance{PartID: s.partID, LocationID: s.locA, CreatedAt: now, UpdatedAt: now}))
	err := balances.Create(ctx, &entity.Balance{PartID: s.partID, LocationID: s.locA, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = balances.Create(ctx, &entity.Balance{PartID: 999999999, LocationID: s.locA, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
