package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

func newSession(id string, expiresAt time.Time) *entity.Session {
	return &entity.Session{ID: id, UserID: 7, Username: "tecnico", IssuedAt: expiresAt.Add(-time.Hour), ExpiresAt: expiresAt}
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	s := NewMemoryStore(0, zerolog.Nop())
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, newSession("a", time.Now().Add(time.Hour))))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.UserID)

	require.NoError(t, s.Delete(ctx, "a"))
	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, s.Delete(ctx, "no-existe"))
}

func TestMemoryStore_VencidaNoSeDevuelveYSeBarre(t *testing.T) {
	s := NewMemoryStore(0, zerolog.Nop())
	defer s.Close()
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, newSession("vieja", now.Add(-time.Second))))
	require.NoError(t, s.Save(ctx, newSession("viva", now.Add(time.Minute))))

	got, err := s.Get(ctx, "vieja")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_BarridoPeriodico(t *testing.T) {
	s := NewMemoryStore(10*time.Millisecond, zerolog.Nop())
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, newSession("x", time.Now().Add(-time.Minute))))

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "Close debe ser idempotente")
}

func TestMemoryStore_AccesoConcurrente(t *testing.T) {
	s := NewMemoryStore(time.Millisecond, zerolog.Nop())
	defer s.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			_ = s.Save(ctx, newSession(id, time.Now().Add(time.Hour)))
			_, _ = s.Get(ctx, id)
			_ = s.Delete(ctx, id)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, s.Len())
}
