// Package session implementa el almacén de sesiones: en memoria para una sola instancia
// y en Redis cuando varias instancias comparten sesiones.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// MemoryStore guarda sesiones en un mapa protegido por RWMutex. Una goroutine elimina
// periódicamente las vencidas hasta que se llama a Close.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
	log      zerolog.Logger

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewMemoryStore crea el store y arranca el barrido cada sweepEvery (si es > 0).
func NewMemoryStore(sweepEvery time.Duration, log zerolog.Logger) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]entity.Session),
		now:      time.Now,
		log:      log.With().Str("component", "session_memory").Logger(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	if sweepEvery > 0 {
		go s.sweepLoop(sweepEvery)
	} else {
		close(s.done)
	}
	return s
}

// Save inserta o reemplaza la sesión.
func (s *MemoryStore) Save(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	s.sessions[session.ID] = *session
	s.mu.Unlock()
	return nil
}

// Get devuelve una copia de la sesión o (nil, nil). Una sesión vencida se trata como ausente.
func (s *MemoryStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || sess.Expired(s.now()) {
		return nil, nil
	}
	return &sess, nil
}

// Delete elimina la sesión; no falla si no existe.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Sweep elimina las sesiones vencidas y devuelve cuántas borró.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len número de sesiones guardadas (incluye vencidas aún no barridas).
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close detiene el barrido y espera a que la goroutine termine.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	<-s.done
	return nil
}

func (s *MemoryStore) sweepLoop(every time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug().Int("removed", n).Msg("sesiones vencidas eliminadas")
			}
		}
	}
}
