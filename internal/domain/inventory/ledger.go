// Package inventory contiene las reglas puras del libro de saldos (sin persistencia).
//
// Las funciones mutan el *entity.Balance recibido; el caso de uso decide cuándo persistir.
package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// Key identifica un saldo: par (repuesto, ubicación).
type Key struct {
	PartID     int64
	LocationID int64
}

// Less orden total usado para tomar bloqueos siempre en el mismo orden.
func (k Key) Less(o Key) bool {
	if k.PartID != o.PartID {
		return k.PartID < o.PartID
	}
	return k.LocationID < o.LocationID
}

// SortedKeys devuelve las claves sin duplicados y en orden ascendente (part_id, location_id).
func SortedKeys(keys []Key) []Key {
	seen := make(map[Key]struct{}, len(keys))
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Opening crea el saldo inicial de un par que aún no tenía registro.
// in_stock = total_received = qty, total_consumption = 0.
func Opening(key Key, qty int64, now time.Time) *entity.Balance {
	return &entity.Balance{
		PartID:        key.PartID,
		LocationID:    key.LocationID,
		InStock:       qty,
		TotalReceived: qty,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Receive aplica una recepción externa: suma a in_stock y a total_received.
func Receive(b *entity.Balance, qty int64, now time.Time) {
	b.InStock += qty
	b.TotalReceived += qty
	b.UpdatedAt = now
}

// Deposit aplica la entrada de un traslado: solo in_stock.
// Los acumulados registran recepciones y consumos externos, no movimientos internos.
func Deposit(b *entity.Balance, qty int64, now time.Time) {
	b.InStock += qty
	b.UpdatedAt = now
}

// Withdraw descuenta qty por la salida de un traslado. b nil significa que no existe saldo.
func Withdraw(b *entity.Balance, key Key, qty int64, now time.Time) error {
	if err := ensureAvailable(b, key, qty); err != nil {
		return err
	}
	b.InStock -= qty
	b.UpdatedAt = now
	return nil
}

// Consume descuenta qty por consumo y lo acumula en total_consumption.
func Consume(b *entity.Balance, key Key, qty int64, now time.Time) error {
	if err := ensureAvailable(b, key, qty); err != nil {
		return err
	}
	b.InStock -= qty
	b.TotalConsumption += qty
	b.UpdatedAt = now
	return nil
}

func ensureAvailable(b *entity.Balance, key Key, qty int64) error {
	if b == nil {
		return &domain.StockError{PartID: key.PartID, LocationID: key.LocationID, Requested: qty, NoBalance: true}
	}
	if b.InStock < qty {
		return &domain.StockError{
			PartID:     key.PartID,
			LocationID: key.LocationID,
			Available:  b.InStock,
			Requested:  qty,
		}
	}
	return nil
}
