package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSessionExpired    = errors.New("sesión expirada")
)

// Invalid envuelve ErrInvalidInput con un detalle legible para el cliente.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Missing envuelve ErrNotFound indicando qué recurso falta.
func Missing(resource string, id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, resource, id)
}

// StockError describe un faltante de stock sobre un repuesto concreto.
// errors.Is(err, ErrInsufficientStock) es verdadero para cualquier StockError.
type StockError struct {
	PartID     int64
	LocationID int64
	Available  int64
	Requested  int64
	NoBalance  bool // no existe saldo para (repuesto, ubicación)
}

func (e *StockError) Error() string {
	if e.NoBalance {
		return fmt.Sprintf("no hay stock del repuesto %d en la ubicación de origen %d", e.PartID, e.LocationID)
	}
	return fmt.Sprintf("stock insuficiente para el repuesto %d: disponible %d, solicitado %d",
		e.PartID, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }
