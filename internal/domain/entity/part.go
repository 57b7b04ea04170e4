package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de criticidad usados en el catálogo de repuestos.
const (
	CriticalityHigh   = "high"
	CriticalityMedium = "medium"
	CriticalityLow    = "low"
)

// Part representa un repuesto del catálogo maestro (tabla inventory_master).
// Code es la identidad inmutable; el resto de campos descriptivos es editable.
type Part struct {
	ID              int64
	Code            string // part_code, único
	Name            string
	Description     string
	UnitOfIssue     string           // unidad de despacho (UND, KG, M...)
	UnitPrice       *decimal.Decimal // precio unitario de referencia
	MinimumQuantity int64            // punto de reorden
	Category        string
	Criticality     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
