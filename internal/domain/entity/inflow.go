package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inflow registra una recepción de repuestos desde un proveedor. Inmutable una vez creada.
type Inflow struct {
	ID              int64
	PartID          int64
	LocationID      int64
	Quantity        int64
	ReceivedBy      int64
	ReceivedDate    time.Time
	Supplier        string
	ReferenceNumber string
	UnitCost        *decimal.Decimal
	CreatedAt       time.Time
}
