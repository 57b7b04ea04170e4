package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un traslado.
const (
	TransferStatusCompleted = "completed"
)

// TransferHeader cabecera de un traslado entre ubicaciones (tabla transfer_header).
type TransferHeader struct {
	ID             int64
	TransferDate   time.Time
	FromLocationID int64
	ToLocationID   int64
	TransferredBy  int64
	Status         string
	Notes          string
	CreatedAt      time.Time
}

// TransferItem línea de un traslado (tabla transfer_item).
type TransferItem struct {
	ID         int64
	TransferID int64
	PartID     int64
	Quantity   int64
	UnitCost   *decimal.Decimal
	CreatedAt  time.Time
}
