package entity

import "time"

// Issue registra un consumo de repuestos en una ubicación (salida a una orden de trabajo, por ejemplo).
type Issue struct {
	ID         int64
	PartID     int64
	LocationID int64
	Quantity   int64
	IssuedBy   int64
	Reference  string
	CreatedAt  time.Time
}
