package entity

import "time"

// Location representa una ubicación física (almacén, planta, taller) donde se guardan repuestos.
type Location struct {
	ID          int64
	Name        string
	Description string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
