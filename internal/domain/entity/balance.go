package entity

import "time"

// Balance es el saldo de un repuesto en una ubicación (tabla inventory_balances).
// Existe a lo sumo uno por par (PartID, LocationID).
type Balance struct {
	ID               int64
	PartID           int64
	LocationID       int64
	InStock          int64 // nunca negativo
	TotalReceived    int64 // acumulado de recepciones, no decrece
	TotalConsumption int64 // acumulado de consumos, no decrece
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
