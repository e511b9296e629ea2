package entity

import "time"

// StockEntry representa el stock actual de un producto en una posición.
// Clave: (ProductID, LocationID) (a lo sumo una fila por par).
// Quantity nunca es negativa; solo el procesador de movimientos la muta.
type StockEntry struct {
	ProductID  string
	LocationID string
	Quantity   int64
	UpdatedAt  time.Time
}
