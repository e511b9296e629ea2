package entity

import "time"

// Location representa una posición física de almacenamiento (rack/nivel).
type Location struct {
	ID          string
	Code        string // clave natural, única
	Warehouse   string
	Aisle       string
	RackLevel   string
	Description string
	CreatedAt   time.Time
}
