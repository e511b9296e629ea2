package entity

import "time"

// Product representa un producto (SKU) del catálogo. Inmutable una vez creado:
// no hay operaciones de actualización ni borrado.
type Product struct {
	ID          string
	SKU         string // clave natural, única
	Description string
	Lot         string
	Expiry      *time.Time // fecha de vencimiento, opcional
	CreatedAt   time.Time
}
