package entity

import "time"

// Tipos de movimiento. Los valores "entrada"/"saida" son parte del contrato
// externo existente y se conservan en el API y en la base.
const (
	MovementTypeIn  = "entrada"
	MovementTypeOut = "saida"
)

// Movement es un asiento inmutable del libro de movimientos (append-only).
// Nunca se actualiza ni se borra; el orden total para reportes es
// (OccurredAt, CreatedAt, ID).
type Movement struct {
	ID         string
	Type       string // entrada | saida
	Quantity   int64  // siempre positivo; el tipo indica el signo
	ProductID  string
	LocationID string
	OccurredAt time.Time
	CreatedAt  time.Time
}
