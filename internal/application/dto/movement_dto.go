package dto

import "time"

// CreateMovementRequest body para POST /api/movimentacoes.
// OccurredAt es opcional; si falta, el procesador usa la hora actual.
type CreateMovementRequest struct {
	Type       string     `json:"tipo"` // entrada | saida
	ProductID  string     `json:"produto_id"`
	LocationID string     `json:"local_id"`
	Quantity   int64      `json:"quantidade"`
	OccurredAt *time.Time `json:"data_movimentacao,omitempty"`
}

// MovementResponse representación externa de un movimiento registrado.
type MovementResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"tipo"`
	ProductID  string    `json:"produto_id"`
	LocationID string    `json:"local_id"`
	Quantity   int64     `json:"quantidade"`
	OccurredAt time.Time `json:"data_movimentacao"`
}
