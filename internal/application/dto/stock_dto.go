package dto

import "time"

// CreateStockEntryRequest body para POST /api/estoque (alta directa, uso
// administrativo; no pasa por el libro de movimientos).
type CreateStockEntryRequest struct {
	ProductID  string `json:"produto_id"`
	LocationID string `json:"local_id"`
	Quantity   int64  `json:"quantidade"`
}

// StockEntryResponse representación externa de un registro de stock.
type StockEntryResponse struct {
	ProductID  string    `json:"produto_id"`
	LocationID string    `json:"local_id"`
	Quantity   int64     `json:"quantidade"`
	UpdatedAt  time.Time `json:"atualizado_em"`
}

// SeedStockRequest body para POST /api/estoque/popular. Si DefaultQuantity
// es nil se usa el valor por defecto del caso de uso.
type SeedStockRequest struct {
	DefaultQuantity *int64 `json:"quantidade_default,omitempty"`
}

// SeedStockResponse resultado de la siembra masiva.
type SeedStockResponse struct {
	Created int64  `json:"criados"`
	Message string `json:"mensagem"`
}
