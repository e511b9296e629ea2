package dto

// Los nombres de campo JSON (sku, descricao, lote, validade, codigo, armazem,
// corredor, rack_nivel) vienen del contrato original y se conservan para
// compatibilidad con los consumidores existentes.

// CreateProductRequest body para POST /api/produtos.
type CreateProductRequest struct {
	SKU         string `json:"sku"`
	Description string `json:"descricao"`
	Lot         string `json:"lote,omitempty"`
	Expiry      string `json:"validade,omitempty"` // YYYY-MM-DD
}

// ProductResponse representación externa de un producto.
type ProductResponse struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Description string `json:"descricao"`
	Lot         string `json:"lote,omitempty"`
	Expiry      string `json:"validade,omitempty"`
}

// CreateLocationRequest body para POST /api/locais.
type CreateLocationRequest struct {
	Code        string `json:"codigo"`
	Warehouse   string `json:"armazem"`
	Aisle       string `json:"corredor"`
	RackLevel   string `json:"rack_nivel"`
	Description string `json:"descricao,omitempty"`
}

// LocationResponse representación externa de una posición.
type LocationResponse struct {
	ID          string `json:"id"`
	Code        string `json:"codigo"`
	Warehouse   string `json:"armazem"`
	Aisle       string `json:"corredor"`
	RackLevel   string `json:"rack_nivel"`
	Description string `json:"descricao,omitempty"`
}
