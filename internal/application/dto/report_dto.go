package dto

// Nombres de campo de los reportes (produto, local, quantidade, tipo, total,
// data, operacao): contrato externo observado, no renombrar.

// StockReportRowDTO fila de estoque-geral, estoque-produto e
// inventario-por-local.
type StockReportRowDTO struct {
	Product  string `json:"produto"`
	Location string `json:"local"`
	Quantity int64  `json:"quantidade"`
}

// MovementSummaryDTO fila de resumo-movimentacoes.
type MovementSummaryDTO struct {
	Product string `json:"produto"`
	Type    string `json:"tipo"`
	Total   int64  `json:"total"`
}

// PeriodMovementDTO fila de relatorios/movimentacoes (rango de fechas).
type PeriodMovementDTO struct {
	ID       string `json:"id"`
	Type     string `json:"tipo"`
	Product  string `json:"produto"`
	Quantity int64  `json:"quantidade"`
	Location string `json:"local"`
	Date     string `json:"data"` // YYYY-MM-DD HH:MM:SS
}

// OperationDTO fila de relatorios/operacoes.
type OperationDTO struct {
	Operation string `json:"operacao"`
	Product   string `json:"produto"`
	Location  string `json:"local"`
	Quantity  int64  `json:"quantidade"`
	Date      string `json:"data"`
}
