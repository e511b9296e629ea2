package repository

import (
	"context"
	"time"
)

// StockReportRow fila de reporte de stock con etiquetas ya resueltas.
type StockReportRow struct {
	Product  string
	Location string
	Quantity int64
}

// MovementSummaryRow total de cantidades por (producto, tipo de movimiento).
type MovementSummaryRow struct {
	Product string
	Type    string
	Total   int64
}

// OperationRow movimiento con etiquetas de producto y posición resueltas.
type OperationRow struct {
	ID       string
	Type     string
	Product  string
	Location string
	Quantity int64
	Date     time.Time
}

// ReportRepository consultas de solo lectura (joins catálogo + stock +
// movimientos). Ningún método muta estado; resultados vacíos son válidos.
type ReportRepository interface {
	StockOverview(ctx context.Context) ([]StockReportRow, error)
	MovementSummary(ctx context.Context) ([]MovementSummaryRow, error)
	StockForProduct(ctx context.Context, productID string) ([]StockReportRow, error)
	InventoryByLocation(ctx context.Context) ([]StockReportRow, error)
	MovementsInRange(ctx context.Context, from, to time.Time) ([]OperationRow, error)
	AllOperations(ctx context.Context) ([]OperationRow, error)
}
