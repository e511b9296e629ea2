package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes: joins explícitos sobre
// catálogo + stock + movimientos, siempre contra el pool (estado commiteado).
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// StockOverview todas las triplas (producto, posición, cantidad), ordenadas
// por descripción de producto y código de posición.
func (r *ReportRepo) StockOverview(ctx context.Context) ([]repository.StockReportRow, error) {
	const query = `
		SELECT p.description AS produto, l.code AS local, s.quantity AS quantidade
		FROM stock_entries s
		JOIN products  p ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id
		ORDER BY p.description, l.code`
	return r.stockRows(ctx, query)
}

// MovementSummary suma de cantidades por (producto, tipo de movimiento).
func (r *ReportRepo) MovementSummary(ctx context.Context) ([]repository.MovementSummaryRow, error) {
	const query = `
		SELECT p.description AS produto, m.type AS tipo, SUM(m.quantity) AS total
		FROM movements m
		JOIN products p ON p.id = m.product_id
		GROUP BY p.description, m.type
		ORDER BY p.description, m.type`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.MovementSummary: %w", err)
	}
	defer rows.Close()
	var results []repository.MovementSummaryRow
	for rows.Next() {
		var row repository.MovementSummaryRow
		if err := rows.Scan(&row.Product, &row.Type, &row.Total); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockForProduct stock de un producto, ordenado por código de posición.
func (r *ReportRepo) StockForProduct(ctx context.Context, productID string) ([]repository.StockReportRow, error) {
	const query = `
		SELECT p.description AS produto, l.code AS local, s.quantity AS quantidade
		FROM stock_entries s
		JOIN products  p ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id
		WHERE s.product_id = $1
		ORDER BY l.code`
	return r.stockRows(ctx, query, productID)
}

// InventoryByLocation stock completo ordenado por posición y producto.
func (r *ReportRepo) InventoryByLocation(ctx context.Context) ([]repository.StockReportRow, error) {
	const query = `
		SELECT p.description AS produto, l.code AS local, s.quantity AS quantidade
		FROM stock_entries s
		JOIN products  p ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id
		ORDER BY l.code, p.description`
	return r.stockRows(ctx, query)
}

// MovementsInRange movimientos con occurred_at dentro de [from, to],
// orden cronológico con desempate estable.
func (r *ReportRepo) MovementsInRange(ctx context.Context, from, to time.Time) ([]repository.OperationRow, error) {
	const query = `
		SELECT m.id, m.type, p.description AS produto, m.quantity, l.code AS local, m.occurred_at
		FROM movements m
		JOIN products  p ON p.id = m.product_id
		JOIN locations l ON l.id = m.location_id
		WHERE m.occurred_at BETWEEN $1 AND $2
		ORDER BY m.occurred_at, m.created_at, m.id`
	return r.operationRows(ctx, query, from, to)
}

// AllOperations todos los movimientos con etiquetas, orden cronológico.
func (r *ReportRepo) AllOperations(ctx context.Context) ([]repository.OperationRow, error) {
	const query = `
		SELECT m.id, m.type, p.description AS produto, m.quantity, l.code AS local, m.occurred_at
		FROM movements m
		JOIN products  p ON p.id = m.product_id
		JOIN locations l ON l.id = m.location_id
		ORDER BY m.occurred_at, m.created_at, m.id`
	return r.operationRows(ctx, query)
}

func (r *ReportRepo) stockRows(ctx context.Context, query string, args ...any) ([]repository.StockReportRow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report stock query: %w", err)
	}
	defer rows.Close()
	var results []repository.StockReportRow
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(&row.Product, &row.Location, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *ReportRepo) operationRows(ctx context.Context, query string, args ...any) ([]repository.OperationRow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report operations query: %w", err)
	}
	defer rows.Close()
	var results []repository.OperationRow
	for rows.Next() {
		var row repository.OperationRow
		if err := rows.Scan(&row.ID, &row.Type, &row.Product, &row.Quantity, &row.Location, &row.Date); err != nil {
			return nil, fmt.Errorf("scan operation row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
