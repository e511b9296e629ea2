package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el registro de stock de un par. Devuelve (nil, nil) si no existe.
func (r *StockRepo) Get(productID, locationID string) (*entity.StockEntry, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_entries WHERE product_id = $1 AND location_id = $2`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&e.ProductID, &e.LocationID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Devuelve (nil, nil) si el par no tiene registro.
func (r *StockRepo) GetForUpdate(productID, locationID string) (*entity.StockEntry, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_entries WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&e.ProductID, &e.LocationID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry for update: %w", err)
	}
	return &e, nil
}

// Create inserta un registro nuevo. Par existente devuelve ErrDuplicate;
// referencia inexistente, ErrNotFound.
func (r *StockRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ProductID, entry.LocationID, entry.Quantity, entry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza la cantidad del par.
func (r *StockRepo) Upsert(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		entry.ProductID, entry.LocationID, entry.Quantity, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock entry: %w", err)
	}
	return nil
}

// List devuelve todos los registros de stock.
func (r *StockRepo) List() ([]*entity.StockEntry, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_entries ORDER BY product_id, location_id`
	return r.scanList(query)
}

// ListByLocation registros de stock de una posición.
func (r *StockRepo) ListByLocation(locationID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_entries WHERE location_id = $1 ORDER BY product_id`
	return r.scanList(query, locationID)
}

// ListByProduct registros de stock de un producto.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_entries WHERE product_id = $1 ORDER BY location_id`
	return r.scanList(query, productID)
}

// SeedPairs inserta una fila por cada par (producto, posición) inexistente
// con la cantidad por defecto. ON CONFLICT DO NOTHING la hace idempotente:
// repetir la siembra no duplica filas ni resetea cantidades.
func (r *StockRepo) SeedPairs(productIDs, locationIDs []string, defaultQuantity int64) (int64, error) {
	query := `
		INSERT INTO stock_entries (product_id, location_id, quantity, updated_at)
		SELECT p.id, l.id, $3, now()
		FROM unnest($1::uuid[]) AS p(id)
		CROSS JOIN unnest($2::uuid[]) AS l(id)
		ON CONFLICT (product_id, location_id) DO NOTHING`
	cmd, err := r.q.Exec(context.Background(), query, productIDs, locationIDs, defaultQuantity)
	if err != nil {
		return 0, fmt.Errorf("seed stock entries: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *StockRepo) scanList(query string, args ...any) ([]*entity.StockEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ProductID, &e.LocationID, &e.Quantity, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
