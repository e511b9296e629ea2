package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL del libro de movimientos
// (usable con pool o tx). Solo inserta y lee: los asientos son inmutables.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un asiento del libro. Referencia inexistente devuelve
// ErrNotFound.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, type, quantity, product_id, location_id, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.Quantity,
		movement.ProductID, movement.LocationID,
		movement.OccurredAt, movement.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos en orden cronológico inverso
// (desempate por created_at e id para un orden total estable).
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	query := `
		SELECT id, type, quantity, product_id, location_id, occurred_at, created_at
		FROM movements
		ORDER BY occurred_at DESC, created_at DESC, id DESC`
	return r.scanList(query)
}

// ListFiltered aplica el filtro conjuntivo sobre los criterios presentes,
// orden cronológico inverso.
func (r *MovementRepo) ListFiltered(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT id, type, quantity, product_id, location_id, occurred_at, created_at
		FROM movements WHERE 1=1`
	var args []any
	pos := 1
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND occurred_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += " ORDER BY occurred_at DESC, created_at DESC, id DESC"
	return r.scanList(query, args...)
}

func (r *MovementRepo) scanList(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Type, &m.Quantity, &m.ProductID, &m.LocationID, &m.OccurredAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
