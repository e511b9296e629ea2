package repository

import (
	"time"

	"github.com/tu-usuario/wms-api/internal/domain/entity"
)

// MovementFilter criterios conjuntivos para listar movimientos.
// Cero-valor = sin filtro para ese campo.
type MovementFilter struct {
	Type       string
	ProductID  string
	LocationID string
	From       *time.Time
	To         *time.Time
}

// MovementRepository define el puerto de persistencia del libro de
// movimientos. Solo alta y lectura: los asientos son inmutables.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve todos los movimientos en orden cronológico inverso.
	List() ([]*entity.Movement, error)
	// ListFiltered aplica el filtro conjuntivo, orden cronológico inverso.
	ListFiltered(filter MovementFilter) ([]*entity.Movement, error)
}
