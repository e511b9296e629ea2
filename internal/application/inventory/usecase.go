package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Invariante: tras cada movimiento exitoso, la cantidad del par es
// Σentradas − Σsaidas y nunca negativa.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository // lecturas fuera de tx
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// RegisterMovement valida la entrada, inicia una transacción, resuelve las
// referencias, bloquea la fila de stock, aplica el cambio de cantidad y
// persiste el asiento inmutable. Todo o nada: cualquier paso que falle
// deshace la transacción completa.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	occurredAt := now
	if in.OccurredAt != nil {
		occurredAt = *in.OccurredAt
	}

	movement := &entity.Movement{
		ID:         uuid.New().String(),
		Type:       in.Type,
		Quantity:   in.Quantity,
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		OccurredAt: occurredAt,
		CreatedAt:  now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		// Resolver referencias dentro de la misma tx.
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		location, err := locationRepo.GetByID(in.LocationID)
		if err != nil {
			return err
		}
		if product == nil || location == nil {
			return domain.ErrNotFound
		}

		// Bloquea la fila de stock para serializar escritores del mismo par.
		entry, err := stockRepo.GetForUpdate(in.ProductID, in.LocationID)
		if err != nil {
			return err
		}
		if entry == nil {
			if in.Type == entity.MovementTypeOut {
				return domain.ErrNoStockEntry
			}
			// Primera entrada del par: insertar la fila en cero y volver a
			// bloquearla, así dos entradas concurrentes no se pisan.
			zero := &entity.StockEntry{ProductID: in.ProductID, LocationID: in.LocationID, Quantity: 0, UpdatedAt: now}
			if err := stockRepo.Create(zero); err != nil && !errors.Is(err, domain.ErrDuplicate) {
				return err
			}
			entry, err = stockRepo.GetForUpdate(in.ProductID, in.LocationID)
			if err != nil {
				return err
			}
		}

		switch in.Type {
		case entity.MovementTypeIn:
			entry.Quantity += in.Quantity
		case entity.MovementTypeOut:
			if entry.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			entry.Quantity -= in.Quantity
		}
		entry.UpdatedAt = now
		if err := stockRepo.Upsert(entry); err != nil {
			return err
		}

		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// List devuelve todos los movimientos en orden cronológico inverso.
func (uc *RegisterMovementUseCase) List() ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListFiltered aplica el filtro conjuntivo sobre los criterios presentes.
// Un tipo desconocido devuelve ErrInvalidInput en vez de un resultado vacío
// engañoso.
func (uc *RegisterMovementUseCase) ListFiltered(filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	if filter.Type != "" && filter.Type != entity.MovementTypeIn && filter.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movRepo.ListFiltered(filter)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:         m.ID,
		Type:       m.Type,
		ProductID:  m.ProductID,
		LocationID: m.LocationID,
		Quantity:   m.Quantity,
		OccurredAt: m.OccurredAt,
	}
}

func toMovementResponses(list []*entity.Movement) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items
}
