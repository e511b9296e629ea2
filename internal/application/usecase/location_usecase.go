package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// LocationUseCase alta y listado de posiciones de almacenamiento.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una posición. Código duplicado devuelve ErrDuplicate.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	location := &entity.Location{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Warehouse:   in.Warehouse,
		Aisle:       in.Aisle,
		RackLevel:   in.RackLevel,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return ToLocationResponse(location), nil
}

// List lista todas las posiciones.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *ToLocationResponse(l))
	}
	return items, nil
}

// ToLocationResponse mapea la entidad a su representación externa.
func ToLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:          l.ID,
		Code:        l.Code,
		Warehouse:   l.Warehouse,
		Aisle:       l.Aisle,
		RackLevel:   l.RackLevel,
		Description: l.Description,
	}
}
