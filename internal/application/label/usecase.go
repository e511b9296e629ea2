package label

import (
	"context"

	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// Generator puerto de renderizado de etiquetas imprimibles con código QR.
// La implementación vive en infraestructura (PDF).
type Generator interface {
	GenerateProductLabel(ctx context.Context, product *entity.Product) ([]byte, error)
	GenerateLocationLabel(ctx context.Context, location *entity.Location) ([]byte, error)
}

// LabelUseCase resuelve la entidad de catálogo y delega el renderizado.
type LabelUseCase struct {
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	generator    Generator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	generator Generator,
) *LabelUseCase {
	return &LabelUseCase{productRepo: productRepo, locationRepo: locationRepo, generator: generator}
}

// ProductLabel renderiza la etiqueta de un producto. ID desconocido
// devuelve ErrNotFound.
func (uc *LabelUseCase) ProductLabel(ctx context.Context, productID string) ([]byte, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateProductLabel(ctx, product)
}

// LocationLabel renderiza la etiqueta de una posición de almacenamiento.
func (uc *LabelUseCase) LocationLabel(ctx context.Context, locationID string) ([]byte, error) {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateLocationLabel(ctx, location)
}
