package usecase

import (
	"time"

	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// DefaultSeedQuantity cantidad inicial por par al poblar stock masivamente.
const DefaultSeedQuantity int64 = 20

// StockUseCase lecturas de stock, alta directa administrativa y siembra
// masiva. La alta directa no pasa por el libro de movimientos: queda fuera
// del invariante de conservación y existe solo como vía de escape admin.
type StockUseCase struct {
	stockRepo    repository.StockRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *StockUseCase {
	return &StockUseCase{
		stockRepo:    stockRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// CreateEntry crea un registro de stock directo. Cantidad negativa devuelve
// ErrInvalidInput; referencias inexistentes, ErrNotFound; par ya existente,
// ErrDuplicate.
func (uc *StockUseCase) CreateEntry(in dto.CreateStockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if product == nil || location == nil {
		return nil, domain.ErrNotFound
	}
	entry := &entity.StockEntry{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Quantity:   in.Quantity,
		UpdatedAt:  time.Now(),
	}
	if err := uc.stockRepo.Create(entry); err != nil {
		return nil, err
	}
	return toStockEntryResponse(entry), nil
}

// Seed crea un registro con la cantidad indicada para cada par
// (producto, posición) que aún no exista. Idempotente: los pares existentes
// no se tocan. Requiere catálogo no vacío.
func (uc *StockUseCase) Seed(defaultQuantity *int64) (*dto.SeedStockResponse, error) {
	qty := DefaultSeedQuantity
	if defaultQuantity != nil {
		if *defaultQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		qty = *defaultQuantity
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 || len(locations) == 0 {
		return nil, domain.ErrInvalidInput
	}
	productIDs := make([]string, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}
	locationIDs := make([]string, 0, len(locations))
	for _, l := range locations {
		locationIDs = append(locationIDs, l.ID)
	}
	created, err := uc.stockRepo.SeedPairs(productIDs, locationIDs, qty)
	if err != nil {
		return nil, err
	}
	return &dto.SeedStockResponse{Created: created, Message: "estoque populado"}, nil
}

// List devuelve todos los registros de stock.
func (uc *StockUseCase) List() ([]dto.StockEntryResponse, error) {
	list, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	return toStockEntryResponses(list), nil
}

// ListByLocation registros de stock de una posición.
func (uc *StockUseCase) ListByLocation(locationID string) ([]dto.StockEntryResponse, error) {
	list, err := uc.stockRepo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	return toStockEntryResponses(list), nil
}

// ListByProduct registros de stock de un producto.
func (uc *StockUseCase) ListByProduct(productID string) ([]dto.StockEntryResponse, error) {
	list, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toStockEntryResponses(list), nil
}

func toStockEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	return &dto.StockEntryResponse{
		ProductID:  e.ProductID,
		LocationID: e.LocationID,
		Quantity:   e.Quantity,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toStockEntryResponses(list []*entity.StockEntry) []dto.StockEntryResponse {
	items := make([]dto.StockEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toStockEntryResponse(e))
	}
	return items
}
