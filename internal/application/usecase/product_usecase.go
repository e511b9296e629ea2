package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// ProductUseCase alta y listado de productos del catálogo.
// No hay update ni delete: el catálogo es inmutable una vez creado.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. SKU duplicado devuelve ErrDuplicate; la unicidad
// la garantiza el constraint en base, el pre-chequeo solo mejora el mensaje.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	var expiry *time.Time
	if in.Expiry != "" {
		t, err := time.Parse("2006-01-02", in.Expiry)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiry = &t
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Description: in.Description,
		Lot:         in.Lot,
		Expiry:      expiry,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista todos los productos del catálogo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

// ToProductResponse mapea la entidad a su representación externa.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Description: p.Description,
		Lot:         p.Lot,
	}
	if p.Expiry != nil {
		out.Expiry = p.Expiry.Format("2006-01-02")
	}
	return out
}
