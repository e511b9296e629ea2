package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El catálogo es de alta únicamente: sin update ni delete.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
