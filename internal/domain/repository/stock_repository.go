package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por
// producto+posición. Get y GetForUpdate devuelven (nil, nil) si el par no
// tiene registro; el procesador de movimientos depende de esa distinción.
type StockRepository interface {
	Get(productID, locationID string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, locationID string) (*entity.StockEntry, error)
	Create(entry *entity.StockEntry) error
	Upsert(entry *entity.StockEntry) error
	List() ([]*entity.StockEntry, error)
	ListByLocation(locationID string) ([]*entity.StockEntry, error)
	ListByProduct(productID string) ([]*entity.StockEntry, error)
	// SeedPairs crea una fila con defaultQuantity para cada par
	// (producto, posición) que aún no exista; los pares existentes quedan
	// intactos. Devuelve cuántas filas se crearon. Idempotente.
	SeedPairs(productIDs, locationIDs []string, defaultQuantity int64) (int64, error)
}
