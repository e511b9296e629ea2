package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/application/inventory"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes. La clave de stock es
// productID + "|" + locationID.
type memStore struct {
	products  map[string]*entity.Product
	locations map[string]*entity.Location
	stock     map[string]*entity.StockEntry
	movements []*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]*entity.Product{},
		locations: map[string]*entity.Location{},
		stock:     map[string]*entity.StockEntry{},
	}
}

// clone copia profunda del estado, para simular una transacción.
func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range s.locations {
		l := *v
		c.locations[k] = &l
	}
	for k, v := range s.stock {
		e := *v
		c.stock[k] = &e
	}
	c.movements = append(c.movements, s.movements...)
	return c
}

func stockKey(productID, locationID string) string { return productID + "|" + locationID }

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeLocationRepo struct{ s *memStore }

func (r *fakeLocationRepo) Create(l *entity.Location) error { r.s.locations[l.ID] = l; return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.s.locations[id], nil
}
func (r *fakeLocationRepo) GetByCode(code string) (*entity.Location, error) {
	for _, l := range r.s.locations {
		if l.Code == code {
			return l, nil
		}
	}
	return nil, nil
}
func (r *fakeLocationRepo) List() ([]*entity.Location, error) {
	out := make([]*entity.Location, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		out = append(out, l)
	}
	return out, nil
}

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) Get(productID, locationID string) (*entity.StockEntry, error) {
	e, ok := r.s.stock[stockKey(productID, locationID)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (r *fakeStockRepo) GetForUpdate(productID, locationID string) (*entity.StockEntry, error) {
	return r.Get(productID, locationID)
}
func (r *fakeStockRepo) Create(e *entity.StockEntry) error {
	k := stockKey(e.ProductID, e.LocationID)
	if _, ok := r.s.stock[k]; ok {
		return domain.ErrDuplicate
	}
	cp := *e
	r.s.stock[k] = &cp
	return nil
}
func (r *fakeStockRepo) Upsert(e *entity.StockEntry) error {
	cp := *e
	r.s.stock[stockKey(e.ProductID, e.LocationID)] = &cp
	return nil
}
func (r *fakeStockRepo) List() ([]*entity.StockEntry, error) {
	out := make([]*entity.StockEntry, 0, len(r.s.stock))
	for _, e := range r.s.stock {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeStockRepo) ListByLocation(locationID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.s.stock {
		if e.LocationID == locationID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeStockRepo) ListByProduct(productID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.s.stock {
		if e.ProductID == productID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeStockRepo) SeedPairs(productIDs, locationIDs []string, defaultQuantity int64) (int64, error) {
	var created int64
	for _, pid := range productIDs {
		for _, lid := range locationIDs {
			k := stockKey(pid, lid)
			if _, ok := r.s.stock[k]; ok {
				continue
			}
			r.s.stock[k] = &entity.StockEntry{
				ProductID: pid, LocationID: lid,
				Quantity: defaultQuantity, UpdatedAt: time.Now(),
			}
			created++
		}
	}
	return created, nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}
func (r *fakeMovementRepo) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, len(r.s.movements))
	for i := range r.s.movements {
		cp := *r.s.movements[len(r.s.movements)-1-i]
		out[i] = &cp
	}
	return out, nil
}
func (r *fakeMovementRepo) ListFiltered(f repository.MovementFilter) ([]*entity.Movement, error) {
	all, _ := r.List()
	var out []*entity.Movement
	for _, m := range all {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.LocationID != "" && m.LocationID != f.LocationID {
			continue
		}
		if f.From != nil && m.OccurredAt.Before(*f.From) {
			continue
		}
		if f.To != nil && m.OccurredAt.After(*f.To) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// fakeTxRunner ejecuta fn sobre una copia del estado y solo publica los
// cambios si fn termina sin error. Reproduce la semántica commit/rollback.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) error) error {
	tx := r.s.clone()
	err := fn(
		&fakeMovementRepo{s: tx},
		&fakeStockRepo{s: tx},
		&fakeProductRepo{s: tx},
		&fakeLocationRepo{s: tx},
	)
	if err != nil {
		return err
	}
	*r.s = *tx
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store      *memStore
	uc         *inventory.RegisterMovementUseCase
	productID  string
	locationID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	productID := uuid.New().String()
	locationID := uuid.New().String()
	store.products[productID] = &entity.Product{ID: productID, SKU: "SKU-001", Description: "Caja 40x40"}
	store.locations[locationID] = &entity.Location{ID: locationID, Code: "A-01-01", Warehouse: "A"}
	uc := inventory.NewRegisterMovementUseCase(&fakeTxRunner{s: store}, &fakeMovementRepo{s: store})
	return &fixture{store: store, uc: uc, productID: productID, locationID: locationID}
}

func (f *fixture) register(t *testing.T, movType string, qty int64) (*dto.MovementResponse, error) {
	t.Helper()
	return f.uc.RegisterMovement(context.Background(), dto.CreateMovementRequest{
		Type:       movType,
		ProductID:  f.productID,
		LocationID: f.locationID,
		Quantity:   qty,
	})
}

func (f *fixture) quantity(t *testing.T) int64 {
	t.Helper()
	e, ok := f.store.stock[stockKey(f.productID, f.locationID)]
	if !ok {
		return -1
	}
	return e.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Primera entrada de un par sin registro: debe crear la fila y dejarla con
// la cantidad del movimiento.
func TestRegisterMovement_EntradaCreaRegistro(t *testing.T) {
	f := newFixture(t)

	resp, err := f.register(t, entity.MovementTypeIn, 10)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.MovementTypeIn, resp.Type)
	assert.Equal(t, int64(10), resp.Quantity)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, int64(10), f.quantity(t))
	assert.Len(t, f.store.movements, 1, "debe quedar un asiento en el libro")
}

func TestRegisterMovement_SalidaDescuentaStock(t *testing.T) {
	f := newFixture(t)
	_, err := f.register(t, entity.MovementTypeIn, 10)
	require.NoError(t, err)

	_, err = f.register(t, entity.MovementTypeOut, 4)
	require.NoError(t, err)

	assert.Equal(t, int64(6), f.quantity(t))
	assert.Len(t, f.store.movements, 2)
}

// Salida mayor que el stock disponible: ErrInsufficientStock y nada cambia.
func TestRegisterMovement_SalidaInsuficiente_NoAlteraEstado(t *testing.T) {
	f := newFixture(t)
	_, err := f.register(t, entity.MovementTypeIn, 10)
	require.NoError(t, err)

	_, err = f.register(t, entity.MovementTypeOut, 100)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), f.quantity(t), "la cantidad no debe cambiar")
	assert.Len(t, f.store.movements, 1, "el asiento rechazado no debe persistirse")
}

// Salida sobre un par sin registro de stock: ErrNoStockEntry y ninguna fila
// debe crearse como efecto colateral.
func TestRegisterMovement_SalidaSinRegistro(t *testing.T) {
	f := newFixture(t)

	_, err := f.register(t, entity.MovementTypeOut, 1)
	assert.ErrorIs(t, err, domain.ErrNoStockEntry)

	assert.Equal(t, int64(-1), f.quantity(t), "no debe crearse fila de stock")
	assert.Empty(t, f.store.movements)
}

func TestRegisterMovement_ReferenciasInexistentes(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RegisterMovement(context.Background(), dto.CreateMovementRequest{
		Type: entity.MovementTypeIn, ProductID: uuid.New().String(), LocationID: f.locationID, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = f.uc.RegisterMovement(context.Background(), dto.CreateMovementRequest{
		Type: entity.MovementTypeIn, ProductID: f.productID, LocationID: uuid.New().String(), Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "posición inexistente")

	assert.Empty(t, f.store.movements)
}

func TestRegisterMovement_EntradaInvalida(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		in   dto.CreateMovementRequest
	}{
		{"tipo desconocido", dto.CreateMovementRequest{Type: "transferencia", ProductID: f.productID, LocationID: f.locationID, Quantity: 1}},
		{"cantidad cero", dto.CreateMovementRequest{Type: entity.MovementTypeIn, ProductID: f.productID, LocationID: f.locationID, Quantity: 0}},
		{"cantidad negativa", dto.CreateMovementRequest{Type: entity.MovementTypeIn, ProductID: f.productID, LocationID: f.locationID, Quantity: -3}},
		{"sin producto", dto.CreateMovementRequest{Type: entity.MovementTypeIn, LocationID: f.locationID, Quantity: 1}},
		{"sin posición", dto.CreateMovementRequest{Type: entity.MovementTypeIn, ProductID: f.productID, Quantity: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.RegisterMovement(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.store.movements)
}

// Conservación: tras una secuencia de movimientos, la cantidad del par debe
// ser Σentradas − Σsaidas.
func TestRegisterMovement_ConservacionSobreSecuencia(t *testing.T) {
	f := newFixture(t)

	seq := []struct {
		movType string
		qty     int64
	}{
		{entity.MovementTypeIn, 50},
		{entity.MovementTypeOut, 20},
		{entity.MovementTypeIn, 5},
		{entity.MovementTypeOut, 30},
		{entity.MovementTypeIn, 12},
	}
	var expected int64
	for _, step := range seq {
		_, err := f.register(t, step.movType, step.qty)
		require.NoError(t, err)
		if step.movType == entity.MovementTypeIn {
			expected += step.qty
		} else {
			expected -= step.qty
		}
	}

	assert.Equal(t, expected, f.quantity(t))
	assert.Len(t, f.store.movements, len(seq))
}

func TestListFiltered_TipoDesconocido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ListFiltered(repository.MovementFilter{Type: "ajuste"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListFiltered_FiltraPorTipo(t *testing.T) {
	f := newFixture(t)
	_, err := f.register(t, entity.MovementTypeIn, 10)
	require.NoError(t, err)
	_, err = f.register(t, entity.MovementTypeOut, 3)
	require.NoError(t, err)

	out, err := f.uc.ListFiltered(repository.MovementFilter{Type: entity.MovementTypeOut})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, entity.MovementTypeOut, out[0].Type)
	assert.Equal(t, int64(3), out[0].Quantity)
}
