package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/application/inventory"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/wms-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend en memoria. Run ejecuta fn directamente: los tests de
// commit/rollback viven en el paquete del caso de uso; aquí solo interesa
// el mapeo de errores de dominio a códigos HTTP.
// ──────────────────────────────────────────────────────────────────────────────

type memBackend struct {
	products  map[string]*entity.Product
	locations map[string]*entity.Location
	stock     map[string]*entity.StockEntry // productID|locationID
	movements []*entity.Movement
}

func newMemBackend() *memBackend {
	return &memBackend{
		products:  map[string]*entity.Product{},
		locations: map[string]*entity.Location{},
		stock:     map[string]*entity.StockEntry{},
	}
}

func stockKey(productID, locationID string) string { return productID + "|" + locationID }

func (b *memBackend) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) error) error {
	return fn(&movRepo{b}, &stockRepo{b}, &productRepo{b}, &locationRepo{b})
}

type movRepo struct{ b *memBackend }

func (r *movRepo) Create(m *entity.Movement) error {
	r.b.movements = append(r.b.movements, m)
	return nil
}
func (r *movRepo) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, len(r.b.movements))
	for i := range r.b.movements {
		out[i] = r.b.movements[len(r.b.movements)-1-i]
	}
	return out, nil
}
func (r *movRepo) ListFiltered(f repository.MovementFilter) ([]*entity.Movement, error) {
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

type stockRepo struct{ b *memBackend }

func (r *stockRepo) Get(productID, locationID string) (*entity.StockEntry, error) {
	return r.b.stock[stockKey(productID, locationID)], nil
}
func (r *stockRepo) GetForUpdate(productID, locationID string) (*entity.StockEntry, error) {
	return r.Get(productID, locationID)
}
func (r *stockRepo) Create(e *entity.StockEntry) error {
	k := stockKey(e.ProductID, e.LocationID)
	if _, ok := r.b.stock[k]; ok {
		return domain.ErrDuplicate
	}
	r.b.stock[k] = e
	return nil
}
func (r *stockRepo) Upsert(e *entity.StockEntry) error {
	r.b.stock[stockKey(e.ProductID, e.LocationID)] = e
	return nil
}
func (r *stockRepo) List() ([]*entity.StockEntry, error)                 { return nil, nil }
func (r *stockRepo) ListByLocation(string) ([]*entity.StockEntry, error) { return nil, nil }
func (r *stockRepo) ListByProduct(string) ([]*entity.StockEntry, error)  { return nil, nil }
func (r *stockRepo) SeedPairs([]string, []string, int64) (int64, error)  { return 0, nil }

type productRepo struct{ b *memBackend }

func (r *productRepo) Create(p *entity.Product) error              { r.b.products[p.ID] = p; return nil }
func (r *productRepo) GetByID(id string) (*entity.Product, error)  { return r.b.products[id], nil }
func (r *productRepo) GetBySKU(string) (*entity.Product, error)    { return nil, nil }
func (r *productRepo) List() ([]*entity.Product, error)            { return nil, nil }

type locationRepo struct{ b *memBackend }

func (r *locationRepo) Create(l *entity.Location) error             { r.b.locations[l.ID] = l; return nil }
func (r *locationRepo) GetByID(id string) (*entity.Location, error) { return r.b.locations[id], nil }
func (r *locationRepo) GetByCode(string) (*entity.Location, error)  { return nil, nil }
func (r *locationRepo) List() ([]*entity.Location, error)           { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type movementFixture struct {
	app        *fiber.App
	backend    *memBackend
	productID  string
	locationID string
}

func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()
	backend := newMemBackend()
	productID := uuid.New().String()
	locationID := uuid.New().String()
	backend.products[productID] = &entity.Product{ID: productID, SKU: "SKU-001", Description: "Caja 40x40"}
	backend.locations[locationID] = &entity.Location{ID: locationID, Code: "A-01-01", Warehouse: "A"}

	uc := inventory.NewRegisterMovementUseCase(backend, &movRepo{backend})
	handler := apphttp.NewMovementHandler(uc)

	app := fiber.New()
	app.Post("/api/movimentacoes", handler.Register)
	app.Get("/api/movimentacoes", handler.List)
	app.Get("/api/movimentacoes/filtrar", handler.Filter)

	return &movementFixture{app: app, backend: backend, productID: productID, locationID: locationID}
}

func (f *movementFixture) post(t *testing.T, body dto.CreateMovementRequest) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/movimentacoes", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (f *movementFixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementRegister_Entrada_Retorna201(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.post(t, dto.CreateMovementRequest{
		Type: entity.MovementTypeIn, ProductID: f.productID, LocationID: f.locationID, Quantity: 10,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.MovementTypeIn, out.Type)
	assert.Equal(t, int64(10), out.Quantity)
	assert.NotEmpty(t, out.ID)
}

func TestMovementRegister_TipoInvalido_Retorna400(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.post(t, dto.CreateMovementRequest{
		Type: "ajuste", ProductID: f.productID, LocationID: f.locationID, Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovementRegister_ProductoInexistente_Retorna404(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.post(t, dto.CreateMovementRequest{
		Type: entity.MovementTypeIn, ProductID: uuid.New().String(), LocationID: f.locationID, Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMovementRegister_SalidaSinRegistro_Retorna400(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.post(t, dto.CreateMovementRequest{
		Type: entity.MovementTypeOut, ProductID: f.productID, LocationID: f.locationID, Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NO_STOCK_ENTRY", body.Code)
}

func TestMovementRegister_StockInsuficiente_Retorna409(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.post(t, dto.CreateMovementRequest{
		Type: entity.MovementTypeIn, ProductID: f.productID, LocationID: f.locationID, Quantity: 5,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.post(t, dto.CreateMovementRequest{
		Type: entity.MovementTypeOut, ProductID: f.productID, LocationID: f.locationID, Quantity: 50,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestMovementFilter_SinResultados_Retorna404(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.get(t, "/api/movimentacoes/filtrar?tipo=saida")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMovementFilter_TipoDesconocido_Retorna400(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.get(t, "/api/movimentacoes/filtrar?tipo=ajuste")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovementFilter_FechaInvalida_Retorna400(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.get(t, "/api/movimentacoes/filtrar?data_inicio=ayer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovementFilter_PorTipo(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.post(t, dto.CreateMovementRequest{
		Type: entity.MovementTypeIn, ProductID: f.productID, LocationID: f.locationID, Quantity: 10,
	})
	resp.Body.Close()
	resp = f.post(t, dto.CreateMovementRequest{
		Type: entity.MovementTypeOut, ProductID: f.productID, LocationID: f.locationID, Quantity: 2,
	})
	resp.Body.Close()

	resp = f.get(t, "/api/movimentacoes/filtrar?tipo=entrada")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, entity.MovementTypeIn, out[0].Type)
}

func TestMovementList_VacioRetorna200(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.get(t, "/api/movimentacoes")
	defer resp.Body.Close()

	// El listado general no aplica la política de 404 del filtro.
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Empty(t, out)
}
