package report

import (
	"context"
	"time"

	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase proyecciones de solo lectura sobre catálogo + stock +
// movimientos. Nunca muta estado; resultados vacíos son colecciones vacías.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// StockOverview stock completo ordenado por descripción de producto y
// código de posición.
func (uc *ReportUseCase) StockOverview(ctx context.Context) ([]dto.StockReportRowDTO, error) {
	rows, err := uc.repo.StockOverview(ctx)
	if err != nil {
		return nil, err
	}
	return toStockRows(rows), nil
}

// MovementSummary totales por (producto, tipo de movimiento).
func (uc *ReportUseCase) MovementSummary(ctx context.Context) ([]dto.MovementSummaryDTO, error) {
	rows, err := uc.repo.MovementSummary(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementSummaryDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MovementSummaryDTO{Product: r.Product, Type: r.Type, Total: r.Total})
	}
	return items, nil
}

// StockForProduct stock de un producto, ordenado por código de posición.
func (uc *ReportUseCase) StockForProduct(ctx context.Context, productID string) ([]dto.StockReportRowDTO, error) {
	rows, err := uc.repo.StockForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toStockRows(rows), nil
}

// InventoryByLocation stock completo ordenado por posición y producto.
func (uc *ReportUseCase) InventoryByLocation(ctx context.Context) ([]dto.StockReportRowDTO, error) {
	rows, err := uc.repo.InventoryByLocation(ctx)
	if err != nil {
		return nil, err
	}
	return toStockRows(rows), nil
}

// MovementsInRange movimientos entre dos fechas calendario (YYYY-MM-DD),
// ambas inclusive: la fecha final se extiende hasta el último instante de
// su día. Orden cronológico.
func (uc *ReportUseCase) MovementsInRange(ctx context.Context, startDate, endDate string) ([]dto.PeriodMovementDTO, error) {
	from, to, err := DayRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.MovementsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PeriodMovementDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.PeriodMovementDTO{
			ID:       r.ID,
			Type:     r.Type,
			Product:  r.Product,
			Quantity: r.Quantity,
			Location: r.Location,
			Date:     r.Date.Format("2006-01-02 15:04:05"),
		})
	}
	return items, nil
}

// AllOperations todos los movimientos con etiquetas, orden cronológico.
func (uc *ReportUseCase) AllOperations(ctx context.Context) ([]dto.OperationDTO, error) {
	rows, err := uc.repo.AllOperations(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperationDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.OperationDTO{
			Operation: r.Type,
			Product:   r.Product,
			Location:  r.Location,
			Quantity:  r.Quantity,
			Date:      r.Date.Format("2006-01-02 15:04:05"),
		})
	}
	return items, nil
}

// DayRange convierte dos fechas calendario en un intervalo [inicio del
// primer día, último instante del último día]. Fechas mal formadas o rango
// invertido devuelven ErrInvalidInput.
func DayRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	// Incluye todo el último día.
	to := end.AddDate(0, 0, 1).Add(-time.Microsecond)
	return start, to, nil
}

func toStockRows(rows []repository.StockReportRow) []dto.StockReportRowDTO {
	items := make([]dto.StockReportRowDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockReportRowDTO{Product: r.Product, Location: r.Location, Quantity: r.Quantity})
	}
	return items
}
