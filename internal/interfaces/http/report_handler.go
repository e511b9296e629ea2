package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/application/report"
	"github.com/tu-usuario/wms-api/internal/domain"
)

// ReportHandler maneja los reportes de solo lectura. Resultados vacíos se
// devuelven como listas vacías, nunca como error.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockOverview godoc
// @Summary      Reporte de stock general
// @Tags         relatorios
// @Produce      json
// @Success      200  {array}  dto.StockReportRowDTO
// @Router       /api/relatorios/estoque-geral [get]
func (h *ReportHandler) StockOverview(c *fiber.Ctx) error {
	out, err := h.uc.StockOverview(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MovementSummary godoc
// @Summary      Resumen de movimientos por producto y tipo
// @Tags         relatorios
// @Produce      json
// @Success      200  {array}  dto.MovementSummaryDTO
// @Router       /api/relatorios/resumo-movimentacoes [get]
func (h *ReportHandler) MovementSummary(c *fiber.Ctx) error {
	out, err := h.uc.MovementSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockForProduct godoc
// @Summary      Stock de un producto por posición
// @Tags         relatorios
// @Produce      json
// @Param        produto_id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockReportRowDTO
// @Router       /api/relatorios/estoque-produto/{produto_id} [get]
func (h *ReportHandler) StockForProduct(c *fiber.Ctx) error {
	out, err := h.uc.StockForProduct(c.Context(), c.Params("produto_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// InventoryByLocation godoc
// @Summary      Inventario ordenado por posición
// @Tags         relatorios
// @Produce      json
// @Success      200  {array}  dto.StockReportRowDTO
// @Router       /api/relatorios/inventario-por-local [get]
func (h *ReportHandler) InventoryByLocation(c *fiber.Ctx) error {
	out, err := h.uc.InventoryByLocation(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MovementsInRange godoc
// @Summary      Movimientos entre dos fechas calendario (ambas inclusive)
// @Tags         relatorios
// @Produce      json
// @Param        data_inicio  query  string  true  "YYYY-MM-DD"
// @Param        data_fim     query  string  true  "YYYY-MM-DD"
// @Success      200  {array}   dto.PeriodMovementDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/movimentacoes [get]
func (h *ReportHandler) MovementsInRange(c *fiber.Ctx) error {
	startDate := c.Query("data_inicio")
	endDate := c.Query("data_fim")
	if startDate == "" || endDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data_inicio y data_fim son requeridos"})
	}
	out, err := h.uc.MovementsInRange(c.Context(), startDate, endDate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido (YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AllOperations godoc
// @Summary      Todas las operaciones con etiquetas, orden cronológico
// @Tags         relatorios
// @Produce      json
// @Success      200  {array}  dto.OperationDTO
// @Router       /api/relatorios/operacoes [get]
func (h *ReportHandler) AllOperations(c *fiber.Ctx) error {
	out, err := h.uc.AllOperations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
