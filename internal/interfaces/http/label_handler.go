package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/application/label"
	"github.com/tu-usuario/wms-api/internal/domain"
)

// LabelHandler sirve etiquetas PDF con código QR para productos y posiciones.
type LabelHandler struct {
	uc *label.LabelUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *label.LabelUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// ProductLabel godoc
// @Summary      Etiqueta PDF de un producto
// @Tags         etiquetas
// @Produce      application/pdf
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/etiquetas/produto/{id} [get]
func (h *LabelHandler) ProductLabel(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.ProductLabel(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, fmt.Sprintf("etiqueta_produto_%s.pdf", id), pdf)
}

// LocationLabel godoc
// @Summary      Etiqueta PDF de una posición
// @Tags         etiquetas
// @Produce      application/pdf
// @Param        id   path      string  true  "ID de la posición"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/etiquetas/local/{id} [get]
func (h *LabelHandler) LocationLabel(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.LocationLabel(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "posición no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, fmt.Sprintf("etiqueta_local_%s.pdf", id), pdf)
}

func sendPDF(c *fiber.Ctx, filename string, pdf []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdf)
}
