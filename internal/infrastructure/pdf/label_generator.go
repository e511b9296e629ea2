// Package pdf implementa el renderizado de etiquetas imprimibles con código
// QR para productos y posiciones del almacén, usando Maroto v2.
//
// Layout de la etiqueta (100×50 mm):
//
//	┌─────────────────────────────────────┐
//	│  ┌──────┐   SKU / CÓDIGO (negrita)  │
//	│  │  QR  │   Descripción             │
//	│  │      │   Lote / Rack-nivel       │
//	│  └──────┘   Validade / Armazém      │
//	└─────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/wms-api/internal/application/label"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
)

// MarotoLabelGenerator implementa label.Generator usando Maroto v2.
type MarotoLabelGenerator struct{}

var _ label.Generator = (*MarotoLabelGenerator)(nil)

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateProductLabel genera la etiqueta PDF de un producto y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateProductLabel(_ context.Context, product *entity.Product) ([]byte, error) {
	qrContent := fmt.Sprintf("%s - %s - ID: %s", product.SKU, product.Description, product.ID)

	lines := []core.Component{
		text.New("SKU: "+product.SKU, props.Text{Style: fontstyle.Bold, Size: 12, Top: 2}),
		text.New(product.Description, props.Text{Size: 9, Top: 9}),
	}
	offset := 15.0
	if product.Lot != "" {
		lines = append(lines, text.New("LOTE: "+product.Lot, props.Text{Size: 9, Top: offset}))
		offset += 5
	}
	if product.Expiry != nil {
		lines = append(lines, text.New("Validade: "+product.Expiry.Format("02/01/2006"), props.Text{Size: 9, Top: offset}))
	}

	return render(qrContent, lines)
}

// GenerateLocationLabel genera la etiqueta PDF de una posición (rack).
func (g *MarotoLabelGenerator) GenerateLocationLabel(_ context.Context, location *entity.Location) ([]byte, error) {
	qrContent := fmt.Sprintf("%s - %s - ID: %s", location.Code, location.Description, location.ID)

	lines := []core.Component{
		text.New(location.Code, props.Text{Style: fontstyle.Bold, Size: 14, Top: 2}),
	}
	offset := 11.0
	if location.RackLevel != "" {
		lines = append(lines, text.New("Rack: "+location.RackLevel, props.Text{Size: 10, Top: offset}))
		offset += 6
	}
	if location.Warehouse != "" {
		lines = append(lines, text.New("Armazém: "+location.Warehouse, props.Text{Size: 9, Top: offset}))
		offset += 5
	}
	if location.Description != "" {
		lines = append(lines, text.New(location.Description, props.Text{Size: 8, Top: offset}))
	}

	return render(qrContent, lines)
}

// render compone la etiqueta: QR a la izquierda, texto a la derecha.
func render(qrContent string, lines []core.Component) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(100, 50).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		Build()

	m := maroto.New(cfg)
	m.AddRows(row.New(42).Add(
		col.New(5).Add(code.NewQr(qrContent, props.Rect{Center: true, Percent: 95})),
		col.New(7).Add(lines...),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}
