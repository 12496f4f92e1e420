// Package pdf genera la versión imprimible del reporte de movimientos de
// stock del Servicio de Nutrición y Dietética (SND).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SND — Reporte de Movimientos  │  Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Tipo | Cant | Unidad | P.Unit     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de filas                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gacc-hospital/snd-stock/internal/application/reporting"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reporting.StockReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reporting.StockReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(_ context.Context, rows []*entity.MovementReportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("SND - Reporte de Movimientos de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del servicio (izq) y fecha de emisión (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("SND — Servicio de Nutrición y Dietética", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de movimientos de stock", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+fecha, props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header("Fecha", 2),
		header("Producto", 3),
		header("Tipo", 1),
		header("Cantidad", 2),
		header("Unidad", 2),
		header("P. Unitario", 2),
	)
}

func tableDetailRow(r *entity.MovementReportRow) core.Row {
	cell := func(value string, size int, alignTo align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: alignTo}))
	}
	return row.New(6).Add(
		cell(r.CreatedAt.Format("02/01/2006 15:04"), 2, align.Left),
		cell(r.ProductName, 3, align.Left),
		cell(r.Kind, 1, align.Left),
		cell(r.Quantity.String(), 2, align.Right),
		cell(r.Unit, 2, align.Left),
		cell(r.UnitPrice.StringFixed(2), 2, align.Right),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de movimientos listados: %d", total),
			props.Text{Size: 8, Top: 2, Color: colorGray},
		)),
	)
}
