// Package pdf implementa la generación del reporte de valorización de
// inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StoreFlow — Reporte de Inventario │ Fecha │ Margen  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Barcode | Unidad | Stock | Costo |        │
//	│         P.Sugerido | Valor                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor total del inventario a costo de reposición     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/lotolabs-arg/StoreFlow/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.Generator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, doc *report.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, l := range doc.Lines {
		m.AddRows(detailRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc))

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return generated.GetBytes(), nil
}

// headerRow: título (izq) y fecha + margen aplicado (der).
func headerRow(doc *report.Document) core.Row {
	fecha := doc.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New("StoreFlow — Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Margen aplicado: "+doc.ProfitMargin.String(), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(3).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Barcode", header)),
		col.New(1).Add(text.New("Unidad", header)),
		col.New(1).Add(text.New("Stock", headerRight)),
		col.New(2).Add(text.New("Costo", headerRight)),
		col.New(2).Add(text.New("P. Sugerido", headerRight)),
		col.New(1).Add(text.New("Valor", headerRight)),
	)
}

func detailRow(l report.Line) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	return row.New(6).Add(
		col.New(3).Add(text.New(l.Name, cell)),
		col.New(2).Add(text.New(l.Barcode, cell)),
		col.New(1).Add(text.New(l.UnitType, cell)),
		col.New(1).Add(text.New(l.StockQuantity.String(), cellRight)),
		col.New(2).Add(text.New(l.Cost.String(), cellRight)),
		col.New(2).Add(text.New(l.SuggestedPrice.String(), cellRight)),
		col.New(1).Add(text.New(l.StockValue.String(), cellRight)),
	)
}

func totalRow(doc *report.Document) core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("VALOR TOTAL DEL INVENTARIO", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		})),
		col.New(3).Add(text.New(doc.TotalValue.String(), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
	)
}
