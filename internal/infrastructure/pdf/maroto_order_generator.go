// Package pdf genera la versión imprimible (A4) de la orden de compra.
//
// Layout de la página:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  HEADER: ORDEN DE COMPRA + folio  │  Sucursal + Fecha    │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Stock actual | Cantidad a pedir       │
//	│  ──────────────────────────────────────────────────────  │
//	│  TOTAL ÍTEMS A PEDIR                                     │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/hendaya/pedidos-api/internal/application/orders"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 138}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoOrderGenerator implementa orders.PDFRenderer usando Maroto v2.
type MarotoOrderGenerator struct{}

// NewMarotoOrderGenerator construye el generador.
func NewMarotoOrderGenerator() *MarotoOrderGenerator { return &MarotoOrderGenerator{} }

// RenderOrder genera el PDF de la orden y devuelve sus bytes.
func (g *MarotoOrderGenerator) RenderOrder(_ context.Context, o *orders.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+o.Folio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(o) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(o))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + folio (izq) y sucursal + fecha de emisión (der).
func headerRow(o *orders.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+o.Folio, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("SUCURSAL: "+strings.ToUpper(o.Branch.Name), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New("Fecha emisión: "+o.IssuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 7, align.Left),
		h("Stock actual", 2, align.Center),
		h("Cantidad a pedir", 3, align.Center),
	)
}

// tableRows: una fila por línea con cantidad a pedir.
func tableRows(o *orders.Order) []core.Row {
	result := make([]core.Row, 0, len(o.Items))
	for _, it := range o.Items {
		result = append(result, row.New(7).Add(
			col.New(7).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(it.Stock),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				strconv.Itoa(it.Quantity),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalRow: total de unidades a pedir, alineado con la última columna.
func totalRow(o *orders.Order) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL ÍTEMS A PEDIR:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New(strconv.Itoa(o.TotalUnits), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 2,
		})),
	)
}
