// Package pdf genera el catálogo de una categoría en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la categoría  │  Estado + Fecha          │
//	│  Descripción                                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Precio | Stock | Valor en stock      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Productos / Unidades / Valor del inventario       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

var _ usecase.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCatalogGenerator implementa usecase.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct {
	now func() time.Time
}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator {
	return &MarotoCatalogGenerator{now: time.Now}
}

// GenerateCategoryCatalog genera el PDF y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCategoryCatalog(
	_ context.Context,
	category *entity.Category,
	products []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo "+category.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(category, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(products) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("La categoría no tiene productos activos.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	m.AddRows(tableDetailRows(products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summarize(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(category *entity.Category, now time.Time) core.Row {
	estado, estadoColor := "ACTIVA", colorPrimary
	if !category.Status {
		estado, estadoColor = "INACTIVA", colorDanger
	}
	descripcion := "Sin descripción"
	if category.Descripcion != nil && strings.TrimSpace(*category.Descripcion) != "" {
		descripcion = *category.Descripcion
	}

	return row.New(20).Add(
		col.New(8).Add(
			text.New(category.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(descripcion, props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("CATEGORÍA "+estado, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: estadoColor, Top: 1,
			}),
			text.New(fmt.Sprintf("ID: %d", category.ID), props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio", 2, align.Right),
		h("Stock", 1, align.Center),
		h("Valor en stock", 3, align.Right),
	)
}

func tableDetailRows(products []*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		valor := p.Precio.Mul(decimal.NewFromInt(int64(p.Stock)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.ID), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(p.Nombre, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+formatMoney(p.Precio), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+formatMoney(valor), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

type catalogSummary struct {
	Products int
	Units    int
	Value    decimal.Decimal
}

func summarize(products []*entity.Product) catalogSummary {
	s := catalogSummary{Value: decimal.Zero}
	for _, p := range products {
		s.Products++
		s.Units += p.Stock
		s.Value = s.Value.Add(p.Precio.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return s
}

func totalsRow(s catalogSummary) core.Row {
	label := func(v string, top float64) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(v string, top float64) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Productos activos:", 1),
			label("Unidades en stock:", 6),
			text.New("VALOR DEL INVENTARIO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 12,
			}),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", s.Products), 1),
			value(fmt.Sprintf("%d", s.Units), 6),
			text.New("$"+formatMoney(s.Value), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 12,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234.5 → "1.234,50"
func formatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	intPart, frac, _ := strings.Cut(fixed, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}
