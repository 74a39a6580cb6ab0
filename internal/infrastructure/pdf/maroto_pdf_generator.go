// Package pdf genera el reporte de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + bodega       │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: unidades totales / slots por estado                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Ubicación | Cant. | Estado │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/batmanhot/logistica-inventario/internal/application/report"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

var _ report.StockReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorAmber   = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// MarotoPDFGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReport(_ context.Context, r report.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(r.Slots) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin stock registrado.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(tableDetailRows(r.Slots)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r report.StockReport) core.Row {
	scope := "Todas las bodegas"
	if r.Warehouse != "" {
		scope = "Bodega " + r.Warehouse
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(scope, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(r report.StockReport) core.Row {
	item := func(label string, v int) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(formatUnits(v), props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		item("Unidades totales", r.TotalUnits),
		item("Disponible", r.ByStatus[entity.SlotStatusAvailable]),
		item("Stock bajo", r.ByStatus[entity.SlotStatusLow]),
		item("Agotado", r.ByStatus[entity.SlotStatusOutOfStock]),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Bodega", 2, align.Left),
		h("Ubicación", 1, align.Left),
		h("Cant.", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

func tableDetailRows(slots []entity.StockSlot) []core.Row {
	result := make([]core.Row, 0, len(slots))
	for _, s := range slots {
		cell := props.Text{Size: 8, Top: 1, Left: 1}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(s.SKU, cell)),
			col.New(4).Add(text.New(s.Name, cell)),
			col.New(2).Add(text.New(s.Warehouse, cell)),
			col.New(1).Add(text.New(nonEmpty(s.Location, "—"), cell)),
			col.New(1).Add(text.New(formatUnits(s.Quantity), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New(statusLabel(s.Status), props.Text{
				Size: 8, Top: 1, Align: align.Center, Style: fontstyle.Bold, Color: statusColor(s.Status),
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s entity.SlotStatus) string {
	switch s {
	case entity.SlotStatusOutOfStock:
		return "Agotado"
	case entity.SlotStatusLow:
		return "Stock bajo"
	default:
		return "Disponible"
	}
}

func statusColor(s entity.SlotStatus) *props.Color {
	switch s {
	case entity.SlotStatusOutOfStock:
		return colorRed
	case entity.SlotStatusLow:
		return colorAmber
	default:
		return colorPrimary
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatUnits inserta puntos de miles: 25000 -> "25.000", -1200 -> "-1.200".
func formatUnits(v int) string {
	s := strconv.Itoa(v)
	sign := ""
	if v < 0 {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
