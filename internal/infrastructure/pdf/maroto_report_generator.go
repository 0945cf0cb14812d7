// Package pdf implementa la exportación de reportes tabulares con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa                                │
//	│  Título del reporte + fecha de generación                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN (por tabla): título                                 │
//	│  Cabecera de columnas | filas con rayado alterno             │
//	│  ...                                                         │
//	└─────────────────────────────────────────────────────────────┘
//
// El reporte combinado encadena las cinco secciones; Maroto inserta el salto
// de página cuando el contenido excede el área imprimible.
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
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ndiwanjo/constructora-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 249, Green: 115, Blue: 22} // naranja corporativo
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// Generate genera el PDF con encabezado y una sección por tabla.
func (g *MarotoReportGenerator) Generate(_ context.Context, header report.Header, tables []report.Table) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(header.Title, true).
		WithAuthor(header.Company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(header)...)

	for _, t := range tables {
		m.AddRows(sectionTitleRow(t.Title))
		m.AddRows(tableHeaderRow(t.Columns))
		for i, cells := range t.Rows {
			m.AddRows(tableDetailRow(cells, i%2 == 1))
		}
		m.AddRows(row.New(6))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: empresa + título + fecha de generación.
func headerRows(h report.Header) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(h.Company, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(12).Add(col.New(12).Add(
			text.New(h.Title, props.Text{Style: fontstyle.Bold, Size: 12, Top: 1}),
			text.New(h.GeneratedAt, props.Text{Size: 8, Top: 8, Color: colorGray}),
		)),
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

// sectionTitleRow: título de la sección (una por tabla en el combinado).
func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
		}),
	))
}

// tableHeaderRow: cabecera de columnas.
func tableHeaderRow(columns []string) core.Row {
	widths := columnWidths(len(columns))
	cols := make([]core.Col, 0, len(columns))
	for i, label := range columns {
		cols = append(cols, col.New(widths[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Left: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

// tableDetailRow: una fila de datos; las impares llevan fondo rayado.
func tableDetailRow(cells []string, striped bool) core.Row {
	widths := columnWidths(len(cells))
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		cols = append(cols, col.New(widths[i]).Add(text.New(cell, props.Text{
			Size: 8, Top: 1, Left: 1,
		})))
	}
	r := row.New(6).Add(cols...)
	if striped {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// columnWidths reparte la grilla de 12 columnas de Maroto entre n columnas;
// la primera absorbe el resto para que la suma sea exacta.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	base := 12 / n
	rest := 12 % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
	}
	widths[0] += rest
	return widths
}
