// Package pdf genera los reportes imprimibles de la consola con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BANNER: título del reporte sobre fondo de color            │
//	│  Institución / Fecha de Generación                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: cajas etiqueta + valor (4 por fila)               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: encabezado acento, filas alternadas, alertas rojas  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER (cada página): generado el ... | Página n de m      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-consola/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorAccent    = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorLightGray = &props.Color{Red: 248, Green: 249, Blue: 250}
	colorBorder    = &props.Color{Red: 222, Green: 226, Blue: 230}
	colorHighlight = &props.Color{Red: 255, Green: 200, Blue: 200}
	colorGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite     = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const (
	gridSize       = 12
	boxesPerRow    = 4
	dateTimeLayout = "02/01/2006 15:04:05"
)

var upper = cases.Upper(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa report.Exporter usando Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

func (g *ReportGenerator) Extension() string   { return "pdf" }
func (g *ReportGenerator) ContentType() string { return "application/pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) Export(doc *report.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.Institution, true).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   colorGray,
		}).
		Build()

	m := maroto.New(cfg)
	if err := m.RegisterFooter(footerRow(doc)); err != nil {
		return nil, fmt.Errorf("pdf: registrar footer: %w", err)
	}

	m.AddRows(bannerRow(doc))
	m.AddRows(metadataRows(doc)...)
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(summaryRows(doc.Summary)...)
	m.AddRows(row.New(4))

	m.AddRows(tableHeaderRow(doc.Table.Columns))
	m.AddRows(tableBodyRows(doc.Table)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// bannerRow: título centrado sobre la franja de color primario.
func bannerRow(doc *report.Document) core.Row {
	return row.New(16).Add(
		col.New(gridSize).Add(text.New(doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 15, Align: align.Center,
			Color: colorWhite, Top: 4,
		})),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// metadataRows: institución y fecha de generación.
func metadataRows(doc *report.Document) []core.Row {
	meta := func(s string) core.Row {
		return row.New(6).Add(col.New(gridSize).Add(
			text.New(s, props.Text{Size: 9, Top: 1.5, Color: colorGray}),
		))
	}
	return []core.Row{
		row.New(2),
		meta("Institución: " + doc.Institution),
		meta("Fecha de Generación: " + doc.GeneratedAt.Format("02/01/2006")),
	}
}

// summaryRows: cajas de resumen, boxesPerRow por fila.
func summaryRows(s report.Summary) []core.Row {
	boxes := s.Boxes()
	span := gridSize / boxesPerRow
	var rows []core.Row
	for start := 0; start < len(boxes); start += boxesPerRow {
		end := start + boxesPerRow
		if end > len(boxes) {
			end = len(boxes)
		}
		cols := make([]core.Col, 0, boxesPerRow)
		for _, b := range boxes[start:end] {
			cols = append(cols, col.New(span).Add(
				text.New(b.Label, props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
				text.New(fmt.Sprintf("%d", b.Value), props.Text{
					Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 7, Color: colorAccent,
				}),
			).WithStyle(&props.Cell{
				BackgroundColor: colorLightGray,
				BorderType:      border.Full,
				BorderColor:     colorBorder,
				BorderThickness: 0.2,
			}))
		}
		rows = append(rows, row.New(16).Add(cols...), row.New(2))
	}
	return rows
}

// tableHeaderRow: encabezado con fondo de acento y texto blanco.
func tableHeaderRow(columns []report.Column) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.Span).Add(text.New(c.Header, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: columnAlign(c),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{
		BackgroundColor: colorAccent,
		BorderType:      border.Full,
		BorderColor:     colorAccent,
		BorderThickness: 0.2,
	})
}

// tableBodyRows: una fila por registro; fondo alternado y resaltado para alertas.
func tableBodyRows(t report.Table) []core.Row {
	rows := make([]core.Row, 0, len(t.Rows))
	for i, r := range t.Rows {
		cols := make([]core.Col, 0, len(t.Columns))
		for j, c := range t.Columns {
			value := ""
			if j < len(r.Cells) {
				value = r.Cells[j]
			}
			if c.Upper {
				value = upper.String(value)
			}
			cols = append(cols, col.New(c.Span).Add(text.New(value, props.Text{
				Size: 7.5, Align: columnAlign(c), Top: 1.5, Left: 1, Right: 1,
			})))
		}
		rows = append(rows, row.New(7).Add(cols...).WithStyle(rowStyle(i, r)))
	}
	return rows
}

// footerRow: marca de generación a la izquierda; el número de página lo pone la config.
func footerRow(doc *report.Document) core.Row {
	return row.New(6).Add(col.New(gridSize).Add(
		text.New(
			fmt.Sprintf("%s · Generado el %s", doc.Institution, doc.GeneratedAt.Format(dateTimeLayout)),
			props.Text{Size: 7, Top: 2, Color: colorGray},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// RowFill color de fondo de la fila i: resaltado si requiere atención, si no alternado.
// nil significa sin relleno.
func RowFill(i int, r report.Row) *props.Color {
	if r.Highlight {
		return colorHighlight
	}
	if i%2 == 1 {
		return colorLightGray
	}
	return nil
}

func rowStyle(i int, r report.Row) *props.Cell {
	return &props.Cell{
		BackgroundColor: RowFill(i, r),
		BorderType:      border.Full,
		BorderColor:     colorBorder,
		BorderThickness: 0.1,
	}
}

func columnAlign(c report.Column) align.Type {
	if c.Numeric {
		return align.Right
	}
	return align.Left
}
