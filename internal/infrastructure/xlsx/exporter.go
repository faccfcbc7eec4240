// Package xlsx exporta reportes y lee archivos de importación en formato Excel (excelize).
package xlsx

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-consola/internal/application/report"
)

const defaultSheet = "Sheet1"

// Exporter implementa report.Exporter: una hoja con encabezado y una fila por registro.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

func (e *Exporter) Extension() string { return "xlsx" }
func (e *Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export genera el libro con una sola hoja (Items, Consumibles o Movimientos).
func (e *Exporter) Export(doc *report.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("xlsx: documento vacío")
	}
	t := doc.Table
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, fmt.Errorf("xlsx: nombrar hoja: %w", err)
		}
	}

	// ── Encabezado ────────────────────────────────────────────────────────────
	header := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		header = append(header, c.Header)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	// ── Filas ─────────────────────────────────────────────────────────────────
	for i, r := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		values := make([]any, 0, len(t.Columns))
		for j, c := range t.Columns {
			var v string
			if j < len(r.Cells) {
				v = r.Cells[j]
			}
			values = append(values, cellValue(c, v))
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	if err := e.applyLayout(f, sheet, t); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// applyLayout anchos fijos, encabezado en negrita congelado y relleno de filas en alerta.
func (e *Exporter) applyLayout(f *excelize.File, sheet string, t report.Table) error {
	for i, c := range t.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("xlsx: columna: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, c.Width); err != nil {
			return fmt.Errorf("xlsx: ancho de columna %s: %w", name, err)
		}
	}
	if len(t.Columns) == 0 {
		return nil
	}
	lastCol, _ := excelize.ColumnNumberToName(len(t.Columns))

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E40AF"}},
	})
	if err != nil {
		return fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("xlsx: aplicar estilo encabezado: %w", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("xlsx: congelar encabezado: %w", err)
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC8C8"}},
	})
	if err != nil {
		return fmt.Errorf("xlsx: estilo alerta: %w", err)
	}
	for i, r := range t.Rows {
		if !r.Highlight {
			continue
		}
		n := strconv.Itoa(i + 2)
		if err := f.SetCellStyle(sheet, "A"+n, lastCol+n, highlight); err != nil {
			return fmt.Errorf("xlsx: resaltar fila %d: %w", i+1, err)
		}
	}
	return nil
}

// cellValue escribe como número las columnas numéricas enteras; el resto como texto.
func cellValue(c report.Column, v string) any {
	if c.Numeric {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return v
}
