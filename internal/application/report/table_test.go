package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/internal/application/report"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
)

func lima(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)
	return loc
}

func TestItemsTable(t *testing.T) {
	acquired := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	items := []*entity.Item{
		{
			Code: "LAB-001", Name: "Osciloscopio",
			Category:   &entity.Ref{ID: 1, Name: "Electrónica"},
			Laboratory: &entity.Ref{ID: 3, Name: "Lab. Física"},
			State:      "activo",
			Value:      decimal.NewNullDecimal(decimal.RequireFromString("1250.5")),
			AcquiredAt: &acquired,
		},
		{Code: "LAB-002", Name: "Multímetro", State: "baja"},
	}
	tbl := report.ItemsTable(items, report.Options{CurrencySymbol: "S/."})

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Items", tbl.Sheet)
	headers := make([]string, 0, len(tbl.Columns))
	for _, c := range tbl.Columns {
		headers = append(headers, c.Header)
	}
	assert.Equal(t, []string{"Código", "Nombre", "Categoría", "Laboratorio", "Estado", "Valor", "Fecha de Adquisición"}, headers)
	assert.Equal(t, []string{"LAB-001", "Osciloscopio", "Electrónica", "Lab. Física", "activo", "S/. 1250.50", "15/03/2024"}, tbl.Rows[0].Cells)
	assert.Equal(t, []string{"LAB-002", "Multímetro", "-", "-", "baja", "S/. 0.00", "-"}, tbl.Rows[1].Cells)
}

func TestTables_SpanSuma12(t *testing.T) {
	tables := []report.Table{
		report.ItemsTable(nil, report.Options{}),
		report.ConsumablesTable(nil),
		report.MovementsTable(nil, report.Options{}),
	}
	for _, tbl := range tables {
		total := 0
		for _, c := range tbl.Columns {
			total += c.Span
		}
		assert.Equal(t, 12, total, tbl.Sheet)
	}
}

func TestConsumablesTable_ResaltaSoloNoOK(t *testing.T) {
	cs := []*entity.Consumable{
		{Name: "Papel A4", Stock: 50, MinStock: 10, Unit: "paquete"},
		{Name: "Tóner", Stock: 3, MinStock: 5, Unit: "unidad"},
		{Name: "Guantes", Stock: 1, MinStock: 10},
	}
	tbl := report.ConsumablesTable(cs)

	require.Len(t, tbl.Rows, 3)
	assert.False(t, tbl.Rows[0].Highlight)
	assert.True(t, tbl.Rows[1].Highlight)
	assert.True(t, tbl.Rows[2].Highlight)
	assert.Equal(t, "OK", tbl.Rows[0].Cells[5])
	assert.Equal(t, "BAJO", tbl.Rows[1].Cells[5])
	assert.Equal(t, "CRÍTICO", tbl.Rows[2].Cells[5])
	assert.Equal(t, "-", tbl.Rows[2].Cells[1], "sin categoría")
	assert.Equal(t, "-", tbl.Rows[2].Cells[4], "sin unidad")
}

func TestMovementsTable_FechaEnZonaDeReporte(t *testing.T) {
	itemID := int64(4)
	ms := []*entity.Movement{
		{
			ItemID: &itemID, Item: &entity.Ref{ID: 4, Name: "Proyector"},
			Type: "salida", Quantity: 2,
			User:      &entity.Ref{ID: 1, Name: "Ana Torres"},
			Notes:     "Préstamo aula 3",
			CreatedAt: time.Date(2024, 5, 2, 3, 30, 0, 0, time.UTC),
		},
		{Type: "entrada", Quantity: 10},
	}
	tbl := report.MovementsTable(ms, report.Options{Location: lima(t)})

	require.Len(t, tbl.Rows, 2)
	// 03:30 UTC es 22:30 del día anterior en Lima.
	assert.Equal(t, []string{"Proyector", "salida", "2", "Ana Torres", "Préstamo aula 3", "01/05/2024", "22:30:00"}, tbl.Rows[0].Cells)
	assert.Equal(t, []string{"-", "entrada", "10", "-", "-", "-", "-"}, tbl.Rows[1].Cells)
}

func TestEntity_FileName(t *testing.T) {
	at := time.Date(2024, 7, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Reporte_Items_2024-07-09.xlsx", report.EntityItems.FileName("xlsx", at))
	assert.Equal(t, "Reporte_Consumibles_2024-07-09.pdf", report.EntityConsumables.FileName("pdf", at))
	assert.Equal(t, "Reporte_Movimientos_2024-07-09.pdf", report.EntityMovements.FileName("pdf", at))

	_, ok := report.ParseEntity("usuarios")
	assert.False(t, ok)
	e, ok := report.ParseEntity("consumibles")
	assert.True(t, ok)
	assert.Equal(t, report.EntityConsumables, e)
}
