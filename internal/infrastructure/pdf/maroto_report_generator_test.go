package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/internal/application/report"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/infrastructure/pdf"
)

func consumablesDoc() *report.Document {
	cs := []*entity.Consumable{
		{Name: "Papel bond", Category: &entity.Ref{ID: 1, Name: "Oficina"}, Stock: 40, MinStock: 10, Unit: "paquete"},
		{Name: "Tóner", Stock: 3, MinStock: 5, Unit: "unidad"},
		{Name: "Alcohol", Stock: 0, MinStock: 4, Unit: "litro"},
	}
	return &report.Document{
		Entity:      report.EntityConsumables,
		Title:       report.EntityConsumables.Title(),
		Institution: "Instituto Tecnológico",
		GeneratedAt: time.Date(2024, 9, 3, 10, 15, 0, 0, time.UTC),
		Summary:     report.SummarizeConsumables(cs),
		Table:       report.ConsumablesTable(cs),
	}
}

func TestReportGenerator_Export(t *testing.T) {
	g := pdf.NewReportGenerator()
	out, err := g.Export(consumablesDoc())
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
	assert.Equal(t, "pdf", g.Extension())
	assert.Equal(t, "application/pdf", g.ContentType())
}

func TestReportGenerator_Export_MovimientosConVariasPaginas(t *testing.T) {
	ms := make([]*entity.Movement, 0, 120)
	for i := 0; i < 120; i++ {
		ms = append(ms, &entity.Movement{
			Item: &entity.Ref{ID: int64(i), Name: "Proyector"}, Type: "salida", Quantity: 1,
			CreatedAt: time.Date(2024, 1, 1, 8, i%60, 0, 0, time.UTC),
		})
	}
	doc := &report.Document{
		Entity:      report.EntityMovements,
		Title:       report.EntityMovements.Title(),
		Institution: "Instituto Tecnológico",
		GeneratedAt: time.Now(),
		Summary:     report.SummarizeMovements(ms),
		Table:       report.MovementsTable(ms, report.Options{Location: time.UTC}),
	}
	out, err := pdf.NewReportGenerator().Export(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestReportGenerator_Export_DocumentoNil(t *testing.T) {
	_, err := pdf.NewReportGenerator().Export(nil)
	assert.Error(t, err)
}

func TestRowFill_SoloResaltaAlertas(t *testing.T) {
	doc := consumablesDoc()
	rows := doc.Table.Rows
	require.Len(t, rows, 3)

	assert.Nil(t, pdf.RowFill(0, rows[0]), "fila par en OK sin relleno")
	highlight := pdf.RowFill(1, rows[1])
	require.NotNil(t, highlight)
	assert.Equal(t, 255, highlight.Red)
	assert.Equal(t, 200, highlight.Green)
	assert.Equal(t, highlight, pdf.RowFill(2, rows[2]))

	alt := pdf.RowFill(1, report.Row{})
	require.NotNil(t, alt)
	assert.Equal(t, 248, alt.Red, "fila impar en OK con fondo alternado")
}
