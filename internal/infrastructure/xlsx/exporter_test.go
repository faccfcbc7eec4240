package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-consola/internal/application/importer"
	"github.com/jhoicas/Inventario-consola/internal/application/report"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/infrastructure/xlsx"
)

func itemsDoc(n int) *report.Document {
	items := make([]*entity.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &entity.Item{Code: "EQ-" + string(rune('A'+i)), Name: "Equipo", State: "activo"})
	}
	return &report.Document{
		Entity:      report.EntityItems,
		Title:       report.EntityItems.Title(),
		GeneratedAt: time.Now(),
		Summary:     report.SummarizeItems(items),
		Table:       report.ItemsTable(items, report.Options{CurrencySymbol: "S/."}),
	}
}

func TestExporter_FilasMasEncabezado(t *testing.T) {
	out, err := xlsx.NewExporter().Export(itemsDoc(3))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Items"}, f.GetSheetList())
	rows, err := f.GetRows("Items")
	require.NoError(t, err)
	require.Len(t, rows, 4, "N+1 filas")
	assert.Equal(t, []string{"Código", "Nombre", "Categoría", "Laboratorio", "Estado", "Valor", "Fecha de Adquisición"}, rows[0])
	assert.Equal(t, []string{"EQ-A", "Equipo", "-", "-", "activo", "S/. 0.00", "-"}, rows[1])

	w, err := f.GetColWidth("Items", "B")
	require.NoError(t, err)
	assert.InDelta(t, 25, w, 0.01)
}

func TestExporter_ConsumiblesNumericos(t *testing.T) {
	cs := []*entity.Consumable{{Name: "Tiza", Stock: 2, MinStock: 10, Unit: "caja"}}
	doc := &report.Document{Entity: report.EntityConsumables, Table: report.ConsumablesTable(cs)}
	out, err := xlsx.NewExporter().Export(doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Consumibles")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Tiza", "-", "2", "10", "caja", "CRÍTICO"}, rows[1])

	typ, err := f.GetCellType("Consumibles", "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
}

func TestExporter_VacioSoloEncabezado(t *testing.T) {
	out, err := xlsx.NewExporter().Export(itemsDoc(0))
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Items")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReader_LeeLoQueExporta(t *testing.T) {
	out, err := xlsx.NewExporter().Export(itemsDoc(2))
	require.NoError(t, err)

	var dec importer.Decoder = xlsx.Reader{}
	sh, err := dec.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "Código", sh.Headers[0])
	assert.Len(t, sh.Rows, 2)
}

func TestReader_ArchivoCorrupto(t *testing.T) {
	_, err := xlsx.Reader{}.Decode([]byte("no es un zip"))
	assert.Error(t, err)
}
