package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/inventory"
	"github.com/jhoicas/Inventario-consola/pkg/money"
)

// placeholder valor mostrado cuando falta una referencia opcional.
const placeholder = "-"

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04:05"
)

// Entity entidad exportable.
type Entity string

const (
	EntityItems       Entity = "items"
	EntityConsumables Entity = "consumibles"
	EntityMovements   Entity = "movimientos"
)

// ParseEntity valida el segmento :entidad de la ruta.
func ParseEntity(s string) (Entity, bool) {
	switch e := Entity(s); e {
	case EntityItems, EntityConsumables, EntityMovements:
		return e, true
	}
	return "", false
}

// SheetName nombre de hoja y sufijo de archivo: Items, Consumibles, Movimientos.
func (e Entity) SheetName() string {
	switch e {
	case EntityConsumables:
		return "Consumibles"
	case EntityMovements:
		return "Movimientos"
	default:
		return "Items"
	}
}

// Title título del documento exportado.
func (e Entity) Title() string {
	return "Reporte de " + e.SheetName()
}

// FileName Reporte_<Entidad>_<YYYY-MM-DD>.<ext>
func (e Entity) FileName(ext string, at time.Time) string {
	return fmt.Sprintf("Reporte_%s_%s.%s", e.SheetName(), at.Format("2006-01-02"), ext)
}

// Column columna de la tabla. Width es el ancho en la hoja de cálculo;
// Span las columnas de la grilla de 12 del PDF.
type Column struct {
	Header  string
	Width   float64
	Span    int
	Numeric bool
	Upper   bool // en el PDF se muestra en mayúsculas
}

// Row fila ya formateada. Highlight marca filas que requieren atención.
type Row struct {
	Cells     []string
	Highlight bool
}

// Table tabla común a ambos exportadores.
type Table struct {
	Sheet   string
	Columns []Column
	Rows    []Row
}

// Document todo lo que necesita un exportador para generar el archivo.
type Document struct {
	Entity      Entity
	Title       string
	Institution string
	GeneratedAt time.Time
	Summary     Summary
	Table       Table
}

// Options formato de celdas.
type Options struct {
	CurrencySymbol string
	Location       *time.Location
}

func (o Options) loc() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

var itemColumns = []Column{
	{Header: "Código", Width: 15, Span: 1},
	{Header: "Nombre", Width: 25, Span: 3},
	{Header: "Categoría", Width: 15, Span: 2},
	{Header: "Laboratorio", Width: 20, Span: 2},
	{Header: "Estado", Width: 15, Span: 1, Upper: true},
	{Header: "Valor", Width: 15, Span: 1, Numeric: true},
	{Header: "Fecha de Adquisición", Width: 20, Span: 2},
}

var consumableColumns = []Column{
	{Header: "Nombre", Width: 25, Span: 3},
	{Header: "Categoría", Width: 15, Span: 2},
	{Header: "Stock Actual", Width: 15, Span: 2, Numeric: true},
	{Header: "Stock Mínimo", Width: 15, Span: 2, Numeric: true},
	{Header: "Unidad", Width: 15, Span: 1},
	{Header: "Estado", Width: 15, Span: 2},
}

var movementColumns = []Column{
	{Header: "Item/Consumible", Width: 25, Span: 3},
	{Header: "Tipo", Width: 15, Span: 1, Upper: true},
	{Header: "Cantidad", Width: 12, Span: 1, Numeric: true},
	{Header: "Usuario", Width: 20, Span: 2},
	{Header: "Observaciones", Width: 30, Span: 3},
	{Header: "Fecha", Width: 15, Span: 1},
	{Header: "Hora", Width: 15, Span: 1},
}

// ItemsTable una fila por item. Fecha de adquisición es un día calendario: no se convierte de zona.
func ItemsTable(items []*entity.Item, opts Options) Table {
	t := Table{Sheet: EntityItems.SheetName(), Columns: itemColumns, Rows: make([]Row, 0, len(items))}
	for _, it := range items {
		if it == nil {
			continue
		}
		acquired := placeholder
		if it.AcquiredAt != nil {
			acquired = it.AcquiredAt.Format(dateLayout)
		}
		t.Rows = append(t.Rows, Row{Cells: []string{
			orPlaceholder(it.Code),
			orPlaceholder(it.Name),
			entity.RefName(it.Category, placeholder),
			entity.RefName(it.Laboratory, placeholder),
			orPlaceholder(it.State),
			money.Label(opts.CurrencySymbol, it.Value),
			acquired,
		}})
	}
	return t
}

// ConsumablesTable una fila por consumible; se resaltan los que no están en OK.
func ConsumablesTable(cs []*entity.Consumable) Table {
	t := Table{Sheet: EntityConsumables.SheetName(), Columns: consumableColumns, Rows: make([]Row, 0, len(cs))}
	for _, c := range cs {
		if c == nil {
			continue
		}
		status := inventory.ClassifyStock(c.Stock, c.MinStock)
		t.Rows = append(t.Rows, Row{
			Cells: []string{
				orPlaceholder(c.Name),
				entity.RefName(c.Category, placeholder),
				strconv.Itoa(c.Stock),
				strconv.Itoa(c.MinStock),
				orPlaceholder(c.Unit),
				status.Label(),
			},
			Highlight: status != inventory.StockOK,
		})
	}
	return t
}

// MovementsTable una fila por movimiento; fecha y hora en la zona de los reportes.
func MovementsTable(ms []*entity.Movement, opts Options) Table {
	t := Table{Sheet: EntityMovements.SheetName(), Columns: movementColumns, Rows: make([]Row, 0, len(ms))}
	loc := opts.loc()
	for _, m := range ms {
		if m == nil {
			continue
		}
		date, clock := placeholder, placeholder
		if !m.CreatedAt.IsZero() {
			at := m.CreatedAt.In(loc)
			date, clock = at.Format(dateLayout), at.Format(timeLayout)
		}
		t.Rows = append(t.Rows, Row{Cells: []string{
			m.TargetName(placeholder),
			orPlaceholder(m.Type),
			strconv.Itoa(m.Quantity),
			entity.RefName(m.User, placeholder),
			orPlaceholder(m.Notes),
			date,
			clock,
		}})
	}
	return t
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
