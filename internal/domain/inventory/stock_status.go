package inventory

// StockStatus clasificación derivada del stock de un consumible. Nunca se persiste.
type StockStatus string

const (
	StockOK       StockStatus = "OK"
	StockLow      StockStatus = "LOW"
	StockCritical StockStatus = "CRITICAL"
)

// ClassifyStock implementa la regla de umbrales (servicio de dominio, función pura):
//
//	CRITICAL si stock <= minimo*0.5
//	LOW      si stock <= minimo
//	OK       en otro caso
//
// La igualdad con el mínimo cuenta como LOW. Con minimo == 0 solo stock == 0 es CRITICAL.
func ClassifyStock(stock, minimum int) StockStatus {
	if float64(stock) <= float64(minimum)*0.5 {
		return StockCritical
	}
	if stock <= minimum {
		return StockLow
	}
	return StockOK
}

// IsAlert indica si el estado requiere atención (LOW o CRITICAL).
func (s StockStatus) IsAlert() bool {
	return s == StockLow || s == StockCritical
}

// Label etiqueta en español para tablas y reportes.
func (s StockStatus) Label() string {
	switch s {
	case StockCritical:
		return "CRÍTICO"
	case StockLow:
		return "BAJO"
	default:
		return "OK"
	}
}

// Key clave usada por los filtros de la consola: normal, bajo, critico.
func (s StockStatus) Key() string {
	switch s {
	case StockCritical:
		return "critico"
	case StockLow:
		return "bajo"
	default:
		return "normal"
	}
}

// MatchesFilter aplica el filtro de estado de stock de la pantalla de consumibles.
// "bajo" incluye también los críticos (stock <= mínimo); "" acepta todo.
func (s StockStatus) MatchesFilter(filter string) bool {
	switch filter {
	case "":
		return true
	case "bajo":
		return s.IsAlert()
	case "critico":
		return s == StockCritical
	case "normal":
		return s == StockOK
	default:
		return false
	}
}
