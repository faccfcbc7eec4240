package repository

import "math"

// Page página de resultados tal como la devuelve el gateway de datos.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
}

// Paging parámetros de paginación; valores <= 0 se normalizan con Normalize.
type Paging struct {
	Page    int
	PerPage int
}

// DefaultPerPage tamaño de página de los listados de la consola.
const DefaultPerPage = 10

// Normalize aplica page=1 y per_page=DefaultPerPage cuando no vienen informados.
func (p Paging) Normalize() Paging {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	return p
}

// Offset desplazamiento SQL equivalente a la página. Una página fuera de rango
// satura en math.MaxInt en lugar de desbordar.
func (p Paging) Offset() int {
	p = p.Normalize()
	if p.Page-1 > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PerPage
}

// LastPageFor calcula la última página para total registros (mínimo 1).
func LastPageFor(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
