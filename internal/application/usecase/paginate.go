package usecase

import (
	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

// Paginate corta una colección ya filtrada en memoria (consumibles: el filtro
// de estado de stock se resuelve localmente, así que la paginación también).
func Paginate[T any](all []T, p repository.Paging) ([]T, dto.PageResponse) {
	p = p.Normalize()
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := len(all)
	if end-start > p.PerPage {
		end = start + p.PerPage
	}
	return all[start:end], dto.PageResponse{
		CurrentPage: p.Page,
		LastPage:    repository.LastPageFor(len(all), p.PerPage),
		PerPage:     p.PerPage,
		Total:       len(all),
	}
}

func paging(p dto.PageRequest) repository.Paging {
	return repository.Paging{Page: p.Page, PerPage: p.PerPage}.Normalize()
}
