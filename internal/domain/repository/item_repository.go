package repository

import (
	"context"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
)

// ItemFilter filtros del listado de items.
type ItemFilter struct {
	State      string
	Search     string // código o nombre
	CategoryID int64
	Paging
}

// ItemRepository define el puerto del gateway de datos para Item (DIP).
// GetByID, Update y Delete devuelven domain.ErrNotFound si el item no existe.
type ItemRepository interface {
	List(ctx context.Context, f ItemFilter) (*Page[*entity.Item], error)
	// ListAll recorre todas las páginas; lo usan reportes y dashboard.
	ListAll(ctx context.Context) ([]*entity.Item, error)
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) error
}
