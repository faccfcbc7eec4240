package repository

import (
	"context"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
)

// ConsumableFilter filtros que resuelve el gateway. El filtro por estado de stock
// se aplica localmente con el clasificador, por eso aquí no hay paginación.
type ConsumableFilter struct {
	Search     string
	CategoryID int64
}

// ConsumableRepository define el puerto del gateway de datos para Consumable.
type ConsumableRepository interface {
	ListAll(ctx context.Context, f ConsumableFilter) ([]*entity.Consumable, error)
	GetByID(ctx context.Context, id int64) (*entity.Consumable, error)
	Create(ctx context.Context, c *entity.Consumable) error
	Update(ctx context.Context, c *entity.Consumable) error
	Delete(ctx context.Context, id int64) error
}
