package repository

import (
	"context"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
)

// MovementFilter filtros del historial de movimientos.
type MovementFilter struct {
	Type string
	Paging
}

// MovementRepository puerto para el historial de movimientos. Solo alta y lectura:
// los movimientos no se editan ni se eliminan desde la consola.
type MovementRepository interface {
	List(ctx context.Context, f MovementFilter) (*Page[*entity.Movement], error)
	// ListAll devuelve todos los movimientos, del más reciente al más antiguo.
	ListAll(ctx context.Context) ([]*entity.Movement, error)
	Create(ctx context.Context, m *entity.Movement) error
}
