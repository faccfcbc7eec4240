package repository

import (
	"context"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
)

// ReferenceRepository catálogos de solo lectura para combos y joins de presentación.
type ReferenceRepository interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	Laboratories(ctx context.Context) ([]entity.Laboratory, error)
	Careers(ctx context.Context) ([]entity.Career, error)
}
