package postgres

import (
	"context"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo catálogos de solo lectura (categorías, laboratorios, carreras).
type ReferenceRepo struct {
	q Querier
}

func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

// table es siempre una constante del paquete, nunca entrada del usuario.
func (r *ReferenceRepo) refs(ctx context.Context, table string) ([]entity.Ref, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM `+table+` ORDER BY nombre`)
	if err != nil {
		return nil, mapErr("list "+table, err)
	}
	defer rows.Close()
	var list []entity.Ref
	for rows.Next() {
		var ref entity.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, mapErr("scan "+table, err)
		}
		list = append(list, ref)
	}
	return list, rows.Err()
}

func (r *ReferenceRepo) Categories(ctx context.Context) ([]entity.Category, error) {
	refs, err := r.refs(ctx, "categorias")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Category, len(refs))
	for i, ref := range refs {
		out[i] = entity.Category{ID: ref.ID, Name: ref.Name}
	}
	return out, nil
}

func (r *ReferenceRepo) Laboratories(ctx context.Context) ([]entity.Laboratory, error) {
	refs, err := r.refs(ctx, "laboratorios")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Laboratory, len(refs))
	for i, ref := range refs {
		out[i] = entity.Laboratory{ID: ref.ID, Name: ref.Name}
	}
	return out, nil
}

func (r *ReferenceRepo) Careers(ctx context.Context) ([]entity.Career, error) {
	refs, err := r.refs(ctx, "carreras")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Career, len(refs))
	for i, ref := range refs {
		out[i] = entity.Career{ID: ref.ID, Name: ref.Name}
	}
	return out, nil
}
