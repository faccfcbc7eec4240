package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemSelect = `
	SELECT i.id, i.codigo, i.nombre, i.descripcion, i.categoria_id, c.nombre,
	       i.laboratorio_id, l.nombre, i.estado, i.valor, i.fecha_adquisicion, i.created_at
	FROM items i
	LEFT JOIN categorias c   ON c.id = i.categoria_id
	LEFT JOIN laboratorios l ON l.id = i.laboratorio_id`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var (
		it               entity.Item
		catName, labName *string
	)
	err := row.Scan(&it.ID, &it.Code, &it.Name, &it.Description, &it.CategoryID, &catName,
		&it.LaboratoryID, &labName, &it.State, &it.Value, &it.AcquiredAt, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	it.Category = nonNilRef(it.CategoryID, catName)
	it.Laboratory = nonNilRef(it.LaboratoryID, labName)
	return &it, nil
}

func (r *ItemRepo) collect(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr("list items", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, mapErr("scan item", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func itemWhere(f repository.ItemFilter) *where {
	w := &where{}
	if f.State != "" {
		w.add("i.estado = ?", f.State)
	}
	if f.Search != "" {
		w.add("(i.nombre ILIKE ? OR i.codigo ILIKE ?)", like(f.Search))
	}
	if f.CategoryID > 0 {
		w.add("i.categoria_id = ?", f.CategoryID)
	}
	return w
}

// List devuelve una página filtrada, ordenada por nombre.
func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) (*repository.Page[*entity.Item], error) {
	p := f.Paging.Normalize()
	w := itemWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items i`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, mapErr("count items", err)
	}
	query := itemSelect + w.sql() + ` ORDER BY i.nombre, i.id LIMIT ` + w.next(1) + ` OFFSET ` + w.next(2)
	items, err := r.collect(ctx, query, append(w.args, p.PerPage, p.Offset())...)
	if err != nil {
		return nil, err
	}
	return &repository.Page[*entity.Item]{
		Items:       items,
		CurrentPage: p.Page,
		LastPage:    repository.LastPageFor(total, p.PerPage),
		PerPage:     p.PerPage,
		Total:       total,
	}, nil
}

// ListAll devuelve todos los items (reportes y dashboard).
func (r *ItemRepo) ListAll(ctx context.Context) ([]*entity.Item, error) {
	return r.collect(ctx, itemSelect+` ORDER BY i.nombre, i.id`)
}

// GetByID obtiene un item por ID; domain.ErrNotFound si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, itemSelect+` WHERE i.id = $1`, id))
	if err != nil {
		return nil, mapErr("get item", err)
	}
	return it, nil
}

// Create inserta el item y completa ID, joins y fechas.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	const query = `
		INSERT INTO items (codigo, nombre, descripcion, categoria_id, laboratorio_id, estado, valor, fecha_adquisicion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id`
	now := time.Now().UTC()
	err := r.q.QueryRow(ctx, query,
		item.Code, item.Name, item.Description, item.CategoryID, item.LaboratoryID,
		item.State, item.Value, item.AcquiredAt, now,
	).Scan(&item.ID)
	if err != nil {
		return mapErr("insert item", err)
	}
	item.CreatedAt = now
	return r.refresh(ctx, item)
}

// Update reemplaza los campos editables; cualquier transición de estado es válida.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	const query = `
		UPDATE items SET codigo = $2, nombre = $3, descripcion = $4, categoria_id = $5,
		       laboratorio_id = $6, estado = $7, valor = $8, fecha_adquisicion = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.Code, item.Name, item.Description, item.CategoryID, item.LaboratoryID,
		item.State, item.Value, item.AcquiredAt, time.Now().UTC(),
	)
	if err != nil {
		return mapErr("update item", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErr("update item", pgx.ErrNoRows)
	}
	return r.refresh(ctx, item)
}

// Delete elimina el item; si tiene movimientos devuelve domain.ErrConflict.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErr("delete item", pgx.ErrNoRows)
	}
	return nil
}

// refresh recarga los nombres de categoría y laboratorio tras escribir.
func (r *ItemRepo) refresh(ctx context.Context, item *entity.Item) error {
	got, err := r.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}
	item.Category, item.Laboratory, item.CreatedAt = got.Category, got.Laboratory, got.CreatedAt
	return nil
}
