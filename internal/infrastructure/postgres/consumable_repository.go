package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

var _ repository.ConsumableRepository = (*ConsumableRepo)(nil)

// ConsumableRepo implementación del puerto ConsumableRepository.
type ConsumableRepo struct {
	q Querier
}

// NewConsumableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsumableRepository(q Querier) *ConsumableRepo {
	return &ConsumableRepo{q: q}
}

const consumableSelect = `
	SELECT k.id, k.nombre, k.descripcion, k.categoria_id, c.nombre, k.stock, k.stock_minimo, k.unidad_medida
	FROM consumibles k
	LEFT JOIN categorias c ON c.id = k.categoria_id`

func scanConsumable(row pgx.Row) (*entity.Consumable, error) {
	var (
		c       entity.Consumable
		catName *string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CategoryID, &catName, &c.Stock, &c.MinStock, &c.Unit); err != nil {
		return nil, err
	}
	c.Category = nonNilRef(c.CategoryID, catName)
	return &c, nil
}

// ListAll devuelve los consumibles filtrados por búsqueda y categoría. El filtro por
// estado de stock lo aplica la capa de aplicación con el clasificador.
func (r *ConsumableRepo) ListAll(ctx context.Context, f repository.ConsumableFilter) ([]*entity.Consumable, error) {
	w := &where{}
	if f.Search != "" {
		w.add("(k.nombre ILIKE ? OR k.descripcion ILIKE ?)", like(f.Search))
	}
	if f.CategoryID > 0 {
		w.add("k.categoria_id = ?", f.CategoryID)
	}
	rows, err := r.q.Query(ctx, consumableSelect+w.sql()+` ORDER BY k.nombre, k.id`, w.args...)
	if err != nil {
		return nil, mapErr("list consumables", err)
	}
	defer rows.Close()
	var list []*entity.Consumable
	for rows.Next() {
		c, err := scanConsumable(rows)
		if err != nil {
			return nil, mapErr("scan consumable", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene un consumible; domain.ErrNotFound si no existe.
func (r *ConsumableRepo) GetByID(ctx context.Context, id int64) (*entity.Consumable, error) {
	c, err := scanConsumable(r.q.QueryRow(ctx, consumableSelect+` WHERE k.id = $1`, id))
	if err != nil {
		return nil, mapErr("get consumable", err)
	}
	return c, nil
}

func (r *ConsumableRepo) Create(ctx context.Context, c *entity.Consumable) error {
	const query = `
		INSERT INTO consumibles (nombre, descripcion, categoria_id, stock, stock_minimo, unidad_medida, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Name, c.Description, c.CategoryID, c.Stock, c.MinStock, c.Unit, time.Now().UTC(),
	).Scan(&c.ID)
	if err != nil {
		return mapErr("insert consumable", err)
	}
	return r.refresh(ctx, c)
}

func (r *ConsumableRepo) Update(ctx context.Context, c *entity.Consumable) error {
	const query = `
		UPDATE consumibles SET nombre = $2, descripcion = $3, categoria_id = $4, stock = $5,
		       stock_minimo = $6, unidad_medida = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Description, c.CategoryID, c.Stock, c.MinStock, c.Unit, time.Now().UTC(),
	)
	if err != nil {
		return mapErr("update consumable", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErr("update consumable", pgx.ErrNoRows)
	}
	return r.refresh(ctx, c)
}

func (r *ConsumableRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM consumibles WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete consumable", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErr("delete consumable", pgx.ErrNoRows)
	}
	return nil
}

func (r *ConsumableRepo) refresh(ctx context.Context, c *entity.Consumable) error {
	got, err := r.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	c.Category = got.Category
	return nil
}
