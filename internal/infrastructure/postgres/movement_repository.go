package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo historial de movimientos. Insertar un movimiento no toca el stock.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementSelect = `
	SELECT m.id, m.item_id, i.nombre, m.consumible_id, k.nombre, m.tipo, m.cantidad,
	       m.usuario_id, u.name, m.observaciones, m.created_at
	FROM movimientos m
	LEFT JOIN items i       ON i.id = m.item_id
	LEFT JOIN consumibles k ON k.id = m.consumible_id
	LEFT JOIN users u       ON u.id = m.usuario_id`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var (
		m                          entity.Movement
		itemName, consName, usName *string
	)
	err := row.Scan(&m.ID, &m.ItemID, &itemName, &m.ConsumableID, &consName, &m.Type, &m.Quantity,
		&m.UserID, &usName, &m.Notes, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Item = ref(m.ItemID, itemName)
	m.Consumable = ref(m.ConsumableID, consName)
	m.User = ref(m.UserID, usName)
	return &m, nil
}

func (r *MovementRepo) collect(ctx context.Context, query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr("list movements", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, mapErr("scan movement", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) (*repository.Page[*entity.Movement], error) {
	p := f.Paging.Normalize()
	w := &where{}
	if f.Type != "" {
		w.add("m.tipo = ?", f.Type)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimientos m`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, mapErr("count movements", err)
	}
	query := movementSelect + w.sql() + ` ORDER BY m.created_at DESC, m.id DESC LIMIT ` + w.next(1) + ` OFFSET ` + w.next(2)
	list, err := r.collect(ctx, query, append(w.args, p.PerPage, p.Offset())...)
	if err != nil {
		return nil, err
	}
	return &repository.Page[*entity.Movement]{
		Items:       list,
		CurrentPage: p.Page,
		LastPage:    repository.LastPageFor(total, p.PerPage),
		PerPage:     p.PerPage,
		Total:       total,
	}, nil
}

func (r *MovementRepo) ListAll(ctx context.Context) ([]*entity.Movement, error) {
	return r.collect(ctx, movementSelect+` ORDER BY m.created_at DESC, m.id DESC`)
}

// Create inserta el movimiento. La restricción item_id XOR consumible_id vive también en la tabla.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	const query = `
		INSERT INTO movimientos (item_id, consumible_id, tipo, cantidad, usuario_id, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	m.CreatedAt = time.Now().UTC()
	err := r.q.QueryRow(ctx, query,
		m.ItemID, m.ConsumableID, m.Type, m.Quantity, m.UserID, m.Notes, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return mapErr("insert movement", err)
	}
	got, err := scanMovement(r.q.QueryRow(ctx, movementSelect+` WHERE m.id = $1`, m.ID))
	if err != nil {
		return mapErr("get movement", err)
	}
	m.Item, m.Consumable, m.User = got.Item, got.Consumable, got.User
	return nil
}
