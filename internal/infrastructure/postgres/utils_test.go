package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

func TestWhere_Placeholders(t *testing.T) {
	w := itemWhere(repository.ItemFilter{State: "activo", Search: " pc ", CategoryID: 3})

	assert.Equal(t, " WHERE i.estado = $1 AND (i.nombre ILIKE $2 OR i.codigo ILIKE $2) AND i.categoria_id = $3", w.sql())
	assert.Equal(t, []any{"activo", "%pc%", int64(3)}, w.args)
	assert.Equal(t, "$4", w.next(1))
	assert.Equal(t, "$5", w.next(2))
}

func TestWhere_SinFiltros(t *testing.T) {
	w := itemWhere(repository.ItemFilter{})
	assert.Empty(t, w.sql())
	assert.Equal(t, "$1", w.next(1))
}

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr("op", nil))
	assert.ErrorIs(t, mapErr("op", pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, mapErr("insert item", &pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, mapErr("delete item", &pgconn.PgError{Code: "23503"}), domain.ErrConflict)

	other := errors.New("conexión cerrada")
	err := mapErr("list items", other)
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "list items")
}

func TestRef(t *testing.T) {
	name := "Cómputo"
	id := int64(2)
	assert.Nil(t, ref(nil, &name))
	assert.Equal(t, "Cómputo", ref(&id, &name).Name)
	assert.Equal(t, "", ref(&id, nil).Name)
	assert.Nil(t, nonNilRef(0, &name))
}
