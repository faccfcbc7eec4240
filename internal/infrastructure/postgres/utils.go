package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgCode(err) == "23505" }

// isForeignKeyViolation 23503: referencia inexistente al insertar o fila referenciada al borrar.
func isForeignKeyViolation(err error) bool { return pgCode(err) == "23503" }

// mapErr traduce errores de pgx a errores de dominio; op da contexto al mensaje.
func mapErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, op)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: registro relacionado", domain.ErrConflict, op)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// where acumula condiciones y argumentos posicionales ($1, $2...).
// Cada ? de cond se reemplaza por el placeholder de arg.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// next devuelve el siguiente placeholder libre tras los argumentos acumulados.
func (w *where) next(offset int) string {
	return fmt.Sprintf("$%d", len(w.args)+offset)
}

func like(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}

func ref(id *int64, name *string) *entity.Ref {
	if id == nil {
		return nil
	}
	r := &entity.Ref{ID: *id}
	if name != nil {
		r.Name = *name
	}
	return r
}

func nonNilRef(id int64, name *string) *entity.Ref {
	if id == 0 {
		return nil
	}
	return ref(&id, name)
}
