package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository. Guarda solo el hash bcrypt de la contraseña.
type UserRepo struct {
	q    Querier
	tx   *TxRunner
	cost int
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{q: pool, tx: NewTxRunner(pool), cost: bcrypt.DefaultCost}
}

const userSelect = `
	SELECT u.id, u.name, u.email, u.rol, u.carrera_id, c.nombre, u.created_at
	FROM users u
	LEFT JOIN carreras c ON c.id = u.carrera_id`

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u          entity.User
		careerName *string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CareerID, &careerName, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Career = ref(u.CareerID, careerName)
	return &u, nil
}

func (r *UserRepo) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// List lista usuarios con filtros de rol y búsqueda por nombre o email.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) (*repository.Page[*entity.User], error) {
	p := f.Paging.Normalize()
	w := &where{}
	if f.Role != "" {
		w.add("u.rol = ?", f.Role)
	}
	if f.Search != "" {
		w.add("(u.name ILIKE ? OR u.email ILIKE ?)", like(f.Search))
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users u`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, mapErr("count users", err)
	}
	query := userSelect + w.sql() + ` ORDER BY u.name, u.id LIMIT ` + w.next(1) + ` OFFSET ` + w.next(2)
	rows, err := r.q.Query(ctx, query, append(w.args, p.PerPage, p.Offset())...)
	if err != nil {
		return nil, mapErr("list users", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0, p.PerPage)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapErr("scan user", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list users", err)
	}
	return &repository.Page[*entity.User]{
		Items:       list,
		CurrentPage: p.Page,
		LastPage:    repository.LastPageFor(total, p.PerPage),
		PerPage:     p.PerPage,
		Total:       total,
	}, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		return nil, mapErr("get user", err)
	}
	return u, nil
}

// Create persiste un nuevo usuario; email repetido ⇒ domain.ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User, password string) error {
	hash, err := r.hash(password)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO users (name, email, password_hash, rol, carrera_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id`
	u.CreatedAt = time.Now().UTC()
	if err := r.q.QueryRow(ctx, query, u.Name, u.Email, hash, u.Role, u.CareerID, u.CreatedAt).Scan(&u.ID); err != nil {
		return mapErr("insert user", err)
	}
	return r.refresh(ctx, u)
}

// Update actualiza los datos; password vacío conserva el hash actual.
func (r *UserRepo) Update(ctx context.Context, u *entity.User, password string) error {
	var hash *string
	if password != "" {
		h, err := r.hash(password)
		if err != nil {
			return err
		}
		hash = &h
	}
	const query = `
		UPDATE users SET name = $2, email = $3, rol = $4, carrera_id = $5,
		       password_hash = COALESCE($6, password_hash), updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, u.ID, u.Name, u.Email, u.Role, u.CareerID, hash, time.Now().UTC())
	if err != nil {
		return mapErr("update user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.refresh(ctx, u)
}

// Delete elimina un usuario; sus movimientos quedan sin usuario (ON DELETE SET NULL).
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Authenticate compara la contraseña con el hash bcrypt guardado.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	var (
		id   int64
		hash string
	)
	err := r.q.QueryRow(ctx, `SELECT id, password_hash FROM users WHERE lower(email) = $1`,
		strings.ToLower(strings.TrimSpace(email))).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, mapErr("authenticate", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return r.GetByID(ctx, id)
}

// ChangePassword verifica la contraseña actual y guarda la nueva dentro de una transacción.
func (r *UserRepo) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	return r.tx.Run(ctx, func(q Querier) error {
		var hash string
		err := q.QueryRow(ctx, `SELECT password_hash FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&hash)
		if err != nil {
			return mapErr("get password", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)) != nil {
			return domain.Invalid("La contraseña actual no es correcta")
		}
		newHash, err := r.hash(next)
		if err != nil {
			return err
		}
		_, err = q.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
			userID, newHash, time.Now().UTC())
		return mapErr("update password", err)
	})
}

func (r *UserRepo) refresh(ctx context.Context, u *entity.User) error {
	got, err := r.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}
	u.Career, u.CreatedAt = got.Career, got.CreatedAt
	return nil
}
