package repository

import (
	"context"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
)

// UserFilter filtros del listado de usuarios.
type UserFilter struct {
	Role   string
	Search string // nombre o email
	Paging
}

// UserRepository define el puerto para usuarios y sus credenciales.
// Las contraseñas viajan en texto plano solo hacia el gateway, que es quien las guarda.
type UserRepository interface {
	List(ctx context.Context, f UserFilter) (*Page[*entity.User], error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, u *entity.User, password string) error
	// Update actualiza los datos; password vacío deja la contraseña actual.
	Update(ctx context.Context, u *entity.User, password string) error
	Delete(ctx context.Context, id int64) error
	// Authenticate devuelve domain.ErrUnauthorized si las credenciales no coinciden.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
}
