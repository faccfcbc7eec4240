package dto

import "time"

// CreateUserRequest entrada para crear un usuario (la contraseña la guarda el gateway).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"rol" validate:"required,oneof=admin almacen responsable docente auditor"`
	CareerID *int64 `json:"carrera_id"`
}

// UpdateUserRequest entrada para editar un usuario; password vacío no la cambia.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"rol" validate:"required,oneof=admin almacen responsable docente auditor"`
	CareerID *int64 `json:"carrera_id"`
}

// UserQuery filtros del listado de usuarios.
type UserQuery struct {
	PageRequest
	Role   string `query:"rol" validate:"omitempty,oneof=admin almacen responsable docente auditor"`
	Search string `query:"search"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      string       `json:"rol"`
	CareerID  *int64       `json:"carrera_id"`
	Career    *RefResponse `json:"carrera,omitempty"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Data []UserResponse `json:"data"`
	Page PageResponse   `json:"meta"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido por la consola y el usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // segundos
	User      UserResponse `json:"user"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"password" validate:"required,min=6,nefield=CurrentPassword"`
	Confirmation    string `json:"password_confirmation" validate:"required,eqfield=NewPassword"`
}

// UpdateProfileRequest edición del perfil propio (sin rol ni contraseña).
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	CareerID *int64 `json:"carrera_id"`
}
