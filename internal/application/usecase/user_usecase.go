package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

// UserUseCase administración de usuarios y perfil propio.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto del gateway.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios filtrando por rol y búsqueda.
func (uc *UserUseCase) List(ctx context.Context, q dto.UserQuery) (*dto.UserListResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, repository.UserFilter{
		Role:   q.Role,
		Search: strings.TrimSpace(q.Search),
		Paging: paging(q.PageRequest),
	})
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Data: make([]dto.UserResponse, 0, len(page.Items)), Page: toPage(page)}
	for _, u := range page.Items {
		out.Data = append(out.Data, ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// Create crea un usuario; la contraseña es obligatoria.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	u := &entity.User{Name: in.Name, Email: in.Email, Role: in.Role, CareerID: in.CareerID}
	if err := uc.repo.Create(ctx, u, in.Password); err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// Update edita un usuario; password vacío conserva la actual.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	u := &entity.User{ID: id, Name: in.Name, Email: in.Email, Role: in.Role, CareerID: in.CareerID}
	if err := uc.repo.Update(ctx, u, in.Password); err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// Delete elimina un usuario. Un administrador no puede eliminar su propia cuenta.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

// Profile perfil del usuario autenticado.
func (uc *UserUseCase) Profile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	return uc.GetByID(ctx, userID)
}

// UpdateProfile edita nombre, email y carrera propios; el rol no cambia.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID int64, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	current.Name = in.Name
	current.Email = in.Email
	current.CareerID = in.CareerID
	current.Career = nil
	if err := uc.repo.Update(ctx, current, ""); err != nil {
		return nil, err
	}
	out := ToUserResponse(current)
	return &out, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
