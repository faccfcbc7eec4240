package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository/repositorytest"
)

func TestUserUseCase_Create(t *testing.T) {
	repo := &repositorytest.Users{}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateUserRequest{Name: "Luis", Email: " Luis@Inst.edu.pe ", Password: "secreto1", Role: "docente"})
	require.NoError(t, err)
	assert.Equal(t, "luis@inst.edu.pe", out.Email)
	assert.Equal(t, "secreto1", repo.Passwords[out.ID])

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "Sin clave", Email: "x@inst.edu.pe", Role: "docente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "Luis 2", Email: "luis@inst.edu.pe", Password: "secreto1", Role: "docente"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserUseCase_Update_SinPasswordConservaLaActual(t *testing.T) {
	repo := &repositorytest.Users{}
	id := repo.Add(&entity.User{Name: "Ana", Email: "ana@inst.edu.pe", Role: "almacen"}, "clave123")
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), id, dto.UpdateUserRequest{Name: "Ana María", Email: "ana@inst.edu.pe", Role: "responsable"})
	require.NoError(t, err)
	assert.Equal(t, "responsable", out.Role)
	assert.Equal(t, "clave123", repo.Passwords[id])
}

func TestUserUseCase_Delete_NoPropiaCuenta(t *testing.T) {
	repo := &repositorytest.Users{}
	id := repo.Add(&entity.User{Name: "Admin", Email: "admin@inst.edu.pe", Role: "admin"}, "clave123")
	uc := usecase.NewUserUseCase(repo)

	assert.ErrorIs(t, uc.Delete(context.Background(), id, id), domain.ErrConflict)
	assert.ErrorIs(t, uc.Delete(context.Background(), id, 999), domain.ErrNotFound)
}

func TestUserUseCase_UpdateProfile_ConservaRol(t *testing.T) {
	repo := &repositorytest.Users{}
	id := repo.Add(&entity.User{Name: "Rosa", Email: "rosa@inst.edu.pe", Role: "auditor"}, "clave123")
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.UpdateProfile(context.Background(), id, dto.UpdateProfileRequest{Name: "Rosa P.", Email: "rosa.p@inst.edu.pe"})
	require.NoError(t, err)
	assert.Equal(t, "auditor", out.Role)
	assert.Equal(t, "Rosa P.", out.Name)
}
