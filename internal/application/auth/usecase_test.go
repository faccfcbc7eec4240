package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/internal/application/auth"
	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository/repositorytest"
	"github.com/jhoicas/Inventario-consola/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

func newAuth(t *testing.T) (*auth.AuthUseCase, *repositorytest.Users, int64) {
	t.Helper()
	users := &repositorytest.Users{}
	id := users.Add(&entity.User{Name: "Ana", Email: "ana@inst.edu.pe", Role: entity.RoleWarehouse}, "clave123")
	uc := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"})
	return uc, users, id
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc, _, id := newAuth(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@inst.edu.pe", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, 3600, out.ExpiresIn)
	assert.Equal(t, id, out.User.ID)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, entity.RoleWarehouse, claims.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := newAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@inst.edu.pe", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "no-es-email", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	uc, users, id := newAuth(t)
	ctx := context.Background()

	err := uc.ChangePassword(ctx, id, dto.ChangePasswordRequest{CurrentPassword: "mala", NewPassword: "nueva123", Confirmation: "nueva123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.ChangePassword(ctx, id, dto.ChangePasswordRequest{CurrentPassword: "clave123", NewPassword: "nueva123", Confirmation: "nueva123"})
	require.NoError(t, err)
	assert.Equal(t, "nueva123", users.Passwords[id])
}
