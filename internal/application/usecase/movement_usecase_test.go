package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository/repositorytest"
)

func ptr(v int64) *int64 { return &v }

func TestMovementUseCase_Create_ExactamenteUnObjetivo(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		in      dto.CreateMovementRequest
		wantErr bool
	}{
		{"solo item", dto.CreateMovementRequest{ItemID: ptr(1), Type: "salida", Quantity: 1}, false},
		{"solo consumible", dto.CreateMovementRequest{ConsumableID: ptr(2), Type: "entrada", Quantity: 5}, false},
		{"ambos", dto.CreateMovementRequest{ItemID: ptr(1), ConsumableID: ptr(2), Type: "salida", Quantity: 1}, true},
		{"ninguno", dto.CreateMovementRequest{Type: "salida", Quantity: 1}, true},
		{"cantidad cero", dto.CreateMovementRequest{ItemID: ptr(1), Type: "salida", Quantity: 0}, true},
		{"tipo inválido", dto.CreateMovementRequest{ItemID: ptr(1), Type: "prestamo", Quantity: 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &repositorytest.Movements{}
			uc := usecase.NewMovementUseCase(repo)
			out, err := uc.Create(ctx, 7, tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Zero(t, repo.Created, "no se llama al gateway")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, repo.Created)
			assert.Equal(t, tc.in.Type, out.Type)
			require.NotNil(t, repo.Data[0].UserID)
			assert.Equal(t, int64(7), *repo.Data[0].UserID)
		})
	}
}

func TestMovementUseCase_List_FiltroTipo(t *testing.T) {
	repo := &repositorytest.Movements{}
	uc := usecase.NewMovementUseCase(repo)
	ctx := context.Background()
	_, err := uc.Create(ctx, 1, dto.CreateMovementRequest{ItemID: ptr(1), Type: "baja", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Create(ctx, 1, dto.CreateMovementRequest{ConsumableID: ptr(1), Type: "salida", Quantity: 3})
	require.NoError(t, err)

	out, err := uc.List(ctx, dto.MovementQuery{Type: "baja"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "baja", out.Data[0].Type)
	assert.Equal(t, "-", out.Data[0].Target)
}
