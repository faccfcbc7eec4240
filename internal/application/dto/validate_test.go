package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain"
)

func TestValidate_ItemRequest(t *testing.T) {
	err := dto.Validate(dto.ItemRequest{Name: "Microscopio", CategoryID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "codigo")
	assert.Contains(t, err.Error(), "laboratorio_id")

	ok := dto.ItemRequest{Code: "M-1", Name: "Microscopio", CategoryID: 1, LaboratoryID: 2}
	assert.NoError(t, dto.Validate(ok))

	ok.State = "perdido"
	assert.ErrorContains(t, dto.Validate(ok), "estado")
}

func TestValidate_ChangePassword(t *testing.T) {
	err := dto.Validate(dto.ChangePasswordRequest{CurrentPassword: "viejo123", NewPassword: "nuevo123", Confirmation: "otro"})
	assert.ErrorContains(t, err, "password_confirmation")

	err = dto.Validate(dto.ChangePasswordRequest{CurrentPassword: "viejo123", NewPassword: "viejo123", Confirmation: "viejo123"})
	assert.ErrorContains(t, err, "password")

	assert.NoError(t, dto.Validate(dto.ChangePasswordRequest{CurrentPassword: "viejo123", NewPassword: "nuevo123", Confirmation: "nuevo123"}))
}

func TestValidate_Movement(t *testing.T) {
	err := dto.Validate(dto.CreateMovementRequest{Type: "regalo", Quantity: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo")
	assert.Contains(t, err.Error(), "cantidad")
}
