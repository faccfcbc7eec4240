package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-consola/internal/domain/inventory"
)

func TestClassifyStock_CasosDeReferencia(t *testing.T) {
	cases := []struct {
		stock, minimum int
		want           inventory.StockStatus
	}{
		{0, 10, inventory.StockCritical},
		{5, 10, inventory.StockCritical}, // 5 <= 10*0.5
		{6, 10, inventory.StockLow},
		{10, 10, inventory.StockLow}, // igualdad con el mínimo es LOW
		{11, 10, inventory.StockOK},
		{0, 0, inventory.StockCritical},
		{1, 0, inventory.StockOK},
		{1, 3, inventory.StockCritical}, // 1 <= 1.5
		{2, 3, inventory.StockLow},
		{3, 3, inventory.StockLow},
	}
	for _, tc := range cases {
		got := inventory.ClassifyStock(tc.stock, tc.minimum)
		assert.Equal(t, tc.want, got, "ClassifyStock(%d, %d)", tc.stock, tc.minimum)
	}
}

// La función debe coincidir con la definición para todo el dominio chico.
func TestClassifyStock_Propiedad(t *testing.T) {
	for minimum := 0; minimum <= 40; minimum++ {
		for stock := 0; stock <= 60; stock++ {
			got := inventory.ClassifyStock(stock, minimum)
			switch {
			case float64(stock) <= float64(minimum)*0.5:
				assert.Equal(t, inventory.StockCritical, got)
			case stock <= minimum:
				assert.Equal(t, inventory.StockLow, got)
			default:
				assert.Equal(t, inventory.StockOK, got)
			}
		}
	}
}

func TestStockStatus_MatchesFilter(t *testing.T) {
	assert.True(t, inventory.StockCritical.MatchesFilter("bajo"), "bajo incluye críticos")
	assert.True(t, inventory.StockLow.MatchesFilter("bajo"))
	assert.False(t, inventory.StockOK.MatchesFilter("bajo"))
	assert.True(t, inventory.StockCritical.MatchesFilter("critico"))
	assert.False(t, inventory.StockLow.MatchesFilter("critico"))
	assert.True(t, inventory.StockOK.MatchesFilter("normal"))
	assert.True(t, inventory.StockOK.MatchesFilter(""))
	assert.False(t, inventory.StockOK.MatchesFilter("otro"))
}

func TestStockStatus_Etiquetas(t *testing.T) {
	assert.Equal(t, "CRÍTICO", inventory.StockCritical.Label())
	assert.Equal(t, "BAJO", inventory.StockLow.Label())
	assert.Equal(t, "OK", inventory.StockOK.Label())
	assert.Equal(t, "normal", inventory.StockOK.Key())
	assert.True(t, inventory.StockLow.IsAlert())
	assert.False(t, inventory.StockOK.IsAlert())
}
