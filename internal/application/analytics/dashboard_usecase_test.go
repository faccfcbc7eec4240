package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/internal/application/analytics"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository/repositorytest"
)

func TestDashboard_GetSummary(t *testing.T) {
	items := &repositorytest.Items{Data: []*entity.Item{
		{ID: 1, State: "activo", Category: &entity.Ref{ID: 1, Name: "Cómputo"}},
		{ID: 2, State: "activo", Category: &entity.Ref{ID: 1, Name: "Cómputo"}},
		{ID: 3, State: "mantenimiento", Category: &entity.Ref{ID: 2, Name: "Audiovisual"}},
		{ID: 4, State: "baja"},
	}}
	consumables := &repositorytest.Consumables{Data: []*entity.Consumable{
		{ID: 1, Name: "Tóner", Stock: 4, MinStock: 5},
		{ID: 2, Name: "Papel", Stock: 100, MinStock: 10},
		{ID: 3, Name: "Guantes", Stock: 0, MinStock: 20},
	}}
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	movements := &repositorytest.Movements{}
	for i := 0; i < 7; i++ {
		movements.Data = append(movements.Data, &entity.Movement{
			ID: int64(i + 1), Type: "entrada", Quantity: 1, CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	uc := analytics.NewDashboardUseCase(items, consumables, movements)
	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, out.KPIs.TotalItems)
	assert.Equal(t, 2, out.KPIs.ActiveItems)
	assert.Equal(t, 1, out.KPIs.MaintenanceItems)
	assert.Equal(t, 1, out.KPIs.Decommissioned)
	assert.Equal(t, 3, out.KPIs.TotalConsumables)
	assert.Equal(t, 2, out.KPIs.LowStock)
	assert.Equal(t, 7, out.KPIs.TotalMovements)

	require.Len(t, out.ItemsByCategory, 3)
	assert.Equal(t, "-", out.ItemsByCategory[0].Category)

	require.Len(t, out.LatestMovements, 5)
	assert.Equal(t, int64(7), out.LatestMovements[0].ID, "el más reciente primero")

	require.Len(t, out.LowStock, 2)
	assert.Equal(t, "Guantes", out.LowStock[0].Name, "los críticos van primero")
	assert.Equal(t, "CRITICAL", out.LowStock[0].StockStatus)
}

func TestDashboard_ErrorDeUnaFuente(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&repositorytest.Items{},
		&repositorytest.Consumables{Err: domain.ErrUnavailable},
		&repositorytest.Movements{},
	)
	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
