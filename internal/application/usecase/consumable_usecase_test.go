package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository/repositorytest"
)

func consumablesFixture() *repositorytest.Consumables {
	return &repositorytest.Consumables{Data: []*entity.Consumable{
		{ID: 1, Name: "Papel", Stock: 50, MinStock: 10},
		{ID: 2, Name: "Tóner", Stock: 8, MinStock: 10},    // bajo
		{ID: 3, Name: "Alcohol", Stock: 2, MinStock: 10},  // crítico
		{ID: 4, Name: "Guantes", Stock: 10, MinStock: 10}, // bajo (igual al mínimo)
	}}
}

func TestConsumableUseCase_List_FiltroEstado(t *testing.T) {
	uc := usecase.NewConsumableUseCase(consumablesFixture())
	ctx := context.Background()

	cases := []struct {
		filter string
		want   []int64
	}{
		{"", []int64{1, 2, 3, 4}},
		{"bajo", []int64{2, 3, 4}},
		{"critico", []int64{3}},
		{"normal", []int64{1}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("filtro=%q", tc.filter), func(t *testing.T) {
			out, err := uc.List(ctx, dto.ConsumableQuery{StockStatus: tc.filter})
			require.NoError(t, err)
			ids := make([]int64, 0, len(out.Data))
			for _, c := range out.Data {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tc.want, ids)
			assert.Equal(t, 3, out.LowStock)
		})
	}
}

func TestConsumableUseCase_List_AnotaEstado(t *testing.T) {
	uc := usecase.NewConsumableUseCase(consumablesFixture())
	out, err := uc.List(context.Background(), dto.ConsumableQuery{})
	require.NoError(t, err)
	got := map[int64]string{}
	for _, c := range out.Data {
		got[c.ID] = c.StockLabel
	}
	assert.Equal(t, map[int64]string{1: "OK", 2: "BAJO", 3: "CRÍTICO", 4: "BAJO"}, got)
}

func TestConsumableUseCase_List_PaginacionLocal(t *testing.T) {
	uc := usecase.NewConsumableUseCase(consumablesFixture())
	out, err := uc.List(context.Background(), dto.ConsumableQuery{PageRequest: dto.PageRequest{Page: 2, PerPage: 3}})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, int64(4), out.Data[0].ID)
	assert.Equal(t, dto.PageResponse{CurrentPage: 2, LastPage: 2, PerPage: 3, Total: 4}, out.Page)
}

func TestPaginate_FueraDeRango(t *testing.T) {
	rows, page := usecase.Paginate([]int{1, 2, 3}, repository.Paging{Page: 5, PerPage: 2})
	assert.Empty(t, rows)
	assert.Equal(t, 2, page.LastPage)
	assert.Equal(t, 3, page.Total)

	rows, page = usecase.Paginate([]int(nil), repository.Paging{})
	assert.Empty(t, rows)
	assert.Equal(t, 1, page.LastPage)
	assert.Equal(t, repository.DefaultPerPage, page.PerPage)
}

func TestPaginate_PaginaEnorme(t *testing.T) {
	rows, page := usecase.Paginate([]int{1, 2, 3}, repository.Paging{Page: 1 << 62, PerPage: 4})
	assert.Empty(t, rows)
	assert.Equal(t, 1<<62, page.CurrentPage)
	assert.Equal(t, 3, page.Total)
}

func TestConsumableUseCase_List_PaginaEnorme(t *testing.T) {
	uc := usecase.NewConsumableUseCase(consumablesFixture())
	out, err := uc.List(context.Background(), dto.ConsumableQuery{PageRequest: dto.PageRequest{Page: 1 << 62, PerPage: 4}})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.Equal(t, 4, out.Page.Total)
}

func TestConsumableUseCase_Create(t *testing.T) {
	repo := &repositorytest.Consumables{}
	uc := usecase.NewConsumableUseCase(repo)

	out, err := uc.Create(context.Background(), dto.ConsumableRequest{Name: "Tiza", CategoryID: 3, Stock: 1, MinStock: 4, Unit: "caja"})
	require.NoError(t, err)
	assert.Equal(t, "CRITICAL", out.StockStatus)
	assert.Len(t, repo.Data, 1)

	_, err = uc.Create(context.Background(), dto.ConsumableRequest{Name: "Tiza", CategoryID: 3, Stock: -1})
	assert.Error(t, err)
	assert.Len(t, repo.Data, 1)
}
