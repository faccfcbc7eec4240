// Package analytics contiene el caso de uso del dashboard de la consola.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/application/report"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/inventory"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

const (
	dashboardLatestMovements = 5 // filas del widget "últimos movimientos"
	dashboardLowStock        = 5 // consumibles en alerta que se muestran
)

// DashboardUseCase arma los KPIs de la pantalla principal.
//
// Fuente de datos: los tres puertos del gateway (lecturas completas, sin caché).
type DashboardUseCase struct {
	items       repository.ItemRepository
	consumables repository.ConsumableRepository
	movements   repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	items repository.ItemRepository,
	consumables repository.ConsumableRepository,
	movements repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{items: items, consumables: consumables, movements: movements}
}

// GetSummary construye el DashboardResponse.
//
// Tres llamadas en paralelo:
//  1. items.ListAll        → KPIs de items + items por categoría
//  2. consumables.ListAll  → consumibles con stock bajo
//  3. movements.ListAll    → total y últimos movimientos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	type itemsResult struct {
		list []*entity.Item
		err  error
	}
	type consumablesResult struct {
		list []*entity.Consumable
		err  error
	}
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}

	itemsCh := make(chan itemsResult, 1)
	consumablesCh := make(chan consumablesResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.items.ListAll(ctx)
		itemsCh <- itemsResult{list, err}
	}()
	go func() {
		list, err := uc.consumables.ListAll(ctx, repository.ConsumableFilter{})
		consumablesCh <- consumablesResult{list, err}
	}()
	go func() {
		list, err := uc.movements.ListAll(ctx)
		movementsCh <- movementsResult{list, err}
	}()

	items := <-itemsCh
	consumables := <-consumablesCh
	movements := <-movementsCh

	if items.err != nil {
		return nil, fmt.Errorf("dashboard: items: %w", items.err)
	}
	if consumables.err != nil {
		return nil, fmt.Errorf("dashboard: consumibles: %w", consumables.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}

	// ── KPIs ──────────────────────────────────────────────────────────────────
	itemSummary := report.SummarizeItems(items.list)
	stockSummary := report.SummarizeConsumables(consumables.list)
	out := &dto.DashboardResponse{
		KPIs: dto.DashboardKPIs{
			TotalItems:       itemSummary.Total,
			ActiveItems:      itemSummary.Value(entity.ItemStateActive),
			MaintenanceItems: itemSummary.Value(entity.ItemStateMaintenance),
			Decommissioned:   itemSummary.Value(entity.ItemStateDecommissioned),
			TotalConsumables: stockSummary.Total,
			LowStock:         stockSummary.Value("bajo"),
			TotalMovements:   len(movements.list),
		},
	}

	// ── Items por categoría ───────────────────────────────────────────────────
	for _, c := range report.CountByCategory(items.list) {
		out.ItemsByCategory = append(out.ItemsByCategory, dto.CategoryCount{Category: c.Name, Count: c.Count})
	}

	// ── Últimos movimientos (más recientes primero) ───────────────────────────
	latest := append([]*entity.Movement(nil), movements.list...)
	sort.SliceStable(latest, func(i, j int) bool { return latest[i].CreatedAt.After(latest[j].CreatedAt) })
	if len(latest) > dashboardLatestMovements {
		latest = latest[:dashboardLatestMovements]
	}
	out.LatestMovements = make([]dto.MovementResponse, 0, len(latest))
	for _, m := range latest {
		out.LatestMovements = append(out.LatestMovements, usecase.ToMovementResponse(m))
	}

	// ── Consumibles en alerta: críticos primero, luego por faltante ───────────
	var alerts []*entity.Consumable
	for _, c := range consumables.list {
		if inventory.ClassifyStock(c.Stock, c.MinStock).IsAlert() {
			alerts = append(alerts, c)
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		ci := inventory.ClassifyStock(alerts[i].Stock, alerts[i].MinStock) == inventory.StockCritical
		cj := inventory.ClassifyStock(alerts[j].Stock, alerts[j].MinStock) == inventory.StockCritical
		if ci != cj {
			return ci
		}
		return alerts[i].MinStock-alerts[i].Stock > alerts[j].MinStock-alerts[j].Stock
	})
	if len(alerts) > dashboardLowStock {
		alerts = alerts[:dashboardLowStock]
	}
	out.LowStock = make([]dto.ConsumableResponse, 0, len(alerts))
	for _, c := range alerts {
		out.LowStock = append(out.LowStock, usecase.ToConsumableResponse(c))
	}

	return out, nil
}
