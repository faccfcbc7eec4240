package dto

// DashboardKPIs indicadores de la pantalla principal.
type DashboardKPIs struct {
	TotalItems       int `json:"total_items"`
	ActiveItems      int `json:"items_activos"`
	MaintenanceItems int `json:"items_mantenimiento"`
	Decommissioned   int `json:"items_baja"`
	TotalConsumables int `json:"total_consumibles"`
	LowStock         int `json:"consumibles_stock_bajo"`
	TotalMovements   int `json:"total_movimientos"`
}

// CategoryCount barra del gráfico "items por categoría".
type CategoryCount struct {
	Category string `json:"categoria"`
	Count    int    `json:"cantidad"`
}

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	KPIs            DashboardKPIs        `json:"kpis"`
	ItemsByCategory []CategoryCount      `json:"items_por_categoria"`
	LatestMovements []MovementResponse   `json:"ultimos_movimientos"`
	LowStock        []ConsumableResponse `json:"consumibles_criticos"`
}
