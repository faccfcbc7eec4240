package dto

// ConsumableRequest entrada para crear o editar un consumible.
type ConsumableRequest struct {
	Name        string `json:"nombre" validate:"required,max=200"`
	Description string `json:"descripcion" validate:"omitempty,max=1000"`
	CategoryID  int64  `json:"categoria_id" validate:"required,gt=0"`
	Stock       int    `json:"stock" validate:"min=0"`
	MinStock    int    `json:"stock_minimo" validate:"min=0"`
	Unit        string `json:"unidad_medida" validate:"omitempty,max=50"`
}

// ConsumableQuery filtros del listado de consumibles.
type ConsumableQuery struct {
	PageRequest
	Search      string `query:"search"`
	CategoryID  int64  `query:"categoria_id"`
	StockStatus string `query:"stock_status" validate:"omitempty,oneof=normal bajo critico"`
}

// ConsumableResponse salida de un consumible con su estado de stock calculado.
type ConsumableResponse struct {
	ID          int64        `json:"id"`
	Name        string       `json:"nombre"`
	Description string       `json:"descripcion"`
	CategoryID  int64        `json:"categoria_id"`
	Category    *RefResponse `json:"categoria,omitempty"`
	Stock       int          `json:"stock"`
	MinStock    int          `json:"stock_minimo"`
	Unit        string       `json:"unidad_medida"`
	StockStatus string       `json:"estado_stock"`       // OK | LOW | CRITICAL
	StockLabel  string       `json:"estado_stock_label"` // OK | BAJO | CRÍTICO
}

// ConsumableListResponse lista paginada; LowStock cuenta LOW+CRITICAL del conjunto filtrado.
type ConsumableListResponse struct {
	Data     []ConsumableResponse `json:"data"`
	Page     PageResponse         `json:"meta"`
	LowStock int                  `json:"stock_bajo"`
}
