package dto

import "time"

// ItemRequest entrada para crear o editar un item.
// Valor acepta número o string; se normaliza con money.Parse.
type ItemRequest struct {
	Code         string `json:"codigo" validate:"required,max=50"`
	Name         string `json:"nombre" validate:"required,max=200"`
	Description  string `json:"descripcion" validate:"omitempty,max=1000"`
	CategoryID   int64  `json:"categoria_id" validate:"required,gt=0"`
	LaboratoryID int64  `json:"laboratorio_id" validate:"required,gt=0"`
	State        string `json:"estado" validate:"omitempty,oneof=activo mantenimiento baja"`
	Value        any    `json:"valor"`
	AcquiredAt   string `json:"fecha_adquisicion" validate:"omitempty,datetime=2006-01-02"`
}

// ItemQuery filtros del listado de items.
type ItemQuery struct {
	PageRequest
	State      string `query:"estado" validate:"omitempty,oneof=activo mantenimiento baja"`
	Search     string `query:"search"`
	CategoryID int64  `query:"categoria_id"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID           int64        `json:"id"`
	Code         string       `json:"codigo"`
	Name         string       `json:"nombre"`
	Description  string       `json:"descripcion"`
	CategoryID   int64        `json:"categoria_id"`
	LaboratoryID int64        `json:"laboratorio_id"`
	Category     *RefResponse `json:"categoria,omitempty"`
	Laboratory   *RefResponse `json:"laboratorio,omitempty"`
	State        string       `json:"estado"`
	Value        string       `json:"valor"`
	AcquiredAt   *string      `json:"fecha_adquisicion"`
	CreatedAt    *time.Time   `json:"created_at,omitempty"`
}

// ItemListResponse lista paginada de items.
type ItemListResponse struct {
	Data []ItemResponse `json:"data"`
	Page PageResponse   `json:"meta"`
}
