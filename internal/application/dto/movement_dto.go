package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento.
// Debe indicar exactamente uno de ItemID o ConsumableID.
type CreateMovementRequest struct {
	ItemID       *int64 `json:"item_id"`
	ConsumableID *int64 `json:"consumible_id"`
	Type         string `json:"tipo" validate:"required,oneof=entrada salida mantenimiento baja"`
	Quantity     int    `json:"cantidad" validate:"required,gt=0"`
	Notes        string `json:"observaciones" validate:"omitempty,max=1000"`
}

// MovementQuery filtros del historial.
type MovementQuery struct {
	PageRequest
	Type string `query:"tipo" validate:"omitempty,oneof=entrada salida mantenimiento baja"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID           int64        `json:"id"`
	ItemID       *int64       `json:"item_id"`
	ConsumableID *int64       `json:"consumible_id"`
	Target       string       `json:"objetivo"` // nombre del item o consumible
	Type         string       `json:"tipo"`
	Quantity     int          `json:"cantidad"`
	User         *RefResponse `json:"usuario,omitempty"`
	Notes        string       `json:"observaciones"`
	CreatedAt    time.Time    `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Data []MovementResponse `json:"data"`
	Page PageResponse       `json:"meta"`
}
