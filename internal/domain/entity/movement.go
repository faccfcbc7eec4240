package entity

import "time"

// Tipos de movimiento.
const (
	MovementTypeInbound     = "entrada"
	MovementTypeOutbound    = "salida"
	MovementTypeMaintenance = "mantenimiento"
	MovementTypeDisposal    = "baja"
)

// MovementTypes lista los tipos válidos en el orden en que se muestran.
var MovementTypes = []string{
	MovementTypeInbound, MovementTypeOutbound, MovementTypeMaintenance, MovementTypeDisposal,
}

// Movement registro de un cambio sobre un item o un consumible (nunca ambos).
// Crear un movimiento no modifica el stock en esta capa; eso lo resuelve el servidor de datos.
type Movement struct {
	ID           int64
	ItemID       *int64
	ConsumableID *int64
	Item         *Ref
	Consumable   *Ref
	Type         string
	Quantity     int
	UserID       *int64
	User         *Ref
	Notes        string
	CreatedAt    time.Time
}

// TargetName nombre del item o consumible asociado; fallback si no hay join.
func (m *Movement) TargetName(fallback string) string {
	if m.Item != nil && m.Item.Name != "" {
		return m.Item.Name
	}
	if m.Consumable != nil && m.Consumable.Name != "" {
		return m.Consumable.Name
	}
	return fallback
}

// IsValidMovementType indica si t es un tipo de movimiento conocido.
func IsValidMovementType(t string) bool {
	for _, mt := range MovementTypes {
		if mt == t {
			return true
		}
	}
	return false
}
