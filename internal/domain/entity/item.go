package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un item. Las transiciones son libres: cualquier estado se alcanza desde cualquier otro al editar.
const (
	ItemStateActive         = "activo"
	ItemStateMaintenance    = "mantenimiento"
	ItemStateDecommissioned = "baja"
)

// ItemStates lista los estados válidos en el orden en que se muestran.
var ItemStates = []string{ItemStateActive, ItemStateMaintenance, ItemStateDecommissioned}

// Item equipo durable e inventariable.
type Item struct {
	ID           int64
	Code         string
	Name         string
	Description  string
	CategoryID   int64
	LaboratoryID int64
	Category     *Ref // nil si el gateway no envía el join
	Laboratory   *Ref
	State        string
	Value        decimal.NullDecimal // puede faltar o no ser numérico en origen
	AcquiredAt   *time.Time
	CreatedAt    time.Time
}

// IsValidItemState indica si s es un estado de item conocido.
func IsValidItemState(s string) bool {
	for _, st := range ItemStates {
		if st == s {
			return true
		}
	}
	return false
}
