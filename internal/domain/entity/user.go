package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleWarehouse   = "almacen"
	RoleResponsible = "responsable"
	RoleInstructor  = "docente"
	RoleAuditor     = "auditor"
)

// Roles lista los roles válidos.
var Roles = []string{RoleAdmin, RoleWarehouse, RoleResponsible, RoleInstructor, RoleAuditor}

// User usuario de la consola.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	CareerID  *int64
	Career    *Ref
	CreatedAt time.Time
}

// IsValidRole indica si r es un rol conocido.
func IsValidRole(r string) bool {
	for _, role := range Roles {
		if role == r {
			return true
		}
	}
	return false
}
