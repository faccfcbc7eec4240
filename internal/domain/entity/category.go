package entity

// Ref referencia a una entidad simple (id, nombre) usada solo para mostrar joins:
// categoría, laboratorio, carrera, usuario, item o consumible asociado.
type Ref struct {
	ID   int64
	Name string
}

// RefName devuelve el nombre de la referencia o fallback si no existe.
func RefName(r *Ref, fallback string) string {
	if r == nil || r.Name == "" {
		return fallback
	}
	return r.Name
}

// Category categoría de items y consumibles.
type Category struct {
	ID   int64
	Name string
}

// Laboratory laboratorio donde se ubica un item.
type Laboratory struct {
	ID   int64
	Name string
}

// Career carrera o programa de estudios al que puede pertenecer un usuario.
type Career struct {
	ID   int64
	Name string
}
