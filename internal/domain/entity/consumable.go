package entity

// Consumable insumo con stock que se agota y un umbral de reposición.
// El estado de stock no se guarda: se calcula con inventory.ClassifyStock(Stock, MinStock).
type Consumable struct {
	ID          int64
	Name        string
	Description string
	CategoryID  int64
	Category    *Ref
	Stock       int
	MinStock    int
	Unit        string
}
