package dto

// CounterResponse contador de un resumen de reporte.
type CounterResponse struct {
	Key   string `json:"clave"`
	Label string `json:"etiqueta"`
	Value int    `json:"valor"`
}

// StatsResponse estadísticas de una entidad (mismo resumen que encabeza los PDF).
type StatsResponse struct {
	Entity   string            `json:"entidad"`
	Total    int               `json:"total"`
	Counters []CounterResponse `json:"contadores"`
}
