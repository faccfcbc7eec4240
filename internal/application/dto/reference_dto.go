package dto

// ReferenceListResponse catálogo (categorías, laboratorios o carreras).
type ReferenceListResponse struct {
	Data []RefResponse `json:"data"`
}
