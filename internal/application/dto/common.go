package dto

// PageRequest paginación de listados (?page=&per_page=).
type PageRequest struct {
	Page    int `query:"page" validate:"omitempty,min=1"`
	PerPage int `query:"per_page" validate:"omitempty,min=1,max=100"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// RefResponse referencia (id, nombre) para joins de presentación.
type RefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// MessageResponse respuesta simple con un mensaje para el usuario.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
