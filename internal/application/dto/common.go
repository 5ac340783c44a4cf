package dto

// PageResponse metadatos de página en respuestas de listados.
type PageResponse struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
