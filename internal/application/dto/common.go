package dto

// PageResponse metadatos de página en respuestas de listados.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP: código estable para el front y mensaje
// legible para el usuario.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
