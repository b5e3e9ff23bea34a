package dto

// ErrorResponse cuerpo de error HTTP. Error siempre presente; Code identifica la categoría.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SuccessResponse confirmación simple (PUT /inventory/{id}).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
