package dto

// ErrorResponse cuerpo de error HTTP. Detail es el mensaje legible que el
// dominio produjo; Code es una etiqueta estable para los clientes.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// HealthResponse respuesta del probe de liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
