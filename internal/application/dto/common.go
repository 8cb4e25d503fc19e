package dto

// ErrorResponse cuerpo de error HTTP. Code es la categoría legible por máquina.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
