package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound  = errors.New("policy not found")
	ErrDuplicate = errors.New("duplicate resource")
	// ErrDataIntegrity indica una fila de referencia ausente (status/type sin
	// registro en su tabla de lookup). No debería ocurrir con los catálogos fijos.
	ErrDataIntegrity = errors.New("data integrity violation")
)

// ValidationError error de validación de dominio. El mensaje es el detalle
// que el transporte expone al cliente (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError construye un error de validación con el detalle dado.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reporta si err es (o envuelve) un ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
