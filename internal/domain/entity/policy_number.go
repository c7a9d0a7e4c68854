package entity

import (
	"strings"
	"unicode"

	"github.com/tu-usuario/policy-admin/internal/domain"
)

// PolicyNumber objeto de valor para el número de póliza. Alfanumérico,
// mínimo 5 caracteres tras recortar espacios.
type PolicyNumber struct {
	value string
}

// NewPolicyNumber valida y construye un PolicyNumber.
func NewPolicyNumber(value string) (PolicyNumber, error) {
	if len(strings.TrimSpace(value)) < 5 {
		return PolicyNumber{}, domain.NewValidationError("Policy number must be at least 5 characters long")
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return PolicyNumber{}, domain.NewValidationError("Policy number must be alphanumeric")
		}
	}
	return PolicyNumber{value: value}, nil
}

// String valor del número de póliza.
func (n PolicyNumber) String() string { return n.value }
