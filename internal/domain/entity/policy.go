package entity

import (
	"strings"
	"time"

	"github.com/tu-usuario/policy-admin/internal/domain"
)

// PolicyStatus estado del ciclo de vida de una póliza.
type PolicyStatus string

const (
	StatusPending   PolicyStatus = "pending"
	StatusActive    PolicyStatus = "active"
	StatusInactive  PolicyStatus = "inactive"
	StatusCancelled PolicyStatus = "cancelled"
)

// PolicyStatuses catálogo fijo de estados, en el orden en que se siembran.
var PolicyStatuses = []PolicyStatus{StatusActive, StatusPending, StatusInactive, StatusCancelled}

// ParsePolicyStatus resuelve un estado desde su nombre (insensible a mayúsculas).
func ParsePolicyStatus(name string) (PolicyStatus, error) {
	switch PolicyStatus(strings.ToLower(name)) {
	case StatusPending:
		return StatusPending, nil
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", domain.NewValidationError("Invalid policy status: " + name)
}

// PolicyType ramo de la póliza. Catálogo fijo, sin transiciones.
type PolicyType string

const (
	TypeProperty     PolicyType = "Property"
	TypeCasualty     PolicyType = "Casualty"
	TypeMarine       PolicyType = "Marine"
	TypeConstruction PolicyType = "Construction"
)

// PolicyTypes catálogo fijo de ramos, en el orden en que se siembran.
var PolicyTypes = []PolicyType{TypeProperty, TypeCasualty, TypeMarine, TypeConstruction}

// ParsePolicyType resuelve un ramo desde su nombre (insensible a mayúsculas).
func ParsePolicyType(name string) (PolicyType, error) {
	switch strings.ToLower(name) {
	case "property":
		return TypeProperty, nil
	case "casualty":
		return TypeCasualty, nil
	case "marine":
		return TypeMarine, nil
	case "construction":
		return TypeConstruction, nil
	}
	return "", domain.NewValidationError("Invalid policy type: " + name)
}

// Policy raíz de agregado: una póliza de seguro con número único, asegurado,
// prima, periodo de cobertura, estado y ramo. El ID lo asigna el storage
// (0 mientras no esté persistida). Nunca se borra físicamente: cancelar es un
// cambio de estado, no una eliminación.
type Policy struct {
	ID                 int64
	PolicyNumber       PolicyNumber
	InsuredName        string
	Premium            Money
	Period             Period
	Status             PolicyStatus
	PolicyType         PolicyType
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Activate activa la póliza si cumple los criterios. Solo permitida desde
// pending, con el periodo vigente y prima mayor que cero. Ante cualquier
// violación el estado queda intacto.
func (p *Policy) Activate() error {
	if p.Status != StatusPending {
		return domain.NewValidationError("Only pending policies can be activated")
	}
	if !p.Period.IsActive() {
		return domain.NewValidationError("Policy period is not active")
	}
	if !p.Premium.IsPositive() {
		return domain.NewValidationError("Premium must be greater than zero to activate policy")
	}
	p.Status = StatusActive
	return nil
}

// Cancel cancela la póliza con una razón opcional. Permitida desde pending o
// active; una póliza cancelled o inactive no admite más transiciones.
func (p *Policy) Cancel(reason string) error {
	if p.Status == StatusCancelled || p.Status == StatusInactive {
		return domain.NewValidationError("Policy is already cancelled or inactive")
	}
	p.Status = StatusCancelled
	p.CancellationReason = reason
	return nil
}

// Equal igualdad estructural (todos los atributos del agregado).
func (p *Policy) Equal(other *Policy) bool {
	if other == nil {
		return false
	}
	return p.ID == other.ID &&
		p.PolicyNumber == other.PolicyNumber &&
		p.InsuredName == other.InsuredName &&
		p.Premium.Equal(other.Premium) &&
		p.Period == other.Period &&
		p.Status == other.Status &&
		p.PolicyType == other.PolicyType
}
