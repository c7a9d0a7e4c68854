package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/policy-admin/internal/domain"
	"github.com/tu-usuario/policy-admin/internal/domain/entity"
)

// buildPolicy arma una póliza válida con periodo vigente; los tests ajustan
// los campos que necesitan para cada escenario.
func buildPolicy(t *testing.T, status entity.PolicyStatus, premium float64) *entity.Policy {
	t.Helper()

	number, err := entity.NewPolicyNumber("TMPOL2024001")
	require.NoError(t, err)

	money, err := entity.NewMoney(decimal.NewFromFloat(premium), "GBP")
	require.NoError(t, err)

	now := time.Now()
	period, err := entity.NewPeriod(now.AddDate(0, 0, -30), now.AddDate(0, 0, 335))
	require.NoError(t, err)

	return &entity.Policy{
		PolicyNumber: number,
		InsuredName:  "Acme Manufacturing Ltd",
		Premium:      money,
		Period:       period,
		Status:       status,
		PolicyType:   entity.TypeProperty,
	}
}

func TestPolicyActivate_DesdePending(t *testing.T) {
	p := buildPolicy(t, entity.StatusPending, 12500)

	err := p.Activate()
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, p.Status)
}

func TestPolicyActivate_SoloDesdePending(t *testing.T) {
	for _, status := range []entity.PolicyStatus{entity.StatusActive, entity.StatusInactive, entity.StatusCancelled} {
		p := buildPolicy(t, status, 12500)

		err := p.Activate()
		require.Error(t, err, "activar desde %s debe fallar", status)
		assert.Contains(t, err.Error(), "Only pending policies can be activated")
		assert.Equal(t, status, p.Status, "el estado queda intacto tras el rechazo")
	}
}

func TestPolicyActivate_PeriodoNoVigenteFalla(t *testing.T) {
	p := buildPolicy(t, entity.StatusPending, 12500)

	now := time.Now()
	expired, err := entity.NewPeriod(now.AddDate(-2, 0, 0), now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	p.Period = expired

	err = p.Activate()
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Policy period is not active")
	assert.Equal(t, entity.StatusPending, p.Status)
}

func TestPolicyActivate_PrimaCeroFalla(t *testing.T) {
	p := buildPolicy(t, entity.StatusPending, 0)

	err := p.Activate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Premium must be greater than zero")
	assert.Equal(t, entity.StatusPending, p.Status)
}

func TestPolicyCancel_DesdePendingYActive(t *testing.T) {
	for _, status := range []entity.PolicyStatus{entity.StatusPending, entity.StatusActive} {
		p := buildPolicy(t, status, 12500)

		err := p.Cancel("Non-payment of premium")
		require.NoError(t, err, "cancelar desde %s debe estar permitido", status)
		assert.Equal(t, entity.StatusCancelled, p.Status)
		assert.Equal(t, "Non-payment of premium", p.CancellationReason)
	}
}

func TestPolicyCancel_SinRazonEsValido(t *testing.T) {
	p := buildPolicy(t, entity.StatusActive, 12500)

	err := p.Cancel("")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, p.Status)
	assert.Empty(t, p.CancellationReason)
}

func TestPolicyCancel_EstadoTerminalFalla(t *testing.T) {
	for _, status := range []entity.PolicyStatus{entity.StatusCancelled, entity.StatusInactive} {
		p := buildPolicy(t, status, 12500)

		err := p.Cancel("late attempt")
		require.Error(t, err, "cancelar desde %s debe fallar", status)
		assert.Contains(t, err.Error(), "already cancelled or inactive")
		assert.Equal(t, status, p.Status)
		assert.Empty(t, p.CancellationReason, "la razón no se registra en un intento rechazado")
	}
}

func TestParsePolicyStatus_InsensibleAMayusculas(t *testing.T) {
	status, err := entity.ParsePolicyStatus("PENDING")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, status)

	_, err = entity.ParsePolicyStatus("archived")
	assert.Error(t, err)
}

func TestParsePolicyType_CatalogoFijo(t *testing.T) {
	policyType, err := entity.ParsePolicyType("marine")
	require.NoError(t, err)
	assert.Equal(t, entity.TypeMarine, policyType)

	_, err = entity.ParsePolicyType("Aviation")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
