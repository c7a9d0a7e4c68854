package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/policy-admin/internal/application/dto"
	"github.com/tu-usuario/policy-admin/internal/application/usecase"
	"github.com/tu-usuario/policy-admin/internal/domain"
	"github.com/tu-usuario/policy-admin/internal/domain/entity"
	"github.com/tu-usuario/policy-admin/internal/infrastructure/memory"
	"github.com/tu-usuario/policy-admin/pkg/logger"
)

func newTestUseCase() *usecase.PolicyUseCase {
	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return usecase.NewPolicyUseCase(store, store, log, nil)
}

// createRequest arma un request válido con un periodo que cubre hoy, para que
// los escenarios de activación no dependan del calendario.
func createRequest(policyNumber string) dto.CreatePolicyRequest {
	now := time.Now()
	return dto.CreatePolicyRequest{
		PolicyNumber:    policyNumber,
		InsuredName:     "Test Insured Ltd",
		PremiumAmount:   decimal.NewFromInt(1000),
		PremiumCurrency: "GBP",
		PeriodStartDate: now.AddDate(0, 0, -30).Format("2006-01-02"),
		PeriodEndDate:   now.AddDate(0, 0, 335).Format("2006-01-02"),
	}
}

func TestCreate_AsignaIDYDefaults(t *testing.T) {
	uc := newTestUseCase()

	created, err := uc.Create(context.Background(), createRequest("TESTPOL01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID, "el storage asigna IDs desde 1")
	assert.Equal(t, entity.StatusPending, created.Status, "sin estado explícito la póliza nace pending")
	assert.Equal(t, entity.TypeProperty, created.PolicyType, "Property es el ramo por defecto")
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreate_NumeroDuplicadoFalla(t *testing.T) {
	uc := newTestUseCase()

	first, err := uc.Create(context.Background(), createRequest("TESTPOL01"))
	require.NoError(t, err)

	second := createRequest("TESTPOL01")
	second.InsuredName = "Impostor Ltd"
	_, err = uc.Create(context.Background(), second)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Policy number already exists")

	// La primera póliza queda intacta
	got, err := uc.Get("TESTPOL01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, first.Equal(got))
}

func TestCreate_FechaMalFormadaFalla(t *testing.T) {
	uc := newTestUseCase()

	in := createRequest("TESTPOL01")
	in.PeriodStartDate = "15/01/2024"
	_, err := uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid period_start_date")
}

func TestCreate_MonedaPorDefectoGBP(t *testing.T) {
	uc := newTestUseCase()

	in := createRequest("TESTPOL01")
	in.PremiumCurrency = ""
	created, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCurrency, created.Premium.Currency())
}

func TestActivate_FlujoCompleto(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Create(context.Background(), createRequest("TESTPOL01"))
	require.NoError(t, err)

	updated, err := uc.Activate(context.Background(), "TESTPOL01")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, updated.Status)

	// El cambio persiste en el storage
	got, err := uc.Get("TESTPOL01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.StatusActive, got.Status)
}

func TestActivate_NoExistenteDevuelveNotFound(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Activate(context.Background(), "NONEXIST999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivate_NoPendingFalla(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Create(context.Background(), createRequest("TESTPOL01"))
	require.NoError(t, err)
	_, err = uc.Activate(context.Background(), "TESTPOL01")
	require.NoError(t, err)

	_, err = uc.Activate(context.Background(), "TESTPOL01")
	require.Error(t, err, "la segunda activación debe fallar")
	assert.Contains(t, err.Error(), "Only pending policies can be activated")
}

func TestCancel_PersisteLaRazon(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Create(context.Background(), createRequest("TESTPOL01"))
	require.NoError(t, err)

	updated, err := uc.Cancel(context.Background(), "TESTPOL01", "Non-payment of premium")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, updated.Status)
	assert.Equal(t, "Non-payment of premium", updated.CancellationReason)

	got, err := uc.Get("TESTPOL01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Non-payment of premium", got.CancellationReason)
}

func TestCancel_YaCanceladaFalla(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Create(context.Background(), createRequest("TESTPOL01"))
	require.NoError(t, err)
	_, err = uc.Cancel(context.Background(), "TESTPOL01", "")
	require.NoError(t, err)

	_, err = uc.Cancel(context.Background(), "TESTPOL01", "again")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCancel_NoExistenteDevuelveNotFound(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Cancel(context.Background(), "NONEXIST999", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_AusenciaEsNilNil(t *testing.T) {
	uc := newTestUseCase()

	got, err := uc.Get("NONEXIST999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestList_CreceConCadaCreacion(t *testing.T) {
	uc := newTestUseCase()

	policies, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, policies, 0)

	_, err = uc.Create(context.Background(), createRequest("TESTPOL01"))
	require.NoError(t, err)
	policies, err = uc.List()
	require.NoError(t, err)
	assert.Len(t, policies, 1)

	_, err = uc.Create(context.Background(), createRequest("TESTPOL02"))
	require.NoError(t, err)
	policies, err = uc.List()
	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, "TESTPOL01", policies[0].PolicyNumber.String(), "el orden de inserción se conserva")
	assert.Equal(t, "TESTPOL02", policies[1].PolicyNumber.String())
}
