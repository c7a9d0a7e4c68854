package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/policy-admin/internal/domain/entity"
	"github.com/tu-usuario/policy-admin/internal/infrastructure/memory"
	"github.com/tu-usuario/policy-admin/internal/infrastructure/seed"
	"github.com/tu-usuario/policy-admin/pkg/logger"
)

func TestLoad_SiembraElPortafolioCompleto(t *testing.T) {
	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	require.NoError(t, seed.Load(store, log))

	policies, err := store.List()
	require.NoError(t, err)
	assert.Len(t, policies, 13)

	// El portafolio cubre los cuatro estados del catálogo
	byStatus := map[entity.PolicyStatus]int{}
	for _, p := range policies {
		byStatus[p.Status]++
	}
	assert.Equal(t, 5, byStatus[entity.StatusActive])
	assert.Equal(t, 4, byStatus[entity.StatusPending])
	assert.Equal(t, 2, byStatus[entity.StatusInactive], "inactive solo existe vía siembra")
	assert.Equal(t, 2, byStatus[entity.StatusCancelled])
}

func TestLoad_EsIdempotente(t *testing.T) {
	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	require.NoError(t, seed.Load(store, log))
	require.NoError(t, seed.Load(store, log), "la segunda pasada salta lo existente")

	policies, err := store.List()
	require.NoError(t, err)
	assert.Len(t, policies, 13)
}

func TestLoad_LasPendientesSonActivables(t *testing.T) {
	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	require.NoError(t, seed.Load(store, log))

	// Las pendientes con periodo futuro aún no se pueden activar; las
	// expiradas quedaron inactive y tampoco. Solo verificamos una conocida.
	p, err := store.GetByNumber("TMMAR2024001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.StatusPending, p.Status)
	assert.False(t, p.Period.IsActive(), "su periodo arranca en el futuro")
}
