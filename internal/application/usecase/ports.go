package usecase

import (
	"context"

	"github.com/tu-usuario/policy-admin/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del storage, pasando
// un repositorio atado a esa transacción. Garantiza que toda escritura
// multi-paso (resolución de lookups + insert/update) sea atómica: un fallo en
// cualquier paso descarta la operación completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.PolicyRepository) error) error
}
