package repository

import "github.com/tu-usuario/policy-admin/internal/domain/entity"

// PolicyRepository define el puerto de persistencia para Policy.
// Las ausencias se reportan como (nil, nil); el llamador decide el mapeo.
type PolicyRepository interface {
	Add(policy *entity.Policy) (*entity.Policy, error)
	Update(policy *entity.Policy) (*entity.Policy, error)
	GetByID(id int64) (*entity.Policy, error)
	GetByNumber(policyNumber string) (*entity.Policy, error)
	List() ([]*entity.Policy, error)
}
