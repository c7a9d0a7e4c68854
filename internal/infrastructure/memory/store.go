package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/policy-admin/internal/application/usecase"
	"github.com/tu-usuario/policy-admin/internal/domain"
	"github.com/tu-usuario/policy-admin/internal/domain/entity"
	"github.com/tu-usuario/policy-admin/internal/domain/repository"
)

var (
	_ repository.PolicyRepository = (*Store)(nil)
	_ usecase.TxRunner            = (*Store)(nil)
)

// Store implementación en memoria del repositorio de pólizas. Es el storage
// por defecto cuando no hay DATABASE_URL y el doble de pruebas de los casos
// de uso. Favorece claridad sobre rendimiento.
type Store struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	policies map[string]entity.Policy // por número de póliza
	order    []string                 // orden de inserción, para List estable
	nextID   int64
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		policies: make(map[string]entity.Policy),
		nextID:   1,
	}
}

// Run serializa las escrituras para emular la transacción por petición del
// adaptador relacional. Los casos de uso mutan con un único Add/Update tras
// sus chequeos, así que no hay escrituras parciales que revertir.
func (s *Store) Run(_ context.Context, fn func(repo repository.PolicyRepository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s)
}

// Add persiste una nueva póliza y le asigna identidad.
func (s *Store) Add(policy *entity.Policy) (*entity.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := policy.PolicyNumber.String()
	if _, ok := s.policies[number]; ok {
		return nil, domain.ErrDuplicate
	}

	stored := *policy
	stored.ID = s.nextID
	s.nextID++
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.policies[number] = stored
	s.order = append(s.order, number)

	out := stored
	return &out, nil
}

// Update reemplaza una póliza existente (por número).
func (s *Store) Update(policy *entity.Policy) (*entity.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := policy.PolicyNumber.String()
	current, ok := s.policies[number]
	if !ok {
		return nil, domain.ErrNotFound
	}

	stored := *policy
	stored.ID = current.ID
	stored.CreatedAt = current.CreatedAt
	stored.UpdatedAt = time.Now()
	s.policies[number] = stored

	out := stored
	return &out, nil
}

// GetByID busca por identidad de storage. (nil, nil) si no existe.
func (s *Store) GetByID(id int64) (*entity.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, number := range s.order {
		if p := s.policies[number]; p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

// GetByNumber busca por número de póliza. (nil, nil) si no existe.
func (s *Store) GetByNumber(policyNumber string) (*entity.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.policies[policyNumber]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

// List devuelve todas las pólizas en orden de inserción.
func (s *Store) List() ([]*entity.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Policy, 0, len(s.order))
	for _, number := range s.order {
		p := s.policies[number]
		out = append(out, &p)
	}
	return out, nil
}
