package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/policy-admin/internal/domain"
	"github.com/tu-usuario/policy-admin/internal/domain/entity"
	"github.com/tu-usuario/policy-admin/internal/domain/repository"
)

var _ repository.PolicyRepository = (*PolicyRepo)(nil)

// PolicyRepo implementación de PolicyRepository sobre PostgreSQL (usable con
// pool o tx). Traduce entre el agregado y las tres tablas normalizadas:
// policies más los lookups policy_statuses y policy_types.
type PolicyRepo struct {
	q Querier
}

// NewPolicyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPolicyRepository(q Querier) *PolicyRepo {
	return &PolicyRepo{q: q}
}

const policySelect = `
	SELECT p.id, p.policy_number, p.insured_name,
	       p.premium_amount, p.premium_currency,
	       p.period_start_date, p.period_end_date,
	       s.name, t.name,
	       COALESCE(p.cancellation_reason, ''),
	       p.created_at, p.updated_at
	FROM policies p
	JOIN policy_statuses s ON s.id = p.status_id
	JOIN policy_types t ON t.id = p.type_id`

// Add persiste una nueva póliza. Resuelve status y type por nombre contra sus
// tablas de referencia en cada escritura (sin caché).
func (r *PolicyRepo) Add(policy *entity.Policy) (*entity.Policy, error) {
	statusID, err := r.statusID(policy.Status)
	if err != nil {
		return nil, err
	}
	typeID, err := r.typeID(policy.PolicyType)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO policies (policy_number, insured_name, premium_amount, premium_currency,
			period_start_date, period_end_date, status_id, type_id, cancellation_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		RETURNING id, created_at, updated_at`
	stored := *policy
	err = r.q.QueryRow(context.Background(), query,
		policy.PolicyNumber.String(), policy.InsuredName,
		policy.Premium.Amount(), policy.Premium.Currency(),
		policy.Period.Start(), policy.Period.End(),
		statusID, typeID, policy.CancellationReason,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert policy: %w", err)
	}
	return &stored, nil
}

// Update actualiza una póliza existente por número. Vuelve a resolver los
// lookups de status/type por si el estado cambió.
func (r *PolicyRepo) Update(policy *entity.Policy) (*entity.Policy, error) {
	statusID, err := r.statusID(policy.Status)
	if err != nil {
		return nil, err
	}
	typeID, err := r.typeID(policy.PolicyType)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE policies
		SET insured_name = $2, premium_amount = $3, premium_currency = $4,
		    period_start_date = $5, period_end_date = $6,
		    status_id = $7, type_id = $8, cancellation_reason = NULLIF($9, ''),
		    updated_at = now()
		WHERE policy_number = $1
		RETURNING id, created_at, updated_at`
	stored := *policy
	err = r.q.QueryRow(context.Background(), query,
		policy.PolicyNumber.String(), policy.InsuredName,
		policy.Premium.Amount(), policy.Premium.Currency(),
		policy.Period.Start(), policy.Period.End(),
		statusID, typeID, policy.CancellationReason,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update policy: %w", err)
	}
	return &stored, nil
}

// GetByID obtiene una póliza por identidad de storage. (nil, nil) si no existe.
func (r *PolicyRepo) GetByID(id int64) (*entity.Policy, error) {
	row := r.q.QueryRow(context.Background(), policySelect+` WHERE p.id = $1`, id)
	return r.scanPolicy(row)
}

// GetByNumber obtiene una póliza por número. (nil, nil) si no existe.
func (r *PolicyRepo) GetByNumber(policyNumber string) (*entity.Policy, error) {
	row := r.q.QueryRow(context.Background(), policySelect+` WHERE p.policy_number = $1`, policyNumber)
	return r.scanPolicy(row)
}

// List devuelve todas las pólizas con sus lookups resueltos.
func (r *PolicyRepo) List() ([]*entity.Policy, error) {
	rows, err := r.q.Query(context.Background(), policySelect+` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Policy
	for rows.Next() {
		p, err := r.scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanPolicy reconstruye el agregado desde una fila del join. Los datos
// persistidos ya pasaron por los constructores, así que un fallo aquí es
// corrupción de datos, no entrada inválida.
func (r *PolicyRepo) scanPolicy(row pgx.Row) (*entity.Policy, error) {
	var (
		id                 int64
		number             string
		insuredName        string
		amount             decimal.Decimal
		currency           string
		startDate, endDate time.Time
		statusName         string
		typeName           string
		reason             string
		createdAt          time.Time
		updatedAt          time.Time
	)
	err := row.Scan(&id, &number, &insuredName, &amount, &currency,
		&startDate, &endDate, &statusName, &typeName, &reason, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan policy: %w", err)
	}

	policyNumber, err := entity.NewPolicyNumber(number)
	if err != nil {
		return nil, fmt.Errorf("%w: policy %d: %v", domain.ErrDataIntegrity, id, err)
	}
	premium, err := entity.NewMoney(amount, currency)
	if err != nil {
		return nil, fmt.Errorf("%w: policy %d: %v", domain.ErrDataIntegrity, id, err)
	}
	period, err := entity.NewPeriod(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: policy %d: %v", domain.ErrDataIntegrity, id, err)
	}
	status, err := entity.ParsePolicyStatus(statusName)
	if err != nil {
		return nil, fmt.Errorf("%w: policy %d: %v", domain.ErrDataIntegrity, id, err)
	}
	policyType, err := entity.ParsePolicyType(typeName)
	if err != nil {
		return nil, fmt.Errorf("%w: policy %d: %v", domain.ErrDataIntegrity, id, err)
	}

	return &entity.Policy{
		ID:                 id,
		PolicyNumber:       policyNumber,
		InsuredName:        insuredName,
		Premium:            premium,
		Period:             period,
		Status:             status,
		PolicyType:         policyType,
		CancellationReason: reason,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}

// statusID resuelve el id del estado por nombre. Defensivo: con los catálogos
// sembrados esto no debería fallar nunca.
func (r *PolicyRepo) statusID(status entity.PolicyStatus) (int32, error) {
	var id int32
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM policy_statuses WHERE name = $1`, string(status)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: policy status %q has no reference row", domain.ErrDataIntegrity, status)
		}
		return 0, fmt.Errorf("resolve status id: %w", err)
	}
	return id, nil
}

// typeID resuelve el id del ramo por nombre.
func (r *PolicyRepo) typeID(policyType entity.PolicyType) (int32, error) {
	var id int32
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM policy_types WHERE name = $1`, string(policyType)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: policy type %q has no reference row", domain.ErrDataIntegrity, policyType)
		}
		return 0, fmt.Errorf("resolve type id: %w", err)
	}
	return id, nil
}
