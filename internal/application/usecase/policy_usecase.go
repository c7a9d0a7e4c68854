package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/policy-admin/internal/application/dto"
	"github.com/tu-usuario/policy-admin/internal/domain"
	"github.com/tu-usuario/policy-admin/internal/domain/entity"
	"github.com/tu-usuario/policy-admin/internal/domain/repository"
	"github.com/tu-usuario/policy-admin/pkg/logger"
	"github.com/tu-usuario/policy-admin/pkg/metrics"
)

// PolicyUseCase casos de uso de administración de pólizas: crear, activar,
// cancelar, consultar y listar. Las escrituras corren dentro de una
// transacción (una por petición); las lecturas van directo al repositorio.
type PolicyUseCase struct {
	repo repository.PolicyRepository
	tx   TxRunner
	log  *logger.Logger
	mtr  *metrics.Metrics
}

// NewPolicyUseCase construye el caso de uso.
func NewPolicyUseCase(repo repository.PolicyRepository, tx TxRunner, log *logger.Logger, mtr *metrics.Metrics) *PolicyUseCase {
	return &PolicyUseCase{repo: repo, tx: tx, log: log, mtr: mtr}
}

// Create crea una nueva póliza a partir del request. La unicidad del número
// de póliza es el único invariante entre entidades: si ya existe, falla con
// error de validación y la primera póliza queda intacta.
func (uc *PolicyUseCase) Create(ctx context.Context, in dto.CreatePolicyRequest) (*entity.Policy, error) {
	policy, err := policyFromCreateRequest(in)
	if err != nil {
		return nil, err
	}

	var created *entity.Policy
	err = uc.tx.Run(ctx, func(repo repository.PolicyRepository) error {
		existing, err := repo.GetByNumber(policy.PolicyNumber.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewValidationError("Policy number already exists")
		}
		created, err = repo.Add(policy)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.mtr.IncPoliciesCreated()
	uc.log.Info().
		Str("policy_number", created.PolicyNumber.String()).
		Str("policy_type", string(created.PolicyType)).
		Msg("policy created")
	return created, nil
}

// Activate activa una póliza existente por número. La precondición de la
// transición (pending, periodo vigente, prima positiva) la valida la entidad.
func (uc *PolicyUseCase) Activate(ctx context.Context, policyNumber string) (*entity.Policy, error) {
	var updated *entity.Policy
	err := uc.tx.Run(ctx, func(repo repository.PolicyRepository) error {
		policy, err := repo.GetByNumber(policyNumber)
		if err != nil {
			return err
		}
		if policy == nil {
			return domain.ErrNotFound
		}
		if err := policy.Activate(); err != nil {
			return err
		}
		updated, err = repo.Update(policy)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.mtr.IncPoliciesActivated()
	uc.log.Info().Str("policy_number", policyNumber).Msg("policy activated")
	return updated, nil
}

// Cancel cancela una póliza existente por número, con razón opcional.
// La razón se persiste junto al cambio de estado y se deja en el log.
func (uc *PolicyUseCase) Cancel(ctx context.Context, policyNumber, reason string) (*entity.Policy, error) {
	var updated *entity.Policy
	err := uc.tx.Run(ctx, func(repo repository.PolicyRepository) error {
		policy, err := repo.GetByNumber(policyNumber)
		if err != nil {
			return err
		}
		if policy == nil {
			return domain.ErrNotFound
		}
		if err := policy.Cancel(reason); err != nil {
			return err
		}
		updated, err = repo.Update(policy)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.mtr.IncPoliciesCancelled()
	uc.log.Info().
		Str("policy_number", policyNumber).
		Str("reason", reason).
		Msg("policy cancelled")
	return updated, nil
}

// Get consulta una póliza por número. Devuelve (nil, nil) si no existe;
// el transporte decide el mapeo de la ausencia.
func (uc *PolicyUseCase) Get(policyNumber string) (*entity.Policy, error) {
	return uc.repo.GetByNumber(policyNumber)
}

// List lista todas las pólizas en el orden del storage (sin paginación).
func (uc *PolicyUseCase) List() ([]*entity.Policy, error) {
	return uc.repo.List()
}

// policyFromCreateRequest construye la entidad desde el DTO de creación,
// aplicando defaults (GBP, pending, Property) y los constructores de los
// objetos de valor: ninguna instancia parcialmente válida puede existir.
func policyFromCreateRequest(in dto.CreatePolicyRequest) (*entity.Policy, error) {
	number, err := entity.NewPolicyNumber(in.PolicyNumber)
	if err != nil {
		return nil, err
	}

	currency := in.PremiumCurrency
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	premium, err := entity.NewMoney(in.PremiumAmount, currency)
	if err != nil {
		return nil, err
	}

	start, err := parseDate(in.PeriodStartDate)
	if err != nil {
		return nil, domain.NewValidationError("Invalid period_start_date, expected YYYY-MM-DD")
	}
	end, err := parseDate(in.PeriodEndDate)
	if err != nil {
		return nil, domain.NewValidationError("Invalid period_end_date, expected YYYY-MM-DD")
	}
	period, err := entity.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}

	status := entity.StatusPending
	if in.Status != "" {
		if status, err = entity.ParsePolicyStatus(in.Status); err != nil {
			return nil, err
		}
	}
	policyType := entity.TypeProperty
	if in.PolicyType != "" {
		if policyType, err = entity.ParsePolicyType(in.PolicyType); err != nil {
			return nil, err
		}
	}

	return &entity.Policy{
		PolicyNumber: number,
		InsuredName:  in.InsuredName,
		Premium:      premium,
		Period:       period,
		Status:       status,
		PolicyType:   policyType,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
