package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/policy-admin/internal/domain/entity"
	"github.com/tu-usuario/policy-admin/internal/domain/repository"
	"github.com/tu-usuario/policy-admin/pkg/logger"
)

// samplePolicy datos crudos de una póliza de ejemplo. Las fechas son offsets
// en días respecto a hoy para que el portafolio siempre luzca vigente.
type samplePolicy struct {
	number      string
	insuredName string
	premium     string
	startOffset int
	endOffset   int
	status      entity.PolicyStatus
	policyType  entity.PolicyType
}

// Nota: la siembra es el único productor del estado inactive; ninguna
// transición del dominio llega a él.
var samples = []samplePolicy{
	// Pólizas Property activas
	{"TMPROP2024001", "Acme Corporation Ltd", "12500.00", -30, 335, entity.StatusActive, entity.TypeProperty},
	{"TMPROP2024002", "Global Logistics Inc", "8750.50", -15, 350, entity.StatusActive, entity.TypeProperty},
	{"TMPROP2024003", "Safe Hands Hospital", "45200.00", -60, 305, entity.StatusActive, entity.TypeProperty},
	// Pendientes, listas para activar
	{"TMMAR2024001", "Ocean Freight Services", "23400.00", 7, 372, entity.StatusPending, entity.TypeMarine},
	{"TMCONST202401", "Tech Innovations Ltd", "6800.00", 14, 379, entity.StatusPending, entity.TypeConstruction},
	{"TMCAS2024001", "Metro Transport Ltd", "18900.00", 3, 368, entity.StatusPending, entity.TypeCasualty},
	// Expiradas
	{"TMCAS2023001", "City Construction Group", "15600.75", -400, -35, entity.StatusInactive, entity.TypeCasualty},
	{"TMPROP2023001", "Retail Chain UK Ltd", "8900.00", -395, -30, entity.StatusInactive, entity.TypeProperty},
	// Canceladas
	{"TMMAR2023001", "Port Authority Ltd", "32150.00", -200, 165, entity.StatusCancelled, entity.TypeMarine},
	{"TMCAS2023051", "Manufacturing Solutions Inc", "11200.00", -150, 215, entity.StatusCancelled, entity.TypeCasualty},
	// Variadas
	{"TMPROP2024004", "University Campus Ltd", "28700.00", -45, 320, entity.StatusActive, entity.TypeProperty},
	{"TMMAR2024002", "Coastal Shipping Co", "15600.00", 10, 375, entity.StatusPending, entity.TypeMarine},
	{"TMCONST202402", "Bridge Builders Ltd", "54300.00", -20, 345, entity.StatusActive, entity.TypeConstruction},
}

// Load siembra el portafolio de ejemplo sobre el puerto de repositorio, así
// sirve igual para PostgreSQL (cmd/seed) y para el store en memoria
// (arranque sin DATABASE_URL). Las pólizas ya existentes se saltan.
func Load(repo repository.PolicyRepository, log *logger.Logger) error {
	today := time.Now()
	seeded := 0

	for _, s := range samples {
		existing, err := repo.GetByNumber(s.number)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.number, err)
		}
		if existing != nil {
			continue
		}

		policy, err := buildPolicy(s, today)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.number, err)
		}
		if _, err := repo.Add(policy); err != nil {
			return fmt.Errorf("seed %s: %w", s.number, err)
		}
		seeded++
	}

	log.Info().Int("seeded", seeded).Int("total", len(samples)).Msg("sample portfolio loaded")
	return nil
}

func buildPolicy(s samplePolicy, today time.Time) (*entity.Policy, error) {
	number, err := entity.NewPolicyNumber(s.number)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(s.premium)
	if err != nil {
		return nil, err
	}
	premium, err := entity.NewMoney(amount, entity.DefaultCurrency)
	if err != nil {
		return nil, err
	}
	period, err := entity.NewPeriod(
		today.AddDate(0, 0, s.startOffset),
		today.AddDate(0, 0, s.endOffset),
	)
	if err != nil {
		return nil, err
	}

	return &entity.Policy{
		PolicyNumber: number,
		InsuredName:  s.insuredName,
		Premium:      premium,
		Period:       period,
		Status:       s.status,
		PolicyType:   s.policyType,
	}, nil
}
