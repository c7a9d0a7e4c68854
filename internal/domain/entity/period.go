package entity

import (
	"time"

	"github.com/tu-usuario/policy-admin/internal/domain"
)

// Period objeto de valor para el rango de cobertura de la póliza.
// Las fechas se normalizan a medianoche UTC (solo fecha, sin hora).
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod valida y construye un Period. La fecha fin debe ser
// estrictamente posterior a la fecha inicio.
func NewPeriod(start, end time.Time) (Period, error) {
	start = DateOnly(start)
	end = DateOnly(end)
	if !end.After(start) {
		return Period{}, domain.NewValidationError("End date must be after start date")
	}
	return Period{start: start, end: end}, nil
}

// Start fecha de inicio de cobertura.
func (p Period) Start() time.Time { return p.start }

// End fecha de fin de cobertura.
func (p Period) End() time.Time { return p.end }

// IsActive reporta si la fecha actual cae dentro de [Start, End], inclusive.
// Se evalúa contra el reloj en el momento de la consulta, no se almacena.
func (p Period) IsActive() bool {
	return p.IsActiveOn(time.Now())
}

// IsActiveOn variante determinista de IsActive para una fecha dada.
func (p Period) IsActiveOn(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(p.start) && !d.After(p.end)
}

// DateOnly trunca un instante a su fecha en UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
