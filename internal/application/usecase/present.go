package usecase

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/policy-admin/internal/application/dto"
	"github.com/tu-usuario/policy-admin/internal/domain/entity"
)

var (
	englishPrinter = message.NewPrinter(language.English)
	titleCaser     = cases.Title(language.English)

	currencySymbols = map[string]string{
		"USD": "$",
		"GBP": "£",
		"EUR": "€",
		"JPY": "¥",
	}
)

// ToPolicyResponse aplana la entidad al DTO de presentación: prima con
// símbolo de moneda y separador de miles, estado capitalizado, ramo tal cual
// y fechas dd/mm/yyyy.
func ToPolicyResponse(p *entity.Policy) dto.PolicyResponse {
	return dto.PolicyResponse{
		ID:           p.ID,
		PolicyNumber: p.PolicyNumber.String(),
		InsuredName:  p.InsuredName,
		Premium:      FormatPremium(p.Premium),
		Status:       titleCaser.String(string(p.Status)),
		PolicyType:   string(p.PolicyType),
		StartDate:    formatDate(p.Period.Start()),
		EndDate:      formatDate(p.Period.End()),
	}
}

// ToPolicyResponses aplana una lista de entidades.
func ToPolicyResponses(policies []*entity.Policy) []dto.PolicyResponse {
	out := make([]dto.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, ToPolicyResponse(p))
	}
	return out
}

// FormatPremium renderiza la prima para el dashboard: símbolo si la moneda es
// conocida (si no, el código tal cual), montos enteros sin decimales
// ("£1,000") y no enteros con dos decimales ("$8,750.50").
func FormatPremium(m entity.Money) string {
	symbol, ok := currencySymbols[m.Currency()]
	if !ok {
		symbol = m.Currency()
	}
	amount := m.Amount()
	if amount.IsInteger() {
		return symbol + englishPrinter.Sprintf("%d", amount.IntPart())
	}
	f, _ := amount.Float64()
	return symbol + englishPrinter.Sprintf("%.2f", f)
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
