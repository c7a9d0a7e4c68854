package entity

import (
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/policy-admin/internal/domain"
)

// DefaultCurrency moneda por defecto de las primas.
const DefaultCurrency = "GBP"

// Money objeto de valor para la prima: monto decimal + código ISO de moneda.
// Inmutable una vez construido; usar NewMoney para garantizar los invariantes.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney valida y construye un Money. Falla si el monto es negativo o la
// moneda no es un código alfabético de 3 letras.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, domain.NewValidationError("Amount cannot be negative")
	}
	if !isThreeLetterCode(currency) {
		return Money{}, domain.NewValidationError("Currency must be a 3-letter ISO code")
	}
	return Money{amount: amount, currency: currency}, nil
}

// Amount monto de la prima.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency código ISO de la moneda.
func (m Money) Currency() string { return m.currency }

// IsPositive reporta si el monto es estrictamente mayor que cero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// Equal igualdad por valor (consciente de la representación decimal).
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}

func isThreeLetterCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
