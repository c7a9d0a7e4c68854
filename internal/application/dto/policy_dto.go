package dto

import "github.com/shopspring/decimal"

// CreatePolicyRequest cuerpo de creación de póliza. Las fechas van como
// "YYYY-MM-DD"; los campos con default pueden omitirse.
type CreatePolicyRequest struct {
	PolicyNumber    string          `json:"policy_number"`
	InsuredName     string          `json:"insured_name"`
	PremiumAmount   decimal.Decimal `json:"premium_amount"`
	PremiumCurrency string          `json:"premium_currency"` // default "GBP"
	PeriodStartDate string          `json:"period_start_date"`
	PeriodEndDate   string          `json:"period_end_date"`
	Status          string          `json:"status"`      // default "pending"
	PolicyType      string          `json:"policy_type"` // default "Property"
}

// CancelPolicyRequest cuerpo opcional de cancelación.
type CancelPolicyRequest struct {
	Reason string `json:"reason"`
}

// PolicyResponse DTO plano de presentación: prima formateada con símbolo de
// moneda y separador de miles, estado capitalizado, fechas dd/mm/yyyy.
type PolicyResponse struct {
	ID           int64  `json:"id"`
	PolicyNumber string `json:"policy_number"`
	InsuredName  string `json:"insured_name"`
	Premium      string `json:"premium"`
	Status       string `json:"status"`
	PolicyType   string `json:"policy_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}
