package models

// CalculationInput holds a validated set of tax calculation inputs.
// All amounts are annual naira unless named monthly; values are
// non-negative, finite and within the sanity bound by construction
// (the handler builds this struct only after validation succeeds).
type CalculationInput struct {
	MonthlyGrossIncome         float64 `json:"monthly_gross_income"`
	AdditionalMonthlyIncome    float64 `json:"additional_monthly_income"`
	AnnualPensionContributions float64 `json:"annual_pension_contributions"`
	AnnualNHFContributions     float64 `json:"annual_nhf_contributions"`
	AnnualRentPaid             float64 `json:"annual_rent_paid"`
	LifeInsurancePremiums      float64 `json:"life_insurance_premiums"`
}

// CalculationResult represents a completed annual tax calculation.
// Monetary fields are rounded to 2 decimal places; the effective tax
// rate is a percentage, also rounded to 2 decimal places.
type CalculationResult struct {
	GrossIncome      float64 `json:"gross_income"`
	TotalDeductions  float64 `json:"total_deductions"`
	TaxableIncome    float64 `json:"taxable_income"`
	TaxOwed          float64 `json:"tax_owed"`
	EffectiveTaxRate float64 `json:"effective_tax_rate"`
	AfterTaxIncome   float64 `json:"after_tax_income"`
}

// CalculationIDUnavailable marks a response whose result could not be
// stored; retrieval by id will not be possible for it.
const CalculationIDUnavailable = "unavailable"

// CalculateResponse is the response body for a compute request.
type CalculateResponse struct {
	CalculationID string            `json:"calculation_id"`
	Result        CalculationResult `json:"result"`
	Note          string            `json:"note,omitempty"`
}
