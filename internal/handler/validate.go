package handler

import (
	"fmt"
	"math"

	"github.com/taxpadi/tax-service/internal/models"
)

// maxAmount is the sanity bound on every input field. Values above it
// are rejected, never clamped.
const maxAmount = 100_000_000_000

// calculationRequest is the raw request body. Pointers distinguish
// absent fields from explicit zeros; a models.CalculationInput is
// built only after every check passes.
type calculationRequest struct {
	MonthlyGrossIncome         *float64 `json:"monthly_gross_income"`
	AdditionalMonthlyIncome    *float64 `json:"additional_monthly_income"`
	AnnualPensionContributions *float64 `json:"annual_pension_contributions"`
	AnnualNHFContributions     *float64 `json:"annual_nhf_contributions"`
	AnnualRentPaid             *float64 `json:"annual_rent_paid"`
	LifeInsurancePremiums      *float64 `json:"life_insurance_premiums"`
}

func (c *calculationRequest) validate() (models.CalculationInput, error) {
	if c.MonthlyGrossIncome == nil {
		return models.CalculationInput{}, fmt.Errorf("monthly_gross_income is required")
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"monthly_gross_income", c.MonthlyGrossIncome},
		{"additional_monthly_income", c.AdditionalMonthlyIncome},
		{"annual_pension_contributions", c.AnnualPensionContributions},
		{"annual_nhf_contributions", c.AnnualNHFContributions},
		{"annual_rent_paid", c.AnnualRentPaid},
		{"life_insurance_premiums", c.LifeInsurancePremiums},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		v := *f.value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return models.CalculationInput{}, fmt.Errorf("%s must be a finite number", f.name)
		}
		if v < 0 {
			return models.CalculationInput{}, fmt.Errorf("%s must not be negative", f.name)
		}
		if v > maxAmount {
			return models.CalculationInput{}, fmt.Errorf("%s exceeds the maximum allowed amount", f.name)
		}
	}

	return models.CalculationInput{
		MonthlyGrossIncome:         *c.MonthlyGrossIncome,
		AdditionalMonthlyIncome:    deref(c.AdditionalMonthlyIncome),
		AnnualPensionContributions: deref(c.AnnualPensionContributions),
		AnnualNHFContributions:     deref(c.AnnualNHFContributions),
		AnnualRentPaid:             deref(c.AnnualRentPaid),
		LifeInsurancePremiums:      deref(c.LifeInsurancePremiums),
	}, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
