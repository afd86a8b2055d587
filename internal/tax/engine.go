// Package tax implements the progressive personal income tax engine:
// the bracket table, the capped statutory deductions and the
// calculation that composes them. Everything in this package is pure;
// callers may invoke it concurrently without coordination.
package tax

import (
	"math"

	"github.com/taxpadi/tax-service/internal/models"
)

// Calculate derives the full annual calculation from validated input.
// Same input always yields the same result; no I/O, no retained state.
func Calculate(in models.CalculationInput) models.CalculationResult {
	gross := (in.MonthlyGrossIncome + in.AdditionalMonthlyIncome) * 12
	deductions := ComputeDeductions(in, gross)
	taxable := math.Max(0, gross-deductions)
	taxOwed := ComputeTax(taxable)

	// taxOwed is rounded to the cent before the rate and after-tax
	// fields are derived from it; changing that order changes outputs.
	var effectiveRate float64
	if gross > 0 {
		effectiveRate = round2(taxOwed / gross * 100)
	}

	return models.CalculationResult{
		GrossIncome:      round2(gross),
		TotalDeductions:  round2(deductions),
		TaxableIncome:    round2(taxable),
		TaxOwed:          taxOwed,
		EffectiveTaxRate: effectiveRate,
		AfterTaxIncome:   round2(gross - taxOwed),
	}
}
