package tax

import (
	"math"

	"github.com/taxpadi/tax-service/internal/models"
)

// Statutory deduction caps.
const (
	pensionGrossShare   = 0.10
	nhfCap              = 5_000
	insuranceCap        = 50_000
	insuranceGrossShare = 0.10
	rentReliefCap       = 500_000
	rentReliefRate      = 0.20
)

// ComputeDeductions sums the four capped statutory deductions against
// an annual gross income. The four categories are independent and the
// sum is never capped further.
func ComputeDeductions(in models.CalculationInput, grossIncome float64) float64 {
	pension := math.Min(in.AnnualPensionContributions, grossIncome*pensionGrossShare)
	nhf := math.Min(in.AnnualNHFContributions, nhfCap)
	insurance := math.Min(in.LifeInsurancePremiums, math.Min(insuranceCap, grossIncome*insuranceGrossShare))

	// Rent relief is a step function: 20% of rent up to the threshold,
	// the flat cap above it. The branch must match exactly.
	var rent float64
	if in.AnnualRentPaid > rentReliefCap {
		rent = rentReliefCap
	} else {
		rent = in.AnnualRentPaid * rentReliefRate
	}

	return pension + nhf + insurance + rent
}
