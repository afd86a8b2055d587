package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taxpadi/tax-service/internal/models"
)

func TestComputeDeductions(t *testing.T) {
	tests := []struct {
		name  string
		in    models.CalculationInput
		gross float64
		want  float64
	}{
		{
			name:  "no contributions",
			in:    models.CalculationInput{},
			gross: 6_000_000,
			want:  0,
		},
		{
			name:  "pension capped at 10 percent of gross",
			in:    models.CalculationInput{AnnualPensionContributions: 10_000_000},
			gross: 6_000_000,
			want:  600_000,
		},
		{
			name:  "pension below cap passes through",
			in:    models.CalculationInput{AnnualPensionContributions: 200_000},
			gross: 6_000_000,
			want:  200_000,
		},
		{
			name:  "nhf capped at flat amount",
			in:    models.CalculationInput{AnnualNHFContributions: 99_999},
			gross: 6_000_000,
			want:  5_000,
		},
		{
			name:  "insurance capped at flat amount",
			in:    models.CalculationInput{LifeInsurancePremiums: 100_000},
			gross: 6_000_000,
			want:  50_000,
		},
		{
			name:  "insurance capped by income share on low gross",
			in:    models.CalculationInput{LifeInsurancePremiums: 100_000},
			gross: 300_000,
			want:  30_000,
		},
		{
			name:  "rent below threshold gets 20 percent",
			in:    models.CalculationInput{AnnualRentPaid: 400_000},
			gross: 6_000_000,
			want:  80_000,
		},
		{
			name:  "rent above threshold gets the flat cap",
			in:    models.CalculationInput{AnnualRentPaid: 1_000_000},
			gross: 6_000_000,
			want:  500_000,
		},
		{
			name:  "rent exactly at threshold stays on the 20 percent branch",
			in:    models.CalculationInput{AnnualRentPaid: 500_000},
			gross: 6_000_000,
			want:  100_000,
		},
		{
			name:  "rent at the curve crossing point",
			in:    models.CalculationInput{AnnualRentPaid: 2_500_000},
			gross: 6_000_000,
			want:  500_000,
		},
		{
			name: "all categories at their caps sum uncapped",
			in: models.CalculationInput{
				AnnualPensionContributions: 10_000_000,
				AnnualNHFContributions:     1_000_000,
				LifeInsurancePremiums:      1_000_000,
				AnnualRentPaid:             10_000_000,
			},
			gross: 6_000_000,
			want:  1_155_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeDeductions(tt.in, tt.gross), 0.01)
		})
	}
}

func TestComputeDeductionsNeverNegative(t *testing.T) {
	got := ComputeDeductions(models.CalculationInput{}, 0)
	assert.GreaterOrEqual(t, got, 0.0)
}
