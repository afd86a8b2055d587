package tax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTax(t *testing.T) {
	tests := []struct {
		name          string
		taxableIncome float64
		want          float64
	}{
		{"zero income", 0, 0},
		{"inside tax-free band", 500_000, 0},
		{"exactly first boundary", 800_000, 0},
		{"just above first boundary", 800_001, 0.15},
		{"second boundary", 3_000_000, 330_000},
		{"third boundary", 12_000_000, 1_950_000},
		{"fourth boundary", 25_000_000, 4_680_000},
		{"fifth boundary", 50_000_000, 10_430_000},
		{"into terminal band", 60_000_000, 12_930_000},
		{"mid second band", 6_000_000, 870_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeTax(tt.taxableIncome), 0.01)
		})
	}
}

func TestComputeTaxMonotonic(t *testing.T) {
	prev := 0.0
	for income := 0.0; income <= 60_000_000; income += 250_000 {
		owed := ComputeTax(income)
		require.GreaterOrEqual(t, owed, prev, "tax decreased at income %.0f", income)
		prev = owed
	}
}

func TestComputeTaxContinuousAcrossBoundaries(t *testing.T) {
	// Just past each boundary, the extra tax is the step times the
	// next band's marginal rate.
	boundaries := []struct {
		at       float64
		nextRate float64
	}{
		{800_000, 0.15},
		{3_000_000, 0.18},
		{12_000_000, 0.21},
		{25_000_000, 0.23},
		{50_000_000, 0.25},
	}
	const step = 10_000

	for _, b := range boundaries {
		atBoundary := ComputeTax(b.at)
		justAbove := ComputeTax(b.at + step)
		assert.InDelta(t, step*b.nextRate, justAbove-atBoundary, 0.01,
			"discontinuity at boundary %.0f", b.at)
	}
}

func TestBracketsShape(t *testing.T) {
	require.NotEmpty(t, Brackets)

	// Exactly one unbounded band, and it is the terminal one.
	for i, b := range Brackets[:len(Brackets)-1] {
		require.False(t, math.IsInf(b.Width, 1), "band %d must be bounded", i)
	}
	require.True(t, math.IsInf(Brackets[len(Brackets)-1].Width, 1))

	// Rates are non-decreasing and are fractions.
	prev := 0.0
	for i, b := range Brackets {
		require.GreaterOrEqual(t, b.Rate, prev, "rate decreased at band %d", i)
		require.LessOrEqual(t, b.Rate, 1.0)
		prev = b.Rate
	}
}
