package tax

import "math"

// Band is one progressive tax band: Width naira of income taxed at
// the marginal Rate. The terminal band has infinite width.
type Band struct {
	Width float64
	Rate  float64
}

// Brackets is the annual personal income tax band table, ordered by
// applicability. The first 800,000 is tax free; everything beyond the
// named bands is taxed at the top rate.
var Brackets = []Band{
	{Width: 800_000, Rate: 0},
	{Width: 2_200_000, Rate: 0.15},
	{Width: 9_000_000, Rate: 0.18},
	{Width: 13_000_000, Rate: 0.21},
	{Width: 25_000_000, Rate: 0.23},
	{Width: math.Inf(1), Rate: 0.25},
}

// ComputeTax returns the tax owed on a non-negative annual taxable
// income. Each band taxes the lesser of the remaining income and the
// band width at its marginal rate; income exactly on a band boundary
// is fully taxed at the lower band. The accumulated tax is rounded to
// the cent.
func ComputeTax(taxableIncome float64) float64 {
	remaining := taxableIncome
	var owed float64
	for _, b := range Brackets {
		if remaining <= 0 {
			break
		}
		slice := math.Min(remaining, b.Width)
		owed += slice * b.Rate
		remaining -= slice
	}
	return round2(owed)
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
