// Package finmath holds the closed-form financial primitives the projection
// services are built on. Every function is pure and total: degenerate inputs
// produce sentinel zero values, never errors. Inputs are assumed to be
// validated upstream; in particular 1+rate <= 0 is undefined behavior here.
package finmath

import "math"

// FutureValue returns principal compounded at rate for the given number of
// years. Years may be fractional or negative (discounting).
func FutureValue(principal, rate, years float64) float64 {
	return principal * math.Pow(1+rate, years)
}

// GeometricSeriesSum computes the sum of ratio^k for k from startIndex
// through endIndex inclusive. Ratio 1 is handled as a plain term count since
// the closed form divides by ratio-1.
func GeometricSeriesSum(startIndex int, ratio float64, endIndex int) float64 {
	if ratio == 1 {
		return float64(endIndex - startIndex + 1)
	}
	total := (math.Pow(ratio, float64(endIndex+1)) - 1) / (ratio - 1)
	if startIndex > 0 {
		total -= (math.Pow(ratio, float64(startIndex)) - 1) / (ratio - 1)
	}
	return total
}

// PayoutFromLumpSum returns the constant annual withdrawal that exactly
// exhausts principal over years periods at the given net rate (nominal
// return minus inflation). Callers must pass years >= 1; smaller horizons
// yield a degenerate value that must not be reported as sustainable income.
func PayoutFromLumpSum(principal, netRate float64, years int) float64 {
	return FutureValue(principal, netRate, float64(years-1)) /
		GeometricSeriesSum(0, 1+netRate, years-1)
}

// PayoutDuration solves how long a lump sum lasts when a fixed first-year
// withdrawal is drawn against it while it earns returnRate and inflation
// erodes it at inflationRate. The result is split into whole years plus
// remainder months.
//
// The 0, 0 sentinel covers every case the formula cannot answer: a zero
// withdrawal, a non-positive growth base, return exactly equal to inflation,
// and a withdrawal small enough that the balance never depletes. Callers
// should treat the last case as "lasts indefinitely", not as an actual zero
// duration.
func PayoutDuration(lumpSum, fixedWithdrawal, returnRate, inflationRate float64) (years, months int) {
	base := (1 + returnRate) / (1 + inflationRate)
	denom := fixedWithdrawal * base

	if denom == 0 || base <= 0 || base == 1 {
		return 0, 0
	}

	adjustedGrowth := base - 1
	if lumpSum*adjustedGrowth >= denom {
		return 0, 0
	}

	exact := -math.Log(1-lumpSum*adjustedGrowth/denom) / math.Log(base)

	totalMonths := int(math.Round(exact * 12))
	years = int(math.Floor(exact))
	months = totalMonths % 12
	return years, months
}
