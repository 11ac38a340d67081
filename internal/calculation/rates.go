package calculation

import "math"

// RealReturn converts a nominal annual return into a real (after-inflation)
// annual return: (1+nominal)/(1+inflation) - 1. An inflation rate of -100%
// yields NaN.
func RealReturn(nominal, inflation float64) float64 {
	denom := 1 + inflation
	if denom == 0 {
		return math.NaN()
	}
	return (1+nominal)/denom - 1
}

// EffectivePeriodRate converts an annual rate into the equivalent compound
// rate for one of periodsPerYear sub-periods.
func EffectivePeriodRate(annualRate float64, periodsPerYear int) float64 {
	if periodsPerYear <= 0 {
		return math.NaN()
	}
	if periodsPerYear == 1 {
		return annualRate
	}
	return math.Pow(1+annualRate, 1/float64(periodsPerYear)) - 1
}
