package domain

// RateAssumptions holds the constant annual rates a projection is computed
// under. All values are decimals (0.08 = 8%), not percentages.
type RateAssumptions struct {
	SavingsReturnRate        float64
	PostRetirementReturnRate float64
	InflationRate            float64
	IncomeGrowthRate         float64
}

// AgePolicy defines the retirement age band of a plan. Callers are expected
// to keep NormalRetirementAge <= WithdrawalAge <= EndOfRetirementAge.
type AgePolicy struct {
	NormalRetirementAge int
	WithdrawalAge       int
	EndOfRetirementAge  int
}
