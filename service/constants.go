package service

const (
	MaxAge              = 120
	MaxAnnualIncome     = 100_000_000.0 // 100 millones
	MaxCurrentBalance   = 1_000_000_000.0
	MaxAnnualRate       = 10.0  // 1000% anual, as a decimal
	MinAnnualRate       = -0.99 // below this the compounding base goes non-positive
	MaxReplacementRatio = 2.0

	MaxContributionPercent   = 100.0
	MaxPayPeriodsPerYear     = 53
	DefaultPayPeriodsPerYear = 26 // quincenal

	MonthsPerYear = 12
)
