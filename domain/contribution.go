package domain

// ContributionInput describes how an employee contributes and how the
// employer matches. Either ContributionPercent (of annual income) or
// DollarPerPayPeriod scaled by PayPeriodsPerYear is used; percent wins when
// both are set.
type ContributionInput struct {
	ContributionPercent float64
	DollarPerPayPeriod  float64
	PayPeriodsPerYear   int
	MatchRate           float64 // employer cents per contributed dollar, 0.5 = 50%
	MatchLimitPercent   float64 // match applies up to this percent of income
}
