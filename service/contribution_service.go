package service

import (
	"math"

	"retirement-planner/domain"
)

// ContributionService turns contribution settings into the single netted
// annual amount (employee plus employer match) the projection engine
// consumes.
type ContributionService struct{}

func NewContributionService() *ContributionService {
	return &ContributionService{}
}

// AnnualContribution computes the total yearly contribution for the given
// income. A percent-of-income election takes precedence over a fixed dollar
// amount per pay period; when the dollar form is used without an explicit
// pay-period count, biweekly pay is assumed.
func (s *ContributionService) AnnualContribution(
	annualIncome float64,
	input domain.ContributionInput,
) float64 {

	var employee float64
	if input.ContributionPercent > 0 {
		employee = annualIncome * input.ContributionPercent / 100
	} else {
		periods := input.PayPeriodsPerYear
		if periods <= 0 {
			periods = DefaultPayPeriodsPerYear
		}
		employee = input.DollarPerPayPeriod * float64(periods)
	}

	return employee + s.employerMatch(annualIncome, employee, input)
}

// employerMatch pays MatchRate on every contributed dollar up to
// MatchLimitPercent of income.
func (s *ContributionService) employerMatch(
	annualIncome, employee float64,
	input domain.ContributionInput,
) float64 {

	if annualIncome <= 0 || input.MatchRate <= 0 || input.MatchLimitPercent <= 0 {
		return 0
	}

	employeeRate := employee / annualIncome
	matchedRate := math.Min(employeeRate, input.MatchLimitPercent/100)
	return annualIncome * matchedRate * input.MatchRate
}
