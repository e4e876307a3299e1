package service

import (
	"errors"
	"fmt"

	"retirement-planner/domain"
)

// planRule is one entry of the validation table: a failure predicate plus
// the user-facing message produced when it trips.
type planRule struct {
	failed  func(domain.PlanInput) bool
	message func(domain.PlanInput) string
}

// ValidationService gates every plan calculation. It runs an ordered rule
// table over the input and reports the first violation as a human-readable
// error; the numeric kernel itself never validates anything.
type ValidationService struct {
	rules []planRule
}

func NewValidationService() *ValidationService {
	return &ValidationService{rules: planRules()}
}

// Validate returns nil when input is safe to hand to the projection engine.
// Rules are ordered so the presence checks run before anything dereferences
// Rates or Policy.
func (s *ValidationService) Validate(input domain.PlanInput) error {
	for _, rule := range s.rules {
		if rule.failed(input) {
			return errors.New(rule.message(input))
		}
	}
	return nil
}

func planRules() []planRule {
	staticMsg := func(msg string) func(domain.PlanInput) string {
		return func(domain.PlanInput) string { return msg }
	}

	return []planRule{
		{
			failed:  func(in domain.PlanInput) bool { return in.Rates == nil },
			message: staticMsg("rate assumptions are required"),
		},
		{
			failed:  func(in domain.PlanInput) bool { return in.Policy == nil },
			message: staticMsg("age policy is required"),
		},
		{
			failed:  func(in domain.PlanInput) bool { return in.CurrentAge <= 0 || in.CurrentAge > MaxAge },
			message: func(in domain.PlanInput) string {
				return fmt.Sprintf("current age must be between 1 and %d", MaxAge)
			},
		},
		{
			failed:  func(in domain.PlanInput) bool { return in.RetirementAge < in.CurrentAge },
			message: staticMsg("retirement age cannot be before current age"),
		},
		{
			failed:  func(in domain.PlanInput) bool { return in.RetirementAge > MaxAge },
			message: func(in domain.PlanInput) string {
				return fmt.Sprintf("retirement age exceeds the maximum of %d", MaxAge)
			},
		},
		{
			failed: func(in domain.PlanInput) bool {
				p := in.Policy
				return p.NormalRetirementAge <= 0 ||
					p.NormalRetirementAge > p.WithdrawalAge ||
					p.WithdrawalAge > p.EndOfRetirementAge
			},
			message: staticMsg("age policy must satisfy normal <= withdrawal <= end of retirement"),
		},
		{
			failed:  func(in domain.PlanInput) bool { return in.Policy.EndOfRetirementAge <= in.CurrentAge },
			message: staticMsg("end of retirement age must be after current age"),
		},
		{
			failed:  func(in domain.PlanInput) bool { return in.AnnualIncome < 0 },
			message: staticMsg("annual income cannot be negative"),
		},
		{
			failed: func(in domain.PlanInput) bool { return in.AnnualIncome > MaxAnnualIncome },
			message: func(in domain.PlanInput) string {
				return fmt.Sprintf("annual income exceeds the maximum of $%.2f", MaxAnnualIncome)
			},
		},
		{
			failed:  func(in domain.PlanInput) bool { return in.CurrentBalance < 0 },
			message: staticMsg("current balance cannot be negative"),
		},
		{
			failed: func(in domain.PlanInput) bool { return in.CurrentBalance > MaxCurrentBalance },
			message: func(in domain.PlanInput) string {
				return fmt.Sprintf("current balance exceeds the maximum of $%.2f", MaxCurrentBalance)
			},
		},
		{
			failed: func(in domain.PlanInput) bool {
				for _, rate := range []float64{
					in.Rates.SavingsReturnRate,
					in.Rates.PostRetirementReturnRate,
					in.Rates.InflationRate,
					in.Rates.IncomeGrowthRate,
				} {
					if rate < MinAnnualRate || rate > MaxAnnualRate {
						return true
					}
				}
				return false
			},
			message: func(in domain.PlanInput) string {
				return fmt.Sprintf("every rate must be between %.2f and %.2f", MinAnnualRate, MaxAnnualRate)
			},
		},
		{
			failed: func(in domain.PlanInput) bool {
				return in.MinIncomeReplacementRatio < 0 || in.MinIncomeReplacementRatio > MaxReplacementRatio
			},
			message: func(in domain.PlanInput) string {
				return fmt.Sprintf("income replacement ratio must be between 0 and %.1f", MaxReplacementRatio)
			},
		},
		{
			failed: func(in domain.PlanInput) bool {
				c := in.Contribution
				return c.ContributionPercent < 0 || c.ContributionPercent > MaxContributionPercent
			},
			message: func(in domain.PlanInput) string {
				return fmt.Sprintf("contribution percent must be between 0 and %.0f", MaxContributionPercent)
			},
		},
		{
			failed:  func(in domain.PlanInput) bool { return in.Contribution.DollarPerPayPeriod < 0 },
			message: staticMsg("contribution per pay period cannot be negative"),
		},
		{
			failed: func(in domain.PlanInput) bool {
				periods := in.Contribution.PayPeriodsPerYear
				return periods < 0 || periods > MaxPayPeriodsPerYear
			},
			message: func(in domain.PlanInput) string {
				return fmt.Sprintf("pay periods per year must be between 0 and %d", MaxPayPeriodsPerYear)
			},
		},
		{
			failed: func(in domain.PlanInput) bool {
				c := in.Contribution
				return c.MatchRate < 0 || c.MatchLimitPercent < 0 || c.MatchLimitPercent > MaxContributionPercent
			},
			message: staticMsg("employer match parameters cannot be negative"),
		},
	}
}
