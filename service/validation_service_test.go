package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retirement-planner/domain"
)

func validPlanInput() domain.PlanInput {
	rates := testRates()
	policy := testPolicy()
	return domain.PlanInput{
		CurrentAge:                30,
		RetirementAge:             65,
		AnnualIncome:              100000,
		CurrentBalance:            25000,
		Contribution:              domain.ContributionInput{ContributionPercent: 5},
		MinIncomeReplacementRatio: 0.8,
		Rates:                     &rates,
		Policy:                    &policy,
	}
}

func TestValidate_OK(t *testing.T) {
	v := NewValidationService()
	require.NoError(t, v.Validate(validPlanInput()))
}

func TestValidate_MissingAssumptions(t *testing.T) {
	v := NewValidationService()

	input := validPlanInput()
	input.Rates = nil
	assert.EqualError(t, v.Validate(input), "rate assumptions are required")

	input = validPlanInput()
	input.Policy = nil
	assert.EqualError(t, v.Validate(input), "age policy is required")
}

func TestValidate_Ages(t *testing.T) {
	v := NewValidationService()

	input := validPlanInput()
	input.CurrentAge = 0
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.CurrentAge = 70
	input.RetirementAge = 65
	assert.EqualError(t, v.Validate(input), "retirement age cannot be before current age")

	input = validPlanInput()
	input.RetirementAge = MaxAge + 1
	require.Error(t, v.Validate(input))
}

func TestValidate_PolicyBand(t *testing.T) {
	v := NewValidationService()

	input := validPlanInput()
	input.Policy.WithdrawalAge = input.Policy.NormalRetirementAge - 1
	assert.EqualError(t, v.Validate(input),
		"age policy must satisfy normal <= withdrawal <= end of retirement")

	input = validPlanInput()
	input.Policy.EndOfRetirementAge = input.Policy.WithdrawalAge - 1
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.CurrentAge = 100
	input.RetirementAge = 100
	input.Policy.WithdrawalAge = 100
	input.Policy.EndOfRetirementAge = 100
	assert.EqualError(t, v.Validate(input), "end of retirement age must be after current age")
}

func TestValidate_MoneyBounds(t *testing.T) {
	v := NewValidationService()

	input := validPlanInput()
	input.AnnualIncome = -1
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.AnnualIncome = MaxAnnualIncome + 1
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.CurrentBalance = -500
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.CurrentBalance = MaxCurrentBalance * 2
	require.Error(t, v.Validate(input))
}

func TestValidate_Rates(t *testing.T) {
	v := NewValidationService()

	input := validPlanInput()
	input.Rates.InflationRate = -1.0 // rate of -100%
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.Rates.SavingsReturnRate = MaxAnnualRate + 0.01
	require.Error(t, v.Validate(input))

	// Mildly negative rates are economically valid.
	input = validPlanInput()
	input.Rates.SavingsReturnRate = -0.02
	require.NoError(t, v.Validate(input))
}

func TestValidate_ReplacementRatio(t *testing.T) {
	v := NewValidationService()

	input := validPlanInput()
	input.MinIncomeReplacementRatio = -0.1
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.MinIncomeReplacementRatio = MaxReplacementRatio + 0.1
	require.Error(t, v.Validate(input))
}

func TestValidate_Contribution(t *testing.T) {
	v := NewValidationService()

	input := validPlanInput()
	input.Contribution.ContributionPercent = 101
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.Contribution.DollarPerPayPeriod = -10
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.Contribution.PayPeriodsPerYear = MaxPayPeriodsPerYear + 1
	require.Error(t, v.Validate(input))

	input = validPlanInput()
	input.Contribution.MatchRate = -0.5
	require.Error(t, v.Validate(input))
}
