package service

import (
	"encoding/json"
	"errors"
	"log"
	"math"

	"retirement-planner/domain"
	"retirement-planner/finmath"
	"retirement-planner/repository"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// ProjectionService is the projection engine: it compounds savings up to the
// retirement date and solves income sustainability from the resulting lump
// sum. All math lives in finmath; this layer applies the age policy,
// orchestrates the collaborators and assembles rounded results.
type ProjectionService struct {
	repo          repository.PlanRepository
	cache         repository.CacheRepository
	validator     *ValidationService
	contributions *ContributionService
	defaultRates  domain.RateAssumptions
	defaultPolicy domain.AgePolicy
}

// NewProjectionService creates a new ProjectionService. The rates and policy
// are server defaults applied when a request omits its own.
func NewProjectionService(
	repo repository.PlanRepository,
	cache repository.CacheRepository,
	rates domain.RateAssumptions,
	policy domain.AgePolicy,
) *ProjectionService {
	return &ProjectionService{
		repo:          repo,
		cache:         cache,
		validator:     NewValidationService(),
		contributions: NewContributionService(),
		defaultRates:  rates,
		defaultPolicy: policy,
	}
}

// EffectiveRetirementAge clamps the requested retirement age into the policy
// band: raised to the normal retirement age, capped at the mandatory
// withdrawal age.
func EffectiveRetirementAge(requestedRetirementAge int, policy domain.AgePolicy) int {
	age := requestedRetirementAge
	if age < policy.NormalRetirementAge {
		age = policy.NormalRetirementAge
	}
	if age > policy.WithdrawalAge {
		age = policy.WithdrawalAge
	}
	return age
}

// ProjectBalance grows a balance for the given number of years while a
// contribution stream, itself growing with income, is paid in annually. The
// first contribution lands at the end of year one, so the series starts at
// index 1, and its ratio combines investment return and income growth.
func (s *ProjectionService) ProjectBalance(
	currentBalance, annualContribution float64,
	years int,
	rates domain.RateAssumptions,
) float64 {

	total := finmath.FutureValue(currentBalance, rates.SavingsReturnRate, float64(years))

	if annualContribution > 0 {
		ratio := (1 + rates.SavingsReturnRate) * (1 + rates.IncomeGrowthRate)
		total += annualContribution * finmath.GeometricSeriesSum(1, ratio, years)
	}

	return total
}

// ProjectRetirementSavings projects the lump sum available at the effective
// retirement age. Contributions stop at the requested retirement age; any
// gap up to the effective age compounds without contributions.
func (s *ProjectionService) ProjectRetirementSavings(
	currentAge int,
	currentBalance float64,
	requestedRetirementAge int,
	annualContribution float64,
	rates domain.RateAssumptions,
	policy domain.AgePolicy,
) float64 {

	workingYears := requestedRetirementAge - currentAge
	atRequested := s.ProjectBalance(currentBalance, annualContribution, workingYears, rates)

	remainingYears := EffectiveRetirementAge(requestedRetirementAge, policy) - requestedRetirementAge
	atEffective := atRequested
	if remainingYears > 0 {
		atEffective = s.ProjectBalance(atRequested, 0, remainingYears, rates)
	}

	return math.Max(atRequested, atEffective)
}

// ProjectIncomeAndDuration reports what a lump sum yields in retirement. If
// the even payout over the whole horizon covers the target minimum income
// (final salary times the replacement ratio), that payout is the answer and
// funds last the full horizon. Otherwise the target income itself is drawn
// down and the duration solve reports how long it holds out.
func (s *ProjectionService) ProjectIncomeAndDuration(
	lumpSum float64,
	currentAge, retirementAge int,
	annualIncome float64,
	rates domain.RateAssumptions,
	policy domain.AgePolicy,
	minIncomeReplacementRatio float64,
) domain.IncomeProjectionResult {

	finalSalary := finmath.FutureValue(
		annualIncome,
		rates.IncomeGrowthRate,
		float64(retirementAge-currentAge),
	)
	targetIncome := finalSalary * math.Max(0, minIncomeReplacementRatio)

	horizon := policy.EndOfRetirementAge - EffectiveRetirementAge(retirementAge, policy)

	if horizon >= 1 {
		netRate := rates.PostRetirementReturnRate - rates.InflationRate
		evenPayout := finmath.PayoutFromLumpSum(lumpSum, netRate, horizon)
		if evenPayout >= targetIncome {
			return domain.IncomeProjectionResult{
				Years:              horizon,
				Months:             0,
				TargetAnnualIncome: targetIncome,
				YearlyIncome:       evenPayout,
				MonthlyIncome:      evenPayout / MonthsPerYear,
			}
		}
	}

	years, months := finmath.PayoutDuration(
		lumpSum,
		targetIncome,
		rates.PostRetirementReturnRate,
		rates.InflationRate,
	)

	return domain.IncomeProjectionResult{
		Years:              years,
		Months:             months,
		TargetAnnualIncome: targetIncome,
		YearlyIncome:       targetIncome,
		MonthlyIncome:      targetIncome / MonthsPerYear,
	}
}

// BuildPlan runs the full pipeline: defaults, validation, contribution
// arithmetic, savings projection and income sustainability. Finished plans
// are cached by their canonical input and stored for later inspection.
func (s *ProjectionService) BuildPlan(
	input domain.PlanInput,
) (domain.PlanResult, error) {

	resolved := s.applyDefaults(input)

	if err := s.validator.Validate(resolved); err != nil {
		return domain.PlanResult{}, err
	}

	key, err := planCacheKey(resolved)
	if err == nil {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.PlanResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
			log.Printf("Warning: discarding unreadable cached plan for %s", key)
		}
	}

	rates := *resolved.Rates
	policy := *resolved.Policy

	annualContribution := s.contributions.AnnualContribution(
		resolved.AnnualIncome,
		resolved.Contribution,
	)

	lumpSum := s.ProjectRetirementSavings(
		resolved.CurrentAge,
		resolved.CurrentBalance,
		resolved.RetirementAge,
		annualContribution,
		rates,
		policy,
	)

	income := s.ProjectIncomeAndDuration(
		lumpSum,
		resolved.CurrentAge,
		resolved.RetirementAge,
		resolved.AnnualIncome,
		rates,
		policy,
		resolved.MinIncomeReplacementRatio,
	)

	result := domain.PlanResult{
		EffectiveRetirementAge:   EffectiveRetirementAge(resolved.RetirementAge, policy),
		AnnualContribution:       roundTo2Decimals(annualContribution),
		TotalSavingsAtRetirement: roundTo2Decimals(lumpSum),
		TargetAnnualIncome:       roundTo2Decimals(income.TargetAnnualIncome),
		ProjectedYearlyIncome:    roundTo2Decimals(income.YearlyIncome),
		ProjectedMonthlyIncome:   roundTo2Decimals(income.MonthlyIncome),
		Years:                    income.Years,
		Months:                   income.Months,
	}

	if key != "" {
		if encoded, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(encoded)); err != nil {
				log.Printf("Warning: failed to cache plan: %v", err)
			}
		}
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(resolved, result); err != nil {
		log.Printf("Warning: failed to save plan calculation: %v", err)
	}

	return result, nil
}

// ProjectSavings serves the savings-only endpoint.
func (s *ProjectionService) ProjectSavings(
	input domain.SavingsProjectionInput,
) (domain.SavingsProjectionResult, error) {

	rates, policy := s.resolveAssumptions(input.Rates, input.Policy)

	if input.CurrentAge <= 0 || input.CurrentAge > MaxAge {
		return domain.SavingsProjectionResult{}, errors.New("current age out of range")
	}
	if input.RetirementAge < input.CurrentAge {
		return domain.SavingsProjectionResult{}, errors.New("retirement age cannot be before current age")
	}
	if input.CurrentBalance < 0 || input.AnnualContribution < 0 {
		return domain.SavingsProjectionResult{}, errors.New("balance and contribution cannot be negative")
	}

	lumpSum := s.ProjectRetirementSavings(
		input.CurrentAge,
		input.CurrentBalance,
		input.RetirementAge,
		input.AnnualContribution,
		rates,
		policy,
	)

	return domain.SavingsProjectionResult{
		EffectiveRetirementAge: EffectiveRetirementAge(input.RetirementAge, policy),
		WorkingYears:           input.RetirementAge - input.CurrentAge,
		TotalSavings:           roundTo2Decimals(lumpSum),
	}, nil
}

// ProjectIncome serves the income-only endpoint.
func (s *ProjectionService) ProjectIncome(
	input domain.IncomeProjectionInput,
) (domain.IncomeProjectionResult, error) {

	rates, policy := s.resolveAssumptions(input.Rates, input.Policy)

	if input.LumpSum < 0 {
		return domain.IncomeProjectionResult{}, errors.New("lump sum cannot be negative")
	}
	if input.CurrentAge <= 0 || input.RetirementAge < input.CurrentAge {
		return domain.IncomeProjectionResult{}, errors.New("invalid age range")
	}
	if input.AnnualIncome < 0 {
		return domain.IncomeProjectionResult{}, errors.New("annual income cannot be negative")
	}
	if input.MinIncomeReplacementRatio < 0 || input.MinIncomeReplacementRatio > MaxReplacementRatio {
		return domain.IncomeProjectionResult{}, errors.New("income replacement ratio out of range")
	}

	income := s.ProjectIncomeAndDuration(
		input.LumpSum,
		input.CurrentAge,
		input.RetirementAge,
		input.AnnualIncome,
		rates,
		policy,
		input.MinIncomeReplacementRatio,
	)

	income.TargetAnnualIncome = roundTo2Decimals(income.TargetAnnualIncome)
	income.YearlyIncome = roundTo2Decimals(income.YearlyIncome)
	income.MonthlyIncome = roundTo2Decimals(income.MonthlyIncome)
	return income, nil
}

func (s *ProjectionService) applyDefaults(input domain.PlanInput) domain.PlanInput {
	if input.Rates == nil {
		rates := s.defaultRates
		input.Rates = &rates
	}
	if input.Policy == nil {
		policy := s.defaultPolicy
		input.Policy = &policy
	}
	return input
}

func (s *ProjectionService) resolveAssumptions(
	rates *domain.RateAssumptions,
	policy *domain.AgePolicy,
) (domain.RateAssumptions, domain.AgePolicy) {
	r, p := s.defaultRates, s.defaultPolicy
	if rates != nil {
		r = *rates
	}
	if policy != nil {
		p = *policy
	}
	return r, p
}

// planCacheKey is the canonical JSON of the resolved input.
func planCacheKey(input domain.PlanInput) (string, error) {
	encoded, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return "plan:" + string(encoded), nil
}
