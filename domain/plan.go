package domain

// PlanInput is the full request for an end-to-end retirement plan. Rates and
// Policy may be omitted; the service fills in its configured defaults.
type PlanInput struct {
	CurrentAge                int
	RetirementAge             int
	AnnualIncome              float64
	CurrentBalance            float64
	Contribution              ContributionInput
	MinIncomeReplacementRatio float64
	Rates                     *RateAssumptions `json:",omitempty"`
	Policy                    *AgePolicy       `json:",omitempty"`
}

type PlanResult struct {
	EffectiveRetirementAge   int
	AnnualContribution       float64
	TotalSavingsAtRetirement float64
	TargetAnnualIncome       float64
	ProjectedYearlyIncome    float64
	ProjectedMonthlyIncome   float64
	Years                    int
	Months                   int
}

// SavingsProjectionInput asks only for the accumulation phase.
type SavingsProjectionInput struct {
	CurrentAge         int
	RetirementAge      int
	CurrentBalance     float64
	AnnualContribution float64
	Rates              *RateAssumptions `json:",omitempty"`
	Policy             *AgePolicy       `json:",omitempty"`
}

type SavingsProjectionResult struct {
	EffectiveRetirementAge int
	WorkingYears           int
	TotalSavings           float64
}

// IncomeProjectionInput asks how long a lump sum lasts against a target
// income, or what income it sustains over the full horizon.
type IncomeProjectionInput struct {
	LumpSum                   float64
	CurrentAge                int
	RetirementAge             int
	AnnualIncome              float64
	MinIncomeReplacementRatio float64
	Rates                     *RateAssumptions `json:",omitempty"`
	Policy                    *AgePolicy       `json:",omitempty"`
}

type IncomeProjectionResult struct {
	Years              int
	Months             int
	TargetAnnualIncome float64
	YearlyIncome       float64
	MonthlyIncome      float64
}
