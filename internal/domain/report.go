package domain

import "github.com/shopspring/decimal"

// Report aggregates every output of one engine run over a profile
type Report struct {
	Profile           FinancialProfile               `yaml:"profile" json:"profile"`
	DebtToIncomeRatio decimal.Decimal                `yaml:"debt_to_income_ratio" json:"debtToIncomeRatio"`
	Health            FinancialHealthScore           `yaml:"health" json:"health"`
	HealthTier        HealthTier                     `yaml:"health_tier" json:"healthTier"`
	Scenarios         []FinancingOption              `yaml:"scenarios" json:"scenarios"`
	Schedules         map[string][]AmortizationPoint `yaml:"schedules" json:"schedules"`
	Recommendations   []VehicleRecommendation        `yaml:"recommendations" json:"recommendations"`
	Matches           []VehicleRecommendation        `yaml:"matches" json:"matches"`
	Filter            VehicleFilter                  `yaml:"filter" json:"filter"`
	Achievements      []Achievement                  `yaml:"achievements" json:"achievements"`
	UnlockedCount     int                            `yaml:"unlocked_count" json:"unlockedCount"`
	Advice            []Advice                       `yaml:"advice" json:"advice"`
	Stats             UserStats                      `yaml:"stats" json:"stats"`
}

// Scenario returns the financing option with the given id
func (r *Report) Scenario(id string) (FinancingOption, bool) {
	for _, s := range r.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return FinancingOption{}, false
}

// BestScenario returns the option with the lowest total cost. Ties keep generation order.
func (r *Report) BestScenario() (FinancingOption, bool) {
	if len(r.Scenarios) == 0 {
		return FinancingOption{}, false
	}
	best := r.Scenarios[0]
	for _, s := range r.Scenarios[1:] {
		if s.TotalCost.LessThan(best.TotalCost) {
			best = s
		}
	}
	return best, true
}
