package output

import (
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the cheapest scenario.
type Recommendation struct {
	ScenarioID     string
	MonthlyPayment decimal.Decimal
	TotalCost      decimal.Decimal
	// relative to the conservative scenario
	CostChange       decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the lowest total cost and compares
// it to the conservative baseline.
func AnalyzeScenarios(report *domain.Report) Recommendation {
	best, ok := report.BestScenario()
	if !ok {
		return Recommendation{}
	}
	rec := Recommendation{
		ScenarioID:     best.ID,
		MonthlyPayment: best.MonthlyPayment,
		TotalCost:      best.TotalCost,
	}
	baseline, ok := report.Scenario(domain.ScenarioConservative)
	if !ok {
		return rec
	}
	rec.CostChange = best.TotalCost.Sub(baseline.TotalCost)
	if !baseline.TotalCost.IsZero() {
		rec.PercentageChange = rec.CostChange.Div(baseline.TotalCost).Mul(decimalHundred)
	}
	return rec
}
