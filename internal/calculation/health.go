package calculation

import (
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	creditFloor     = decimal.NewFromInt(domain.MinCreditScore)
	creditSpan      = decimal.NewFromFloat(5.5) // (850-300)/100
	incomeReference = decimal.NewFromInt(100000)
)

// clampScore bounds a sub-score to [0, 100].
func clampScore(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}

// CreditSubScore rescales 300..850 onto 0..100.
func CreditSubScore(creditScore int) decimal.Decimal {
	return clampScore(decimal.NewFromInt(int64(creditScore)).Sub(creditFloor).Div(creditSpan))
}

// IncomeSubScore treats $100k a year as full marks.
func IncomeSubScore(annualIncome decimal.Decimal) decimal.Decimal {
	return clampScore(annualIncome.Div(incomeReference).Mul(hundred))
}

// DebtSubScore inverts the debt-to-income ratio: 0% is 100, 100% or more is 0.
func DebtSubScore(ratio decimal.Decimal) decimal.Decimal {
	return clampScore(hundred.Sub(ratio.Mul(hundred)))
}

// SavingsSubScore is the down payment as a percentage of the budget.
func SavingsSubScore(downPayment, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	return clampScore(downPayment.Div(budget).Mul(hundred))
}

// ScoreFinancialHealth computes the four sub-scores and their rounded mean.
// It never fails; degenerate inputs land on the clamp bounds.
func ScoreFinancialHealth(profile *domain.FinancialProfile) domain.FinancialHealthScore {
	pi := profile.PersonalInfo
	pr := profile.Preferences

	score := domain.FinancialHealthScore{
		Credit:  CreditSubScore(pi.CreditScore),
		Income:  IncomeSubScore(pi.AnnualIncome),
		Debt:    DebtSubScore(pi.DebtToIncomeRatio()),
		Savings: SavingsSubScore(pr.DownPayment, pr.Budget),
	}

	sum := score.Credit.Add(score.Income).Add(score.Debt).Add(score.Savings)
	score.Overall = int(sum.Div(decimal.NewFromInt(4)).Round(0).IntPart())
	return score
}
