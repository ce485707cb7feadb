package calculation

import (
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
)

// adviceThreshold is the rounded sub-score below which advice is raised.
const adviceThreshold = 70

// GenerateAdvice turns a health score into rule-based guidance. Sub-scores are
// compared after rounding to whole points.
func GenerateAdvice(profile *domain.FinancialProfile, health domain.FinancialHealthScore) []domain.Advice {
	advice := make([]domain.Advice, 0, 3)

	if health.Credit.Round(0).IntPart() < adviceThreshold {
		advice = append(advice, domain.Advice{
			Type:        domain.AdviceTip,
			Title:       "Improve Credit Score",
			Description: "Your credit score could be improved. Consider paying down existing debt and maintaining consistent payments.",
			Action:      "View credit improvement tips",
			Impact:      domain.ImpactHigh,
		})
	}

	if health.Debt.Round(0).IntPart() < adviceThreshold {
		advice = append(advice, domain.Advice{
			Type:        domain.AdviceWarning,
			Title:       "High Debt-to-Income Ratio",
			Description: "Your debt-to-income ratio is higher than recommended. Consider reducing monthly expenses or increasing income.",
			Action:      "Explore debt reduction strategies",
			Impact:      domain.ImpactHigh,
		})
	}

	pr := profile.Preferences
	if pr.DownPayment.LessThan(pr.Budget.Mul(downPaymentShare)) {
		advice = append(advice, domain.Advice{
			Type:        domain.AdviceOpportunity,
			Title:       "Increase Down Payment",
			Description: "A larger down payment could reduce your monthly payments and total interest paid.",
			Action:      "Calculate down payment scenarios",
			Impact:      domain.ImpactMedium,
		})
	}

	return advice
}

const creditBaseline = 650

var savingsEstimateRate = decimal.NewFromFloat(0.05)

// ComputeUserStats derives the dashboard counters. A nil source reports a zero streak.
func ComputeUserStats(profile *domain.FinancialProfile, streak StreakSource) domain.UserStats {
	stats := domain.UserStats{
		EstimatedSavings:  profile.Preferences.Budget.Mul(savingsEstimateRate).Round(0),
		CreditImprovement: max(0, profile.PersonalInfo.CreditScore-creditBaseline),
		GoalsSet:          len(profile.Goals.FinancialGoals),
	}
	if streak != nil {
		stats.Streak = streak.Streak()
	}
	return stats
}
