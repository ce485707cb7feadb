package calculation

import (
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
)

// Achievement thresholds
var (
	creditTarget       = decimal.NewFromInt(720)
	budgetIncomeLimit  = decimal.NewFromFloat(0.20)
	downPaymentShare   = decimal.NewFromFloat(0.20)
	debtRatioLimit     = decimal.NewFromFloat(0.40)
	paymentIncomeShare = decimal.NewFromFloat(0.15)
)

const (
	goalTarget      = 3
	lifestyleTarget = 2
	// basicRuleCount is how many leading rules feed the meta achievement.
	basicRuleCount = 7
	// guruThreshold is how many basic rules must be unlocked for the meta achievement.
	guruThreshold = 5
)

type achievementMeta struct {
	id, title, description, reward string
}

var achievementCatalog = []achievementMeta{
	{domain.AchievementProfileComplete, "Profile Pioneer", "Complete your financial profile", "Unlocked personalized recommendations"},
	{domain.AchievementCreditOptimizer, "Credit Optimizer", "Achieve a credit score above 720", "Better financing rates"},
	{domain.AchievementBudgetMaster, "Budget Master", "Keep vehicle budget under 20% of annual income", "Financial stability badge"},
	{domain.AchievementDownPaymentHero, "Down Payment Hero", "Make a 20% down payment", "Lower monthly payments"},
	{domain.AchievementDebtDestroyer, "Debt Destroyer", "Maintain debt-to-income ratio under 40%", "Better loan approval odds"},
	{domain.AchievementGoalSetter, "Goal Setter", "Set 3 or more financial goals", "Focused financial planning"},
	{domain.AchievementPaymentPlanner, "Payment Planner", "Set a realistic monthly payment target", "Sustainable payment plan"},
	{domain.AchievementLifestyle, "Lifestyle Matcher", "Define your lifestyle preferences", "Better vehicle recommendations"},
	{domain.AchievementFinancialGuru, "Financial Guru", "Unlock all basic achievements", "Master financial navigator status"},
	{domain.AchievementJourneyComplete, "Toyota Champion", "Complete your Toyota financing journey", "Exclusive Toyota rewards"},
}

type ruleResult struct {
	unlocked bool
	progress decimal.Decimal
}

func capProgress(v decimal.Decimal) decimal.Decimal {
	return decimal.Min(hundred, decimal.Max(decimal.Zero, v))
}

func countProgress(count, target int) decimal.Decimal {
	return capProgress(decimal.NewFromInt(int64(count)).Div(decimal.NewFromInt(int64(target))).Mul(hundred))
}

// basicRules evaluates rules one through eight in catalog order.
func basicRules(profile *domain.FinancialProfile) []ruleResult {
	pi := profile.PersonalInfo
	pr := profile.Preferences
	goals := profile.Goals

	results := make([]ruleResult, 0, 8)

	results = append(results, ruleResult{unlocked: true, progress: hundred})

	credit := decimal.NewFromInt(int64(pi.CreditScore))
	results = append(results, ruleResult{
		unlocked: credit.GreaterThanOrEqual(creditTarget),
		progress: capProgress(credit.Div(creditTarget).Mul(hundred)),
	})

	budgetRule := ruleResult{progress: decimal.Zero}
	if pi.AnnualIncome.IsPositive() && pr.Budget.IsPositive() {
		ratio := pr.Budget.Div(pi.AnnualIncome)
		budgetRule.unlocked = ratio.LessThanOrEqual(budgetIncomeLimit)
		budgetRule.progress = capProgress(budgetIncomeLimit.Div(ratio).Mul(hundred))
	}
	results = append(results, budgetRule)

	downRule := ruleResult{progress: decimal.Zero}
	if pr.Budget.IsPositive() {
		share := pr.DownPayment.Div(pr.Budget)
		downRule.unlocked = share.GreaterThanOrEqual(downPaymentShare)
		downRule.progress = capProgress(share.Mul(hundred).Mul(decimal.NewFromInt(5)))
	}
	results = append(results, downRule)

	dti := pi.DebtToIncomeRatio()
	results = append(results, ruleResult{
		unlocked: dti.LessThanOrEqual(debtRatioLimit),
		progress: capProgress(decimal.NewFromInt(1).Sub(dti.Div(debtRatioLimit)).Mul(hundred)),
	})

	results = append(results, ruleResult{
		unlocked: len(goals.FinancialGoals) >= goalTarget,
		progress: countProgress(len(goals.FinancialGoals), goalTarget),
	})

	paymentRule := ruleResult{progress: decimal.Zero}
	if goals.MonthlyPaymentTarget.IsPositive() {
		affordable := paymentIncomeShare.Mul(pi.AnnualIncome).Div(twelve)
		paymentRule.unlocked = goals.MonthlyPaymentTarget.LessThanOrEqual(affordable)
		paymentRule.progress = capProgress(affordable.Div(goals.MonthlyPaymentTarget).Mul(hundred))
	}
	results = append(results, paymentRule)

	results = append(results, ruleResult{
		unlocked: len(pr.Lifestyle) >= lifestyleTarget,
		progress: countProgress(len(pr.Lifestyle), lifestyleTarget),
	})

	return results
}

// EvaluateAchievements returns the ten achievements in fixed order. The meta
// achievement is derived from the first seven rules only and the journey
// achievement is never unlocked.
func EvaluateAchievements(profile *domain.FinancialProfile) []domain.Achievement {
	results := basicRules(profile)

	unlockedBasics := 0
	for _, r := range results[:basicRuleCount] {
		if r.unlocked {
			unlockedBasics++
		}
	}
	results = append(results,
		ruleResult{
			unlocked: unlockedBasics >= guruThreshold,
			progress: countProgress(unlockedBasics, basicRuleCount),
		},
		// TODO: unlock once a completed purchase is recorded on the profile.
		ruleResult{progress: decimal.Zero},
	)

	achievements := make([]domain.Achievement, len(achievementCatalog))
	for i, meta := range achievementCatalog {
		achievements[i] = domain.Achievement{
			ID:          meta.id,
			Title:       meta.title,
			Description: meta.description,
			Reward:      meta.reward,
			Unlocked:    results[i].unlocked,
			Progress:    results[i].progress,
		}
	}
	return achievements
}
