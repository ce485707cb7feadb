package domain

import "github.com/shopspring/decimal"

// Achievement identifiers in evaluation order
const (
	AchievementProfileComplete = "profile-complete"
	AchievementCreditOptimizer = "credit-optimizer"
	AchievementBudgetMaster    = "budget-master"
	AchievementDownPaymentHero = "down-payment-hero"
	AchievementDebtDestroyer   = "debt-destroyer"
	AchievementGoalSetter      = "goal-setter"
	AchievementPaymentPlanner  = "payment-planner"
	AchievementLifestyle       = "lifestyle-matcher"
	AchievementFinancialGuru   = "financial-guru"
	AchievementJourneyComplete = "journey-complete"
)

// Achievement is the evaluated state of one gamification rule
type Achievement struct {
	ID          string          `yaml:"id" json:"id"`
	Title       string          `yaml:"title" json:"title"`
	Description string          `yaml:"description" json:"description"`
	Reward      string          `yaml:"reward" json:"reward"`
	Unlocked    bool            `yaml:"unlocked" json:"unlocked"`
	Progress    decimal.Decimal `yaml:"progress" json:"progress"` // 0-100
}

// UnlockedCount counts unlocked achievements in a list
func UnlockedCount(achievements []Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
