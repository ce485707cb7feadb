package domain

import "github.com/shopspring/decimal"

// AdviceType classifies a piece of guidance
type AdviceType string

const (
	AdviceTip         AdviceType = "tip"
	AdviceWarning     AdviceType = "warning"
	AdviceOpportunity AdviceType = "opportunity"
)

// Impact is how much acting on advice is expected to matter
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Advice is one rule-based recommendation derived from a health score
type Advice struct {
	Type        AdviceType `yaml:"type" json:"type"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Action      string     `yaml:"action" json:"action"`
	Impact      Impact     `yaml:"impact" json:"impact"`
}

// UserStats are the dashboard summary counters
type UserStats struct {
	EstimatedSavings  decimal.Decimal `yaml:"estimated_savings" json:"estimatedSavings"`
	CreditImprovement int             `yaml:"credit_improvement" json:"creditImprovement"`
	GoalsSet          int             `yaml:"goals_set" json:"goalsSet"`
	Streak            int             `yaml:"streak" json:"streak"`
}
