package domain

import "github.com/shopspring/decimal"

// FinancialHealthScore summarises a profile as four normalized sub-scores.
// Sub-scores are kept unrounded; Overall is the rounded mean of exactly these values.
type FinancialHealthScore struct {
	Overall int             `yaml:"overall" json:"overall"`
	Credit  decimal.Decimal `yaml:"credit" json:"credit"`
	Income  decimal.Decimal `yaml:"income" json:"income"`
	Debt    decimal.Decimal `yaml:"debt" json:"debt"`
	Savings decimal.Decimal `yaml:"savings" json:"savings"`
}

// HealthTier buckets a 0-100 score for presentation
type HealthTier string

const (
	TierExcellent      HealthTier = "excellent"
	TierGood           HealthTier = "good"
	TierNeedsAttention HealthTier = "needs attention"
)

// TierFor maps a score to its tier: >=80 excellent, >=60 good, otherwise needs attention.
func TierFor(score decimal.Decimal) HealthTier {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return TierExcellent
	case score.GreaterThanOrEqual(decimal.NewFromInt(60)):
		return TierGood
	default:
		return TierNeedsAttention
	}
}

// Tier returns the tier of the overall score
func (h FinancialHealthScore) Tier() HealthTier {
	return TierFor(decimal.NewFromInt(int64(h.Overall)))
}
