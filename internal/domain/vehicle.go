package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Vehicle is one catalog entry. SeedScore is whatever score the catalog shipped
// with; it is informational and always replaced by the computed match score.
type Vehicle struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	Model          string          `yaml:"model" json:"model"`
	Year           int             `yaml:"year" json:"year"`
	Price          decimal.Decimal `yaml:"price" json:"price"`
	MonthlyPayment decimal.Decimal `yaml:"monthly_payment" json:"monthlyPayment"`
	Features       []string        `yaml:"features" json:"features"`
	SeedScore      int             `yaml:"seed_score,omitempty" json:"-"`
}

// MatchTier labels a match score
type MatchTier string

const (
	MatchExcellent MatchTier = "Excellent Match"
	MatchGreat     MatchTier = "Great Match"
	MatchGood      MatchTier = "Good Match"
	MatchFair      MatchTier = "Fair Match"
)

// MatchTierFor buckets a 0-100 match score
func MatchTierFor(score int) MatchTier {
	switch {
	case score >= 90:
		return MatchExcellent
	case score >= 80:
		return MatchGreat
	case score >= 70:
		return MatchGood
	default:
		return MatchFair
	}
}

// VehicleRecommendation is a catalog vehicle scored against a profile
type VehicleRecommendation struct {
	Vehicle    `yaml:",inline"`
	MatchScore int       `yaml:"match_score" json:"matchScore"`
	MatchTier  MatchTier `yaml:"match_tier" json:"matchTier"`
}

// VehicleFilter narrows the visible recommendation set. It does not affect scoring.
type VehicleFilter struct {
	MinPrice          decimal.Decimal `yaml:"min_price" json:"minPrice"`
	MaxPrice          decimal.Decimal `yaml:"max_price" json:"maxPrice"`
	MaxMonthlyPayment decimal.Decimal `yaml:"max_monthly_payment" json:"maxMonthlyPayment"`
	VehicleType       VehicleType     `yaml:"vehicle_type" json:"vehicleType"`
}

// Allows reports whether v falls inside the price window, under the payment
// ceiling and matches the type filter (VehicleTypeAny or empty disables it).
func (f VehicleFilter) Allows(v Vehicle) bool {
	if v.Price.LessThan(f.MinPrice) || v.Price.GreaterThan(f.MaxPrice) {
		return false
	}
	if v.MonthlyPayment.GreaterThan(f.MaxMonthlyPayment) {
		return false
	}
	if f.VehicleType == "" || f.VehicleType == VehicleTypeAny {
		return true
	}
	return ModelMatchesType(v.Model, f.VehicleType)
}

// ModelMatchesType is a case-insensitive substring test of the type against the model name
func ModelMatchesType(model string, t VehicleType) bool {
	return strings.Contains(strings.ToLower(model), strings.ToLower(string(t)))
}
