package calculation

import (
	"slices"
	"sort"
	"strings"

	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
)

// Match score weights
var (
	priceWeight     = decimal.NewFromFloat(0.4)
	paymentWeight   = decimal.NewFromFloat(0.3)
	typeWeight      = decimal.NewFromFloat(0.2)
	lifestyleWeight = decimal.NewFromFloat(0.1)

	typeMatched    = decimal.NewFromInt(100)
	typeMismatched = decimal.NewFromInt(60)
	lifestyleBase  = decimal.NewFromInt(50)
)

// Price window bounds used by DefaultFilter
var (
	minWindowPrice    = decimal.NewFromInt(15000)
	maxWindowPrice    = decimal.NewFromInt(80000)
	windowLowerFactor = decimal.NewFromFloat(0.7)
	windowUpperFactor = decimal.NewFromFloat(1.2)
)

// lifestyleRule awards a bonus when the vehicle name contains any of names,
// or when a feature satisfies featureMatch.
type lifestyleRule struct {
	bonus        int64
	names        []string
	featureMatch func(feature string) bool
}

var lifestyleRules = map[string]lifestyleRule{
	"family":        {bonus: 20, names: []string{"Highlander", "RAV4"}},
	"eco-conscious": {bonus: 25, names: []string{"Hybrid", "Prius"}},
	"adventure":     {bonus: 20, names: []string{"Tacoma", "RAV4"}},
	"business":      {bonus: 15, names: []string{"Camry", "Avalon"}},
	"luxury": {
		bonus:        20,
		names:        []string{"Highlander"},
		featureMatch: func(f string) bool { return f == "Premium" },
	},
	"tech-savvy": {
		bonus: 15,
		featureMatch: func(f string) bool {
			return strings.Contains(f, "Wireless") || strings.Contains(f, "CarPlay")
		},
	},
}

func (r lifestyleRule) matches(v domain.Vehicle) bool {
	for _, n := range r.names {
		if strings.Contains(v.Name, n) {
			return true
		}
	}
	if r.featureMatch != nil {
		return slices.ContainsFunc(v.Features, r.featureMatch)
	}
	return false
}

// closeness is 100 at an exact hit, falling linearly with the relative gap.
// A non-positive reference yields zero.
func closeness(actual, reference decimal.Decimal) decimal.Decimal {
	if !reference.IsPositive() {
		return decimal.Zero
	}
	gap := actual.Sub(reference).Abs().Div(reference).Mul(hundred)
	return decimal.Max(decimal.Zero, hundred.Sub(gap))
}

// LifestyleScore starts at 50, adds the bonus of every tag whose rule the vehicle
// satisfies and caps at 100. Unknown tags contribute nothing.
func LifestyleScore(v domain.Vehicle, tags []string) decimal.Decimal {
	score := lifestyleBase
	for _, tag := range tags {
		rule, ok := lifestyleRules[tag]
		if !ok || !rule.matches(v) {
			continue
		}
		score = score.Add(decimal.NewFromInt(rule.bonus))
	}
	return decimal.Min(score, hundred)
}

// MatchScore rates how well a vehicle fits the profile on a 0-100 scale.
func MatchScore(v domain.Vehicle, profile *domain.FinancialProfile) int {
	price := closeness(v.Price, profile.Preferences.Budget)
	payment := closeness(v.MonthlyPayment, profile.Goals.MonthlyPaymentTarget)

	kind := typeMismatched
	if domain.ModelMatchesType(v.Model, profile.Preferences.VehicleType) {
		kind = typeMatched
	}

	lifestyle := LifestyleScore(v, profile.Preferences.Lifestyle)

	total := price.Mul(priceWeight).
		Add(payment.Mul(paymentWeight)).
		Add(kind.Mul(typeWeight)).
		Add(lifestyle.Mul(lifestyleWeight))
	return int(total.Round(0).IntPart())
}

// RecommendVehicles scores every catalog entry and sorts by descending score.
// Equal scores keep catalog order. The catalog is not modified.
func RecommendVehicles(catalog []domain.Vehicle, profile *domain.FinancialProfile) []domain.VehicleRecommendation {
	recs := make([]domain.VehicleRecommendation, 0, len(catalog))
	for _, v := range catalog {
		v.Features = append([]string(nil), v.Features...)
		score := MatchScore(v, profile)
		recs = append(recs, domain.VehicleRecommendation{
			Vehicle:    v,
			MatchScore: score,
			MatchTier:  domain.MatchTierFor(score),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	return recs
}

// DefaultFilter derives the visible price window, payment ceiling and type filter from the profile.
func DefaultFilter(profile *domain.FinancialProfile) domain.VehicleFilter {
	budget := profile.Preferences.Budget
	return domain.VehicleFilter{
		MinPrice:          decimal.Max(minWindowPrice, budget.Mul(windowLowerFactor)),
		MaxPrice:          decimal.Min(maxWindowPrice, budget.Mul(windowUpperFactor)),
		MaxMonthlyPayment: profile.Goals.MonthlyPaymentTarget,
		VehicleType:       profile.Preferences.VehicleType,
	}
}

// CompleteFilter fills the unset price ceiling, payment ceiling and vehicle
// type of f from the profile's default window. A zero MinPrice is kept.
func CompleteFilter(f domain.VehicleFilter, profile *domain.FinancialProfile) domain.VehicleFilter {
	def := DefaultFilter(profile)
	if f.MaxPrice.IsZero() {
		f.MaxPrice = def.MaxPrice
	}
	if f.MaxMonthlyPayment.IsZero() {
		f.MaxMonthlyPayment = def.MaxMonthlyPayment
	}
	if f.VehicleType == "" {
		f.VehicleType = def.VehicleType
	}
	return f
}

// FilterRecommendations keeps the recommendations the filter allows, preserving order.
func FilterRecommendations(recs []domain.VehicleRecommendation, filter domain.VehicleFilter) []domain.VehicleRecommendation {
	out := make([]domain.VehicleRecommendation, 0, len(recs))
	for _, r := range recs {
		if filter.Allows(r.Vehicle) {
			out = append(out, r)
		}
	}
	return out
}
