package calculation

import (
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	leaseTerm = 36

	// MaxTermMonths is the longest term the ad-hoc calculator accepts.
	MaxTermMonths = 600

	// scheduleScale bounds the digits carried by the running balance.
	scheduleScale = 10
	lnPrecision   = 16
)

var (
	hundred   = decimal.NewFromInt(100)
	twelve    = decimal.NewFromInt(12)
	leaseRate = decimal.NewFromFloat(0.012)
)

// scenarioTemplate holds the fixed parameters of one financing scenario.
type scenarioTemplate struct {
	id       string
	kind     domain.FinancingType
	rate     decimal.Decimal // annual percent
	term     int
	features []string
	pros     []string
	cons     []string
}

var scenarioTemplates = []scenarioTemplate{
	{
		id:       domain.ScenarioConservative,
		kind:     domain.FinancingLoan,
		rate:     decimal.NewFromFloat(5.5),
		term:     60,
		features: []string{"Low interest rate", "Conservative approach", "Stable payments"},
		pros:     []string{"Lowest interest rate", "Predictable payments"},
		cons:     []string{"Higher monthly payments", "Longer commitment"},
	},
	{
		id:       domain.ScenarioBalanced,
		kind:     domain.FinancingLoan,
		rate:     decimal.NewFromFloat(6.5),
		term:     72,
		features: []string{"Balanced approach", "Moderate payments", "Flexible term"},
		pros:     []string{"Moderate monthly payments", "Good balance of cost and affordability"},
		cons:     []string{"Higher total interest", "Longer repayment period"},
	},
	{
		id:       domain.ScenarioAggressive,
		kind:     domain.FinancingLoan,
		rate:     decimal.NewFromFloat(7.5),
		term:     84,
		features: []string{"Lowest monthly payment", "Extended term", "Maximum affordability"},
		pros:     []string{"Lowest monthly payments", "More cash flow flexibility"},
		cons:     []string{"Highest total interest", "Longest commitment", "Higher interest rate"},
	},
	{
		id:       domain.ScenarioLease,
		kind:     domain.FinancingLease,
		rate:     decimal.Zero,
		term:     leaseTerm,
		features: []string{"Low monthly payments", "New vehicle every 3 years", "Warranty coverage"},
		pros:     []string{"Lowest monthly payments", "Always under warranty", "No depreciation risk"},
		cons:     []string{"No ownership", "Mileage restrictions", "Continuous payments"},
	},
}

// monthlyRate converts an annual percentage into the periodic rate.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// MonthlyPayment returns the fixed-rate amortized payment. A non-positive term
// yields zero and a zero rate falls back to straight-line repayment.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent.IsZero() {
		return principal.Div(n)
	}

	r := monthlyRate(annualRatePercent)
	factor := decimal.NewFromInt(1).Add(r).Pow(n)
	denominator := factor.Sub(decimal.NewFromInt(1))
	if denominator.IsZero() {
		return principal.Div(n)
	}
	return principal.Mul(r).Mul(factor).Div(denominator)
}

// TotalCost is every payment over the term plus the down payment.
func TotalCost(payment decimal.Decimal, termMonths int, downPayment decimal.Decimal) decimal.Decimal {
	return payment.Mul(decimal.NewFromInt(int64(termMonths))).Add(downPayment)
}

// LeasePayment approximates a lease as 1.2% of the principal per month.
func LeasePayment(principal decimal.Decimal) decimal.Decimal {
	return principal.Mul(leaseRate)
}

// GenerateScenarios builds the conservative, balanced, aggressive and lease
// options for the profile's principal, in that order.
func GenerateScenarios(profile *domain.FinancialProfile) []domain.FinancingOption {
	principal := profile.Principal()
	down := profile.Preferences.DownPayment

	options := make([]domain.FinancingOption, 0, len(scenarioTemplates))
	var baseline decimal.Decimal

	for _, tpl := range scenarioTemplates {
		var payment decimal.Decimal
		if tpl.kind == domain.FinancingLease {
			payment = LeasePayment(principal)
		} else {
			payment = MonthlyPayment(principal, tpl.rate, tpl.term)
		}
		total := TotalCost(payment, tpl.term, down)

		savings := decimal.Zero
		switch tpl.id {
		case domain.ScenarioConservative:
			baseline = total
		case domain.ScenarioBalanced, domain.ScenarioAggressive:
			savings = baseline.Sub(total)
		}

		options = append(options, domain.FinancingOption{
			ID:             tpl.id,
			Type:           tpl.kind,
			MonthlyPayment: payment,
			TotalCost:      total,
			InterestRate:   tpl.rate,
			Term:           tpl.term,
			DownPayment:    down,
			Savings:        savings,
			Features:       append([]string(nil), tpl.features...),
			Pros:           append([]string(nil), tpl.pros...),
			Cons:           append([]string(nil), tpl.cons...),
		})
	}
	return options
}

// AmortizationSchedule walks the loan month by month and samples the state at
// every 12th month and at the final month. Reported balances never go below zero.
func AmortizationSchedule(principal decimal.Decimal, option domain.FinancingOption) []domain.AmortizationPoint {
	if option.Term <= 0 {
		return nil
	}

	r := monthlyRate(option.InterestRate)
	balance := principal
	points := make([]domain.AmortizationPoint, 0, option.Term/12+1)

	for month := 1; month <= option.Term; month++ {
		interest := balance.Mul(r)
		principalPaid := option.MonthlyPayment.Sub(interest)
		balance = balance.Sub(principalPaid).Round(scheduleScale)

		if month%12 == 0 || month == option.Term {
			reported := balance
			if reported.IsNegative() {
				reported = decimal.Zero
			}
			points = append(points, domain.AmortizationPoint{
				Month:     month,
				Year:      (month + 11) / 12,
				Balance:   reported.Round(2),
				Interest:  interest.Round(2),
				Principal: principalPaid.Round(2),
			})
		}
	}
	return points
}

// PrincipalFromPayment inverts MonthlyPayment: the principal a given payment retires.
func PrincipalFromPayment(payment, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent.IsZero() {
		return payment.Mul(n)
	}
	r := monthlyRate(annualRatePercent)
	factor := decimal.NewFromInt(1).Add(r).Pow(n)
	return payment.Mul(factor.Sub(decimal.NewFromInt(1))).Div(r.Mul(factor))
}

// TermFromPayment inverts MonthlyPayment for the term, in fractional months.
// It returns zero when the payment never retires the principal.
func TermFromPayment(principal, payment, annualRatePercent decimal.Decimal) decimal.Decimal {
	if !payment.IsPositive() {
		return decimal.Zero
	}
	if annualRatePercent.IsZero() {
		return principal.Div(payment)
	}
	r := monthlyRate(annualRatePercent)
	coverage := decimal.NewFromInt(1).Sub(principal.Mul(r).Div(payment))
	if !coverage.IsPositive() {
		return decimal.Zero
	}
	lnCoverage, err := coverage.Ln(lnPrecision)
	if err != nil {
		return decimal.Zero
	}
	lnGrowth, err := decimal.NewFromInt(1).Add(r).Ln(lnPrecision)
	if err != nil || lnGrowth.IsZero() {
		return decimal.Zero
	}
	return lnCoverage.Neg().Div(lnGrowth)
}

// Quote is the ad-hoc calculator: payment, total cost and total interest for
// explicit loan terms.
func Quote(principal, annualRatePercent decimal.Decimal, termMonths int, downPayment decimal.Decimal) domain.PaymentQuote {
	payment := MonthlyPayment(principal, annualRatePercent, termMonths)
	total := TotalCost(payment, termMonths, downPayment)
	return domain.PaymentQuote{
		Principal:      principal,
		InterestRate:   annualRatePercent,
		Term:           termMonths,
		DownPayment:    downPayment,
		MonthlyPayment: payment,
		TotalCost:      total,
		TotalInterest:  total.Sub(principal).Sub(downPayment),
	}
}
