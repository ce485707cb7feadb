package domain

import "github.com/shopspring/decimal"

// FinancingType distinguishes owning from leasing
type FinancingType string

const (
	FinancingLoan  FinancingType = "loan"
	FinancingLease FinancingType = "lease"
)

// Scenario identifiers, in the order they are generated
const (
	ScenarioConservative = "conservative"
	ScenarioBalanced     = "balanced"
	ScenarioAggressive   = "aggressive"
	ScenarioLease        = "lease"
)

// FinancingOption is one named financing configuration for the profile's principal
type FinancingOption struct {
	ID             string          `yaml:"id" json:"id"`
	Type           FinancingType   `yaml:"type" json:"type"`
	MonthlyPayment decimal.Decimal `yaml:"monthly_payment" json:"monthlyPayment"`
	TotalCost      decimal.Decimal `yaml:"total_cost" json:"totalCost"`
	InterestRate   decimal.Decimal `yaml:"interest_rate" json:"interestRate"` // annual percent
	Term           int             `yaml:"term" json:"term"`                  // months
	DownPayment    decimal.Decimal `yaml:"down_payment" json:"downPayment"`
	Savings        decimal.Decimal `yaml:"savings" json:"savings"` // vs. the conservative scenario
	Features       []string        `yaml:"features" json:"features"`
	Pros           []string        `yaml:"pros" json:"pros"`
	Cons           []string        `yaml:"cons" json:"cons"`
}

// AmortizationPoint is one sampled row of an amortization schedule
type AmortizationPoint struct {
	Month     int             `yaml:"month" json:"month"`
	Year      int             `yaml:"year" json:"year"`
	Balance   decimal.Decimal `yaml:"balance" json:"balance"`
	Interest  decimal.Decimal `yaml:"interest" json:"interest"`
	Principal decimal.Decimal `yaml:"principal" json:"principal"`
}

// PaymentQuote is the result of an ad-hoc loan calculation
type PaymentQuote struct {
	Principal      decimal.Decimal `yaml:"principal" json:"principal"`
	InterestRate   decimal.Decimal `yaml:"interest_rate" json:"interestRate"`
	Term           int             `yaml:"term" json:"term"`
	DownPayment    decimal.Decimal `yaml:"down_payment" json:"downPayment"`
	MonthlyPayment decimal.Decimal `yaml:"monthly_payment" json:"monthlyPayment"`
	TotalCost      decimal.Decimal `yaml:"total_cost" json:"totalCost"`
	TotalInterest  decimal.Decimal `yaml:"total_interest" json:"totalInterest"`
}
