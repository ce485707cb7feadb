package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EmploymentStatus describes how the applicant earns income
type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "employed"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
	EmploymentRetired      EmploymentStatus = "retired"
)

// VehicleType is the body style the applicant is shopping for
type VehicleType string

const (
	VehicleSedan   VehicleType = "sedan"
	VehicleSUV     VehicleType = "suv"
	VehicleTruck   VehicleType = "truck"
	VehicleHybrid  VehicleType = "hybrid"
	VehicleLuxury  VehicleType = "luxury"
	VehicleTypeAny VehicleType = "all" // filter sentinel only, never a profile value
)

// Credit score bounds accepted on a profile
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// PersonalInfo holds the income side of the profile
type PersonalInfo struct {
	AnnualIncome     decimal.Decimal  `yaml:"annual_income" json:"annualIncome"`
	MonthlyExpenses  decimal.Decimal  `yaml:"monthly_expenses" json:"monthlyExpenses"`
	CreditScore      int              `yaml:"credit_score" json:"creditScore"`
	EmploymentStatus EmploymentStatus `yaml:"employment_status" json:"employmentStatus"`
}

// DebtToIncomeRatio is always derived from expenses and income so it can never
// disagree with its source fields. Zero income yields zero.
func (pi PersonalInfo) DebtToIncomeRatio() decimal.Decimal {
	if !pi.AnnualIncome.IsPositive() {
		return decimal.Zero
	}
	return pi.MonthlyExpenses.Mul(decimal.NewFromInt(12)).Div(pi.AnnualIncome)
}

// MonthlyIncome converts the annual income to a monthly figure
func (pi PersonalInfo) MonthlyIncome() decimal.Decimal {
	return pi.AnnualIncome.Div(decimal.NewFromInt(12))
}

// Preferences describes the purchase the applicant has in mind
type Preferences struct {
	Budget      decimal.Decimal `yaml:"budget" json:"budget"`
	DownPayment decimal.Decimal `yaml:"down_payment" json:"downPayment"`
	LoanTerm    int             `yaml:"loan_term" json:"loanTerm"` // months
	VehicleType VehicleType     `yaml:"vehicle_type" json:"vehicleType"`
	Lifestyle   []string        `yaml:"lifestyle,omitempty" json:"lifestyle"`
	Features    []string        `yaml:"features,omitempty" json:"features"`
}

// Goals captures payment targets and planning horizon
type Goals struct {
	MonthlyPaymentTarget decimal.Decimal `yaml:"monthly_payment_target" json:"monthlyPaymentTarget"`
	FinancialGoals       []string        `yaml:"financial_goals,omitempty" json:"financialGoals"`
	Timeline             int             `yaml:"timeline" json:"timeline"` // months
}

// FinancialProfile is the single input record every computation consumes.
// Treat it as immutable for the duration of a call.
type FinancialProfile struct {
	PersonalInfo PersonalInfo `yaml:"personal_info" json:"personalInfo"`
	Preferences  Preferences  `yaml:"preferences" json:"preferences"`
	Goals        Goals        `yaml:"goals" json:"goals"`
}

// Principal is the amount left to finance after the down payment
func (p *FinancialProfile) Principal() decimal.Decimal {
	return p.Preferences.Budget.Sub(p.Preferences.DownPayment)
}

// Validate checks the field constraints the engine relies on. The returned
// error wraps ErrInvalidProfile and names the first offending field.
func (p *FinancialProfile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: profile is required", ErrInvalidProfile)
	}

	pi := p.PersonalInfo
	if !pi.AnnualIncome.IsPositive() {
		return fmt.Errorf("%w: annual income must be positive", ErrInvalidProfile)
	}
	if pi.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("%w: monthly expenses cannot be negative", ErrInvalidProfile)
	}
	if pi.CreditScore < MinCreditScore || pi.CreditScore > MaxCreditScore {
		return fmt.Errorf("%w: credit score must be between %d and %d, got %d", ErrInvalidProfile, MinCreditScore, MaxCreditScore, pi.CreditScore)
	}
	switch pi.EmploymentStatus {
	case EmploymentEmployed, EmploymentSelfEmployed, EmploymentUnemployed, EmploymentRetired:
	default:
		return fmt.Errorf("%w: unknown employment status %q", ErrInvalidProfile, pi.EmploymentStatus)
	}

	pr := p.Preferences
	if !pr.Budget.IsPositive() {
		return fmt.Errorf("%w: budget must be positive", ErrInvalidProfile)
	}
	if pr.DownPayment.IsNegative() {
		return fmt.Errorf("%w: down payment cannot be negative", ErrInvalidProfile)
	}
	if pr.LoanTerm <= 0 {
		return fmt.Errorf("%w: loan term must be positive", ErrInvalidProfile)
	}
	if !IsKnownVehicleType(pr.VehicleType) {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidProfile, pr.VehicleType)
	}

	if !p.Goals.MonthlyPaymentTarget.IsPositive() {
		return fmt.Errorf("%w: monthly payment target must be positive", ErrInvalidProfile)
	}
	if p.Goals.Timeline < 0 {
		return fmt.Errorf("%w: timeline cannot be negative", ErrInvalidProfile)
	}

	return nil
}

// IsKnownVehicleType reports whether t is one of the profile vehicle types
func IsKnownVehicleType(t VehicleType) bool {
	switch t {
	case VehicleSedan, VehicleSUV, VehicleTruck, VehicleHybrid, VehicleLuxury:
		return true
	}
	return false
}
