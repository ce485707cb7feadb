package calculation

import (
	"context"
	"fmt"

	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine runs the amortization, health and match/achievement calculators over a
// profile. It holds no per-profile state; every call recomputes from its inputs.
type Engine struct {
	Logger Logger
	Streak StreakSource
}

// NewEngine creates an engine with a no-op logger and no streak source.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// SetStreakSource installs the dashboard streak provider; nil disables it.
func (e *Engine) SetStreakSource(s StreakSource) {
	e.Streak = s
}

func (e *Engine) validate(profile *domain.FinancialProfile) error {
	if err := profile.Validate(); err != nil {
		e.Logger.Warnf("rejected profile: %v", err)
		return err
	}
	return nil
}

// Analyze validates the profile and produces the full report. The catalog is
// scored as given; an empty catalog yields no recommendations.
func (e *Engine) Analyze(ctx context.Context, profile *domain.FinancialProfile, catalog []domain.Vehicle) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.validate(profile); err != nil {
		return nil, err
	}

	health := ScoreFinancialHealth(profile)
	e.Logger.Debugf("health overall=%d credit=%s income=%s debt=%s savings=%s",
		health.Overall, health.Credit.StringFixed(2), health.Income.StringFixed(2),
		health.Debt.StringFixed(2), health.Savings.StringFixed(2))

	scenarios := GenerateScenarios(profile)
	principal := profile.Principal()
	schedules := make(map[string][]domain.AmortizationPoint, len(scenarios))
	for _, s := range scenarios {
		if s.Type != domain.FinancingLoan {
			continue
		}
		schedules[s.ID] = AmortizationSchedule(principal, s)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recs := RecommendVehicles(catalog, profile)
	filter := DefaultFilter(profile)
	matches := FilterRecommendations(recs, filter)
	e.Logger.Debugf("scored %d vehicles, %d within filter", len(recs), len(matches))

	achievements := EvaluateAchievements(profile)

	report := &domain.Report{
		Profile:           *profile,
		DebtToIncomeRatio: profile.PersonalInfo.DebtToIncomeRatio(),
		Health:            health,
		HealthTier:        health.Tier(),
		Scenarios:         scenarios,
		Schedules:         schedules,
		Recommendations:   recs,
		Matches:           matches,
		Filter:            filter,
		Achievements:      achievements,
		UnlockedCount:     domain.UnlockedCount(achievements),
		Advice:            GenerateAdvice(profile, health),
		Stats:             ComputeUserStats(profile, e.Streak),
	}

	e.Logger.Infof("analysis complete: overall=%d tier=%s unlocked=%d/%d",
		health.Overall, report.HealthTier, report.UnlockedCount, len(achievements))
	return report, nil
}

// Health scores a validated profile.
func (e *Engine) Health(profile *domain.FinancialProfile) (domain.FinancialHealthScore, error) {
	if err := e.validate(profile); err != nil {
		return domain.FinancialHealthScore{}, err
	}
	return ScoreFinancialHealth(profile), nil
}

// Scenarios generates the four financing options for a validated profile.
func (e *Engine) Scenarios(profile *domain.FinancialProfile) ([]domain.FinancingOption, error) {
	if err := e.validate(profile); err != nil {
		return nil, err
	}
	return GenerateScenarios(profile), nil
}

// Recommend scores and sorts the catalog against a validated profile.
func (e *Engine) Recommend(profile *domain.FinancialProfile, catalog []domain.Vehicle) ([]domain.VehicleRecommendation, error) {
	if err := e.validate(profile); err != nil {
		return nil, err
	}
	return RecommendVehicles(catalog, profile), nil
}

// Achievements evaluates the achievement rule set for a validated profile.
func (e *Engine) Achievements(profile *domain.FinancialProfile) ([]domain.Achievement, error) {
	if err := e.validate(profile); err != nil {
		return nil, err
	}
	return EvaluateAchievements(profile), nil
}

// Quote checks explicit loan terms and prices them.
func (e *Engine) Quote(principal, annualRatePercent decimal.Decimal, termMonths int, downPayment decimal.Decimal) (domain.PaymentQuote, error) {
	switch {
	case principal.IsNegative():
		return domain.PaymentQuote{}, fmt.Errorf("%w: principal cannot be negative", domain.ErrInvalidInput)
	case annualRatePercent.IsNegative():
		return domain.PaymentQuote{}, fmt.Errorf("%w: interest rate cannot be negative", domain.ErrInvalidInput)
	case termMonths <= 0 || termMonths > MaxTermMonths:
		return domain.PaymentQuote{}, fmt.Errorf("%w: term must be between 1 and %d months, got %d", domain.ErrInvalidInput, MaxTermMonths, termMonths)
	case downPayment.IsNegative():
		return domain.PaymentQuote{}, fmt.Errorf("%w: down payment cannot be negative", domain.ErrInvalidInput)
	}
	q := Quote(principal, annualRatePercent, termMonths, downPayment)
	e.Logger.Debugf("quote principal=%s rate=%s term=%d payment=%s",
		principal.StringFixed(2), annualRatePercent.String(), termMonths, q.MonthlyPayment.StringFixed(2))
	return q, nil
}
