package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileYAML = `personal_info:
  annual_income: 72000
  monthly_expenses: 1800
  credit_score: 735
  employment_status: self-employed
preferences:
  budget: 30000
  down_payment: 6000
  loan_term: 72
  vehicle_type: suv
  lifestyle: [family, adventure]
  features: [AWD]
goals:
  monthly_payment_target: 450
  financial_goals: [save, invest, travel]
  timeline: 18
`

const catalogYAML = `vehicles:
  - id: rav4-hybrid
    name: RAV4 Hybrid
    model: RAV4
    year: 2024
    price: 32000
    monthly_payment: 480
    features: [AWD, Hybrid Engine]
    seed_score: 88
  - id: corolla-cross
    name: Corolla Cross
    model: Corolla Cross
    year: 2024
    price: 24000
    monthly_payment: 360
    features: [Apple CarPlay]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadProfile_Success(t *testing.T) {
	parser := NewInputParser()
	profile, err := parser.LoadProfile(writeTemp(t, "profile.yaml", profileYAML))
	require.NoError(t, err)

	assert.True(t, profile.PersonalInfo.AnnualIncome.Equal(decimal.NewFromInt(72000)))
	assert.Equal(t, 735, profile.PersonalInfo.CreditScore)
	assert.Equal(t, domain.EmploymentSelfEmployed, profile.PersonalInfo.EmploymentStatus)
	assert.Equal(t, domain.VehicleSUV, profile.Preferences.VehicleType)
	assert.Equal(t, []string{"family", "adventure"}, profile.Preferences.Lifestyle)
	assert.Equal(t, 72, profile.Preferences.LoanTerm)
	assert.Len(t, profile.Goals.FinancialGoals, 3)
	// derived, never decoded
	assert.Equal(t, "0.3", profile.PersonalInfo.DebtToIncomeRatio().String())
}

func TestLoadProfile_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	_, err = parser.ParseProfile([]byte("personal_info: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	_, err = parser.ParseProfile([]byte("personal_info:\n  annual_income: 0\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidProfile))
}

func TestLoadCatalog(t *testing.T) {
	parser := NewInputParser()
	vehicles, err := parser.LoadCatalog(writeTemp(t, "catalog.yaml", catalogYAML))
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	assert.Equal(t, "rav4-hybrid", vehicles[0].ID)
	assert.Equal(t, 88, vehicles[0].SeedScore)
	assert.True(t, vehicles[1].Price.Equal(decimal.NewFromInt(24000)))
	assert.Equal(t, []string{"Apple CarPlay"}, vehicles[1].Features)
}

func TestValidateCatalog(t *testing.T) {
	parser := NewInputParser()
	good := parser.CreateExampleCatalog()
	require.NoError(t, parser.ValidateCatalog(good))

	tests := []struct {
		name   string
		mutate func(vs []domain.Vehicle)
	}{
		{"missing id", func(vs []domain.Vehicle) { vs[0].ID = "" }},
		{"duplicate id", func(vs []domain.Vehicle) { vs[1].ID = vs[0].ID }},
		{"missing model", func(vs []domain.Vehicle) { vs[2].Model = "" }},
		{"zero price", func(vs []domain.Vehicle) { vs[3].Price = decimal.Zero }},
		{"negative payment", func(vs []domain.Vehicle) { vs[4].MonthlyPayment = decimal.NewFromInt(-1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vs := parser.CreateExampleCatalog()
			tc.mutate(vs)
			err := parser.ValidateCatalog(vs)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}

func TestCreateExampleProfile_IsValid(t *testing.T) {
	parser := NewInputParser()
	profile := parser.CreateExampleProfile()
	require.NoError(t, profile.Validate())
	assert.True(t, profile.Principal().Equal(decimal.NewFromInt(20000)))
}

func TestProfileYAMLRoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleProfile()

	data, err := parser.MarshalProfile(original)
	require.NoError(t, err)

	decoded, err := parser.ParseProfile(data)
	require.NoError(t, err)
	assert.True(t, decoded.Preferences.Budget.Equal(original.Preferences.Budget))
	assert.True(t, decoded.Goals.MonthlyPaymentTarget.Equal(original.Goals.MonthlyPaymentTarget))
	assert.Equal(t, original.Preferences.Lifestyle, decoded.Preferences.Lifestyle)

	catalogData, err := parser.MarshalCatalog(parser.CreateExampleCatalog())
	require.NoError(t, err)
	catalog, err := parser.ParseCatalog(catalogData)
	require.NoError(t, err)
	assert.Len(t, catalog, 6)
}
