package config

import (
	"fmt"
	"os"

	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of profile and catalog files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// catalogFile is the on-disk layout of a vehicle catalog
type catalogFile struct {
	Vehicles []domain.Vehicle `yaml:"vehicles"`
}

// LoadProfile loads a financial profile from a YAML (or JSON) file
func (ip *InputParser) LoadProfile(filename string) (*domain.FinancialProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseProfile(data)
}

// ParseProfile decodes and validates a profile document
func (ip *InputParser) ParseProfile(data []byte) (*domain.FinancialProfile, error) {
	var profile domain.FinancialProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// LoadCatalog loads a vehicle catalog from a YAML file
func (ip *InputParser) LoadCatalog(filename string) ([]domain.Vehicle, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseCatalog(data)
}

// ParseCatalog decodes and validates a catalog document
func (ip *InputParser) ParseCatalog(data []byte) ([]domain.Vehicle, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateCatalog(file.Vehicles); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	return file.Vehicles, nil
}

// ValidateCatalog checks every vehicle entry. Ids must be unique.
func (ip *InputParser) ValidateCatalog(vehicles []domain.Vehicle) error {
	seen := make(map[string]struct{}, len(vehicles))
	for i, v := range vehicles {
		if v.ID == "" {
			return fmt.Errorf("%w: vehicle %d has no id", domain.ErrInvalidCatalog, i)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: duplicate vehicle id %q", domain.ErrInvalidCatalog, v.ID)
		}
		seen[v.ID] = struct{}{}

		if v.Name == "" || v.Model == "" {
			return fmt.Errorf("%w: vehicle %s needs a name and model", domain.ErrInvalidCatalog, v.ID)
		}
		if !v.Price.IsPositive() {
			return fmt.Errorf("%w: vehicle %s price must be positive", domain.ErrInvalidCatalog, v.ID)
		}
		if v.MonthlyPayment.IsNegative() {
			return fmt.Errorf("%w: vehicle %s monthly payment cannot be negative", domain.ErrInvalidCatalog, v.ID)
		}
	}
	return nil
}

// MarshalProfile renders a profile as YAML
func (ip *InputParser) MarshalProfile(profile *domain.FinancialProfile) ([]byte, error) {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return data, nil
}

// MarshalCatalog renders a catalog as YAML
func (ip *InputParser) MarshalCatalog(vehicles []domain.Vehicle) ([]byte, error) {
	data, err := yaml.Marshal(catalogFile{Vehicles: vehicles})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return data, nil
}

// CreateExampleProfile creates the profile used by `navigator example`
func (ip *InputParser) CreateExampleProfile() *domain.FinancialProfile {
	return &domain.FinancialProfile{
		PersonalInfo: domain.PersonalInfo{
			AnnualIncome:     decimal.NewFromInt(50000),
			MonthlyExpenses:  decimal.NewFromInt(2000),
			CreditScore:      700,
			EmploymentStatus: domain.EmploymentEmployed,
		},
		Preferences: domain.Preferences{
			Budget:      decimal.NewFromInt(25000),
			DownPayment: decimal.NewFromInt(5000),
			LoanTerm:    60,
			VehicleType: domain.VehicleSedan,
			Lifestyle:   []string{"eco-conscious", "tech-savvy"},
			Features:    []string{"Safety Sense", "Apple CarPlay"},
		},
		Goals: domain.Goals{
			MonthlyPaymentTarget: decimal.NewFromInt(400),
			FinancialGoals:       []string{"build emergency fund", "improve credit"},
			Timeline:             12,
		},
	}
}

// CreateExampleCatalog returns a small sample lineup. It is sample data for the
// CLI and tests, not part of the scoring rules.
func (ip *InputParser) CreateExampleCatalog() []domain.Vehicle {
	v := func(id, name, model string, price, payment int64, seed int, features ...string) domain.Vehicle {
		return domain.Vehicle{
			ID:             id,
			Name:           name,
			Model:          model,
			Year:           2024,
			Price:          decimal.NewFromInt(price),
			MonthlyPayment: decimal.NewFromInt(payment),
			Features:       features,
			SeedScore:      seed,
		}
	}

	return []domain.Vehicle{
		v("camry-hybrid", "Camry Hybrid", "Camry", 28000, 420, 95,
			"Hybrid Engine", "Safety Sense 2.5+", "Wireless Charging", "Premium Audio"),
		v("rav4-hybrid", "RAV4 Hybrid", "RAV4", 32000, 480, 88,
			"AWD", "Hybrid Engine", "Safety Sense 2.5+", "Panoramic Roof"),
		v("corolla-cross", "Corolla Cross", "Corolla Cross", 24000, 360, 92,
			"Compact SUV", "Safety Sense 2.0", "Apple CarPlay", "Backup Camera"),
		v("highlander", "Highlander", "Highlander", 38000, 570, 75,
			"3-Row Seating", "V6 Engine", "Safety Sense 2.5+", "Premium Interior"),
		v("tacoma", "Tacoma", "Tacoma", 35000, 525, 82,
			"Off-Road Capable", "V6 Engine", "Towing Package", "Durable Build"),
		v("prius", "Prius", "Prius", 26000, 390, 90,
			"Hybrid Engine", "Excellent MPG", "Safety Sense 2.5+", "Eco-Friendly"),
	}
}
