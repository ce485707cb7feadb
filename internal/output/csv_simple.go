package output

import (
	"bytes"
	"encoding/csv"

	"github.com/hacktx/financial-navigator/internal/domain"
)

// ScenarioCSV implements the simple summary CSV output (one row per financing scenario).
type ScenarioCSV struct{}

func (c ScenarioCSV) Name() string { return "csv" }

func (c ScenarioCSV) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Type", "InterestRate", "Term", "DownPayment", "MonthlyPayment", "TotalCost", "Savings", "Best"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	best, _ := report.BestScenario()
	// generation order is already deterministic
	for _, sc := range report.Scenarios {
		row := []string{
			sc.ID,
			string(sc.Type),
			sc.InterestRate.StringFixed(1),
			intToString(sc.Term),
			sc.DownPayment.StringFixed(2),
			sc.MonthlyPayment.StringFixed(2),
			sc.TotalCost.StringFixed(2),
			sc.Savings.StringFixed(2),
			boolToString(sc.ID == best.ID),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
