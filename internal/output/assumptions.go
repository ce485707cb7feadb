package output

import (
	"fmt"

	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists modeling assumptions that do not depend on the report.
var DefaultAssumptions = []string{
	"Financed amount is the budget minus the down payment",
	"Loan payments use standard monthly amortization with fixed rates",
	"Lease payment is 1.2% of the financed amount per month over 36 months",
	"Taxes, fees, insurance and residual values are not included",
}

// GenerateAssumptions adds the rate and term of every scenario in the report to the defaults.
func GenerateAssumptions(report *domain.Report) []string {
	out := make([]string, 0, len(report.Scenarios)+len(DefaultAssumptions))
	for _, sc := range report.Scenarios {
		if sc.Type == domain.FinancingLease {
			continue
		}
		out = append(out, fmt.Sprintf("%s loan: %s APR over %d months", sc.ID, FormatPercentage(sc.InterestRate), sc.Term))
	}
	return append(out, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
