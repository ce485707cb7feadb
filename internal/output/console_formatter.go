package output

import (
	"bytes"
	"fmt"

	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/hacktx/financial-navigator/pkg/money"
)

// ConsoleFormatter renders a human readable, colour-aware summary of a report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, titleStyle.Render("FINANCIAL NAVIGATOR REPORT"))
	fmt.Fprintln(&buf, "================================")

	c.writeHealth(&buf, report)
	c.writeScenarios(&buf, report)
	c.writeMatches(&buf, report)
	c.writeAchievements(&buf, report)
	c.writeAdvice(&buf, report)
	c.writeStats(&buf, report)

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, headerStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeHealth(buf *bytes.Buffer, report *domain.Report) {
	h := report.Health
	fmt.Fprintf(buf, "Debt-to-Income Ratio: %s\n", money.Ratio(report.DebtToIncomeRatio, 1))
	score := fmt.Sprintf("%d (%s)", h.Overall, report.HealthTier)
	fmt.Fprintf(buf, "Financial Health: %s\n", healthStyle(report.HealthTier).Render(score))
	fmt.Fprintf(buf, "  Credit %s | Income %s | Debt %s | Savings %s\n",
		FormatScore(h.Credit), FormatScore(h.Income), FormatScore(h.Debt), FormatScore(h.Savings))
}

func (c ConsoleFormatter) writeScenarios(buf *bytes.Buffer, report *domain.Report) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, headerStyle.Render("FINANCING SCENARIOS"))
	for _, sc := range report.Scenarios {
		fmt.Fprintf(buf, "  %-13s %-5s %7s %3d mo  %10s/mo  total %12s  savings %11s\n",
			sc.ID,
			sc.Type,
			FormatPercentage(sc.InterestRate),
			sc.Term,
			FormatCurrency(sc.MonthlyPayment),
			FormatCurrency(sc.TotalCost),
			FormatCurrency(sc.Savings),
		)
	}
	rec := AnalyzeScenarios(report)
	if rec.ScenarioID != "" {
		fmt.Fprintf(buf, "Lowest total cost: %s (Δ %s / %s vs conservative)\n",
			rec.ScenarioID, FormatCurrency(rec.CostChange), FormatPercentage(rec.PercentageChange))
	}
}

func (c ConsoleFormatter) writeMatches(buf *bytes.Buffer, report *domain.Report) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, headerStyle.Render(fmt.Sprintf("VEHICLE MATCHES (%d of %d within filter)", len(report.Matches), len(report.Recommendations))))
	if len(report.Matches) == 0 {
		fmt.Fprintln(buf, subtleStyle.Render("  No vehicles match the current filter"))
		return
	}
	for _, m := range report.Matches {
		tier := matchStyle(m.MatchTier).Render(fmt.Sprintf("%3d %-15s", m.MatchScore, m.MatchTier))
		fmt.Fprintf(buf, "  %s %-16s %10s %9s/mo\n", tier, m.Name, money.WholeCurrency(m.Price), money.WholeCurrency(m.MonthlyPayment))
	}
}

func (c ConsoleFormatter) writeAchievements(buf *bytes.Buffer, report *domain.Report) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, headerStyle.Render(fmt.Sprintf("ACHIEVEMENTS (%d/%d unlocked)", report.UnlockedCount, len(report.Achievements))))
	for _, a := range report.Achievements {
		if a.Unlocked {
			fmt.Fprintf(buf, "  %s %s\n", successStyle.Render("[x]"), a.Title)
			continue
		}
		fmt.Fprintf(buf, "  [ ] %s %s\n", a.Title, subtleStyle.Render(money.Percent(a.Progress, 0)))
	}
}

func (c ConsoleFormatter) writeAdvice(buf *bytes.Buffer, report *domain.Report) {
	if len(report.Advice) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, headerStyle.Render("ADVICE"))
	for _, a := range report.Advice {
		fmt.Fprintf(buf, "  %s %s: %s\n", adviceStyle(a.Type).Render("["+string(a.Type)+"]"), a.Title, a.Description)
		fmt.Fprintf(buf, "      -> %s (%s impact)\n", a.Action, a.Impact)
	}
}

func (c ConsoleFormatter) writeStats(buf *bytes.Buffer, report *domain.Report) {
	s := report.Stats
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, headerStyle.Render("STATS"))
	fmt.Fprintf(buf, "  Estimated savings: %s\n", money.WholeCurrency(s.EstimatedSavings))
	fmt.Fprintf(buf, "  Credit improvement: +%d\n", s.CreditImprovement)
	fmt.Fprintf(buf, "  Goals set: %d\n", s.GoalsSet)
	fmt.Fprintf(buf, "  Day streak: %d\n", s.Streak)
}
