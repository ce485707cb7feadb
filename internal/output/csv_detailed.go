package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/hacktx/financial-navigator/internal/domain"
)

// ScheduleCSV exports every sampled amortization row of every loan scenario.
type ScheduleCSV struct{}

func (c ScheduleCSV) Name() string { return "schedule-csv" }

func (c ScheduleCSV) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Year", "Month", "Balance", "InterestPaid", "PrincipalPaid"}); err != nil {
		return nil, err
	}

	for _, id := range scheduleOrder(report) {
		for _, p := range report.Schedules[id] {
			row := []string{
				id,
				intToString(p.Year),
				intToString(p.Month),
				p.Balance.StringFixed(2),
				p.Interest.StringFixed(2),
				p.Principal.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// scheduleOrder lists schedule keys in scenario order, then any extras sorted by name.
func scheduleOrder(report *domain.Report) []string {
	seen := make(map[string]bool, len(report.Schedules))
	var ids []string
	for _, sc := range report.Scenarios {
		if _, ok := report.Schedules[sc.ID]; ok {
			ids = append(ids, sc.ID)
			seen[sc.ID] = true
		}
	}
	var extra []string
	for id := range report.Schedules {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}
