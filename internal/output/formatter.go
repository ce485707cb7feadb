package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hacktx/financial-navigator/internal/domain"
)

// ErrUnsupportedFormat is returned when a requested output format is unknown.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter renders a navigator report into a byte slice.
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	Name() string
}

// FormatterFunc adapts a function into a Formatter.
type FormatterFunc struct {
	name string
	fn   func(*domain.Report) ([]byte, error)
}

// NewFormatterFunc names fn so it can be used wherever a Formatter is expected.
func NewFormatterFunc(name string, fn func(*domain.Report) ([]byte, error)) FormatterFunc {
	return FormatterFunc{name: name, fn: fn}
}

func (f FormatterFunc) Name() string { return f.name }

func (f FormatterFunc) Format(report *domain.Report) ([]byte, error) { return f.fn(report) }

// WriteFormatted renders report with f and writes the result to w.
func WriteFormatted(f Formatter, report *domain.Report, w io.Writer) error {
	if report == nil {
		return fmt.Errorf("%s: nil report", f.Name())
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%s: write failed: %w", f.Name(), err)
	}
	return nil
}

// builtInFormatters returns the canonical formatter set keyed by name.
func builtInFormatters() map[string]Formatter {
	return map[string]Formatter{
		"console":      ConsoleFormatter{},
		"json":         JSONFormatter{},
		"yaml":         YAMLFormatter{},
		"csv":          ScenarioCSV{},
		"schedule-csv": ScheduleCSV{},
	}
}

// aliasMap maps user-facing aliases to canonical formatter names.
var aliasMap = map[string]string{
	"text":      "console",
	"txt":       "console",
	"table":     "console",
	"yml":       "yaml",
	"scenarios": "csv",
	"schedule":  "schedule-csv",
	"amort":     "schedule-csv",
}

// NormalizeFormatName lower-cases and resolves aliases. Empty means console.
func NormalizeFormatName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "console"
	}
	if canonical, ok := aliasMap[name]; ok {
		return canonical
	}
	return name
}

// GetFormatterByName returns the formatter for a name or alias, or nil.
func GetFormatterByName(name string) Formatter {
	return builtInFormatters()[NormalizeFormatName(name)]
}

// AvailableFormatterNames returns the sorted canonical formatter names.
func AvailableFormatterNames() []string {
	m := builtInFormatters()
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the sorted alias names.
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		aliases = append(aliases, k)
	}
	sort.Strings(aliases)
	return aliases
}
