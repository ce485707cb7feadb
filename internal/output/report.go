package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hacktx/financial-navigator/internal/domain"
)

// GenerateReport writes report to w in the named format (aliases accepted).
func GenerateReport(report *domain.Report, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, report, w)
}

// SaveReport writes report to filename in the named format.
func SaveReport(report *domain.Report, format, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := GenerateReport(report, format, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
