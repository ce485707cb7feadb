package main

import (
	"fmt"

	"github.com/hacktx/financial-navigator/internal/config"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/hacktx/financial-navigator/internal/output"
	"github.com/hacktx/financial-navigator/internal/service"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var (
		format     string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "analyze <profile.yaml>",
		Short: "Run the full analysis for a profile",
		Long: `Score the profile, compare the four financing scenarios, match the
vehicle catalog and evaluate achievements in a single report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := analyzeFile(cmd, args[0])
			if err != nil {
				return err
			}
			return writeReport(cmd, report, format, outputFile)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, yaml, csv, schedule-csv)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

func scenariosCmd() *cobra.Command {
	var (
		schedule   bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "scenarios <profile.yaml>",
		Short: "Compare financing scenarios as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := analyzeFile(cmd, args[0])
			if err != nil {
				return err
			}
			format := "csv"
			if schedule {
				format = "schedule-csv"
			}
			return writeReport(cmd, report, format, outputFile)
		},
	}

	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the yearly amortization schedule of each loan instead")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the CSV to a file instead of stdout")
	return cmd
}

func analyzeFile(cmd *cobra.Command, path string) (*domain.Report, error) {
	profile, err := config.NewInputParser().LoadProfile(path)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	nav := service.New(newEngine(), catalog, service.WithLogger(logger))
	return nav.Analyze(cmd.Context(), profile)
}

func writeReport(cmd *cobra.Command, report *domain.Report, format, outputFile string) error {
	if outputFile == "" {
		return output.GenerateReport(report, format, cmd.OutOrStdout())
	}
	// validate before SaveReport creates the file
	if output.GetFormatterByName(format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
	}
	if err := output.SaveReport(report, format, outputFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", outputFile)
	return nil
}
