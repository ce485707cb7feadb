package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hacktx/financial-navigator/internal/config"
	"github.com/spf13/cobra"
)

func exampleCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a sample profile and vehicle catalog",
		Long: `Write profile.yaml and catalog.yaml to the target directory. They are a
starting point for "navigator analyze profile.yaml --catalog catalog.yaml".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()

			profile, err := parser.MarshalProfile(parser.CreateExampleProfile())
			if err != nil {
				return err
			}
			catalog, err := parser.MarshalCatalog(parser.CreateExampleCatalog())
			if err != nil {
				return err
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			for name, data := range map[string][]byte{"profile.yaml": profile, "catalog.yaml": catalog} {
				path := filepath.Join(dir, name)
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write the sample files to")
	return cmd
}
