package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hacktx/financial-navigator/internal/calculation"
	"github.com/hacktx/financial-navigator/internal/config"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	version  = "dev"
	settings *domain.Settings
	logger   = slog.Default()

	rootCmd = &cobra.Command{
		Use:   "navigator",
		Short: "Vehicle affordability and financing calculator",
		Long: `navigator scores a personal financial profile, compares financing
scenarios, matches vehicles from a catalog and reports achievements.

Run it one-shot against a profile file or serve the same engine over HTTP.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/navigator/navigator.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().String("catalog", "", "vehicle catalog YAML (default: bundled sample lineup)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(scenariosCmd())
	rootCmd.AddCommand(quoteCmd())
	rootCmd.AddCommand(exampleCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received interrupt signal, shutting down")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	l, err := config.NewLogger(s.Logging, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	settings = s
	logger = l
	slog.SetDefault(l)
	return nil
}

// newEngine builds the engine used by every command. The dashboard streak is
// the demo counter drawn from 1..30.
func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	engine.SetLogger(calculation.NewSlogLogger(logger))
	engine.SetStreakSource(calculation.NewRandomStreak())
	return engine
}

// loadCatalog reads the configured catalog or falls back to the sample lineup.
func loadCatalog() ([]domain.Vehicle, error) {
	parser := config.NewInputParser()
	if settings == nil || settings.CatalogPath == "" {
		return parser.CreateExampleCatalog(), nil
	}
	catalog, err := parser.LoadCatalog(settings.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "path", settings.CatalogPath, "vehicles", len(catalog))
	return catalog, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "navigator %s\n", version)
		},
	}
}
