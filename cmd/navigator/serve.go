package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hacktx/financial-navigator/internal/api"
	"github.com/hacktx/financial-navigator/internal/cache"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/hacktx/financial-navigator/internal/repository"
	"github.com/hacktx/financial-navigator/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigator over HTTP",
		Long: `Start the HTTP API. Reports are memoized in the configured cache and
profiles are stored in the configured repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := newNavigator(true)
			if err != nil {
				return err
			}
			defer func() {
				if err := nav.Close(); err != nil {
					logger.Warn("failed to close navigator", "error", err)
				}
			}()

			server := api.NewServer(settings.Server, nav, logger, version)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("starting server", "addr", server.Addr(), "version", version)
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)
			case <-cmd.Context().Done():
			}

			logger.Info("shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().Int("port", 8080, "port to listen on")
	cmd.Flags().String("host", "0.0.0.0", "interface to bind")
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	return cmd
}

// newNavigator wires the catalog, repository and, when withCache is set, the
// report cache from the loaded settings.
func newNavigator(withCache bool) (*service.Navigator, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	opts := []service.Option{service.WithLogger(logger)}

	var repo *repository.SQLRepository
	if settings.Repository.Driver != "none" {
		repo, err = repository.New(settings.Repository)
		if err != nil {
			return nil, err
		}
		logger.Info("profile repository ready", "driver", settings.Repository.Driver)
		opts = append(opts, service.WithRepository(repo))
	}

	if withCache {
		c, err := cache.New(settings.Cache)
		if err != nil {
			if repo != nil {
				repo.Close()
			}
			return nil, err
		}
		logger.Info("report cache ready", "type", cacheType(settings.Cache))
		opts = append(opts, service.WithCache(c, cache.TTL(settings.Cache)))
	}

	return service.New(newEngine(), catalog, opts...), nil
}

func cacheType(cfg domain.CacheConfig) string {
	if cfg.Type == "" {
		return "memory"
	}
	return cfg.Type
}
