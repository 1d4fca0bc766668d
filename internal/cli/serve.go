package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/truemindlabs-dev/synora/internal/api"
	"github.com/truemindlabs-dev/synora/internal/config"
	"github.com/truemindlabs-dev/synora/pkg/cache"
	"github.com/truemindlabs-dev/synora/pkg/db"
	"github.com/truemindlabs-dev/synora/pkg/memstore"
	"github.com/truemindlabs-dev/synora/pkg/pipeline"
	"github.com/truemindlabs-dev/synora/pkg/storage"
)

// shutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Start the HTTP API for image generation, history, and the key/value
store. Configuration comes from a TOML file plus environment overrides;
see --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return c.runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (TOML)")
	return cmd
}

func (c *CLI) runServer(ctx context.Context, cfg config.Config) error {
	backend, err := storage.New(ctx, storage.Config{
		Backend:            cfg.Storage.Backend,
		Dir:                cfg.Storage.Dir,
		BaseURL:            cfg.Storage.BaseURL,
		S3Bucket:           cfg.Storage.S3Bucket,
		S3Region:           cfg.Storage.S3Region,
		S3AccessKey:        cfg.Storage.S3AccessKey,
		S3SecretKey:        cfg.Storage.S3SecretKey,
		GCSBucket:          cfg.Storage.GCSBucket,
		GCSCredentialsFile: cfg.Storage.GCSCredentialsFile,
	})
	if err != nil {
		return err
	}

	handle, err := db.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer handle.Close()

	store, err := memstore.New(ctx, memstore.Config{
		Backend:  cfg.Memstore.Backend,
		RedisURL: cfg.Memstore.RedisURL,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	renderCache, err := serverCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(renderCache, nil, c.Logger)
	defer runner.Close()

	srv := api.NewServer(cfg, runner, backend, db.NewRepository(handle), store, c.Logger)
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("server listening",
			"addr", httpSrv.Addr,
			"storage", backend.Name(),
			"debug", cfg.Server.Debug,
		)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// serverCache builds the render cache for the API. "none" disables
// caching; unknown backends fall back to the file cache.
func serverCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "none", "":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	default:
		return cache.NewFileCache(cfg.Dir)
	}
}
