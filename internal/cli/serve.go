package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/colgrid/colgrid/internal/server"
	"github.com/colgrid/colgrid/pkg/cache"
	"github.com/colgrid/colgrid/pkg/preset"
)

// serveCommand creates the serve command for running the dev server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath  string
		addr        string
		redisURL    string
		mongoURI    string
		cachePrefix string
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

Endpoints:

  GET  /grid.css     rendered stylesheet (?minified=true)
  GET  /rules.json   machine-readable rule dump
  POST /resolve      resolve a col/row intent to class lists
  /presets           named grid configurations (CRUD)

By default artifacts are cached in the local file cache and presets
live in process memory. Point --redis at a Redis instance to share the
artifact cache, and --mongo at a MongoDB instance to persist presets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr, redisURL, mongoURI, cachePrefix, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "grid configuration file (default colgrid.toml)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for the shared artifact cache")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for persistent presets")
	cmd.Flags().StringVar(&cachePrefix, "cache-prefix", "", "key prefix isolating this deployment in a shared cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, addr, redisURL, mongoURI, cachePrefix string, noCache bool) error {
	reg, err := c.newRegistry(configPath)
	if err != nil {
		return err
	}

	store, err := c.newServeCache(ctx, redisURL, noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	presets, err := c.newPresetStore(ctx, mongoURI)
	if err != nil {
		return err
	}
	defer presets.Close(context.WithoutCancel(ctx))

	handler := server.New(server.Config{
		Registry: reg,
		Cache:    store,
		Keyer:    newServeKeyer(cachePrefix),
		Presets:  presets,
		Logger:   c.Logger,
	}).Router()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	c.Logger.Info("serving", "addr", addr, "rules", reg.Len())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		c.Logger.Info("server stopped")
		return nil
	}
}

// newServeKeyer scopes artifact keys to a deployment prefix, so one
// shared Redis backend can serve several grids without collisions.
func newServeKeyer(prefix string) cache.Keyer {
	if prefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, prefix)
}

// newServeCache picks the artifact cache backend: Redis when given,
// otherwise the local file cache.
func (c *CLI) newServeCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		store, err := cache.NewRedisCache(ctx, redisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Debug("using redis artifact cache")
		return store, nil
	}
	return newCache(false)
}

// newPresetStore picks the preset backend: MongoDB when given,
// otherwise in-process memory.
func (c *CLI) newPresetStore(ctx context.Context, mongoURI string) (preset.Store, error) {
	if mongoURI == "" {
		return preset.NewMemoryStore(), nil
	}
	store, err := preset.NewMongoStore(ctx, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	c.Logger.Debug("using mongodb preset store")
	return store, nil
}
