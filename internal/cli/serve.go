package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/musecli/muse/internal/server"
	"github.com/musecli/muse/pkg/cache"
	"github.com/musecli/muse/pkg/met"
)

// shutdownTimeout bounds graceful drain on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the HTTP API server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the search and poster API over HTTP. By default Met API responses are
cached on disk; pass --redis to share the cache between instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := c.serveCache(cmd.Context(), noCache, redisAddr)
			if err != nil {
				return err
			}
			defer backend.Close()

			srv := server.New(met.NewClient(backend), c.Logger)
			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			c.Logger.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpSrv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return cmd.Context().Err()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8787", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared cache (e.g. localhost:6379)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the response cache")

	return cmd
}

// serveCache picks the cache backend for the server: redis when requested,
// otherwise the file cache, degrading to a null cache only when explicitly
// disabled. A misconfigured redis is an error rather than a silent fallback.
func (c *CLI) serveCache(ctx context.Context, noCache bool, redisAddr string) (cache.Cache, error) {
	if noCache && redisAddr != "" {
		return nil, errors.New("--no-cache and --redis are mutually exclusive")
	}
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		backend, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: redisAddr})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Debug("using redis cache", "addr", redisAddr)
		return backend, nil
	}
	return newCache(false), nil
}
