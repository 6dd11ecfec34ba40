package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/primus/internal/api"
	"github.com/dshills/primus/internal/config"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the prime query API over HTTP",
	RunE: runtimeE(func(cmd *cobra.Command, args []string) error {
		overrides := buildOverrides()
		if flagAddr != "" {
			overrides["serve.addr"] = flagAddr
		}
		cfg, err := config.Load(overrides)
		if err != nil {
			return err
		}
		cache, err := newCache(cfg)
		if err != nil {
			return fmt.Errorf("building cache: %w", err)
		}

		srv := &http.Server{
			Addr:    cfg.Serve.Addr,
			Handler: api.NewServer(cache, cfg.Serve.APIKey).Routes(),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			fmt.Fprintf(os.Stdout, "Serving on %s (cache size %d)\n", cfg.Serve.Addr, cache.Size())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	}),
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().Uint64Var(&flagCacheSize, "cache-size", 0, "Primality cache size (even integer, at least 4)")
}
