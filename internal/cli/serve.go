package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"patternd/internal/daemon"
	"patternd/internal/httpapi"
	"patternd/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(g *globalFlags) *cobra.Command {
	var (
		addr  string
		trace bool
	)
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP daemon",
		Example: "  patternd serve --addr :8080\n  patternd serve --config ./patternd.yaml --log-format console",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if trace {
				cfg.Trace = true
			}
			log := g.logger(cmd.ErrOrStderr(), cfg)

			shutdownTracing, err := tracing.Init(cmd.Context(), tracing.Config{Stdout: cfg.Trace, Writer: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					log.Warn().Err(err).Msg("tracer shutdown")
				}
			}()

			d, err := daemon.New(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mux := httpapi.NewMux(d, httpapi.Options{
				MaxBodyBytes: cfg.MaxBodyBytes,
				CORSOrigins:  cfg.CORSOrigins,
				Logger:       &log,
				BaseContext:  ctx,
			})
			srv := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", cfg.Addr).Str("mood", cfg.DefaultMood).Msg("patternd listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
			case <-ctx.Done():
			}
			log.Info().Msg("shutting down")
			d.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("graceful shutdown error")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address, e.g. :8080 (overrides config)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Export notifier spans to stdout (overrides config)")
	return cmd
}
