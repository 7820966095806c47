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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/myteamhq/handball-api/internal/cache"
	"github.com/myteamhq/handball-api/internal/config"
	"github.com/myteamhq/handball-api/internal/logger"
	"github.com/myteamhq/handball-api/internal/scraper"
	"github.com/myteamhq/handball-api/internal/server"
	"github.com/myteamhq/handball-api/internal/welcome"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()
	if !flagVerbose {
		logger.Setup(cfg.LogLevel)
	}
	if flagBase != "" {
		cfg.BaseURL = flagBase
	}

	ctx := cmd.Context()
	fetcher := scraper.New(cfg.BaseURL)

	var rosterCache server.RosterCache
	if cfg.RedisURL != "" {
		c, err := cache.New(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer c.Close()
		if err := c.Ping(ctx); err != nil {
			return fmt.Errorf("pinging redis: %w", err)
		}
		rosterCache = c
		log.Info().Msg("roster cache enabled")
	} else {
		log.Warn().Msg("REDIS_URL not set, roster cache disabled")
	}

	var store server.SubmissionStore
	if cfg.DatabaseURL != "" {
		st, err := welcome.NewStore(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		defer st.Close()
		if err := st.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("preparing schema: %w", err)
		}
		store = st
		log.Info().Msg("submission store enabled")
	} else {
		log.Warn().Msg("DATABASE_URL not set, welcome submissions disabled")
	}

	srv := server.New(fetcher, rosterCache, store, log.Logger)
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpSrv.Addr).Msg("listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
	}

	return nil
}
