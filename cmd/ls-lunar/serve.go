package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/litescript/ls-lunar/internal/server"
	"github.com/litescript/ls-lunar/internal/version"
)

var servePort string

// serveCmd runs the HTTP JSON API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP JSON API",
	Long: `Starts the moon report HTTP service. Configuration is read from the
environment (PORT, LS_LUNAR_LAT, LS_LUNAR_LON, LS_LUNAR_ZONE_OFFSET),
optionally via a .env file; flags override the environment.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Missing .env is fine, the environment alone is enough.
	_ = godotenv.Load()

	cfg := server.ConfigFromEnv()
	if servePort != "" {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
		obs, err := observerFromFlags()
		if err != nil {
			return err
		}
		cfg.Observer = obs
	}
	if cmd.Flags().Changed("zone-offset") {
		cfg.Engine.ZoneOffsetHours = zoneOffset
	}

	srv := server.New(cfg, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.Float64("default_lat", cfg.Observer.LatDeg),
			zap.Float64("default_lon", cfg.Observer.LonDeg),
			zap.String("version", version.Version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
