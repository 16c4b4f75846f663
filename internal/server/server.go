// Package server exposes the lunar engine over a small HTTP JSON API.
package server

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/litescript/ls-lunar/internal/lunar"
)

// Default observer when a request carries no coordinates and the
// environment sets none.
var defaultObserver = lunar.Observer{LatDeg: 35.6544, LonDeg: 139.7447, Name: "Tokyo"}

// Config holds the HTTP service configuration.
type Config struct {
	Port      string
	Observer  lunar.Observer // Fallback observer for requests without lat/lon
	Engine    lunar.Config
	CacheSize int
}

// ConfigFromEnv builds a Config from the process environment, falling
// back to the standard deployment defaults. Recognized variables:
// PORT, LS_LUNAR_LAT, LS_LUNAR_LON, LS_LUNAR_ZONE_OFFSET.
func ConfigFromEnv() Config {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		Observer:  defaultObserver,
		Engine:    lunar.DefaultConfig(),
		CacheSize: 512,
	}

	if v, ok := floatEnv("LS_LUNAR_LAT"); ok {
		cfg.Observer.LatDeg = v
		cfg.Observer.Name = ""
	}
	if v, ok := floatEnv("LS_LUNAR_LON"); ok {
		cfg.Observer.LonDeg = v
		cfg.Observer.Name = ""
	}
	if v, ok := floatEnv("LS_LUNAR_ZONE_OFFSET"); ok {
		cfg.Engine.ZoneOffsetHours = v
	}

	return cfg
}

// New wires the router into an http.Server with sane timeouts. The
// computations are fast; the generous write timeout covers slow clients,
// not slow handlers.
func New(cfg Config, logger *zap.Logger) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func floatEnv(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
