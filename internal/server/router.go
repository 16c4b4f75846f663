package server

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires the handlers with their dependencies and returns the
// composed http.Handler. Handlers stay unaware of the middleware stack.
func NewRouter(cfg Config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	moon := &MoonHandler{
		Engine:  cfg.Engine,
		Default: cfg.Observer,
		Cache:   newResultCache(cfg.CacheSize),
		Logger:  logger,
	}

	mux.HandleFunc("/health", Health)
	mux.HandleFunc("/api/v1/moon", moon.Moon)

	return withRequestID(withRequestLogging(logger, mux))
}
