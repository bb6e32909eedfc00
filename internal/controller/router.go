// internal/controller/router.go
package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/handler"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/logger"
)

type RouterConfig struct {
	CORSOrigin string
	Metrics    *handler.Metrics
}

// NewRouter wires the middleware stack, the RPC endpoint and /metrics.
func NewRouter(rpc *RPC, cfg RouterConfig) http.Handler {
	if cfg.Metrics == nil {
		cfg.Metrics = handler.NewMetrics()
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}

	r := chi.NewRouter()
	r.Use(logger.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(handler.CORS(cfg.CORSOrigin))
	r.Use(cfg.Metrics.Middleware)

	rpc.Mount(r)
	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())

	return r
}
