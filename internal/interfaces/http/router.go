package http

import (
	"net/http"

	"github.com/revanthkumar92/quantara/internal/interfaces/http/handler"
	"github.com/revanthkumar92/quantara/internal/interfaces/http/middleware"
	"github.com/revanthkumar92/quantara/pkg/config"
	"github.com/revanthkumar92/quantara/pkg/logger"
)

// Router wires the application routes
type Router struct {
	mux             *http.ServeMux
	qubitAPIHandler *handler.QubitAPIHandler
	static          *StaticMount
	rateLimit       config.RateLimitConfig
	logger          *logger.Logger
}

// NewRouter creates a new router
func NewRouter(
	qubitAPIHandler *handler.QubitAPIHandler,
	static *StaticMount,
	rateLimit config.RateLimitConfig,
	logger *logger.Logger,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		qubitAPIHandler: qubitAPIHandler,
		static:          static,
		rateLimit:       rateLimit,
		logger:          logger,
	}
}

// Setup registers all routes and applies the middleware chain
func (rt *Router) Setup() http.Handler {
	// API endpoints
	rt.mux.HandleFunc("/api/qubits", rt.qubitAPIHandler.ListQubits)

	// Everything else falls through to the exported static site
	rt.mux.Handle("/", rt.static)

	var h http.Handler = rt.mux
	if rt.rateLimit.Enabled {
		h = middleware.RateLimit(middleware.NewIPRateLimiter(rt.rateLimit.RPS, rt.rateLimit.Burst))(h)
	}
	h = middleware.Compression(h)
	h = middleware.RequestID(h)
	h = middleware.Logger(rt.logger)(h)
	h = middleware.Recovery(rt.logger)(h)

	return h
}
