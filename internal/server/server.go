// Package server exposes the scoring engine and catalog search over
// HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wearwise/wearwise/internal/engine"
	"github.com/wearwise/wearwise/internal/metrics"
	"github.com/wearwise/wearwise/internal/search"
	"github.com/wearwise/wearwise/internal/store"
)

// Server hosts the HTTP API.
type Server struct {
	httpServer *http.Server
	service    *search.Service
	engine     *engine.Engine
	store      store.Store
}

// New builds a Server listening on addr. The store may be nil, in which
// case the lookup-history endpoints report that persistence is
// disabled.
func New(addr string, svc *search.Service, eng *engine.Engine, st store.Store, allowedOrigins []string) *Server {
	s := &Server{
		service: svc,
		engine:  eng,
		store:   st,
	}

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Post("/score", s.handleScore)
		r.Post("/recommend", s.handleRecommend)
		r.Get("/materials", s.handleMaterials)
		r.Route("/lookups", func(r chi.Router) {
			r.Get("/", s.handleListLookups)
			r.Get("/{id}", s.handleGetLookup)
		})
	})

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving requests until Shutdown is called or the
// listener fails.
func (s *Server) Start() error {
	zap.L().Info("http server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		zap.L().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
