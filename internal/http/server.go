// Package http exposes the services as a JSON API under /api.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"moneyflow/internal/core"
	"moneyflow/internal/log"
	"moneyflow/internal/middleware/ratelimit"
	"moneyflow/internal/middleware/security"
	"moneyflow/internal/middleware/trace"
	"moneyflow/internal/services"
)

type Options struct {
	Addr               string
	CORSAllowedOrigins []string
	RateLimitPerMinute int
	Logger             *log.Logger
}

type Server struct {
	http.Server

	svc      *services.Services
	logger   *log.Logger
	limiter  *ratelimit.Limiter
	detector *security.Detector
	tracer   *trace.Middleware

	shutdownOnce sync.Once
}

func NewServer(svc *services.Services, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent(log.ComponentHTTP)

	detector := security.NewDetector(logger)
	s := &Server{
		Server: http.Server{
			Addr:              opts.Addr,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		svc:      svc,
		logger:   logger,
		detector: detector,
		tracer:   trace.NewMiddleware(logger, detector.ExtractClientIP),
	}
	// Zero disables rate limiting.
	if opts.RateLimitPerMinute > 0 {
		s.limiter = ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RateLimitPerMinute,
			Logger:            logger,
		})
	}
	s.Handler = s.routes(opts.CORSAllowedOrigins)
	return s
}

func (s *Server) routes(allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(log.Middleware(s.logger))
	r.Use(s.tracer.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(s.detector.Middleware)
	r.Use(security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", trace.RequestIDHeader},
		ExposedHeaders: []string{trace.RequestIDHeader, "Content-Disposition"},
		MaxAge:         300,
	}))
	if s.limiter != nil {
		r.Use(s.limiter.Middleware(s.detector.ExtractClientIP))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, r, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) { mountCatalog[core.Category](r, s.svc.Categories) })
		r.Route("/accounts", func(r chi.Router) { mountCatalog[core.Account](r, s.svc.Accounts) })
		r.Route("/clients", func(r chi.Router) { mountCatalog[core.Client](r, s.svc.Clients) })
		r.Route("/vendors", func(r chi.Router) { mountCatalog[core.Vendor](r, s.svc.Vendors) })

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.handleListTransactions)
			r.Post("/", s.handleCreateTransaction)
			r.Get("/export", s.handleExport)
			r.Post("/import", s.handleImport)
			r.Put("/{id}", s.handleUpdateTransaction)
			r.Delete("/{id}", s.handleDeleteTransaction)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Get("/", s.handleListBudgets)
			r.Post("/", s.handleCreateBudget)
			r.Put("/{categoryId}", s.handleUpdateBudget)
			r.Delete("/{categoryId}", s.handleDeleteBudget)
		})

		r.Get("/dashboard/kpis", s.handleKPIs)
		r.Get("/dashboard/charts", s.handleCharts)
	})

	return r
}

// Run serves until ctx is cancelled, then drains connections within
// shutdownTimeout.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.stopLimiter()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server", log.FieldOperation, log.OpShutdown)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// TrafficStats summarizes what the middleware chain has seen since start.
type TrafficStats struct {
	Requests       int64
	ServerErrors   int64
	Suspicious     int64
	RateLimited    int64
	TrackedClients int64
}

func (s *Server) Stats() TrafficStats {
	tm := s.tracer.GetMetrics()
	st := TrafficStats{
		Requests:     tm.TotalRequests,
		ServerErrors: tm.ServerErrors,
		Suspicious:   s.detector.GetMetrics().SuspiciousRequests,
	}
	if s.limiter != nil {
		lm := s.limiter.GetMetrics()
		st.RateLimited, st.TrackedClients = lm.Rejected, lm.ClientCount
	}
	return st
}

// Shutdown stops the rate limiter and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		st := s.Stats()
		s.logger.Info("HTTP traffic summary",
			log.FieldOperation, log.OpShutdown,
			"requests", st.Requests,
			"server_errors", st.ServerErrors,
			"suspicious", st.Suspicious,
			"rate_limited", st.RateLimited,
			"tracked_clients", st.TrackedClients)
		s.stopLimiter()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func (s *Server) stopLimiter() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
