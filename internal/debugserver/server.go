package debugserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"launchdash/internal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// Server exposes pprof on its own port, away from the dashboard router
type Server struct {
	router *chi.Mux
	logger *internal.Logger
}

// New creates the profiling server
func New(logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router: chi.NewRouter(),
		logger: logger.With("pprof"),
	}
	s.router.Use(middleware.Recoverer)
	s.router.Mount("/debug", middleware.Profiler())
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/debug/pprof/", http.StatusFound)
	})
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("shutdown: %v", err)
		}
	}()

	s.logger.Info("Performance profiling server starting on %s", addr)
	s.logger.Info("View profiles: go tool pprof -http=:8081 http://localhost%s/debug/pprof/profile?seconds=30", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
