package ui

import (
	"context"
	"embed"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/profiling"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

//go:embed templates/*.html static/* notes.md
var embeddedFiles embed.FS

func staticFiles() (http.FileSystem, error) {
	sub, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to create static filesystem: %w", err)
	}
	return http.FS(sub), nil
}

// Options configures the dashboard server
type Options struct {
	// NotesFile is a markdown file shown under the title; empty uses the built-in notes
	NotesFile string
	Logger    *internal.Logger
}

// Server serves the dashboard page and its chart endpoints. Everything it holds
// is built in NewServer and only read afterwards.
type Server struct {
	router    *gin.Engine
	dataset   *launch.Dataset
	layout    Layout
	summary   *profiling.Summary
	notes     template.HTML
	templates *template.Template
	logger    *internal.Logger
}

// NewServer builds the layout, summary and routes for ds. gin's mode must be set before calling.
func NewServer(ds *launch.Dataset, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}

	summary, err := profiling.Summarize(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize dataset: %w", err)
	}

	notes, err := loadNotes(opts.NotesFile)
	if err != nil {
		return nil, err
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		dataset:   ds,
		layout:    BuildLayout(ds),
		summary:   summary,
		notes:     notes,
		templates: templates,
		logger:    logger.With("ui"),
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.setupRoutes()

	return s, nil
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"kg":  func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"corr": func(v *float64) string {
			if v == nil {
				return "n/a"
			}
			return fmt.Sprintf("%.3f", *v)
		},
		"since": func(t time.Time) string {
			return t.UTC().Format("2006-01-02 15:04:05 UTC")
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/layout", s.handleLayout)
	api.GET("/summary", s.handleSummary)
	api.GET("/charts/pie", s.handlePieChart)
	api.GET("/charts/scatter", s.handleScatterChart)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Layout returns the page description built at startup
func (s *Server) Layout() Layout {
	return s.layout
}

// Start serves on addr until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context, addr string) error {
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

	s.logger.Info("Starting launch dashboard on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("dashboard stopped")
	return nil
}
