// Package app assembles the HTTP application: middleware, error pages and
// the routers mounted on it.
package app

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/blogem/goodhome/config"
	"github.com/blogem/goodhome/controllers"
	"github.com/blogem/goodhome/errorpage"
	"github.com/blogem/goodhome/metrics"
	"github.com/blogem/goodhome/middleware"
	"github.com/blogem/goodhome/routes"
	"github.com/blogem/goodhome/services"
	"github.com/blogem/goodhome/views"
)

// DefaultRequestTimeout is used when the config leaves the timeout unset
const DefaultRequestTimeout = 60 * time.Second

// Options holds the collaborators the application is built from.
// Only Config is required.
type Options struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Views    views.Engine
	Metrics  *metrics.Metrics
	Services *services.Services
	// Journal records server errors when set
	Journal *middleware.ErrorJournal
}

// New builds the application router
func New(opts Options) *chi.Mux {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	responder := errorpage.NewResponder(cfg.Env, opts.Logger)

	ctrl := controllers.NewControllers(controllers.Options{
		Views:     opts.Views,
		Responder: responder,
		Metrics:   opts.Metrics,
		Services:  opts.Services,
	})

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	if opts.Journal != nil {
		r.Use(opts.Journal.Handler)
	}
	r.Use(middleware.Recoverer(responder, opts.Logger))
	r.Use(chimiddleware.GetHead)
	r.Use(chimiddleware.Timeout(requestTimeout(cfg)))
	r.Use(chimiddleware.Compress(5))

	// Set before mounting so sub-routers inherit them
	r.NotFound(responder.NotFound)
	r.MethodNotAllowed(responder.MethodNotAllowed)

	r.Get("/health", ctrl.Health.Check)
	if opts.Metrics != nil && cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if staticDirExists(cfg.StaticDir) {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	r.Mount("/", routes.Index(ctrl))

	return r
}

func staticDirExists(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func requestTimeout(cfg *config.Config) time.Duration {
	if cfg.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return cfg.RequestTimeout
}
