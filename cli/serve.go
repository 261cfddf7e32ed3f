package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blogem/goodhome/app"
	"github.com/blogem/goodhome/config"
	"github.com/blogem/goodhome/database"
	"github.com/blogem/goodhome/logging"
	"github.com/blogem/goodhome/metrics"
	"github.com/blogem/goodhome/middleware"
	"github.com/blogem/goodhome/repositories"
	"github.com/blogem/goodhome/server"
	"github.com/blogem/goodhome/services"
	"github.com/blogem/goodhome/views"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			logger := logging.Setup(logging.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := app.Options{
				Config:   cfg,
				Logger:   logger,
				Services: services.NewServices(nil),
			}

			if cfg.DatabasePath != "" {
				db, err := database.Initialize(cfg.DatabasePath)
				if err != nil {
					return fmt.Errorf("failed to initialize database: %w", err)
				}
				defer db.Close()

				opts.Services = services.NewServices(repositories.NewRepositories(db))
				opts.Journal = middleware.NewErrorJournal(opts.Services.Journal, logger)
				logger.Info().Str("path", cfg.DatabasePath).Msg("error journal enabled")
			}

			engine := views.NewTemplateEngine(cfg.ViewsDir, cfg.CacheViews(), logger)
			if cfg.CacheViews() {
				if err := engine.Watch(ctx); err != nil {
					logger.Warn().Err(err).Msg("views will not reload on change")
				}
			}
			opts.Views = engine

			if cfg.MetricsEnabled {
				opts.Metrics = metrics.New()
			}

			srv := server.New(cfg.Addr(), app.New(opts), cfg.ShutdownTimeout, logger)
			if opts.Journal != nil {
				srv.OnShutdown(opts.Journal.Wait)
			}

			logger.Info().
				Str("env", cfg.Env).
				Str("views", cfg.ViewsDir).
				Bool("view_cache", cfg.CacheViews()).
				Msg("goodhome starting")

			return srv.Run(ctx)
		},
	}
}
