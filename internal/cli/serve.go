package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Hari-prashath-123/art-finity/internal/config"
	"github.com/Hari-prashath-123/art-finity/internal/handlers"
	"github.com/Hari-prashath-123/art-finity/internal/registrations"
	"github.com/Hari-prashath-123/art-finity/internal/scheduler"
	"github.com/Hari-prashath-123/art-finity/internal/server"
	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

// AppOptions is the full fx graph of the site.
func AppOptions() fx.Option {
	return fx.Options(
		// Logging
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		scheduler.Module,

		// Registration count widget (mounted only when enabled)
		registrations.Module,

		// HTTP
		handlers.Module,
		server.Module,
	)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		Long:  "Start the HTTP server and, when enabled, the registration poller. Stops gracefully on SIGINT/SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(AppOptions())
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}
