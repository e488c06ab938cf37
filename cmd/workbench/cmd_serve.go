package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/config"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/history"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/validation"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/webapi"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var (
		port       int
		configFile string
		noWatch    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the workbench HTTP server",
		Long: `Start the HTTP server exposing the REST API, the rendered selection
guide at /guide, and a static dashboard at /.

Configuration comes from workbench.toml in the working directory (or
--config), overridden by flags. Unless --no-watch is given, hand edits to
user_models.json are picked up without restarting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []config.Option{
				config.WithPort(port),
				config.WithDataDir(dataDir),
			}
			if noWatch {
				opts = append(opts, config.WithWatchOverlay(false))
			}
			cfg, err := config.Load(configFile, opts...)
			if err != nil {
				return err
			}

			webapi.Version = version

			logger := slog.Default()
			store := catalog.NewStore(cfg.OverlayPath(),
				catalog.WithLogger(logger),
				catalog.WithValidator(validation.ValidateOverlayBytes))
			if err := store.Reload(); err != nil {
				return err
			}
			hist := history.NewStore(cfg.HistoryPath())

			srv, err := webserver.New(webserver.Config{
				Port:           cfg.Port,
				AllowedOrigins: cfg.AllowedOrigins,
				Handlers:       webapi.NewHandlers(store, hist, logger),
				Logger:         logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error {
				return srv.ListenAndServe(groupCtx)
			})
			if cfg.WatchOverlay {
				group.Go(func() error {
					if err := store.Watch(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
						return err
					}
					return nil
				})
			}
			return group.Wait()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP port (default from workbench.toml, else 8000)")
	cmd.Flags().StringVar(&configFile, "config", config.DefaultFileName, "Path to the TOML config file")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not watch the overlay file for external edits")

	return cmd
}
