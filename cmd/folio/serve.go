package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr, staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server on server.addr (or --addr) and serve until
interrupted. In-flight requests get a grace period on shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, content, err := loadSite(rootOpts)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			var opts []folio.Option
			if staticDir != "" {
				opts = append(opts, folio.WithStaticDir(staticDir))
			}
			app, err := folio.New(cfg, content, views.New(cfg, content), opts...)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app.Echo.Logger.Infof("serving %d posts on %s", content.Store.Len(), cfg.Addr)
			return app.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "directory served under /public, overrides server.static_dir")
	return cmd
}
