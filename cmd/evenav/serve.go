package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sanonone/evenav/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOpts) *cobra.Command {
	var httpAddr string
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the route API over HTTP",
		Args:    cobra.NoArgs,
		Example: `evenav serve --http-addr :9191`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("http-addr") {
				root.cfg.HTTPAddr = httpAddr
			}
			p, err := root.planner(cmd.Context())
			if err != nil {
				return err
			}

			srv := server.NewServer(p, root.cfg.HTTPAddr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Run() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			srv.Shutdown()
			return <-errCh
		},
	}
	cmd.Flags().StringVar(&httpAddr, "http-addr", "", "HTTP listen address (overrides http_addr)")
	return cmd
}
