package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	evemcp "github.com/sanonone/evenav/internal/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the route tools over the Model Context Protocol on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := root.planner(cmd.Context())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("MCP server running on stdio", "systems", p.Map().Len())
			return evemcp.NewMCPServer(p).Run(ctx, &mcp.StdioTransport{})
		},
	}
}
