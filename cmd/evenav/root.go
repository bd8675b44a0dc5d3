package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/sanonone/evenav/internal/config"
	"github.com/sanonone/evenav/pkg/route"
	"github.com/sanonone/evenav/pkg/sde"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	cfgFile  string
	sdePath  string
	logLevel string

	// cfg is the loaded configuration with flag overrides applied.
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:           "evenav",
		Short:         "Plan stargate routes across New Eden",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.sdePath, "sde", "", "SDE zip file or extracted directory (overrides sde_path)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides log_level)")
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(
		newRouteCmd(opts),
		newSystemCmd(opts),
		newServeCmd(opts),
		newMCPCmd(opts),
		newDownloadCmd(opts),
	)
	return cmd
}

// init loads the configuration file, applies flag overrides and installs the logger.
func (o *rootOpts) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("sde") {
		cfg.SDEPath = o.sdePath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	// Logs always go to stderr; stdout carries command output and the MCP transport.
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	o.cfg = cfg
	return nil
}

// planner loads the SDE and builds a planner with the configured defaults.
func (o *rootOpts) planner(ctx context.Context) (*route.Planner, error) {
	m, err := sde.LoadPath(ctx, o.cfg.SDEPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w (run 'evenav download' first or pass --sde)", err)
		}
		return nil, err
	}
	return route.NewPlanner(m, o.cfg.PlannerOptions()...), nil
}
