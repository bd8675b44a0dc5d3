package main

import (
	"fmt"

	"github.com/sanonone/evenav/pkg/sde"
	"github.com/spf13/cobra"
)

func newDownloadCmd(root *rootOpts) *cobra.Command {
	var url, out string
	cmd := &cobra.Command{
		Use:     "download",
		Short:   "Download the static data export",
		Args:    cobra.NoArgs,
		Example: `evenav download --out ~/.cache/evenav/sde.zip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = root.cfg.DownloadURL
			}
			if out == "" {
				out = root.cfg.SDEPath
			}
			n, err := sde.Download(cmd.Context(), url, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %.1f MiB to %s\n", float64(n)/(1<<20), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "archive URL (defaults to download_url, then "+sde.DefaultURL+")")
	cmd.Flags().StringVar(&out, "out", "", "destination file (defaults to sde_path)")
	return cmd
}
