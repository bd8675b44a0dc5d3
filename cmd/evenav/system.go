package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSystemCmd(root *rootOpts) *cobra.Command {
	var within int
	cmd := &cobra.Command{
		Use:     "system <name>",
		Short:   "Show a solar system and its stargate connections",
		Args:    cobra.ExactArgs(1),
		Example: `evenav system Jita
evenav system Jita --within 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := root.planner(cmd.Context())
			if err != nil {
				return err
			}
			m := p.Map()
			i, err := m.Resolve(args[0])
			if err != nil {
				return err
			}

			info := m.Info(i)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", info.Name, info.ID)
			fmt.Fprintf(out, "  security:      %.2f\n", info.Security)
			fmt.Fprintf(out, "  constellation: %s\n", info.ConstellationName)
			fmt.Fprintf(out, "  region:        %s\n", info.RegionName)
			fmt.Fprintf(out, "  gates:         %d\n", m.Degree(i))

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for n := range m.All(i) {
				ni := m.Info(n)
				fmt.Fprintf(w, "  ->\t%s\t%.2f\t%s\n", ni.Name, ni.Security, ni.RegionName)
			}
			if within > 0 {
				found := m.Within(i, within)
				fmt.Fprintf(w, "within %d jumps: %d systems\n", within, len(found)-1)
				for _, r := range found[1:] {
					ri := m.Info(r.Index)
					fmt.Fprintf(w, "  %d\t%s\t%.2f\t%s\n", r.Jumps, ri.Name, ri.Security, ri.RegionName)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&within, "within", 0, "also list the systems at most this many jumps away")
	return cmd
}
