package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sanonone/evenav/pkg/route"
	"github.com/spf13/cobra"
)

type routeOpts struct {
	profile   string
	heuristic string
	avoid     []string
	json      bool
}

func newRouteCmd(root *rootOpts) *cobra.Command {
	opts := &routeOpts{}
	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Plan a route between two solar systems",
		Args:  cobra.ExactArgs(2),
		Example: `evenav route Jita Amarr
evenav route Jita Amarr --profile safer --avoid Niarja,Uedama`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := root.planner(cmd.Context())
			if err != nil {
				return err
			}
			r, err := p.Plan(cmd.Context(), route.Request{
				From:      args[0],
				To:        args[1],
				Profile:   route.Profile(opts.profile),
				Heuristic: route.Heuristic(opts.heuristic),
				Avoid:     opts.avoid,
			})
			if err != nil {
				return err
			}
			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			return printRoute(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().StringVar(&opts.profile, "profile", "", "cost profile: shortest, safer or less-secure")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", "", "search heuristic: distance or none")
	cmd.Flags().StringSliceVar(&opts.avoid, "avoid", nil, "systems to route around (comma separated or repeated)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the route as JSON")
	return cmd
}

func printRoute(out io.Writer, r *route.Route) error {
	fmt.Fprintf(out, "%s -> %s (%s): %d jumps, cost %d\n", r.From, r.To, r.Profile, r.Jumps, r.Cost)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, h := range r.Hops {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n", i, h.Name, h.Security, h.Region)
	}
	return w.Flush()
}
