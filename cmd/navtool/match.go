package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/GauravCalidig/go-router/nav"
)

func matchCmd() *cobra.Command {
	var redirectLimit int

	cmd := &cobra.Command{
		Use:   "match <config.yaml> <location>",
		Short: "Resolve a location against the configuration",
		Long: `Resolve a location the way the router would at runtime: apply
redirect rules, match the route tree and print the resulting match
stack with the parameters captured at each level.

If more than one route chain matches the location, the extra chains
are reported as a warning; the router always uses the first one in
declaration order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRouter(args[0], nav.WithRedirectLimit(redirectLimit))
			if err != nil {
				return err
			}

			location := args[1]

			stacks := rt.MatchStacks(location)
			if len(stacks) > 1 {
				fmt.Fprintf(os.Stderr, "warning: %d route chains match %s; using the first declared\n",
					len(stacks), location)
			}

			stack := rt.Resolve(location)
			for _, m := range stack {
				if m.Err != nil {
					return m.Err
				}
			}

			for i, m := range stack {
				fmt.Printf("%d. %s\n", i+1, m.SubLocation)
				fmt.Printf("   path:      %s\n", m.FullPath)
				if m.Route.Name != "" {
					fmt.Printf("   name:      %s\n", m.Route.Name)
				}
				if params := m.Params(); len(params) > 0 {
					fmt.Printf("   params:    %s\n", formatMap(params))
				}
				if len(m.QueryParams) > 0 {
					fmt.Printf("   query:     %s\n", formatMap(m.QueryParams))
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&redirectLimit, "redirect-limit", 5, "Maximum redirects before giving up")

	return cmd
}

func formatMap(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += " "
		}
		out += k + "=" + m[k]
	}
	return out
}
