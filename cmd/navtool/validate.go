package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GauravCalidig/go-router/nav"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Check that a route configuration is well formed",
		Long: `Load a YAML route configuration and run the same validation the
router performs at startup: path syntax, parameter collisions with
ancestor routes, and unreachable leaves.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRouter(args[0])
			if err != nil {
				return err
			}

			count := 0
			if err := rt.Walk(func(route *nav.Route, fullPath string, depth int) error {
				count++
				return nil
			}); err != nil {
				return err
			}

			fmt.Printf("OK: %d routes\n", count)
			return nil
		},
	}
}
