package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GauravCalidig/go-router/nav"
)

func routesCmd() *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "routes <config.yaml>",
		Short: "Print the route tree",
		Long: `Print every route declared in the configuration. By default the
tree is indented by nesting depth; --flat prints one full path per
line with its name and parameters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRouter(args[0])
			if err != nil {
				return err
			}

			return rt.Walk(func(route *nav.Route, fullPath string, depth int) error {
				if flat {
					printFlat(route, fullPath)
					return nil
				}
				printIndented(route, depth)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "Print full paths instead of a tree")

	return cmd
}

func printFlat(route *nav.Route, fullPath string) {
	line := fullPath
	if route.Name != "" {
		line += "  name=" + route.Name
	}
	if params := route.ParamNames(); len(params) > 0 {
		line += "  params=" + strings.Join(params, ",")
	}
	if route.Redirect != nil {
		line += "  redirect"
	}
	fmt.Println(line)
}

func printIndented(route *nav.Route, depth int) {
	label := route.Path
	if route.Name != "" {
		label += " (" + route.Name + ")"
	}
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), label)
}
