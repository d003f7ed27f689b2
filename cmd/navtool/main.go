package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GauravCalidig/go-router/nav"
	"github.com/GauravCalidig/go-router/navconfig"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "navtool",
		Short: "Validate and inspect nav route configurations",
		Long: `Navtool loads YAML route declarations and answers questions
about them without running an application:

  validate   Check that a route configuration is well formed
  routes     Print the flattened route tree
  match      Resolve a location against the configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		validateCmd(),
		routesCmd(),
		matchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("navtool %s (%s)\n", version, commit)
		},
	}
}

// loadRouter builds an inspection router from a config file. Content
// builders cannot be declared in YAML, so leaves get placeholders.
func loadRouter(path string, opts ...nav.Option) (*nav.Router, error) {
	doc, err := navconfig.LoadFile(path)
	if err != nil {
		return nil, err
	}

	routes := navconfig.AttachPlaceholders(doc.Build(nil))

	return nav.New(routes, opts...)
}
