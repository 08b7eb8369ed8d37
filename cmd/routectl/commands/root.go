package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vitalvas/waypoint/config"
	"github.com/vitalvas/waypoint/container"
	"github.com/vitalvas/waypoint/router"
)

// Execute runs the routectl command line.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// NewRootCmd builds the routectl command tree.
func NewRootCmd(version string) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "routectl",
		Short: "Inspect and serve waypoint route manifests",
		Long: `routectl loads a YAML route manifest into a waypoint router.

It lists the registered routes, dry-runs the matcher against a method and
path, or serves the manifest over HTTP.

Every setting can be overridden with WAYPOINT_* environment variables,
e.g. WAYPOINT_ROUTER_APP_DOWN=true.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&manifestPath, "file", "f", "waypoint.yaml", "route manifest path")

	cmd.AddCommand(newRoutesCmd(&manifestPath))
	cmd.AddCommand(newMatchCmd(&manifestPath))
	cmd.AddCommand(newServeCmd(&manifestPath))

	return cmd
}

// buildRouter loads the manifest routes into a new router. The router is
// bound in c under "router" so manifest handlers and tooling can reach it.
func buildRouter(cfg *config.Config, logger *zap.Logger, c *container.Container) (*router.Router, error) {
	r := router.New(cfg.RouterOptions(
		router.WithLogger(logger),
		router.WithResolver(c),
	)...)

	c.Instance("router", r)
	if err := c.Alias("router", "waypoint.router"); err != nil {
		return nil, err
	}

	if err := cfg.Register(r); err != nil {
		return nil, err
	}

	return r, nil
}
