package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/waypoint/config"
	"github.com/vitalvas/waypoint/container"
)

type routeView struct {
	Methods []string `yaml:"methods"`
	Pattern string   `yaml:"pattern"`
	Name    string   `yaml:"name,omitempty"`
	Target  string   `yaml:"target"`
}

func newRoutesCmd(manifestPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes of a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*manifestPath)
			if err != nil {
				return err
			}

			views, err := listRoutes(cfg)
			if err != nil {
				return err
			}

			switch output {
			case "table":
				return writeTable(cmd.OutOrStdout(), views)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(views); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown output format %q, want table or yaml", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, yaml)")

	return cmd
}

func listRoutes(cfg *config.Config) ([]routeView, error) {
	r, err := buildRouter(cfg, zap.NewNop(), container.New())
	if err != nil {
		return nil, err
	}

	routes := r.Routes()
	views := make([]routeView, len(routes))
	for i, rt := range routes {
		views[i] = routeView{
			Methods: rt.Methods(),
			Pattern: rt.Pattern(),
			Name:    rt.GetName(),
			Target:  describeTarget(cfg.Routes[i]),
		}
	}

	return views, nil
}

func describeTarget(rt config.Route) string {
	if rt.Redirect != nil {
		status := rt.Redirect.Status
		if status == 0 {
			status = 302
		}
		return fmt.Sprintf("redirect %d %s", status, rt.Redirect.To)
	}

	status := 200
	if rt.Respond != nil && rt.Respond.Status != 0 {
		status = rt.Respond.Status
	}
	return fmt.Sprintf("respond %d", status)
}

func writeTable(w io.Writer, views []routeView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "METHODS\tPATTERN\tNAME\tTARGET")
	for _, v := range views {
		name := v.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", strings.Join(v.Methods, "|"), v.Pattern, name, v.Target)
	}

	return tw.Flush()
}
