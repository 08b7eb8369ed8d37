package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vitalvas/waypoint/config"
	"github.com/vitalvas/waypoint/container"
)

func newMatchCmd(manifestPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match METHOD PATH",
		Short: "Show which route a request would hit",
		Long: `Match runs the matcher against METHOD and PATH without invoking any
handler and prints the first matching route and its positional params.
The configured path prefix is removed from PATH first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*manifestPath)
			if err != nil {
				return err
			}

			r, err := buildRouter(cfg, zap.NewNop(), container.New())
			if err != nil {
				return err
			}

			method, path := strings.ToUpper(args[0]), args[1]

			route, params, ok := r.Lookup(method, path)
			if !ok {
				return fmt.Errorf("no route for %s %s", method, path)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pattern: %s\n", route.Pattern())
			if name := route.GetName(); name != "" {
				fmt.Fprintf(out, "name:    %s\n", name)
			}
			for i, p := range params {
				fmt.Fprintf(out, "$%d:      %s\n", i+1, strconv.Quote(p))
			}

			return nil
		},
	}

	return cmd
}
