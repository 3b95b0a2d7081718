package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/domaingate/internal/adapters/in/cli/ui/styles"
)

// newRouteCmd creates the route command, which explains a routing decision.
func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <host> [path]",
		Short: "Show how a request would be routed",
		Example: `  domaingate route alice.example.com /blog
  domaingate route mycustomdomain.org`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			router, err := newRouter(configPath)
			if err != nil {
				return err
			}

			path := "/"
			if len(args) == 2 {
				path = args[1]
			}

			decision := router.Route(args[0], path)
			return cliWriteLine(cmd.OutOrStdout(), cliRenderFields([][2]string{
				{"host", args[0]},
				{"decision", styles.RenderDecision(decision.Kind)},
				{"subdomain", decision.Subdomain},
				{"path", decision.Path},
			}))
		},
	}
}
