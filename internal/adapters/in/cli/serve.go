package cli

import (
	"github.com/spf13/cobra"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the edge and API listeners",
		Long: `Start domaingate: the edge listener routes every inbound request by host,
and the API listener serves the custom-domain management endpoints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), configPath, Version)
		},
	}
}
