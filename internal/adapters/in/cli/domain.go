package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/domaingate/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/domaingate/internal/domain"
)

// newDomainCmd creates the domain command group.
func newDomainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage custom domains",
	}

	cmd.AddCommand(newDomainStatusCmd())
	cmd.AddCommand(newDomainSubmitCmd())
	cmd.AddCommand(newDomainRemoveCmd())
	cmd.AddCommand(newDomainRefreshCmd())
	cmd.AddCommand(newDomainResolveCmd())

	return cmd
}

func newDomainStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <domain>",
		Short: "Check the provider verification status of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(func(k kernel) error {
				state, err := k.Domains().CheckStatus(k.Context(), args[0])
				if err != nil {
					return err
				}
				return writeDomainState(cmd.OutOrStdout(), state)
			})
		},
	}
}

func newDomainSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <site-id> <domain>",
		Short: "Attach a custom domain to a site",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(func(k kernel) error {
				state, err := k.Domains().SubmitCustomDomain(k.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				if err := cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess("custom domain submitted")); err != nil {
					return err
				}
				return writeDomainState(cmd.OutOrStdout(), state)
			})
		},
	}
}

func newDomainRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <site-id>",
		Short: "Detach the custom domain of a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(func(k kernel) error {
				if err := k.Domains().RemoveCustomDomain(k.Context(), args[0]); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess("custom domain removed"))
			})
		},
	}
}

func newDomainRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <site-id>",
		Short: "Re-check a site's domain with the provider and store the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(func(k kernel) error {
				state, err := k.Domains().RefreshStatus(k.Context(), args[0])
				if err != nil {
					return err
				}
				return writeDomainState(cmd.OutOrStdout(), state)
			})
		},
	}
}

func newDomainResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <domain>",
		Short: "Find the site a custom domain belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(func(k kernel) error {
				record, err := k.Domains().ResolveSiteByCustomDomain(k.Context(), args[0])
				if errors.Is(err, domain.ErrSubscriptionExpired) {
					return cliWriteLine(cmd.OutOrStdout(), cliRenderWarning("site subscription expired"))
				}
				if err != nil {
					return err
				}
				return writeSiteRecord(cmd.OutOrStdout(), record)
			})
		},
	}
}

func writeDomainState(w io.Writer, state *domain.DomainState) error {
	fields := [][2]string{}
	if state.SiteID != "" {
		fields = append(fields, [2]string{"site", state.SiteID})
	}
	fields = append(fields,
		[2]string{"domain", state.Domain},
		[2]string{"status", styles.RenderVerificationStatus(state.Status)},
	)
	if v := state.Verification; v != nil {
		fields = append(fields,
			[2]string{"record type", v.Type},
			[2]string{"record name", v.Name},
			[2]string{"record value", v.Value},
		)
		if v.Reason != "" {
			fields = append(fields, [2]string{"reason", v.Reason})
		}
	}
	return cliWriteLine(w, cliRenderFields(fields))
}

func writeSiteRecord(w io.Writer, r *domain.SiteDomainRecord) error {
	expires := ""
	if r.SubscriptionExpiresAt != nil {
		expires = r.SubscriptionExpiresAt.Format("2006-01-02 15:04 MST")
	}
	if err := cliWriteLine(w, cliRenderTitle(r.SiteID)); err != nil {
		return err
	}
	return cliWriteLine(w, cliRenderFields([][2]string{
		{"custom domain", r.Domain()},
		{"status", styles.RenderVerificationStatus(r.VerificationStatus)},
		{"version", formatInt(r.Version)},
		{"subscription expires", expires},
	}))
}
