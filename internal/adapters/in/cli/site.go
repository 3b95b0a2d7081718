package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// newSiteCmd creates the site command group.
func newSiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Manage site records",
	}

	cmd.AddCommand(newSiteCreateCmd())
	cmd.AddCommand(newSiteExpireCmd())

	return cmd
}

func newSiteCreateCmd() *cobra.Command {
	var expires string

	cmd := &cobra.Command{
		Use:   "create <site-id>",
		Short: "Create an empty site record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expiresAt, err := parseExpiry(expires, time.Now())
			if err != nil {
				return err
			}
			return withKernel(func(k kernel) error {
				record, err := k.CreateSite(k.Context(), args[0], expiresAt)
				if err != nil {
					return err
				}
				if err := cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess("site created")); err != nil {
					return err
				}
				return writeSiteRecord(cmd.OutOrStdout(), record)
			})
		},
	}

	cmd.Flags().StringVar(&expires, "expires", "", "Subscription expiry (RFC3339 time or duration from now, e.g. 720h)")

	return cmd
}

func newSiteExpireCmd() *cobra.Command {
	var clearExpiry bool

	cmd := &cobra.Command{
		Use:   "expire <site-id> [when]",
		Short: "Set or clear the subscription expiry of a site",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var expiresAt *time.Time
			if !clearExpiry {
				when := "0s"
				if len(args) == 2 {
					when = args[1]
				}
				var err error
				if expiresAt, err = parseExpiry(when, time.Now()); err != nil {
					return err
				}
			}
			return withKernel(func(k kernel) error {
				if err := k.SetSubscriptionExpiry(k.Context(), args[0], expiresAt); err != nil {
					return err
				}
				msg := "subscription expiry cleared"
				if expiresAt != nil {
					msg = "subscription expires " + expiresAt.Format(time.RFC3339)
				}
				return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(msg))
			})
		},
	}

	cmd.Flags().BoolVar(&clearExpiry, "clear", false, "Remove the expiry")

	return cmd
}

// parseExpiry accepts an RFC3339 timestamp or a duration relative to now.
// An empty value means no expiry.
func parseExpiry(value string, now time.Time) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return nil, fmt.Errorf("invalid expiry %q: want RFC3339 time or duration", value)
	}
	t := now.Add(d).UTC()
	return &t, nil
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
