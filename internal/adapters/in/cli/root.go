// Package cli implements the CLI adapter for domaingate.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/domaingate/internal/app"
	"github.com/bnema/domaingate/internal/boundaries/in"
	"github.com/bnema/domaingate/internal/domain"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// configPath for local operations. If empty, config is auto-discovered
// from standard locations (./domaingate.yaml, ~/.config/domaingate, /etc/domaingate).
var configPath string

// kernel is the in-process service surface the commands need.
type kernel interface {
	Context() context.Context
	Domains() in.DomainService
	CreateSite(ctx context.Context, siteID string, expiresAt *time.Time) (*domain.SiteDomainRecord, error)
	SetSubscriptionExpiry(ctx context.Context, siteID string, expiresAt *time.Time) error
	Close() error
}

// Factories are variables so tests can substitute the app layer.
var (
	newKernel = func(path string) (kernel, error) {
		k, err := app.NewKernel(path)
		if err != nil {
			return nil, err
		}
		return k, nil
	}
	newRouter = app.NewRouter
	runServer = app.Run
)

// NewRootCmd creates the root command for the domaingate CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "domaingate",
		Short: "domaingate - host routing and custom domains for hosted sites",
		Long: `domaingate routes every request of a multi-tenant site platform by host:
main site, customer subdomain page or customer custom domain. It also manages
the lifecycle of custom domains with the domain-hosting provider.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newDomainCmd())
	rootCmd.AddCommand(newSiteCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("domaingate %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}

// withKernel opens the kernel for one command and always closes it.
func withKernel(fn func(k kernel) error) error {
	k, err := newKernel(configPath)
	if err != nil {
		return err
	}
	defer k.Close()
	return fn(k)
}
