package main

import (
	"fmt"
	"os"

	"github.com/bnema/domaingate/internal/adapters/in/cli"
	"github.com/bnema/domaingate/internal/adapters/in/cli/ui/styles"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
		os.Exit(1)
	}
}
