package main

import (
	"os"

	"github.com/DeBrosOfficial/mongolog/pkg/cli"
)

// version metadata populated via -ldflags at build time
var (
	version = "dev"
	commit  = ""
)

func main() {
	root := cli.NewRootCmd()
	root.Version = version
	if commit != "" {
		root.Version += " (commit " + commit + ")"
	}
	if err := root.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
