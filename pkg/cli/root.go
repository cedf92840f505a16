// Package cli implements the mongolog command line.
package cli

import (
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envFile    string
	minLevel   string
	buffered   bool
	dryRun     bool
}

// NewRootCmd builds the mongolog command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "mongolog",
		Short: "Structured logging into MongoDB",
		Long: "mongolog mirrors log statements to stdout and persists each one as a " +
			"document in a MongoDB collection.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to config YAML file (default: ./mongolog.yaml or ~/.mongolog/mongolog.yaml)")
	pf.StringVar(&flags.envFile, "env-file", ".env", "Dotenv file read for MONGO_URL")
	pf.StringVar(&flags.minLevel, "min-level", "", "Minimum severity persisted (error, warn, info, debug, trace)")
	pf.BoolVar(&flags.buffered, "buffered", false, "Batch records until flush")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Write to an in-memory collection instead of MongoDB")

	root.AddCommand(newDemoCmd(flags))
	root.AddCommand(newLogCmd(flags))
	root.AddCommand(newCheckCmd(flags))
	return root
}
