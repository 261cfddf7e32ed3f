package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/blogem/goodhome/cli.version=..."
var (
	version = "dev"
	commit  = "none"
)

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "goodhome",
		Short:        "Good Home web application",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newJournalCmd(&configPath),
		newVersionCmd(),
	)

	return cmd
}
