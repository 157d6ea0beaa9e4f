// Package cli implements the artfinity command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Hari-prashath-123/art-finity/internal/config"
)

// NewRootCommand creates the command tree. Each call returns a fresh tree so
// tests can execute commands independently.
func NewRootCommand() *cobra.Command {
	var envFiles bool

	root := &cobra.Command{
		Use:   "artfinity",
		Short: "ART FINITY hackathon landing page",
		Long: `Serves the ART FINITY landing page with its scroll animations and the
optional registration count widget.

Configuration is read from the environment (and .env / .env.local when
present). Run "artfinity serve" to start the site.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if envFiles {
				config.LoadDotEnv()
			}
		},
	}

	root.PersistentFlags().BoolVar(&envFiles, "env-files", true, "load .env and .env.local from the working directory")

	root.AddCommand(
		newServeCmd(),
		newCountCmd(),
		newSectionsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}
