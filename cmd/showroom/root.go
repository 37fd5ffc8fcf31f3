package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	theme      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "showroom",
		Short:         "Browse the imaimai ui component catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the browser.
			return runBrowse(cmd, flags, "")
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the settings file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Colour theme (light or dark)")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newInstallCmd(flags))
	cmd.AddCommand(newPaginateCmd(flags))
	cmd.AddCommand(newSiteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
