package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/tui/browser"
)

type installOptions struct {
	copy bool
}

func newInstallCmd(flags *rootFlags) *cobra.Command {
	opts := &installOptions{}

	cmd := &cobra.Command{
		Use:   "install <component>",
		Short: "Print the shadcn command that installs a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the command to the terminal clipboard")

	return cmd
}

func runInstall(cmd *cobra.Command, flags *rootFlags, query string, opts *installOptions) error {
	app, err := loadApp(cmd, flags, "install", false)
	if err != nil {
		return err
	}
	defer app.Close()

	component, err := app.Catalog.Lookup(query)
	if err != nil {
		return newCommandError("install", fmt.Sprintf("looking up component %q", query), err, "Run 'showroom list' to see the available components.")
	}

	command := component.InstallCommand(app.Config.RegistryURL)
	fmt.Fprintln(cmd.OutOrStdout(), command)

	if opts.copy {
		// OSC52 goes to the terminal; stderr keeps stdout pipeable.
		if _, err := browser.CopySequence(command).WriteTo(cmd.ErrOrStderr()); err != nil {
			return newCommandError("install", "copying to the clipboard", err, "Copy the printed command manually.")
		}
		app.Logger.With("component", component.Slug).Debug("install command copied")
	}
	return nil
}
