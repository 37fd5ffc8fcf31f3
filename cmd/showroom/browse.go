package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/tui/browser"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [component]",
		Short: "Open the interactive component browser",
		Long:  `Open the interactive browser. Components with a pagination widget get a live preview that responds to the keyboard and mouse.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := ""
			if len(args) == 1 {
				slug = args[0]
			}
			return runBrowse(cmd, flags, slug)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags, query string) error {
	app, err := loadApp(cmd, flags, "browse", true)
	if err != nil {
		return err
	}
	defer app.Close()

	slug := ""
	if query != "" {
		component, err := app.Catalog.Lookup(query)
		if err != nil {
			return newCommandError("browse", fmt.Sprintf("looking up component %q", query), err, "Run 'showroom list' to see the available components.")
		}
		slug = component.Slug
	}

	model, err := browser.NewModel(browser.Options{
		Catalog:     app.Catalog,
		Defaults:    app.Defaults,
		RegistryURL: app.Config.RegistryURL,
		InitialSlug: slug,
		Logger:      app.Logger,
		Clipboard:   cmd.OutOrStdout(),
	})
	if err != nil {
		return newCommandError("browse", "preparing the browser", err, "Run 'showroom list' to see the available components.")
	}

	app.Logger.Info("launching browser")
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		app.Logger.Error(err, "browser exited with an error")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	app.Logger.Info("browser closed")
	return nil
}
