package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/components"
)

type showOptions struct {
	jsonOutput bool
	plain      bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <component>",
		Short: "Show a component's documentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output component details as JSON")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print the code sample without highlighting")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, query string, opts *showOptions) error {
	if strings.TrimSpace(query) == "" {
		return newCommandError("show", "validating component name", errors.New("component name cannot be empty"), "Provide the slug or name of a component.")
	}

	app, err := loadApp(cmd, flags, "show", false)
	if err != nil {
		return err
	}
	defer app.Close()

	component, err := app.Catalog.Lookup(query)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up component %q", query), err, "Run 'showroom list' to see the available components.")
	}

	install := component.InstallCommand(app.Config.RegistryURL)
	if opts.jsonOutput {
		return renderShowJSON(cmd, component, install)
	}
	return renderShowText(cmd, component, install, !opts.plain && supportsUnicode(cmd.OutOrStdout()))
}

func renderShowText(cmd *cobra.Command, component catalog.Component, install string, highlight bool) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Component: %s\n", component.Name)
	fmt.Fprintf(out, "Slug:      %s\n", component.Slug)
	fmt.Fprintf(out, "Category:  %s\n", component.Category.Title())
	fmt.Fprintf(out, "\nDescription:\n  %s\n", component.Description)
	fmt.Fprintf(out, "\nInstall:\n  %s\n", install)

	if len(component.Props) > 0 {
		rows := make([]components.PropRow, len(component.Props))
		for i, prop := range component.Props {
			rows[i] = components.PropRow{
				Name:        prop.Name,
				Type:        prop.Type,
				Required:    prop.Required,
				Default:     prop.Default,
				Description: prop.Description,
			}
		}
		fmt.Fprintf(out, "\nProps:\n%s\n", components.PropsTable(rows))
	}

	if len(component.Dependencies) > 0 {
		fmt.Fprintf(out, "\nDependencies: %s\n", strings.Join(component.Dependencies, ", "))
	}
	if len(component.RegistryDependencies) > 0 {
		fmt.Fprintf(out, "Registry dependencies: %s\n", strings.Join(component.RegistryDependencies, ", "))
	}

	if strings.TrimSpace(component.CodeExample) != "" {
		fmt.Fprintf(out, "\nExample:\n%s\n", components.NewCodeBlock(component.CodeExample, component.CodeLanguage).WithPlain(!highlight).View())
	}

	if component.Live() {
		fmt.Fprintf(out, "\nRun 'showroom browse %s' for a live preview.\n", component.Slug)
	}
	return nil
}

type showJSONPayload struct {
	catalog.Component
	Install string `json:"install"`
}

func renderShowJSON(cmd *cobra.Command, component catalog.Component, install string) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(showJSONPayload{Component: component, Install: install})
}
