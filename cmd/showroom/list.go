package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the documented components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	app, err := loadApp(cmd, flags, "list", false)
	if err != nil {
		return err
	}
	defer app.Close()

	var ordered []catalog.Component
	for _, section := range app.Catalog.ByCategory() {
		ordered = append(ordered, section.Components...)
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, ordered)
	}
	return renderListTable(cmd, ordered)
}

func renderListTable(cmd *cobra.Command, list []catalog.Component) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "SLUG\tNAME\tCATEGORY\tLIVE")

	useUnicode := supportsUnicode(cmd.OutOrStdout())
	for _, component := range list {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			component.Slug,
			component.Name,
			component.Category.Title(),
			formatLive(component, useUnicode),
		)
	}

	return writer.Flush()
}

type listJSONComponent struct {
	Slug         string           `json:"slug"`
	Name         string           `json:"name"`
	Category     catalog.Category `json:"category"`
	Description  string           `json:"description"`
	RegistryName string           `json:"registry_name"`
	Widget       string           `json:"widget,omitempty"`
	Demos        int              `json:"demos"`
}

type listJSONPayload struct {
	Version    string              `json:"version"`
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func renderListJSON(cmd *cobra.Command, list []catalog.Component) error {
	payload := listJSONPayload{
		Version:    "1.0",
		Count:      len(list),
		Components: make([]listJSONComponent, len(list)),
	}

	for i, component := range list {
		payload.Components[i] = listJSONComponent{
			Slug:         component.Slug,
			Name:         component.Name,
			Category:     component.Category,
			Description:  component.Description,
			RegistryName: component.RegistryName,
			Widget:       component.Widget,
			Demos:        len(component.Demos),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatLive(component catalog.Component, useUnicode bool) string {
	if !component.Live() {
		return "-"
	}
	if useUnicode {
		return "● " + component.Widget
	}
	return "yes (" + component.Widget + ")"
}
