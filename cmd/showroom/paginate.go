package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/components"
	"github.com/alexisbeaulieu97/showroom/internal/pagination"
)

type paginateOptions struct {
	current    int
	total      int
	siblings   int
	boundary   int
	gaps       bool
	jsonOutput bool
	plain      bool
}

func newPaginateCmd(flags *rootFlags) *cobra.Command {
	opts := &paginateOptions{}

	cmd := &cobra.Command{
		Use:       "paginate <ellipsis|exponential>",
		Short:     "Print the page items a pagination widget would render",
		Long:      `Run one of the pagination generators and print its items. Unset counts fall back to the pagination settings.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{pagination.StrategyEllipsis, pagination.StrategyExponential},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaginate(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.current, "current", 1, "Current page (1-based)")
	cmd.Flags().IntVar(&opts.total, "total", 0, "Total number of pages")
	cmd.Flags().IntVar(&opts.siblings, "siblings", 0, "Pages shown on each side of the current page")
	cmd.Flags().IntVar(&opts.boundary, "boundary", 0, "Pages pinned at each end (ellipsis only)")
	cmd.Flags().BoolVar(&opts.gaps, "gaps", false, "Mark jumps with an ellipsis (exponential only)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output items as JSON")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Output items as space separated text")
	cmd.MarkFlagRequired("total") //nolint:errcheck
	cmd.MarkFlagsMutuallyExclusive("json", "plain")

	return cmd
}

func runPaginate(cmd *cobra.Command, flags *rootFlags, widget string, opts *paginateOptions) error {
	app, err := loadApp(cmd, flags, "paginate", false)
	if err != nil {
		return err
	}
	defer app.Close()

	var strategy pagination.Strategy
	switch widget {
	case pagination.StrategyEllipsis:
		options := app.Defaults.Ellipsis
		if cmd.Flags().Changed("siblings") {
			options.SiblingCount = opts.siblings
		}
		if cmd.Flags().Changed("boundary") {
			options.BoundaryCount = opts.boundary
		}
		strategy = pagination.EllipsisStrategy{Options: options}
	case pagination.StrategyExponential:
		options := app.Defaults.Exponential
		if cmd.Flags().Changed("siblings") {
			options.SiblingCount = opts.siblings
		}
		strategy = pagination.ExponentialStrategy{Options: options, MarkGaps: opts.gaps}
	default:
		return newCommandError("paginate", "selecting the generator", fmt.Errorf("unknown widget %q", widget), "Use 'ellipsis' or 'exponential'.")
	}

	control, err := pagination.NewControl(opts.current, opts.total, strategy, nil)
	if err != nil {
		return newCommandError("paginate", "validating the page range", err, paginateSuggestion(err))
	}
	items, err := control.Items()
	if err != nil {
		return newCommandError("paginate", "generating items", err, paginateSuggestion(err))
	}

	app.Logger.WithFields(map[string]any{
		"widget":  widget,
		"current": opts.current,
		"total":   opts.total,
		"items":   len(items),
	}).Debug("generated pagination")

	out := cmd.OutOrStdout()
	switch {
	case opts.jsonOutput:
		return renderPaginateJSON(cmd, widget, opts, items)
	case opts.plain:
		labels := make([]string, len(items))
		for i, item := range items {
			labels[i] = item.String()
		}
		fmt.Fprintln(out, strings.Join(labels, " "))
	default:
		fmt.Fprintln(out, components.NewPaginationView(control).View())
	}
	return nil
}

func paginateSuggestion(err error) string {
	switch {
	case errors.Is(err, pagination.ErrInvalidTotal):
		return "Pass --total with a value of at least 1."
	case errors.Is(err, pagination.ErrPageOutOfRange):
		return "Pass a --current value between 1 and --total."
	case errors.Is(err, pagination.ErrNegativeOption):
		return "Counts must be zero or greater."
	default:
		return "Check the flag values and try again."
	}
}

type paginateJSONPayload struct {
	Widget  string            `json:"widget"`
	Current int               `json:"current"`
	Total   int               `json:"total"`
	Items   []pagination.Item `json:"items"`
}

func renderPaginateJSON(cmd *cobra.Command, widget string, opts *paginateOptions, items []pagination.Item) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(paginateJSONPayload{
		Widget:  widget,
		Current: opts.current,
		Total:   opts.total,
		Items:   items,
	})
}
