package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/site"
)

type siteBuildOptions struct {
	outDir   string
	pageSize int
}

func newSiteCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Work with the static documentation site",
	}

	cmd.AddCommand(newSiteBuildCmd(flags))
	return cmd
}

func newSiteBuildCmd(flags *rootFlags) *cobra.Command {
	opts := &siteBuildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the catalog as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSiteBuild(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Components per listing page (defaults to the site settings)")
	cmd.MarkFlagRequired("out") //nolint:errcheck

	return cmd
}

func runSiteBuild(cmd *cobra.Command, flags *rootFlags, opts *siteBuildOptions) error {
	app, err := loadApp(cmd, flags, "build site", false)
	if err != nil {
		return err
	}
	defer app.Close()

	pageSize := app.Config.Site.PageSize
	if cmd.Flags().Changed("page-size") {
		if opts.pageSize < 1 {
			return newCommandError("build site", "validating --page-size", fmt.Errorf("got %d, want >= 1", opts.pageSize), "Pass a --page-size of at least 1.")
		}
		pageSize = opts.pageSize
	}

	codeStyle := ""
	if app.Config.Theme == "dark" {
		codeStyle = "monokai"
	}

	builder := site.New(app.Catalog, site.Options{
		OutDir:        opts.outDir,
		PageSize:      pageSize,
		Title:         app.Config.Site.Title,
		RegistryURL:   app.Config.RegistryURL,
		SiblingCount:  app.Config.Pagination.SiblingCount,
		BoundaryCount: app.Config.Pagination.BoundaryCount,
		Demos:         app.Defaults,
		CodeStyle:     codeStyle,
	}, app.Logger)

	result, err := builder.Build(cmd.Context())
	if err != nil {
		return newCommandError("build site", fmt.Sprintf("writing %s", opts.outDir), err, "Check that the output directory is writable and --page-size is at least 1.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files (%d listing pages, %d components) to %s\n",
		len(result.Files), result.IndexPages, result.Components, opts.outDir)
	return nil
}
