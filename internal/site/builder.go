package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/logger"
	"github.com/alexisbeaulieu97/showroom/internal/pagination"
	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

// Options configures a build.
type Options struct {
	OutDir        string
	PageSize      int
	Title         string
	RegistryURL   string
	SiblingCount  int
	BoundaryCount int
	// Demos supplies the counts demo snapshots leave unset. The zero value means
	// catalog.DefaultOptions.
	Demos     catalog.Defaults
	CodeStyle string
}

// Result summarises a finished build.
type Result struct {
	IndexPages int
	Components int
	Files      []string
}

// Builder writes the static site for a catalog.
type Builder struct {
	Catalog *catalog.Catalog
	Options Options
	Logger  *logger.Logger
}

type indexPage struct {
	SiteTitle  string
	PageTitle  string
	Root       string
	Total      int
	Components []catalog.Component
	Nav        []navCell
}

type demoSnapshot struct {
	Title       string
	Description string
	Current     int
	Nav         []navCell
}

type componentPage struct {
	SiteTitle   string
	PageTitle   string
	Root        string
	Component   catalog.Component
	Description template.HTML
	Code        template.HTML
	Install     string
	Demos       []demoSnapshot
}

// New returns a builder with defaults applied to zero options.
func New(cat *catalog.Catalog, opts Options, log *logger.Logger) *Builder {
	if opts.PageSize <= 0 {
		opts.PageSize = 4
	}
	if opts.Title == "" {
		opts.Title = "showroom"
	}
	if opts.Demos == (catalog.Defaults{}) {
		opts.Demos = catalog.DefaultOptions()
	}
	if opts.CodeStyle == "" {
		opts.CodeStyle = "github"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{Catalog: cat, Options: opts, Logger: log}
}

// Build renders every page into Options.OutDir. The context is checked before each page is
// written.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	if b.Catalog == nil {
		return Result{}, errors.New("site build requires a catalog")
	}
	if strings.TrimSpace(b.Options.OutDir) == "" {
		return Result{}, apperrors.NewValidationError("out", "output directory is required", nil)
	}
	if b.Options.PageSize < 1 {
		return Result{}, apperrors.NewValidationError("page_size", fmt.Sprintf("got %d, want >= 1", b.Options.PageSize), nil)
	}
	nav := pagination.EllipsisOptions{SiblingCount: b.Options.SiblingCount, BoundaryCount: b.Options.BoundaryCount}
	if err := nav.Validate(); err != nil {
		return Result{}, err
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return Result{}, err
	}
	md := newMarkdown(b.Options.CodeStyle)
	log := b.Logger.With("out", b.Options.OutDir)

	var result Result
	write := func(rel string, t *template.Template, data any) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(b.Options.OutDir, filepath.FromSlash(rel))
		if err := writePage(path, t, data); err != nil {
			return err
		}
		result.Files = append(result.Files, rel)
		log.With("file", rel).Debug("wrote page")
		return nil
	}

	components := b.sidebarOrder()
	pages := max(1, (len(components)+b.Options.PageSize-1)/b.Options.PageSize)
	for page := 1; page <= pages; page++ {
		data, err := b.indexPage(components, page, pages, nav)
		if err != nil {
			return result, err
		}
		if err := write(indexPath(page), tmpl.index, data); err != nil {
			return result, err
		}
		result.IndexPages++
	}

	for _, component := range components {
		data, err := b.componentPage(md, component)
		if err != nil {
			return result, fmt.Errorf("render %s: %w", component.Slug, err)
		}
		if err := write("components/"+component.Slug+"/index.html", tmpl.component, data); err != nil {
			return result, err
		}
		result.Components++
	}

	log.WithFields(map[string]any{
		"index_pages": result.IndexPages,
		"components":  result.Components,
	}).Info("site built")
	return result, nil
}

// sidebarOrder lists components grouped by category, matching the browser.
func (b *Builder) sidebarOrder() []catalog.Component {
	var out []catalog.Component
	for _, section := range b.Catalog.ByCategory() {
		out = append(out, section.Components...)
	}
	return out
}

func (b *Builder) indexPage(components []catalog.Component, page, pages int, opts pagination.EllipsisOptions) (indexPage, error) {
	start := (page - 1) * b.Options.PageSize
	end := min(len(components), start+b.Options.PageSize)

	root := rootFor(indexPath(page))
	items, err := pagination.EllipsisPages(page, pages, opts)
	if err != nil {
		return indexPage{}, err
	}

	title := "Components"
	if page > 1 {
		title = fmt.Sprintf("Components, page %d", page)
	}

	data := indexPage{
		SiteTitle:  b.Options.Title,
		PageTitle:  title,
		Root:       root,
		Total:      len(components),
		Components: components[start:end],
	}
	if pages > 1 {
		data.Nav = navCells(items, page, pages, func(p int) string { return root + indexPath(p) })
	}
	return data, nil
}

func (b *Builder) componentPage(md goldmark.Markdown, component catalog.Component) (componentPage, error) {
	description, err := renderMarkdown(md, component.Description)
	if err != nil {
		return componentPage{}, err
	}

	var code template.HTML
	if strings.TrimSpace(component.CodeExample) != "" {
		code, err = renderMarkdown(md, fence(component.CodeExample, component.CodeLanguage))
		if err != nil {
			return componentPage{}, err
		}
	}

	data := componentPage{
		SiteTitle:   b.Options.Title,
		PageTitle:   component.Name,
		Root:        "../../",
		Component:   component,
		Description: description,
		Code:        code,
		Install:     component.InstallCommand(b.Options.RegistryURL),
	}

	if !component.Live() {
		return data, nil
	}
	for i, demo := range component.Demos {
		strategy, err := demo.Strategy(component.Widget, b.Options.Demos)
		if err != nil {
			return componentPage{}, err
		}
		items, err := strategy.Items(demo.CurrentPage, demo.TotalPages)
		if err != nil {
			return componentPage{}, fmt.Errorf("demo %d: %w", i, err)
		}
		data.Demos = append(data.Demos, demoSnapshot{
			Title:       demo.Title,
			Description: demo.Description,
			Current:     demo.CurrentPage,
			Nav:         navCells(items, demo.CurrentPage, demo.TotalPages, nil),
		})
	}
	return data, nil
}

// indexPath is the slash-separated path of a listing page relative to the site root.
func indexPath(page int) string {
	if page <= 1 {
		return "index.html"
	}
	return fmt.Sprintf("page/%d/index.html", page)
}

// rootFor returns the relative prefix leading from rel back to the site root.
func rootFor(rel string) string {
	return strings.Repeat("../", strings.Count(rel, "/"))
}

func writePage(path string, t *template.Template, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(file, t, data); err != nil {
		file.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return file.Close()
}

func render(w io.Writer, t *template.Template, data any) error {
	return t.ExecuteTemplate(w, "layout", data)
}
