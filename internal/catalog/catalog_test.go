package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showroom/internal/pagination"
	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)
	require.Equal(t, 6, cat.Len())

	ellipsis, err := cat.Get("ellipsis-pagination")
	require.NoError(t, err)
	assert.Equal(t, "Ellipsis Pagination", ellipsis.Name)
	assert.Equal(t, CategoryLayout, ellipsis.Category)
	assert.Equal(t, pagination.StrategyEllipsis, ellipsis.Widget)
	assert.True(t, ellipsis.Live())
	assert.Len(t, ellipsis.Demos, 5)
	assert.Len(t, ellipsis.Props, 5)

	exponential, err := cat.Get("exponential-pagination")
	require.NoError(t, err)
	assert.Equal(t, pagination.StrategyExponential, exponential.Widget)
	assert.Equal(t, 500, exponential.Demos[1].TotalPages)

	clock, err := cat.Get("ios-clock-picker")
	require.NoError(t, err)
	assert.False(t, clock.Live())
	assert.Empty(t, clock.Demos)
}

func TestGetUnknownSlug(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	_, err = cat.Get("dropdown")
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "dropdown", notFound.Key)
}

func TestLookupByName(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	component, err := cat.Lookup("Exponential Pagination")
	require.NoError(t, err)
	assert.Equal(t, "exponential-pagination", component.Slug)

	_, err = cat.Lookup("Nothing Here")
	require.Error(t, err)
}

func TestByCategoryOrder(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	sections := cat.ByCategory()
	require.Len(t, sections, 3)

	assert.Equal(t, CategoryForm, sections[0].Category)
	assert.Equal(t, []string{"multi-select-combobox", "icon-transition-toggle", "ios-clock-picker"}, slugs(sections[0].Components))
	assert.Equal(t, CategoryLayout, sections[1].Category)
	assert.Equal(t, []string{"ellipsis-pagination", "exponential-pagination"}, slugs(sections[1].Components))
	assert.Equal(t, CategoryDataDisplay, sections[2].Category)

	assert.Equal(t, []Category{CategoryForm, CategoryLayout, CategoryDataDisplay}, cat.Categories())
	assert.Equal(t, "Data Display", CategoryDataDisplay.Title())
}

func TestInstallCommand(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	command, err := cat.InstallCommand("ellipsis-pagination", "https://imaimai-ui.vercel.app/")
	require.NoError(t, err)
	assert.Equal(t, "npx shadcn@latest add https://imaimai-ui.vercel.app/r/ellipsis-pagination.json", command)

	_, err = cat.InstallCommand("missing-slug", "https://example.com")
	require.Error(t, err)
}

func TestListReturnsCopy(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	list := cat.List()
	list[0].Name = "mutated"

	again, err := cat.Get(list[0].Slug)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Name)
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ios-clock-picker", Slugify("iOS Clock Picker"))
	assert.Equal(t, "multi-select-combobox", Slugify("  Multi  Select / Combobox "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestDemoStrategy(t *testing.T) {
	t.Parallel()

	two := 2
	demo := Demo{Title: "wide", CurrentPage: 5, TotalPages: 10, SiblingCount: &two}

	strategy, err := demo.Strategy(pagination.StrategyEllipsis, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, pagination.EllipsisStrategy{Options: pagination.EllipsisOptions{SiblingCount: 2, BoundaryCount: 1}}, strategy)

	strategy, err = Demo{MarkGaps: true}.Strategy(pagination.StrategyExponential, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, pagination.ExponentialStrategy{Options: pagination.ExponentialOptions{SiblingCount: 3}, MarkGaps: true}, strategy)

	_, err = demo.Strategy("carousel", DefaultOptions())
	require.Error(t, err)

	control, err := demo.Control(pagination.StrategyEllipsis, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, control.Current())
}

func TestParseValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		contents  string
		wantField string
	}{
		{
			name: "bad slug",
			contents: `version: 1
components:
  - slug: Bad Slug
    name: Bad
    category: form
    description: d
    registry_name: bad-slug
`,
			wantField: "components[0].slug",
		},
		{
			name: "unknown category",
			contents: `version: 1
components:
  - slug: widget
    name: Widget
    category: navigation
    description: d
    registry_name: widget
`,
			wantField: "components[0].category",
		},
		{
			name: "duplicate slug",
			contents: `version: 1
components:
  - slug: widget
    name: Widget
    category: form
    description: d
    registry_name: widget
  - slug: widget
    name: Widget again
    category: form
    description: d
    registry_name: widget
`,
			wantField: "components[1].slug",
		},
		{
			name: "demo starts past the last page",
			contents: `version: 1
components:
  - slug: pager
    name: Pager
    category: layout
    widget: ellipsis
    description: d
    registry_name: pager
    demos:
      - title: broken
        current_page: 11
        total_pages: 10
`,
			wantField: "components[0].demos[0].current_page",
		},
		{
			name: "demos without a widget",
			contents: `version: 1
components:
  - slug: picker
    name: Picker
    category: form
    description: d
    registry_name: picker
    demos:
      - title: orphan
        current_page: 1
        total_pages: 1
`,
			wantField: "components[0].demos",
		},
		{
			name: "unsupported version",
			contents: `version: 2
components:
  - slug: picker
    name: Picker
    category: form
    description: d
    registry_name: picker
`,
			wantField: "version",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse("catalog.yaml", []byte(tc.contents))
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse("catalog.yaml", []byte("version: 1\ncomponents: [\n"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "catalog.yaml", parseErr.Path)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: 1
components:
  - slug: pager
    name: Pager
    category: layout
    widget: exponential
    description: A pager.
    registry_name: pager
    demos:
      - title: start
        current_page: 1
        total_pages: 64
`), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	embedded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, embedded.Len())
}

func slugs(components []Component) []string {
	result := make([]string, len(components))
	for i, component := range components {
		result[i] = component.Slug
	}
	return result
}
