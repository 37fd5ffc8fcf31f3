package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/pagination"
	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func readFile(t *testing.T, dir, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestBuildWritesListingAndComponentPages(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	builder := New(defaultCatalog(t), Options{
		OutDir:        out,
		PageSize:      4,
		Title:         "imaimai ui",
		RegistryURL:   "https://imaimai-ui.vercel.app/",
		SiblingCount:  1,
		BoundaryCount: 1,
	}, nil)

	result, err := builder.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.IndexPages)
	assert.Equal(t, 6, result.Components)
	assert.Contains(t, result.Files, "index.html")
	assert.Contains(t, result.Files, "page/2/index.html")
	assert.Contains(t, result.Files, "components/ellipsis-pagination/index.html")

	first := readFile(t, out, "index.html")
	assert.Contains(t, first, "<title>Components · imaimai ui</title>")
	assert.Contains(t, first, `href="components/multi-select-combobox/index.html"`)
	assert.Contains(t, first, `<span class="current" aria-current="page">1</span>`)
	assert.Contains(t, first, `<a href="page/2/index.html">2</a>`)
	assert.NotContains(t, first, "image-comparison-slider", "the last component is on the second page")

	second := readFile(t, out, "page/2/index.html")
	assert.Contains(t, second, `href="../../components/image-comparison-slider/index.html"`)
	assert.Contains(t, second, `<a href="../../index.html">1</a>`)
	assert.Contains(t, second, `<span class="disabled">Next ›</span>`)
}

func TestBuildComponentPage(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	_, err := New(defaultCatalog(t), Options{OutDir: out, RegistryURL: "https://imaimai-ui.vercel.app"}, nil).Build(context.Background())
	require.NoError(t, err)

	page := readFile(t, out, "components/ellipsis-pagination/index.html")
	assert.Contains(t, page, "npx shadcn@latest add https://imaimai-ui.vercel.app/r/ellipsis-pagination.json")
	assert.Contains(t, page, "<h3>boundaryCount</h3>")
	assert.Contains(t, page, "Current page: 5")
	assert.Contains(t, page, `<span class="ellipsis" aria-hidden="true">…</span>`)
	assert.Contains(t, page, "<pre")
	assert.Contains(t, page, "EllipsisPagination")
	assert.Contains(t, page, `<td><code>siblingCount</code></td>`)

	static := readFile(t, out, "components/ios-clock-picker/index.html")
	assert.NotContains(t, static, "<h2>Preview</h2>")
	assert.Contains(t, static, "<h2>Props</h2>")
}

func TestBuildHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := t.TempDir()
	result, err := New(defaultCatalog(t), Options{OutDir: out}, nil).Build(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Files)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBuildRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	cat := defaultCatalog(t)

	_, err := (&Builder{Catalog: cat, Options: Options{PageSize: 4}}).Build(context.Background())
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "out", validation.Field)

	_, err = (&Builder{Catalog: cat, Options: Options{OutDir: t.TempDir()}}).Build(context.Background())
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "page_size", validation.Field)

	_, err = New(cat, Options{OutDir: t.TempDir(), SiblingCount: -1}, nil).Build(context.Background())
	require.ErrorIs(t, err, pagination.ErrNegativeOption)

	_, err = New(nil, Options{OutDir: t.TempDir()}, nil).Build(context.Background())
	require.Error(t, err)
}

func TestNavCells(t *testing.T) {
	t.Parallel()

	items, err := pagination.EllipsisPages(1, 10, pagination.DefaultEllipsisOptions())
	require.NoError(t, err)

	cells := navCells(items, 1, 10, func(page int) string { return "p" + string(rune('0'+page%10)) })

	labels := make([]string, len(cells))
	for i, cell := range cells {
		if cell.Ellipsis {
			labels[i] = "…"
			continue
		}
		labels[i] = cell.Label
	}
	assert.Equal(t, "‹ Prev 1 2 … 10 Next ›", strings.Join(labels, " "))
	assert.True(t, cells[0].Disabled)
	assert.Empty(t, cells[0].Href)
	assert.True(t, cells[1].Current)
	assert.Equal(t, "p2", cells[2].Href)
	assert.Equal(t, "p2", cells[len(cells)-1].Href)

	static := navCells(items, 1, 10, nil)
	for _, cell := range static {
		assert.Empty(t, cell.Href)
	}
}

func TestFence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "```go\nx := 1\n```\n", fence("x := 1\n", "go"))
	assert.Equal(t, "````md\nuse ```code```\n````\n", fence("use ```code```", "md"))
}
