package pagination

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// render flattens items into a compact form for comparisons: pages as numbers,
// ellipses as "…".
func render(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}

func TestEllipsisPagesSmallRangeShowsEveryPage(t *testing.T) {
	t.Parallel()

	want := []int{1, 2, 3, 4, 5, 6, 7}
	for current := 1; current <= 7; current++ {
		items, err := EllipsisPages(current, 7, EllipsisOptions{SiblingCount: 1, BoundaryCount: 1})
		require.NoError(t, err)
		for _, item := range items {
			require.True(t, item.IsPage(), "current=%d produced an ellipsis", current)
		}
		if diff := cmp.Diff(want, Values(items)); diff != "" {
			t.Fatalf("current=%d mismatch (-want +got):\n%s", current, diff)
		}
	}
}

func TestEllipsisPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		opts    EllipsisOptions
		want    []Item
	}{
		{
			name:    "middle of a long range",
			current: 5,
			total:   100,
			opts:    EllipsisOptions{SiblingCount: 1, BoundaryCount: 1},
			want:    []Item{Page(1), Ellipsis("left"), Page(4), Page(5), Page(6), Ellipsis("right"), Page(100)},
		},
		{
			name:    "first page with wide boundary has no left ellipsis",
			current: 1,
			total:   100,
			opts:    EllipsisOptions{SiblingCount: 1, BoundaryCount: 3},
			want:    []Item{Page(1), Page(2), Page(3), Ellipsis("right"), Page(98), Page(99), Page(100)},
		},
		{
			name:    "last page drops the right ellipsis",
			current: 100,
			total:   100,
			opts:    EllipsisOptions{SiblingCount: 1, BoundaryCount: 1},
			want:    []Item{Page(1), Ellipsis("left"), Page(99), Page(100)},
		},
		{
			name:    "first page with default options",
			current: 1,
			total:   100,
			opts:    DefaultEllipsisOptions(),
			want:    []Item{Page(1), Page(2), Ellipsis("right"), Page(100)},
		},
		{
			name:    "window near the end touches the right boundary",
			current: 97,
			total:   100,
			opts:    EllipsisOptions{SiblingCount: 1, BoundaryCount: 3},
			want:    []Item{Page(1), Page(2), Page(3), Ellipsis("left"), Page(96), Page(97), Page(98), Page(99), Page(100)},
		},
		{
			name:    "two boundary pages",
			current: 5,
			total:   10,
			opts:    EllipsisOptions{SiblingCount: 1, BoundaryCount: 2},
			want:    []Item{Page(1), Page(2), Ellipsis("left"), Page(4), Page(5), Page(6), Ellipsis("right"), Page(9), Page(10)},
		},
		{
			name:    "zero boundary disables pinning",
			current: 5,
			total:   10,
			opts:    EllipsisOptions{SiblingCount: 2, BoundaryCount: 0},
			want:    []Item{Ellipsis("left"), Page(3), Page(4), Page(5), Page(6), Page(7), Ellipsis("right")},
		},
		{
			name:    "zero siblings shows only the current page in the window",
			current: 10,
			total:   20,
			opts:    EllipsisOptions{SiblingCount: 0, BoundaryCount: 1},
			want:    []Item{Page(1), Ellipsis("left"), Page(10), Ellipsis("right"), Page(20)},
		},
		{
			name:    "range that fits the threshold exactly",
			current: 1,
			total:   10,
			opts:    EllipsisOptions{SiblingCount: 1, BoundaryCount: 3},
			want:    []Item{Page(1), Page(2), Page(3), Page(4), Page(5), Page(6), Page(7), Page(8), Page(9), Page(10)},
		},
		{
			name:    "single page",
			current: 1,
			total:   1,
			opts:    DefaultEllipsisOptions(),
			want:    []Item{Page(1)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := EllipsisPages(tt.current, tt.total, tt.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(render(tt.want), render(got)); diff != "" {
				t.Fatalf("EllipsisPages(%d, %d, %+v) mismatch (-want +got):\n%s", tt.current, tt.total, tt.opts, diff)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEllipsisPagesInvariants(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 40; total++ {
		for sibling := 0; sibling <= 3; sibling++ {
			for boundary := 0; boundary <= 3; boundary++ {
				opts := EllipsisOptions{SiblingCount: sibling, BoundaryCount: boundary}
				for current := 1; current <= total; current++ {
					items, err := EllipsisPages(current, total, opts)
					require.NoError(t, err)

					values := Values(items)
					assertStrictlyIncreasing(t, values, total)
					require.Contains(t, values, current, "current page missing for %d/%d %+v", current, total, opts)

					if boundary >= 1 {
						require.Equal(t, 1, values[0], "first page missing for %d/%d %+v", current, total, opts)
						require.Equal(t, total, values[len(values)-1], "last page missing for %d/%d %+v", current, total, opts)
					}

					ellipses := 0
					for i, item := range items {
						if !item.IsEllipsis() {
							continue
						}
						ellipses++
						if i > 0 {
							require.False(t, items[i-1].IsEllipsis(), "adjacent ellipses for %d/%d %+v", current, total, opts)
						}
					}
					require.LessOrEqual(t, ellipses, 2)
					if opts.fitsWhole(total) {
						require.Zero(t, ellipses)
					}
				}
			}
		}
	}
}

func TestEllipsisPagesHugeCounts(t *testing.T) {
	t.Parallel()

	huge := []int{math.MaxInt, math.MaxInt / 2, math.MaxInt/2 + 1, math.MaxInt / 4}
	for _, count := range huge {
		for _, opts := range []EllipsisOptions{
			{SiblingCount: count, BoundaryCount: 1},
			{SiblingCount: 1, BoundaryCount: count},
			{SiblingCount: count, BoundaryCount: count},
			{SiblingCount: count, BoundaryCount: 0},
		} {
			for _, current := range []int{1, 5, 50, 100} {
				items, err := EllipsisPages(current, 100, opts)
				require.NoError(t, err, "current=%d %+v", current, opts)
				require.Len(t, items, 100, "every page fits when a count covers the range")
				require.Contains(t, Values(items), current)
			}
		}
	}
}

func TestEllipsisPagesLargeTotals(t *testing.T) {
	t.Parallel()

	items, err := EllipsisPages(math.MaxInt, math.MaxInt, DefaultEllipsisOptions())
	require.NoError(t, err)
	assert.Equal(t, []Item{Page(1), Ellipsis("left"), Page(math.MaxInt - 1), Page(math.MaxInt)}, items)

	items, err = EllipsisPages(math.MaxInt-5, math.MaxInt, EllipsisOptions{SiblingCount: 10, BoundaryCount: 2})
	require.NoError(t, err)
	values := Values(items)
	assertStrictlyIncreasing(t, values, math.MaxInt)
	assert.Contains(t, values, math.MaxInt-5)
	assert.Equal(t, math.MaxInt, values[len(values)-1])

	items, err = EllipsisPages(3, math.MaxInt, EllipsisOptions{SiblingCount: 10, BoundaryCount: 0})
	require.NoError(t, err)
	assert.Len(t, items, 14)
	assert.Equal(t, Page(1), items[0])
	assert.Equal(t, Page(13), items[12])
	assert.Equal(t, Ellipsis("right"), items[13])
}

func TestEllipsisPagesEllipsisHidesAGenuineGap(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			items, err := EllipsisPages(current, total, DefaultEllipsisOptions())
			require.NoError(t, err)

			for i, item := range items {
				if !item.IsEllipsis() || i == 0 || i == len(items)-1 {
					continue
				}
				before, after := items[i-1], items[i+1]
				require.Greater(t, after.Value-before.Value, 1, "ellipsis between adjacent pages for %d/%d", current, total)
			}
		}
	}
}

func TestEllipsisPagesIsPure(t *testing.T) {
	t.Parallel()

	first, err := EllipsisPages(42, 300, EllipsisOptions{SiblingCount: 2, BoundaryCount: 2})
	require.NoError(t, err)
	second, err := EllipsisPages(42, 300, EllipsisOptions{SiblingCount: 2, BoundaryCount: 2})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEllipsisPagesRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		opts    EllipsisOptions
		wantErr error
	}{
		{name: "zero total", current: 1, total: 0, opts: DefaultEllipsisOptions(), wantErr: ErrInvalidTotal},
		{name: "current below range", current: 0, total: 10, opts: DefaultEllipsisOptions(), wantErr: ErrPageOutOfRange},
		{name: "current above range", current: 11, total: 10, opts: DefaultEllipsisOptions(), wantErr: ErrPageOutOfRange},
		{name: "negative siblings", current: 1, total: 10, opts: EllipsisOptions{SiblingCount: -1, BoundaryCount: 1}, wantErr: ErrNegativeOption},
		{name: "negative boundary", current: 1, total: 10, opts: EllipsisOptions{SiblingCount: 1, BoundaryCount: -2}, wantErr: ErrNegativeOption},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items, err := EllipsisPages(tt.current, tt.total, tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, items)
		})
	}
}

func assertStrictlyIncreasing(t *testing.T, values []int, total int) {
	t.Helper()

	require.NotEmpty(t, values)
	for i, value := range values {
		require.GreaterOrEqual(t, value, 1)
		require.LessOrEqual(t, value, total)
		if i > 0 {
			require.Greater(t, value, values[i-1], "values not strictly increasing: %v", values)
		}
	}
}
