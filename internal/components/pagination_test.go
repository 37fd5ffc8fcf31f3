package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showroom/internal/pagination"
)

func newEllipsisControl(t *testing.T, current, total int, changes *[]int) *pagination.Control {
	t.Helper()

	strategy := pagination.EllipsisStrategy{Options: pagination.DefaultEllipsisOptions()}
	control, err := pagination.NewControl(current, total, strategy, func(page int) {
		*changes = append(*changes, page)
	})
	require.NoError(t, err)
	return control
}

func TestPaginationViewRendersItems(t *testing.T) {
	var changes []int
	view := NewPaginationView(newEllipsisControl(t, 1, 10, &changes))

	assert.Equal(t, " ‹ Prev   1   2   …   10   Next › ", view.View())
}

func TestPaginationViewHitboxesCoverEveryCell(t *testing.T) {
	var changes []int
	view := NewPaginationView(newEllipsisControl(t, 5, 10, &changes))

	boxes := view.Hitboxes()
	// prev, 1 … 4 5 6 … 10, next
	require.Len(t, boxes, 9)

	assert.Equal(t, HitPrevious, boxes[0].Target)
	assert.False(t, boxes[0].Disabled)
	assert.Equal(t, HitEllipsis, boxes[2].Target)
	assert.True(t, boxes[2].Disabled)
	assert.Equal(t, HitNext, boxes[8].Target)

	for i := 1; i < len(boxes); i++ {
		assert.Equal(t, boxes[i-1].End+1, boxes[i].Start, "cells are separated by one column")
	}
	assert.Equal(t, pagination.Page(6), boxes[5].Item)
}

func TestPaginationViewClick(t *testing.T) {
	var changes []int
	control := newEllipsisControl(t, 5, 10, &changes)
	view := NewPaginationView(control)

	boxes := view.Hitboxes()

	require.True(t, view.Click(boxes[5].Start), "clicking page 6 selects it")
	assert.Equal(t, 6, control.Current())

	boxes = view.Hitboxes()
	assert.False(t, view.Click(boxes[2].Start), "ellipsis is not interactive")

	require.True(t, view.Click(boxes[0].End-1), "previous")
	assert.Equal(t, 5, control.Current())

	require.True(t, view.Click(view.Hitboxes()[8].Start), "next")
	assert.Equal(t, 6, control.Current())

	assert.False(t, view.Click(-1))
	assert.False(t, view.Click(10_000))

	assert.Equal(t, []int{6, 5, 6}, changes)
}

func TestPaginationViewDisabledEnds(t *testing.T) {
	var changes []int
	control := newEllipsisControl(t, 1, 1, &changes)
	view := NewPaginationView(control)

	boxes := view.Hitboxes()
	require.Len(t, boxes, 3)
	assert.True(t, boxes[0].Disabled)
	assert.True(t, boxes[2].Disabled)

	assert.False(t, view.Click(boxes[0].Start))
	assert.False(t, view.Click(boxes[2].Start))
	assert.False(t, view.Click(boxes[1].Start), "clicking the current page is not a change")
	assert.Equal(t, []int{1}, changes)
}
