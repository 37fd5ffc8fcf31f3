package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showroom/internal/pagination"
)

const (
	PreviousLabel = "‹ Prev"
	NextLabel     = "Next ›"
)

// HitTarget identifies what a rendered cell does when clicked.
type HitTarget int

const (
	HitPrevious HitTarget = iota
	HitPage
	HitEllipsis
	HitNext
)

// Hitbox is the half-open column span [Start, End) of one rendered cell.
type Hitbox struct {
	Start    int
	End      int
	Target   HitTarget
	Item     pagination.Item
	Disabled bool
}

// Contains reports whether column x falls inside the box.
func (h Hitbox) Contains(x int) bool {
	return x >= h.Start && x < h.End
}

// PaginationView renders a pagination.Control as a single line of cells and maps
// clicks back onto the control.
type PaginationView struct {
	control *pagination.Control
	focused bool
}

type paginationCell struct {
	view string
	hit  Hitbox
}

// NewPaginationView wraps control.
func NewPaginationView(control *pagination.Control) *PaginationView {
	return &PaginationView{control: control}
}

// WithFocus underlines the current page.
func (v *PaginationView) WithFocus(focused bool) *PaginationView {
	v.focused = focused
	return v
}

// View renders the control. Generator errors render as an error alert.
func (v *PaginationView) View() string {
	cells, err := v.cells()
	if err != nil {
		return ErrorAlert(err.Error()).View()
	}

	views := make([]string, len(cells))
	for i, cell := range cells {
		views[i] = cell.view
	}
	return strings.Join(views, " ")
}

// Hitboxes returns the column span of every cell in render order.
func (v *PaginationView) Hitboxes() []Hitbox {
	cells, err := v.cells()
	if err != nil {
		return nil
	}

	boxes := make([]Hitbox, len(cells))
	for i, cell := range cells {
		boxes[i] = cell.hit
	}
	return boxes
}

// Click applies a click at column x. It reports whether the current page changed.
// Clicks on gaps, ellipses and disabled buttons are ignored.
func (v *PaginationView) Click(x int) bool {
	for _, box := range v.Hitboxes() {
		if !box.Contains(x) || box.Disabled {
			continue
		}

		switch box.Target {
		case HitPrevious:
			return v.control.Previous()
		case HitNext:
			return v.control.Next()
		case HitPage:
			before := v.control.Current()
			if err := v.control.SelectItem(box.Item); err != nil {
				return false
			}
			return v.control.Current() != before
		}
		return false
	}
	return false
}

func (v *PaginationView) cells() ([]paginationCell, error) {
	items, err := v.control.Items()
	if err != nil {
		return nil, err
	}

	ellipsisStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantMuted), PaddingX(SpacingSizeSmall))

	cells := make([]paginationCell, 0, len(items)+2)
	column := 0
	push := func(view string, hit Hitbox) {
		width := lipgloss.Width(view)
		hit.Start = column
		hit.End = column + width
		cells = append(cells, paginationCell{view: view, hit: hit})
		column += width + 1
	}

	prev := NewButton(PreviousLabel, ButtonOptions{Variant: ButtonVariantGhost, Disabled: !v.control.HasPrevious()})
	push(prev.View(), Hitbox{Target: HitPrevious, Disabled: prev.Disabled()})

	for _, item := range items {
		if item.IsEllipsis() {
			push(ellipsisStyle.Render(pagination.EllipsisGlyph), Hitbox{Target: HitEllipsis, Item: item, Disabled: true})
			continue
		}

		opts := ButtonOptions{Variant: ButtonVariantOutline}
		if item.Value == v.control.Current() {
			opts.Variant = ButtonVariantPrimary
			opts.Focus = v.focused
		}
		push(NewButton(item.String(), opts).View(), Hitbox{Target: HitPage, Item: item})
	}

	next := NewButton(NextLabel, ButtonOptions{Variant: ButtonVariantGhost, Disabled: !v.control.HasNext()})
	push(next.View(), Hitbox{Target: HitNext, Disabled: next.Disabled()})

	return cells, nil
}
