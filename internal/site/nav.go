package site

import (
	"strconv"

	"github.com/alexisbeaulieu97/showroom/internal/pagination"
)

// navCell is one entry of a rendered pagination bar.
type navCell struct {
	Label    string
	Href     string
	Current  bool
	Ellipsis bool
	Disabled bool
}

// navCells converts generator output into cells. href maps a page to its link; a nil href
// renders a static snapshot with no links.
func navCells(items []pagination.Item, current, total int, href func(page int) string) []navCell {
	link := func(page int) string {
		if href == nil {
			return ""
		}
		return href(page)
	}

	cells := make([]navCell, 0, len(items)+2)
	prev := navCell{Label: "‹ Prev", Disabled: current <= 1}
	if !prev.Disabled {
		prev.Href = link(current - 1)
	}
	cells = append(cells, prev)

	for _, item := range items {
		if item.IsEllipsis() {
			cells = append(cells, navCell{Ellipsis: true})
			continue
		}
		cell := navCell{Label: strconv.Itoa(item.Value), Current: item.Value == current}
		if !cell.Current {
			cell.Href = link(item.Value)
		}
		cells = append(cells, cell)
	}

	next := navCell{Label: "Next ›", Disabled: current >= total}
	if !next.Disabled {
		next.Href = link(current + 1)
	}
	return append(cells, next)
}
