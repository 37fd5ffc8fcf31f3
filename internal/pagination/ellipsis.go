package pagination

// EllipsisOptions tunes the bounded-ellipsis generator.
type EllipsisOptions struct {
	// SiblingCount is the number of pages shown on each side of the current page.
	SiblingCount int `json:"sibling_count" yaml:"sibling_count"`
	// BoundaryCount is the number of pages pinned at each end of the range. Zero disables
	// boundary pinning.
	BoundaryCount int `json:"boundary_count" yaml:"boundary_count"`
}

// DefaultEllipsisOptions returns one sibling and one boundary page on each side.
func DefaultEllipsisOptions() EllipsisOptions {
	return EllipsisOptions{SiblingCount: 1, BoundaryCount: 1}
}

// Validate rejects negative counts.
func (o EllipsisOptions) Validate() error {
	if err := validateCount("siblingCount", o.SiblingCount); err != nil {
		return err
	}
	return validateCount("boundaryCount", o.BoundaryCount)
}

// fitsWhole reports whether total pages fit under the threshold 2s+1+2b+2, the largest
// page count that is always rendered in full: the current page, its siblings, both
// boundary blocks and room for two ellipses. Counts may be arbitrarily large, so the
// comparison never forms 2s+2b+3 directly.
func (o EllipsisOptions) fitsWhole(total int) bool {
	rest := total - 3
	if rest <= 0 {
		return true
	}
	sibling, boundary := o.SiblingCount, o.BoundaryCount
	if sibling >= rest || boundary >= rest {
		return true
	}
	// 2(s+b) >= rest  <=>  s+b >= ceil(rest/2)
	return sibling >= (rest+1)/2-boundary
}

// EllipsisPages returns the items of a bounded-ellipsis control: the left boundary block,
// an optional left ellipsis, the window around current, an optional right ellipsis and the
// right boundary block. When totalPages fits under the threshold every page is returned
// and no ellipsis is introduced.
func EllipsisPages(current, total int, opts EllipsisOptions) ([]Item, error) {
	if err := Validate(current, total); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.fitsWhole(total) {
		items := make([]Item, total)
		for i := range items {
			items[i] = Page(i + 1)
		}
		return items, nil
	}

	// Past fitsWhole both counts are below total/2, so none of the sums below overflow.
	sibling, boundary := opts.SiblingCount, opts.BoundaryCount

	start := max(boundary+1, current-sibling)
	end := total - boundary
	if sibling < end-current {
		end = current + sibling
	}

	items := make([]Item, 0, 2*(sibling+boundary)+3)
	for page := 1; page <= boundary; page++ {
		items = append(items, Page(page))
	}
	if start > boundary+1 {
		items = append(items, Ellipsis("left"))
	}
	for n := 0; n <= end-start; n++ {
		items = append(items, Page(start+n))
	}
	if end < total-boundary {
		items = append(items, Ellipsis("right"))
	}
	for n := boundary - 1; n >= 0; n-- {
		items = append(items, Page(total-n))
	}

	return items, nil
}
