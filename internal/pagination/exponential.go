package pagination

// firstJump is the stride of the first step taken outside the contiguous window (2^2).
const firstJump = 4

// ExponentialOptions tunes the exponential-jump generator.
type ExponentialOptions struct {
	// SiblingCount is the half-width of the contiguous window around the current page.
	SiblingCount int `json:"sibling_count" yaml:"sibling_count"`
}

// DefaultExponentialOptions returns a contiguous window of three pages on each side.
func DefaultExponentialOptions() ExponentialOptions {
	return ExponentialOptions{SiblingCount: 3}
}

// Validate rejects a negative sibling count.
func (o ExponentialOptions) Validate() error {
	return validateCount("siblingCount", o.SiblingCount)
}

// ExponentialPages returns the ascending page numbers of an exponential-jump control.
//
// The result always holds 1 and totalPages, every page within SiblingCount of current,
// and jump targets reached by walking outward from the window edges in strides of
// 4, 8, 16, ... pages. Gaps between values are implicit; no ellipsis is produced.
func ExponentialPages(current, total int, opts ExponentialOptions) ([]int, error) {
	if err := Validate(current, total); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := max(1, current-opts.SiblingCount)
	end := total
	if opts.SiblingCount < total-current {
		end = current + opts.SiblingCount
	}

	set := newPageSet(end - start + 3)
	set.add(1)
	set.add(total)
	set.addRange(start, end)

	// stride > 0 stops the walk once doubling wraps around.
	for stride, page := firstJump, start; stride > 0 && stride < page; stride *= 2 {
		page -= stride
		set.add(page)
	}
	for stride, page := firstJump, end; stride > 0 && stride <= total-page; stride *= 2 {
		page += stride
		set.add(page)
	}

	return set.sorted(), nil
}
