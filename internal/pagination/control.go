package pagination

import (
	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

// Control is the stateful shell around a Strategy. It owns the current page, guards
// previous/next at the ends of the range and reports every page change to onChange.
// Items are recomputed on every call.
type Control struct {
	current  int
	total    int
	strategy Strategy
	onChange func(page int)
}

// NewControl validates the starting position and returns a control. onChange may be nil.
func NewControl(current, total int, strategy Strategy, onChange func(page int)) (*Control, error) {
	if strategy == nil {
		return nil, apperrors.NewValidationError("strategy", "strategy is required", nil)
	}
	if err := Validate(current, total); err != nil {
		return nil, err
	}
	return &Control{
		current:  current,
		total:    total,
		strategy: strategy,
		onChange: onChange,
	}, nil
}

// Current returns the current page.
func (c *Control) Current() int {
	return c.current
}

// Total returns the total page count.
func (c *Control) Total() int {
	return c.total
}

// Strategy returns the active generator.
func (c *Control) Strategy() Strategy {
	return c.strategy
}

// SetStrategy swaps the generator used by Items. A nil strategy is rejected and the
// current one is kept.
func (c *Control) SetStrategy(strategy Strategy) error {
	if strategy == nil {
		return apperrors.NewValidationError("strategy", "strategy is required", nil)
	}
	c.strategy = strategy
	return nil
}

// OnChange replaces the page-change callback.
func (c *Control) OnChange(fn func(page int)) {
	c.onChange = fn
}

// Items returns the render items for the current position.
func (c *Control) Items() ([]Item, error) {
	return c.strategy.Items(c.current, c.total)
}

// HasPrevious reports whether the previous control is enabled.
func (c *Control) HasPrevious() bool {
	return c.current > 1
}

// HasNext reports whether the next control is enabled.
func (c *Control) HasNext() bool {
	return c.current < c.total
}

// Previous moves one page back unless already on the first page.
func (c *Control) Previous() bool {
	if !c.HasPrevious() {
		return false
	}
	c.change(c.current - 1)
	return true
}

// Next moves one page forward unless already on the last page.
func (c *Control) Next() bool {
	if !c.HasNext() {
		return false
	}
	c.change(c.current + 1)
	return true
}

// First jumps to page one.
func (c *Control) First() bool {
	if !c.HasPrevious() {
		return false
	}
	c.change(1)
	return true
}

// Last jumps to the final page.
func (c *Control) Last() bool {
	if !c.HasNext() {
		return false
	}
	c.change(c.total)
	return true
}

// Select moves to page, as a click on a page item does. Pages outside [1, total] are
// rejected and the callback is not invoked.
func (c *Control) Select(page int) error {
	if err := validatePage("page", page, c.total); err != nil {
		return err
	}
	c.change(page)
	return nil
}

// SelectItem selects a rendered item. Ellipsis markers are not interactive.
func (c *Control) SelectItem(item Item) error {
	if item.IsEllipsis() {
		return ErrNotSelectable
	}
	return c.Select(item.Value)
}

// SetTotal replaces the total page count. When the current page no longer fits it moves
// to the new last page and the callback fires.
func (c *Control) SetTotal(total int) error {
	if total < 1 {
		return Validate(1, total)
	}
	c.total = total
	if c.current > total {
		c.change(total)
	}
	return nil
}

func (c *Control) change(page int) {
	c.current = page
	if c.onChange != nil {
		c.onChange(page)
	}
}
