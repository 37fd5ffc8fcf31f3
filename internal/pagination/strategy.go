package pagination

// Strategy produces the render items of a control for a given position.
type Strategy interface {
	Name() string
	Items(current, total int) ([]Item, error)
}

// Strategy names used by configuration, the catalog and the CLI.
const (
	StrategyEllipsis    = "ellipsis"
	StrategyExponential = "exponential"
)

// EllipsisStrategy adapts EllipsisPages to Strategy.
type EllipsisStrategy struct {
	Options EllipsisOptions
}

// Name returns "ellipsis".
func (EllipsisStrategy) Name() string {
	return StrategyEllipsis
}

// Items delegates to EllipsisPages.
func (s EllipsisStrategy) Items(current, total int) ([]Item, error) {
	return EllipsisPages(current, total, s.Options)
}

// ExponentialStrategy adapts ExponentialPages to Strategy. MarkGaps inserts an ellipsis
// between non-adjacent pages; by default the gaps are left implicit.
type ExponentialStrategy struct {
	Options  ExponentialOptions
	MarkGaps bool
}

// Name returns "exponential".
func (ExponentialStrategy) Name() string {
	return StrategyExponential
}

// Items delegates to ExponentialPages and converts the result to items.
func (s ExponentialStrategy) Items(current, total int) ([]Item, error) {
	pages, err := ExponentialPages(current, total, s.Options)
	if err != nil {
		return nil, err
	}
	return ItemsFromPages(pages, s.MarkGaps), nil
}
