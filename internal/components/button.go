package components

import (
	"github.com/charmbracelet/lipgloss"
)

type ButtonVariant int

const (
	// ButtonVariantOutline is the default page cell: bordered text on the surface colour.
	ButtonVariantOutline ButtonVariant = iota
	// ButtonVariantPrimary fills the cell with the primary colour, used for the active page.
	ButtonVariantPrimary
	// ButtonVariantGhost has no chrome at all, used for prev/next.
	ButtonVariantGhost
)

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
}

// Button is a single-line clickable cell.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options.
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithDisabled sets the button disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state.
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// Disabled reports whether the button ignores clicks.
func (b *Button) Disabled() bool {
	return b.options.Disabled
}

// View renders the button.
func (b *Button) View() string {
	return b.buildStyle().Render(b.label)
}

// Width is the rendered width in terminal cells.
func (b *Button) Width() int {
	return lipgloss.Width(b.View())
}

func (b *Button) buildStyle() lipgloss.Style {
	style := Style(lipgloss.NewStyle(), buttonVariantAppliers(b.options.Variant)...)

	switch {
	case b.options.Disabled:
		style = Style(style, Foreground(PaletteNeutral)).Faint(true)
	case b.options.Focus:
		style = style.Underline(true)
	}

	return style
}

func buttonVariantAppliers(variant ButtonVariant) []StyleApplier {
	switch variant {
	case ButtonVariantPrimary:
		return []StyleApplier{
			Background(PalettePrimary),
			PaddingX(SpacingSizeSmall),
			Typography(TypographyVariantEmphasis),
		}
	case ButtonVariantGhost:
		return []StyleApplier{
			Foreground(PaletteSecondary),
			PaddingX(SpacingSizeSmall),
		}
	default:
		return []StyleApplier{
			Typography(TypographyVariantBody),
			PaddingX(SpacingSizeSmall),
		}
	}
}
