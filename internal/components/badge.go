package components

import "github.com/charmbracelet/lipgloss"

// Badge renders a short inline label on a semantic colour, e.g. "required" or "live".
func Badge(label string, slot PaletteSlot) string {
	return Style(
		lipgloss.NewStyle(),
		Background(slot),
		PaddingX(SpacingSizeExtraSmall),
	).Render(label)
}
