package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tabs renders a one-line tab bar. The active tab is highlighted; an out-of-range index
// leaves every tab inactive.
func Tabs(labels []string, active int) string {
	if len(labels) == 0 {
		return ""
	}

	activeStyle := Style(lipgloss.NewStyle(), Foreground(PalettePrimary), PaddingX(SpacingSizeSmall)).
		Bold(true).
		Underline(true)
	inactiveStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantMuted), PaddingX(SpacingSizeSmall))

	cells := make([]string, len(labels))
	for i, label := range labels {
		if i == active {
			cells[i] = activeStyle.Render(label)
			continue
		}
		cells[i] = inactiveStyle.Render(label)
	}

	separator := TypographyStyle(TypographyVariantMuted).Render("│")
	return strings.Join(cells, separator)
}
