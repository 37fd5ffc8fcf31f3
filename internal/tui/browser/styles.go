package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showroom/internal/components"
)

const sidebarWidth = 32

// Styles are built on demand so a theme chosen at startup applies.

func headerStyle() lipgloss.Style {
	return components.Style(
		lipgloss.NewStyle(),
		components.Foreground(components.PalettePrimary),
		components.PaddingX(components.SpacingSizeSmall),
	).Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(components.GetTheme().Palette.Neutral.Muted)
}

func sidebarStyle(height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(sidebarWidth-1).
		Height(height).
		PaddingLeft(1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(components.GetTheme().Palette.Neutral.Muted).
		MarginRight(1)
}

func sectionTitleStyle() lipgloss.Style {
	return components.TypographyStyle(components.TypographyVariantMuted).Bold(true)
}

func itemStyle() lipgloss.Style {
	return components.TypographyStyle(components.TypographyVariantBody).PaddingLeft(1)
}

func cursorItemStyle(focused bool) lipgloss.Style {
	style := components.Style(lipgloss.NewStyle(), components.Foreground(components.PalettePrimary)).
		Bold(true).
		PaddingLeft(1)
	if !focused {
		style = style.Faint(true)
	}
	return style
}

func errorBannerStyle() lipgloss.Style {
	return components.Style(
		lipgloss.NewStyle(),
		components.Background(components.PaletteDanger),
		components.PaddingX(components.SpacingSizeSmall),
	).Bold(true)
}

func footerStyle() lipgloss.Style {
	return components.TypographyStyle(components.TypographyVariantMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(components.GetTheme().Palette.Neutral.Muted)
}

func demoTitleStyle(focused bool) lipgloss.Style {
	if focused {
		return components.Style(lipgloss.NewStyle(), components.Foreground(components.PalettePrimary)).Bold(true)
	}
	return components.TypographyStyle(components.TypographyVariantEmphasis)
}

func demoOutputStyle() lipgloss.Style {
	return components.TypographyStyle(components.TypographyVariantMuted)
}
