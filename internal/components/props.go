package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PropRow is one documented prop of a component.
type PropRow struct {
	Name        string
	Type        string
	Required    bool
	Default     string
	Description string
}

// PropsTable renders props as a bordered table. Empty input yields a muted notice.
func PropsTable(rows []PropRow) string {
	if len(rows) == 0 {
		return TypographyStyle(TypographyVariantMuted).Render("This component has no props.")
	}

	theme := GetTheme()
	header := Style(lipgloss.NewStyle(), Foreground(PalettePrimary), PaddingX(SpacingSizeSmall)).Bold(true)
	cell := Style(lipgloss.NewStyle(), Typography(TypographyVariantBody), PaddingX(SpacingSizeSmall))
	code := cell.Foreground(theme.Palette.Secondary.Base)

	t := table.New().
		Border(theme.Borders.Rounded).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base)).
		Headers("Prop", "Type", "Default", "Description").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0 || col == 1:
				return code
			default:
				return cell
			}
		})

	for _, row := range rows {
		name := row.Name
		if row.Required {
			name += " " + Badge("required", PaletteWarning)
		}
		def := row.Default
		if def == "" {
			def = "-"
		}
		t.Row(name, row.Type, def, row.Description)
	}

	return t.Render()
}
