package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showroom/internal/components"
	"github.com/alexisbeaulieu97/showroom/internal/pagination"
)

const demoIndent = 2

// anchor is the position of a demo's pagination line inside the preview content.
type anchor struct {
	row int
	col int
}

// screenLayout records where the panes land on screen for mouse hit testing.
type screenLayout struct {
	sidebarTop  int
	sidebarRows []int
	contentLeft int
	contentTop  int
	demoAnchors []anchor

	header       string
	banner       string
	sidebar      string
	compHeader   string
	tabs         string
	footer       string
	bodyHeight   int
	contentWidth int
}

// View renders the current model state.
func (m Model) View() string {
	if m.tooSmall {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight)
	}

	layout := m.layout()

	var content string
	if m.selected < 0 {
		content = m.renderWelcome(layout.contentWidth)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, layout.compHeader, layout.tabs, m.viewport.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, layout.sidebar, content)

	sections := []string{layout.header}
	if layout.banner != "" {
		sections = append(sections, layout.banner)
	}
	sections = append(sections, body, layout.footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// layout renders the fixed chrome and measures it.
func (m Model) layout() screenLayout {
	l := screenLayout{
		header: m.renderHeader(),
		footer: m.renderFooter(),
	}
	if m.errorMsg != "" {
		l.banner = errorBannerStyle().Render("✗ " + m.errorMsg + "  (x to dismiss)")
	}

	l.sidebarTop = lipgloss.Height(l.header)
	if l.banner != "" {
		l.sidebarTop += lipgloss.Height(l.banner)
	}

	l.bodyHeight = m.height - l.sidebarTop - lipgloss.Height(l.footer)
	if l.bodyHeight < 1 {
		l.bodyHeight = 1
	}

	l.sidebar, l.sidebarRows = m.renderSidebar(l.bodyHeight)
	l.contentLeft = lipgloss.Width(l.sidebar)
	l.contentWidth = m.width - l.contentLeft
	if l.contentWidth < 20 {
		l.contentWidth = 20
	}

	l.contentTop = l.sidebarTop
	if m.selected >= 0 {
		l.compHeader = m.renderComponentHeader(l.contentWidth)
		l.tabs = components.Tabs(tabLabels, int(m.tab)) + "\n"
		l.contentTop += lipgloss.Height(l.compHeader) + lipgloss.Height(l.tabs)
		if m.tab == TabPreview {
			_, l.demoAnchors = m.renderPreview(l.contentWidth)
		}
	}
	return l
}

// refreshViewport resizes the viewport and reloads the active tab into it.
func (m *Model) refreshViewport() {
	l := m.layout()

	height := l.bodyHeight - lipgloss.Height(l.compHeader) - lipgloss.Height(l.tabs)
	if height < 3 {
		height = 3
	}
	m.viewport.Width = l.contentWidth
	m.viewport.Height = height

	if m.selected < 0 {
		m.viewport.SetContent("")
		return
	}

	switch m.tab {
	case TabCode:
		m.viewport.SetContent(m.renderCode())
	case TabProps:
		m.viewport.SetContent(m.renderProps())
	default:
		content, anchors := m.renderPreview(l.contentWidth)
		m.viewport.SetContent(content)
		if m.demoCursor < len(anchors) {
			m.scrollIntoView(anchors[m.demoCursor].row)
		}
	}
}

func (m *Model) scrollIntoView(row int) {
	switch {
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(max(row-2, 0))
	case row >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(row - m.viewport.Height + 2)
	}
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf("◆ showroom  %s", components.TypographyStyle(components.TypographyVariantMuted).
		Render(fmt.Sprintf("%d components", len(m.components))))
	return headerStyle().Width(m.width).Render(title)
}

func (m Model) renderSidebar(height int) (string, []int) {
	var lines []string
	var rows []int

	index := 0
	for _, section := range m.catalog.ByCategory() {
		if len(lines) > 0 {
			lines = append(lines, "")
			rows = append(rows, -1)
		}
		lines = append(lines, sectionTitleStyle().Render(strings.ToUpper(section.Category.Title())))
		rows = append(rows, -1)

		for _, component := range section.Components {
			label := component.Name
			if component.Live() {
				label += " ●"
			}

			marker := "  "
			if index == m.selected {
				marker = "▸ "
			}

			style := itemStyle()
			if index == m.cursor {
				style = cursorItemStyle(m.focus == FocusSidebar)
			}
			lines = append(lines, style.Render(marker+label))
			rows = append(rows, index)
			index++
		}
	}

	return sidebarStyle(height).Render(strings.Join(lines, "\n")), rows
}

func (m Model) renderWelcome(width int) string {
	return components.NewCard(components.CardData{
		Title:       "Component docs",
		Description: "Pick a component from the sidebar with ↑/↓ and enter. Components marked ● have a live terminal preview.",
		Footer:      "? toggles the full key list",
	}).WithWidth(min(width, 60)).View()
}

func (m Model) renderComponentHeader(width int) string {
	component, _ := m.SelectedComponent()

	name := components.TypographyStyle(components.TypographyVariantTitle).Render(component.Name)
	category := components.Badge(component.Category.Title(), components.PaletteSecondary)
	description := components.TypographyStyle(components.TypographyVariantBody).
		Width(max(width-2, 10)).
		Render(component.Description)

	return lipgloss.JoinVertical(lipgloss.Left,
		name+" "+category,
		description,
		components.InstallCommand(m.installCommand(), m.copied),
	)
}

// renderPreview lays out every live demo and reports where each pagination line sits.
func (m Model) renderPreview(width int) (string, []anchor) {
	component, _ := m.SelectedComponent()
	if !component.Live() {
		card := components.NewCard(components.CardData{
			Title:       "No live preview",
			Description: component.Name + " runs in the browser only. See the Code tab for usage.",
		}).WithWidth(min(width, 60))
		return card.View(), nil
	}

	indent := strings.Repeat(" ", demoIndent)
	descStyle := components.TypographyStyle(components.TypographyVariantSubtitle).Width(max(width-demoIndent-1, 10))

	var lines []string
	anchors := make([]anchor, 0, len(m.demos))
	for i, state := range m.demos {
		focused := i == m.demoCursor

		marker := "  "
		if focused {
			marker = "▌ "
		}
		lines = append(lines, demoTitleStyle(focused).Render(marker+state.demo.Title))

		if state.demo.Description != "" {
			for _, line := range strings.Split(descStyle.Render(state.demo.Description), "\n") {
				lines = append(lines, indent+line)
			}
		}

		anchors = append(anchors, anchor{row: len(lines), col: demoIndent})
		lines = append(lines, indent+paginationView(state).WithFocus(focused && m.focus == FocusContent).View())

		output := fmt.Sprintf("Current page: %d", state.control.Current())
		if state.widget == pagination.StrategyExponential {
			gaps := "off"
			if strategy, ok := state.control.Strategy().(pagination.ExponentialStrategy); ok && strategy.MarkGaps {
				gaps = "on"
			}
			output += fmt.Sprintf("  ·  gap markers %s", gaps)
		}
		lines = append(lines, indent+demoOutputStyle().Render(output), "")
	}

	return strings.Join(lines, "\n"), anchors
}

func paginationView(state *demoState) *components.PaginationView {
	return components.NewPaginationView(state.control)
}

func (m Model) renderCode() string {
	component, _ := m.SelectedComponent()
	if strings.TrimSpace(component.CodeExample) == "" {
		return components.TypographyStyle(components.TypographyVariantMuted).Render("No code example.")
	}
	return components.NewCodeBlock(component.CodeExample, component.CodeLanguage).View()
}

func (m Model) renderProps() string {
	component, _ := m.SelectedComponent()

	rows := make([]components.PropRow, len(component.Props))
	for i, prop := range component.Props {
		rows[i] = components.PropRow{
			Name:        prop.Name,
			Type:        prop.Type,
			Required:    prop.Required,
			Default:     prop.Default,
			Description: prop.Description,
		}
	}

	var deps []string
	if len(component.Dependencies) > 0 {
		deps = append(deps, "Dependencies: "+strings.Join(component.Dependencies, ", "))
	}
	if len(component.RegistryDependencies) > 0 {
		deps = append(deps, "Registry dependencies: "+strings.Join(component.RegistryDependencies, ", "))
	}

	table := components.PropsTable(rows)
	if len(deps) == 0 {
		return table
	}
	return table + "\n\n" + components.TypographyStyle(components.TypographyVariantMuted).Render(strings.Join(deps, "\n"))
}

func (m Model) renderFooter() string {
	if m.inputActive {
		return footerStyle().Width(m.width).Render(m.input.View() + "   enter to jump · esc to cancel")
	}
	return footerStyle().Width(m.width).Render(m.help.View(m.keys))
}
