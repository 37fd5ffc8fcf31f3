package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = m.width < minWidth || m.height < minHeight
		m.help.Width = m.width
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ComponentSelectedMsg:
		if err := m.openSlug(msg.Slug); err != nil {
			m.errorMsg = err.Error()
		}
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.errorMsg = fmt.Sprintf("Copy failed: %s", msg.Err)
			return m, nil
		}
		m.copied = true
		m.copySeq++
		m.log.With("text", msg.Text).Debug("copied to clipboard")
		return m, clearCopiedCmd(m.copySeq)

	case clearCopiedMsg:
		// A newer copy restarted the flash.
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case ErrorMsg:
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputActive {
		return m.handleInputKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refreshViewport()
		return m, nil
	}

	if m.errorMsg != "" && msg.String() == "x" {
		m.errorMsg = ""
		return m, nil
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKeys(msg)
	}
	return m.handleContentKeys(msg)
}

func (m Model) handleSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Next):
		if m.cursor >= 0 && m.cursor < len(m.components) {
			if err := m.open(m.cursor); err != nil {
				m.errorMsg = err.Error()
			}
		}
	case key.Matches(msg, m.keys.Back):
		m.errorMsg = ""
	}
	return m, nil
}

func (m Model) handleContentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.focus = FocusSidebar
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.setTab((m.tab + 1) % Tab(len(tabLabels)))
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.setTab((m.tab + Tab(len(tabLabels)) - 1) % Tab(len(tabLabels)))
		return m, nil
	case key.Matches(msg, m.keys.Tab1):
		m.setTab(TabPreview)
		return m, nil
	case key.Matches(msg, m.keys.Tab2):
		m.setTab(TabCode)
		return m, nil
	case key.Matches(msg, m.keys.Tab3):
		m.setTab(TabProps)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if command := m.installCommand(); command != "" {
			return m, copyCmd(m.clipboard, command)
		}
		return m, nil
	}

	if m.tab == TabPreview && len(m.demos) > 0 {
		if handled := m.handleDemoKeys(msg); handled {
			var cmd tea.Cmd
			if m.inputActive {
				cmd = m.input.Focus()
			}
			m.refreshViewport()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleDemoKeys applies paging keys to the focused demo.
func (m *Model) handleDemoKeys(msg tea.KeyMsg) bool {
	state, ok := m.focusedDemo()
	if !ok {
		return false
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.demoCursor > 0 {
			m.demoCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.demoCursor < len(m.demos)-1 {
			m.demoCursor++
		}
	case key.Matches(msg, m.keys.Prev):
		state.control.Previous()
	case key.Matches(msg, m.keys.Next):
		state.control.Next()
	case key.Matches(msg, m.keys.First):
		state.control.First()
	case key.Matches(msg, m.keys.Last):
		state.control.Last()
	case key.Matches(msg, m.keys.Gaps):
		m.toggleGaps(state)
	case key.Matches(msg, m.keys.GoTo):
		m.inputActive = true
		m.input.SetValue("")
		m.errorMsg = ""
	default:
		return false
	}
	return true
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.submitGoTo()
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitGoTo() {
	state, ok := m.focusedDemo()
	if !ok {
		return
	}

	value := strings.TrimSpace(m.input.Value())
	page, err := strconv.Atoi(value)
	if err != nil {
		m.errorMsg = fmt.Sprintf("%q is not a page number", value)
		return
	}
	if err := state.control.Select(page); err != nil {
		m.errorMsg = err.Error()
		return
	}
	m.errorMsg = ""
}

func (m *Model) closeInput() {
	m.inputActive = false
	m.input.Blur()
	m.input.SetValue("")
	m.refreshViewport()
}

func (m *Model) setTab(tab Tab) {
	if tab == m.tab {
		return
	}
	m.tab = tab
	m.viewport.GotoTop()
	m.refreshViewport()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	layout := m.layout()

	if msg.X < layout.contentLeft {
		row := msg.Y - layout.sidebarTop
		if row >= 0 && row < len(layout.sidebarRows) && layout.sidebarRows[row] >= 0 {
			if err := m.open(layout.sidebarRows[row]); err != nil {
				m.errorMsg = err.Error()
			}
		}
		return m, nil
	}

	if m.tab != TabPreview || m.selected < 0 {
		return m, nil
	}

	row := msg.Y - layout.contentTop + m.viewport.YOffset
	for i, anchor := range layout.demoAnchors {
		if row != anchor.row {
			continue
		}
		m.demoCursor = i
		m.focus = FocusContent
		view := paginationView(m.demos[i])
		view.Click(msg.X - layout.contentLeft - anchor.col)
		m.refreshViewport()
		break
	}
	return m, nil
}
