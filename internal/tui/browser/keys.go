package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Tab1     key.Binding
	Tab2     key.Binding
	Tab3     key.Binding
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	GoTo     key.Binding
	Gaps     key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Tab1:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "preview")),
		Tab2:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "code")),
		Tab3:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "props")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous page")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first page")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last page")),
		GoTo:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to page")),
		Gaps:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark gaps")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy install command")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.NextTab, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.NextTab, k.PrevTab, k.Tab1, k.Tab2, k.Tab3},
		{k.Prev, k.Next, k.First, k.Last, k.GoTo, k.Gaps},
		{k.PageUp, k.PageDown, k.Copy, k.Help, k.Quit},
	}
}
