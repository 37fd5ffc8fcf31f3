package browser

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/logger"
	"github.com/alexisbeaulieu97/showroom/internal/pagination"
	"github.com/alexisbeaulieu97/showroom/internal/session"
)

const (
	minWidth  = 80
	minHeight = 24
)

// Options wires the browser to its data and side effects.
type Options struct {
	Catalog     *catalog.Catalog
	Defaults    catalog.Defaults
	RegistryURL string
	// InitialSlug opens a component straight away.
	InitialSlug string
	Logger      *logger.Logger
	// Clipboard receives OSC52 sequences. Defaults to stdout.
	Clipboard io.Writer
}

// Model is the documentation browser.
type Model struct {
	catalog     *catalog.Catalog
	defaults    catalog.Defaults
	registryURL string
	// Pages of every demo visited during this run.
	session     *session.Store
	log         *logger.Logger
	clipboard   io.Writer

	// Components in sidebar order.
	components []catalog.Component
	cursor     int
	selected   int

	focus      Focus
	tab        Tab
	demos      []*demoState
	demoCursor int

	viewport    viewport.Model
	input       textinput.Model
	inputActive bool
	help        help.Model
	keys        keyMap

	copied   bool
	copySeq  int
	errorMsg string

	width    int
	height   int
	tooSmall bool
}

// demoState is one live control on the Preview tab.
type demoState struct {
	demo    catalog.Demo
	widget  string
	key     string
	control *pagination.Control
}

// NewModel builds the browser. The catalog is required.
func NewModel(opts Options) (Model, error) {
	if opts.Catalog == nil {
		return Model{}, fmt.Errorf("browser: catalog is required")
	}

	clipboard := opts.Clipboard
	if clipboard == nil {
		clipboard = os.Stdout
	}

	input := textinput.New()
	input.Prompt = "Go to page: "
	input.Placeholder = "number"
	input.CharLimit = 9

	m := Model{
		catalog:     opts.Catalog,
		defaults:    opts.Defaults,
		registryURL: opts.RegistryURL,
		session:     session.New(),
		log:         opts.Logger,
		clipboard:   clipboard,
		selected:    -1,
		viewport:    viewport.New(minWidth, minHeight),
		input:       input,
		help:        help.New(),
		keys:        defaultKeyMap(),
		width:       minWidth,
		height:      minHeight,
	}

	for _, section := range opts.Catalog.ByCategory() {
		m.components = append(m.components, section.Components...)
	}

	if opts.InitialSlug != "" {
		if err := m.openSlug(opts.InitialSlug); err != nil {
			return Model{}, err
		}
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedComponent returns the open component.
func (m Model) SelectedComponent() (catalog.Component, bool) {
	if m.selected < 0 || m.selected >= len(m.components) {
		return catalog.Component{}, false
	}
	return m.components[m.selected], true
}

// Focus returns the pane receiving keys.
func (m Model) Focus() Focus {
	return m.focus
}

// ActiveTab returns the visible tab.
func (m Model) ActiveTab() Tab {
	return m.tab
}

// DemoPages returns the current page of every live demo, in order.
func (m Model) DemoPages() []int {
	pages := make([]int, len(m.demos))
	for i, demo := range m.demos {
		pages[i] = demo.control.Current()
	}
	return pages
}

func (m *Model) openSlug(slug string) error {
	for i, component := range m.components {
		if component.Slug == slug {
			return m.open(i)
		}
	}
	_, err := m.catalog.Get(slug)
	return err
}

// open makes component i the visible page and builds its live demos.
func (m *Model) open(i int) error {
	component := m.components[i]

	demos := make([]*demoState, 0, len(component.Demos))
	for index, demo := range component.Demos {
		state := &demoState{
			demo:   demo,
			widget: component.Widget,
			key:    session.DemoKey(component.Slug, index),
		}

		control, err := demo.Control(component.Widget, m.defaults, pageChanged(m.session, m.log, component.Slug, state.key))
		if err != nil {
			return fmt.Errorf("demo %q of %s: %w", demo.Title, component.Slug, err)
		}
		if page, ok := m.session.Page(state.key); ok && page >= 1 && page <= control.Total() {
			if err := control.Select(page); err != nil {
				m.log.Warn(fmt.Sprintf("not restoring page %d of %s: %v", page, state.key, err))
			}
		}
		state.control = control
		demos = append(demos, state)
	}

	m.selected = i
	m.cursor = i
	m.demos = demos
	m.demoCursor = 0
	m.tab = TabPreview
	m.focus = FocusContent
	m.copied = false
	m.inputActive = false
	m.viewport.GotoTop()

	m.log.With("component", component.Slug).Debug("component opened")

	m.refreshViewport()
	return nil
}

// pageChanged is the onChange callback of a demo control.
func pageChanged(store *session.Store, log *logger.Logger, slug, key string) func(int) {
	return func(page int) {
		store.SetPage(key, page)
		log.WithFields(map[string]any{"component": slug, "demo": key, "page": page}).Debug("page changed")
	}
}

func (m *Model) focusedDemo() (*demoState, bool) {
	if m.demoCursor < 0 || m.demoCursor >= len(m.demos) {
		return nil, false
	}
	return m.demos[m.demoCursor], true
}

// toggleGaps flips ellipsis markers on an exponential demo.
func (m *Model) toggleGaps(state *demoState) bool {
	strategy, ok := state.control.Strategy().(pagination.ExponentialStrategy)
	if !ok {
		return false
	}
	strategy.MarkGaps = !strategy.MarkGaps
	if err := state.control.SetStrategy(strategy); err != nil {
		m.errorMsg = err.Error()
		return false
	}
	return true
}

func (m *Model) installCommand() string {
	component, ok := m.SelectedComponent()
	if !ok {
		return ""
	}
	return component.InstallCommand(m.registryURL)
}

// MoveCursorUp moves the sidebar cursor up with wrapping.
func (m *Model) MoveCursorUp() {
	if len(m.components) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.components) - 1
	}
}

// MoveCursorDown moves the sidebar cursor down with wrapping.
func (m *Model) MoveCursorDown() {
	if len(m.components) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.components) {
		m.cursor = 0
	}
}
