package browser

// Focus determines which pane receives keys.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusContent
)

// Tab is a section of the component page.
type Tab int

const (
	TabPreview Tab = iota
	TabCode
	TabProps
)

var tabLabels = []string{"Preview", "Code", "Props"}

func (t Tab) String() string {
	if int(t) < 0 || int(t) >= len(tabLabels) {
		return "Unknown"
	}
	return tabLabels[t]
}

// ComponentSelectedMsg opens a component page.
type ComponentSelectedMsg struct {
	Slug string
}

// CopiedMsg reports the outcome of an OSC52 copy.
type CopiedMsg struct {
	Text string
	Err  error
}

// clearCopiedMsg ends the "Copied!" flash started by copy number seq.
type clearCopiedMsg struct {
	seq int
}

// ErrorMsg displays an error banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg dismisses the error banner.
type ClearErrorMsg struct{}
