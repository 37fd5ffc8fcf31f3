package browser

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

// copiedFlash is how long "Copied!" stays on screen.
const copiedFlash = 2 * time.Second

// CopySequence builds the OSC52 sequence for text, wrapped for tmux or screen when TERM
// says so.
func CopySequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	term := os.Getenv("TERM")
	switch {
	case os.Getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	return seq
}

// copyCmd writes text to the terminal clipboard.
func copyCmd(w io.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := CopySequence(text).WriteTo(w)
		return CopiedMsg{Text: text, Err: err}
	}
}

// clearCopiedCmd ends flash seq after copiedFlash.
func clearCopiedCmd(seq int) tea.Cmd {
	return tea.Tick(copiedFlash, func(time.Time) tea.Msg {
		return clearCopiedMsg{seq: seq}
	})
}
