package components

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlight colours source for a 256-colour terminal. Unknown languages use chroma's
// fallback lexer; formatting failures return the source unchanged.
func Highlight(source, language, styleName string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return source
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}

// CodeBlock is a framed, highlighted code sample.
type CodeBlock struct {
	source   string
	language string
	plain    bool
}

// NewCodeBlock creates a code block for source written in language (a chroma alias
// such as "tsx" or "go").
func NewCodeBlock(source, language string) *CodeBlock {
	return &CodeBlock{source: strings.TrimRight(source, "\n"), language: language}
}

// WithPlain disables highlighting.
func (c *CodeBlock) WithPlain(plain bool) *CodeBlock {
	c.plain = plain
	return c
}

// View renders the block using the current theme's code style.
func (c *CodeBlock) View() string {
	body := c.source
	if !c.plain {
		body = strings.TrimRight(Highlight(c.source, c.language, GetTheme().CodeStyle), "\n")
	}

	frame := Style(lipgloss.NewStyle(), Border(BorderVariantRounded), BorderColour(PaletteNeutral), PaddingX(SpacingSizeSmall))
	if c.language != "" {
		label := TypographyStyle(TypographyVariantMuted).Render(c.language)
		return lipgloss.JoinVertical(lipgloss.Left, label, frame.Render(body))
	}
	return frame.Render(body)
}

// InstallCommand renders the shell command that adds a component, with a copy hint or
// a confirmation once it has been copied.
func InstallCommand(command string, copied bool) string {
	prompt := Style(lipgloss.NewStyle(), Foreground(PaletteSuccess)).Render("$ ")
	line := prompt + TypographyStyle(TypographyVariantBody).Render(command)

	hint := TypographyStyle(TypographyVariantMuted).Render("press c to copy")
	if copied {
		hint = Style(lipgloss.NewStyle(), Foreground(PaletteSuccess)).Bold(true).Render("Copied!")
	}

	frame := Style(lipgloss.NewStyle(), Border(BorderVariantRounded), BorderColour(PaletteNeutral), PaddingX(SpacingSizeSmall))
	return lipgloss.JoinHorizontal(lipgloss.Center, frame.Render(line), " ", hint)
}
