package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// newMarkdown returns the converter shared by every page: attribute blocks, GFM tables and
// inline-styled chroma highlighting for fenced code.
func newMarkdown(codeStyle string) goldmark.Markdown {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle(codeStyle),
				highlighting.WithFormatOptions(chromahtml.TabWidth(2)),
			),
		),
	)
	md.Parser().AddOptions(parser.WithAttribute())
	return md
}

func renderMarkdown(md goldmark.Markdown, source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	// goldmark escapes raw HTML unless html.WithUnsafe is set.
	return template.HTML(buf.String()), nil
}

// fence wraps source in a fenced code block long enough to contain any backtick run inside
// it.
func fence(source, language string) string {
	longest := 0
	run := 0
	for _, r := range source {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	marker := strings.Repeat("`", max(3, longest+1))
	return marker + language + "\n" + strings.TrimRight(source, "\n") + "\n" + marker + "\n"
}
