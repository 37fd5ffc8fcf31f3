package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardData represents the content of a card.
type CardData struct {
	Title       string
	Description string
	// Body is pre-rendered content placed below the description.
	Body string
	// Footer is rendered muted on the last line.
	Footer string
}

// Card is a rounded frame with an optional title. Demos and empty states render inside one.
type Card struct {
	data    CardData
	width   int
	focused bool
}

// NewCard creates a new card with the given data.
func NewCard(data CardData) *Card {
	return &Card{data: data}
}

// WithWidth sets the outer card width. Zero sizes the card to its content.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithFocus highlights the border.
func (c *Card) WithFocus(focused bool) *Card {
	c.focused = focused
	return c
}

// View renders the card.
func (c *Card) View() string {
	frame := Style(lipgloss.NewStyle(), CardBaseStyle()...)
	if c.focused {
		frame = Style(frame, BorderColour(PalettePrimary))
	}

	inner := 0
	if c.width > 0 {
		inner = c.width - frame.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
	}

	var sections []string
	if c.data.Title != "" {
		sections = append(sections, TypographyStyle(TypographyVariantTitle).Render(c.data.Title))
	}
	if c.data.Description != "" {
		body := TypographyStyle(TypographyVariantBody)
		if inner > 0 {
			body = body.Width(inner)
		}
		sections = append(sections, body.Render(c.data.Description))
	}
	if c.data.Body != "" {
		sections = append(sections, c.data.Body)
	}
	if c.data.Footer != "" {
		sections = append(sections, TypographyStyle(TypographyVariantMuted).Render(c.data.Footer))
	}

	if inner > 0 {
		frame = frame.Width(inner + frame.GetHorizontalPadding())
	}
	return frame.Render(strings.Join(sections, "\n"))
}
