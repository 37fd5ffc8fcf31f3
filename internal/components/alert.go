package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// Alert is a bordered status message, used for go-to errors and the copied flash.
type Alert struct {
	message string
	title   string
	variant AlertVariant
}

// NewAlert creates a new alert with the given message and variant.
func NewAlert(message string, variant AlertVariant) *Alert {
	return &Alert{message: message, variant: variant}
}

// WithTitle sets the alert title.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// View renders the alert.
func (a *Alert) View() string {
	var content []string

	if a.title != "" {
		titleStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis))
		content = append(content, titleStyle.Render(a.title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}

	style := Style(lipgloss.NewStyle(), AlertStyle(alertSlot(a.variant))...)
	return style.Render(strings.Join(content, "\n"))
}

func alertSlot(variant AlertVariant) PaletteSlot {
	switch variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantWarning:
		return PaletteWarning
	case AlertVariantError:
		return PaletteDanger
	default:
		return PaletteInfo
	}
}

// SuccessAlert creates a success alert without a title.
func SuccessAlert(message string) *Alert {
	return NewAlert(message, AlertVariantSuccess)
}

// ErrorAlert creates an error alert titled "Error".
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertVariantError).WithTitle("Error")
}
