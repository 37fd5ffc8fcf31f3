package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by ThemeByName and the --theme flag.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// Theme represents the global styling theme for components.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	// CodeStyle names the chroma style used by CodeBlock.
	CodeStyle string
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func normalizeTheme(theme Theme) Theme {
	if theme.Spacing.Padding == (spacingTable{}) {
		theme.Spacing.Padding = defaultSpacingTable()
	}
	if theme.Spacing.Margin == (spacingTable{}) {
		theme.Spacing.Margin = defaultSpacingTable()
	}
	if theme.CodeStyle == "" {
		theme.CodeStyle = "monokai"
	}
	return theme
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// LightTheme returns the light variant, modelled on the zinc/violet palette of the
// documentation site.
func LightTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#7c3aed", "#a78bfa"),
			OnBase:   ac("#faf5ff", "#1e1b4b"),
			Muted:    ac("#ddd6fe", "#4c1d95"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#0ea5e9", "#38bdf8"),
			OnBase:   ac("#f0f9ff", "#082f49"),
			Muted:    ac("#0284c7", "#0369a1"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#fafafa", "#18181b"),
			OnBase:   ac("#18181b", "#fafafa"),
			Muted:    ac("#e4e4e7", "#27272a"),
			Contrast: ac("#7c3aed", "#a78bfa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#71717a", "#a1a1aa"),
			OnBase:   ac("#f4f4f5", "#18181b"),
			Muted:    ac("#a1a1aa", "#52525b"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	return normalizeTheme(Theme{
		Name:    ThemeLight,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Typography: defaultTypography(palette),
		CodeStyle:  "github",
	})
}

// DarkTheme returns the dark variant.
func DarkTheme() Theme {
	theme := LightTheme()
	theme.Name = ThemeDark
	theme.CodeStyle = "monokai"

	theme.Palette.Surface = ColourSet{
		Base:     ac("#18181b", "#09090b"),
		OnBase:   ac("#f4f4f5", "#e4e4e7"),
		Muted:    ac("#27272a", "#18181b"),
		Contrast: ac("#a78bfa", "#a78bfa"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:     ac("#52525b", "#3f3f46"),
		OnBase:   ac("#e4e4e7", "#d4d4d8"),
		Muted:    ac("#3f3f46", "#27272a"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}

	theme.Typography = defaultTypography(theme.Palette)
	return normalizeTheme(theme)
}

// ThemeByName resolves "light" or "dark", case-insensitively.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeLight:
		return LightTheme(), true
	case ThemeDark:
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code: base.
			Foreground(p.Secondary.Base).
			Background(p.Surface.Muted).
			Padding(0, 1),
		Emphasis: base.Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(p.Neutral.Base).Faint(true),
	}
}

var defaultThemeManager = NewThemeManager(DarkTheme())

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

func BorderStyle(variant BorderVariant) lipgloss.Border {
	return borderForVariant(GetTheme(), variant)
}

func PaddingValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Padding, size)
}

func MarginValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the current theme.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	return typographyFor(GetTheme(), variant)
}

func typographyFor(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style.
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers against the current theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour tints the border with a semantic colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(borderForVariant(theme, variant))
	}
}

func borderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(typographyFor(theme, variant))
	}
}

// Predefined style bundles for common component patterns

func CardBaseStyle() []StyleApplier {
	return []StyleApplier{
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		PaddingX(SpacingSizeMedium),
	}
}

func AlertStyle(slot PaletteSlot) []StyleApplier {
	return []StyleApplier{
		Border(BorderVariantNormal),
		BorderColour(slot),
		Foreground(slot),
		PaddingX(SpacingSizeSmall),
	}
}
