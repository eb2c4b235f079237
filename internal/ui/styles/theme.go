package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the showroom.
type Theme struct {
	// Brand colors
	Primary   lipgloss.Color // Terracotta - focus, active tab
	Secondary lipgloss.Color // Brass - prices, highlights

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Price  lipgloss.Style
	Tab    lipgloss.Style
	TabOn  lipgloss.Style
	Cursor lipgloss.Style
	Error  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#c8643b"),
	Secondary: lipgloss.Color("#c9a227"),

	FgBase:   lipgloss.Color("#e8e0d5"),
	FgMuted:  lipgloss.Color("#a39a8e"),
	FgSubtle: lipgloss.Color("#6b645c"),

	BgCursor: lipgloss.Color("#3a322c"),

	Border:      lipgloss.Color("#6b645c"),
	BorderFocus: lipgloss.Color("#c8643b"),

	Error: lipgloss.Color("#e05252"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Price:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Tab:    lipgloss.NewStyle().Foreground(t.FgMuted).Padding(0, 1),
		TabOn: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}

// CardStyle frames a slider card.
func (t *Theme) CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

// PanelStyle returns the panel style for the given focus state.
func (t *Theme) PanelStyle(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
