// Package headerbar renders the studio title and the view tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arambha/showroom/internal/ui"
	"github.com/arambha/showroom/internal/ui/styles"
)

// Height is the title line plus the tab line.
const Height = ui.HeaderHeight

// Title is the studio name shown above the tabs.
const Title = "Arambha"

// tab represents a header bar tab.
type tab struct {
	key  string
	name string
	mode string
}

var tabs = []tab{
	{"1", "Home", "home"},
	{"2", "Furniture", "furniture"},
	{"3", "Interiors", "interiors"},
}

// Render returns the header for the given width.
// currentMode should be "home", "furniture" or "interiors".
func Render(currentMode string, width int) string {
	if width < 20 {
		return strings.Repeat("\n", Height-1)
	}
	t := styles.T()
	s := t.S()

	title := styles.ApplyBoldGradient(Title, t.Primary, t.Secondary)

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		label := tb.key + " " + tb.name
		if tb.mode == currentMode {
			parts = append(parts, s.TabOn.Render(label))
		} else {
			parts = append(parts, s.Tab.Render(label))
		}
	}
	bar := strings.Join(parts, s.Subtle.Render("│"))

	return lipgloss.NewStyle().MaxWidth(width).Render(title) + "\n" +
		lipgloss.NewStyle().MaxWidth(width).Render(bar)
}
