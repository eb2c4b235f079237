package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arambha/showroom/internal/keymap"
	"github.com/arambha/showroom/internal/ui/headerbar"
	"github.com/arambha/showroom/internal/ui/render"
	"github.com/arambha/showroom/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(string(m.ViewMode), m.Width)

	var body string
	switch m.ViewMode {
	case ViewHome:
		body = m.renderHome()
	case ViewFurniture:
		body = m.Furniture.View()
	case ViewInteriors:
		body = m.Interiors.View()
	}
	body = lipgloss.NewStyle().
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Render(body)

	return header + "\n" + body + "\n" + m.renderFooter()
}

func (m Model) renderHome() string {
	return strings.Join([]string{
		m.sectionTitle("Budget-friendly packages", m.Focus == FocusBudget),
		m.Budget.View(),
		m.sectionTitle("Explore styles", m.Focus == FocusStyle),
		m.Style.View(),
	}, "\n")
}

func (m Model) sectionTitle(title string, focused bool) string {
	s := styles.T().S()
	if focused {
		return s.TabOn.Render(title)
	}
	return s.Tab.Render(title)
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	status := ""
	if m.ErrorMsg != "" {
		status = s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}
	return status + "\n" + m.Help.ShortHelpView(keymap.Help(m.applicableContexts()...))
}
