package app

import (
	"github.com/arambha/showroom/internal/ui"
	"github.com/arambha/showroom/internal/ui/headerbar"
)

// bodyHeight is the space between the header and the footer.
func (m Model) bodyHeight() int {
	return max(m.Height-headerbar.Height-ui.FooterHeight, 0)
}

// sliderHeights splits the home body between the two sliders.
func (m Model) sliderHeights() (budget, style int) {
	body := m.bodyHeight()
	budget = max(body/2-ui.SectionTitleHeight, ui.MinCardHeight)
	style = max(body-body/2-ui.SectionTitleHeight, ui.MinCardHeight)
	return budget, style
}

// ResizeComponents lays out every view for the current window size.
func (m *Model) ResizeComponents() {
	budgetH, styleH := m.sliderHeights()
	m.Budget.SetSize(m.Width, budgetH)
	m.Style.SetSize(m.Width, styleH)
	m.Furniture.SetSize(m.Width, m.bodyHeight())
	m.Interiors.SetSize(m.Width, m.bodyHeight())
	m.Help.Width = m.Width
}

// SetFocus focuses a home slider.
func (m *Model) SetFocus(target FocusTarget) {
	m.Focus = target
	m.applyFocus()
}

// applyFocus gives key focus to exactly one component of the current view.
func (m *Model) applyFocus() {
	home := m.ViewMode == ViewHome
	m.Budget.SetFocused(home && m.Focus == FocusBudget)
	m.Style.SetFocused(home && m.Focus == FocusStyle)
	m.Furniture.SetFocused(m.ViewMode == ViewFurniture)
	m.Interiors.SetFocused(m.ViewMode == ViewInteriors)
}

// applicableContexts returns the binding contexts shown in the help line.
func (m Model) applicableContexts() []string {
	if m.ViewMode == ViewHome {
		return []string{"slider", "global"}
	}
	return []string{"catalog", "global"}
}
