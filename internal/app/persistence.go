package app

import "github.com/arambha/showroom/internal/store"

// SaveNavigationState records the current view and category.
func (m Model) SaveNavigationState() {
	state := store.NavigationState{ViewMode: string(m.ViewMode)}
	if cv := m.catalogView(); cv != nil {
		if cat, ok := cv.SelectedCategory(); ok {
			state.CategoryID = cat.ID
		}
	}
	m.Catalog.SaveNavigation(state)
}

func (m *Model) restoreNavigation(nav store.NavigationState) {
	switch mode := ViewMode(nav.ViewMode); mode {
	case ViewHome, ViewFurniture, ViewInteriors:
		m.ViewMode = mode
	default:
		return
	}
	if nav.CategoryID == "" {
		return
	}
	if cv := m.catalogView(); cv != nil {
		cv.SelectOnLoad(nav.CategoryID)
	}
}
