package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arambha/showroom/internal/app/handler"
)

// handleQuitKeys handles q and ctrl+c.
func (m *Model) handleQuitKeys(key string) handler.Result {
	if key != "q" && key != "ctrl+c" {
		return handler.NotHandled
	}
	m.SaveNavigationState()
	return handler.Handled(tea.Quit)
}

// handleViewKeys handles 1, 2 and 3 view switching.
func (m *Model) handleViewKeys(key string) handler.Result {
	var mode ViewMode
	switch key {
	case "1":
		mode = ViewHome
	case "2":
		mode = ViewFurniture
	case "3":
		mode = ViewInteriors
	default:
		return handler.NotHandled
	}

	if m.ViewMode != mode {
		m.ViewMode = mode
		m.applyFocus()
		m.SaveNavigationState()
		m.Logger.Debug("view switched", zap.String("view", string(mode)))
	}
	return handler.HandledNoCmd
}

// handleFocusKeys handles tab, which moves focus between the home sliders.
func (m *Model) handleFocusKeys(key string) handler.Result {
	if key != "tab" {
		return handler.NotHandled
	}
	if m.ViewMode == ViewHome {
		if m.Focus == FocusBudget {
			m.SetFocus(FocusStyle)
		} else {
			m.SetFocus(FocusBudget)
		}
	}
	return handler.HandledNoCmd
}
