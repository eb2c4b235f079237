// Package action carries component events up to the root model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an event reported by a component, such as a settled slide.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg a component returns to report an Action.
type Msg struct {
	Source string // "carousel", "catalogview"
	Action Action
}

var _ tea.Msg = Msg{}

// New wraps a for delivery from source.
func New(source string, a Action) Msg {
	return Msg{Source: source, Action: a}
}

// Type returns the wrapped action's type, or "" when there is none.
func (m Msg) Type() string {
	if m.Action == nil {
		return ""
	}
	return m.Action.ActionType()
}
