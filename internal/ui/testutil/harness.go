package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is a value-style Bubble Tea component whose Update returns the
// updated component.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness wraps a component for testing, collecting the commands its
// updates return.
type Harness[M Component[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness creates a test harness around m.
func NewHarness[M Component[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the current component value.
func (h *Harness[M]) Model() M {
	return h.model
}

// SetModel replaces the component, e.g. after calling a setter on a copy.
func (h *Harness[M]) SetModel(m M) {
	h.model = m
}

// View returns the component's rendered content without ANSI codes.
func (h *Harness[M]) View() string {
	return StripANSI(h.model.View())
}

// ViewContains reports whether the plain view contains substr.
func (h *Harness[M]) ViewContains(substr string) bool {
	return strings.Contains(h.View(), substr)
}

// SendMsg sends any message to the component and returns the resulting command.
func (h *Harness[M]) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key as runes.
func (h *Harness[M]) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, tab, arrows...).
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness[M]) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// CollectMsgs runs cmd, expanding batches, and returns every message produced.
// Commands that block on timers (tea.Tick) are run too, so callers should
// only pass commands they expect to finish promptly.
func CollectMsgs(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, CollectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
