// Package handler chains key handlers for the root model.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is the outcome of offering a key to one handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key on to the next handler.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler offers a key string (as reported by tea.KeyMsg.String) to one
// group of bindings.
type Handler func(key string) Result

// Chain offers key to each handler in order and stops at the first one that
// handles it.
func Chain(key string, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(key); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
