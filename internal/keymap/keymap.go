// Package keymap defines key bindings for the application.
package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding for documentation.
type Binding struct {
	Keys        []string
	Description string
	Context     string // "global", "slider", "catalog"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit", "global"},
	{[]string{"tab"}, "Switch focus", "global"},
	{[]string{"1"}, "Home", "global"},
	{[]string{"2"}, "Furniture", "global"},
	{[]string{"3"}, "Interiors", "global"},

	// Sliders
	{[]string{"left", "h"}, "Previous", "slider"},
	{[]string{"right", "l"}, "Next", "slider"},

	// Catalog
	{[]string{"up", "k"}, "Category up", "catalog"},
	{[]string{"down", "j"}, "Category down", "catalog"},
	{[]string{"left", "h"}, "Previous product", "catalog"},
	{[]string{"right", "l"}, "Next product", "catalog"},
	{[]string{"enter"}, "Order on WhatsApp", "catalog"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help converts the bindings of the given contexts into help entries.
func Help(contexts ...string) []key.Binding {
	var result []key.Binding
	for _, ctx := range contexts {
		for _, kb := range ByContext(ctx) {
			result = append(result, key.NewBinding(
				key.WithKeys(kb.Keys...),
				key.WithHelp(helpKeys(kb.Keys), strings.ToLower(kb.Description)),
			))
		}
	}
	return result
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "left":
			names[i] = "←"
		case "right":
			names[i] = "→"
		case "up":
			names[i] = "↑"
		case "down":
			names[i] = "↓"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}
