// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Category operations
	OpCategoryCreate Op = "create category"
	OpCategoryRename Op = "rename category"
	OpCategoryDelete Op = "delete category"
	OpCategoryLoad   Op = "load categories"

	// Product operations
	OpProductCreate Op = "create product"
	OpProductUpdate Op = "update product"
	OpProductDelete Op = "delete product"
	OpProductLoad   Op = "load products"

	// Media
	OpImageStore Op = "store image"

	// Initialization
	OpInitialize Op = "initialize showroom"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
