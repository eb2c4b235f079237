package catalogview

import (
	"github.com/arambha/showroom/internal/catalog"
	"github.com/arambha/showroom/internal/ui/action"
)

// CategoriesLoadedMsg carries the result of loading a collection's categories.
type CategoriesLoadedMsg struct {
	Collection catalog.Collection
	Categories []catalog.Category
	Err        error
}

// ProductsLoadedMsg carries the result of loading a category's products.
type ProductsLoadedMsg struct {
	CategoryID string
	Products   []catalog.Product
	Err        error
}

// CategorySelected is emitted when the highlighted category changes.
type CategorySelected struct {
	Collection catalog.Collection
	CategoryID string
}

// ActionType implements action.Action.
func (CategorySelected) ActionType() string { return "catalogview.category_selected" }

// InquiryRequested is emitted when the user asks to order a product.
type InquiryRequested struct {
	Product catalog.Product
	Link    string
}

// ActionType implements action.Action.
func (InquiryRequested) ActionType() string { return "catalogview.inquiry_requested" }

// ActionMsg wraps a catalogview action for the parent model.
func ActionMsg(a action.Action) action.Msg {
	return action.New("catalogview", a)
}
