package store

import "github.com/arambha/showroom/internal/catalog"

// Catalog is the read side of the store used by the browser.
type Catalog interface {
	ListCategories(collection catalog.Collection) ([]catalog.Category, error)
	ListProducts(categoryID string) ([]catalog.Product, error)
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
}

// Verify Store implements Catalog at compile time.
var _ Catalog = (*Store)(nil)
