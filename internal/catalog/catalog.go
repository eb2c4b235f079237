// Package catalog defines the studio's collections, categories and products.
package catalog

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrNameRequired      = errors.New("name required")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Collection is a top-level section of the catalog.
type Collection string

const (
	Furniture Collection = "furniture"
	Interiors Collection = "interiors"
)

// Collections lists every collection in display order.
var Collections = []Collection{Furniture, Interiors}

// ParseCollection validates a collection name.
func ParseCollection(s string) (Collection, error) {
	c := Collection(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Furniture, Interiors:
		return c, nil
	}
	return "", ErrUnknownCollection
}

// Title returns the heading used for the collection.
func (c Collection) Title() string {
	switch c {
	case Furniture:
		return "Furniture"
	case Interiors:
		return "Interiors"
	}
	return string(c)
}

// Category groups products inside a collection.
type Category struct {
	ID         string
	Collection Collection
	Name       string
	Slug       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Product is a single catalog entry. Price is in whole rupees; zero means
// price on request.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	ImageURL    string
	Price       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Slugify lowercases name and replaces spaces with dashes.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// ValidateName trims name and rejects empty values.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}
