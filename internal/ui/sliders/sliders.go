// Package sliders builds the home view's budget and style carousels.
package sliders

import (
	"fmt"
	"path/filepath"

	"github.com/arambha/showroom/internal/carousel"
	"github.com/arambha/showroom/internal/ui/render"
	"github.com/arambha/showroom/internal/ui/styles"
)

// BudgetItem is one card of the budget slider.
type BudgetItem struct {
	Label string
	Image string
}

// BudgetItems are the studio's package tiers and signature spaces.
var BudgetItems = []BudgetItem{
	{Label: "2BHK – Luxury", Image: "i1.jpeg"},
	{Label: "3BHK – Premium", Image: "i2.jpeg"},
	{Label: "4BHK – Ultra", Image: "i3.jpeg"},
	{Label: "Designer Kitchen", Image: "i4.jpeg"},
	{Label: "Master Bedroom", Image: "i5.jpeg"},
	{Label: "Sliding Wardrobe", Image: "i6.jpeg"},
	{Label: "Elegant Living", Image: "i7.jpeg"},
	{Label: "Modern Bathroom", Image: "i8.jpeg"},
	{Label: "Kids Bedroom", Image: "i9.jpeg"},
}

// DefaultStyleImages is used when no style images are configured.
var DefaultStyleImages = []string{
	"style-minimal.jpeg",
	"style-contemporary.jpeg",
	"style-traditional.jpeg",
	"style-industrial.jpeg",
	"style-bohemian.jpeg",
}

// Budget returns the budget slider.
func Budget() carousel.Model[BudgetItem] {
	m := carousel.New(BudgetItems, renderBudget)
	m.CardStyle = styles.T().CardStyle()
	return m
}

// Style returns the style slider over images. An empty list falls back to
// DefaultStyleImages since a carousel needs at least one item.
func Style(images []string) carousel.Model[string] {
	if len(images) == 0 {
		images = DefaultStyleImages
	}
	m := carousel.New(images, renderStyle)
	m.CardStyle = styles.T().CardStyle()
	return m
}

func renderBudget(item BudgetItem, _ int) string {
	s := styles.T().S()
	return s.Subtle.Render("▧ "+render.Sanitize(item.Image)) + "\n\n" +
		s.Title.Render(render.Sanitize(item.Label))
}

func renderStyle(src string, logical int) string {
	s := styles.T().S()
	return s.Subtle.Render("▧ "+render.Sanitize(filepath.Base(src))) + "\n\n" +
		s.Muted.Render(fmt.Sprintf("Style item %d", logical+1))
}
