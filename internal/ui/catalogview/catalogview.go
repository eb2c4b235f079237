// Package catalogview shows a collection's categories next to a carousel of
// the selected category's products.
package catalogview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arambha/showroom/internal/carousel"
	"github.com/arambha/showroom/internal/catalog"
	"github.com/arambha/showroom/internal/inquiry"
	"github.com/arambha/showroom/internal/store"
	"github.com/arambha/showroom/internal/ui"
	"github.com/arambha/showroom/internal/ui/render"
	"github.com/arambha/showroom/internal/ui/styles"
)

const (
	listWidth = 26
	// linkHeight is the line under the carousel holding the order link.
	linkHeight = 1
)

// KeyMap defines the catalog view bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Order key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "category up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "category down")),
		Order: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "order on WhatsApp")),
	}
}

// Model is the catalog browser for one collection.
type Model struct {
	ui.Base
	KeyMap KeyMap

	collection catalog.Collection
	source     store.Catalog
	phone      string

	categories []catalog.Category
	selected   int
	pendingID  string // category to select once categories arrive

	products    carousel.Model[catalog.Product]
	hasProducts bool
	loading     bool
	link        string
	err         error
}

// New creates a catalog view. phone receives WhatsApp orders.
func New(collection catalog.Collection, source store.Catalog, phone string) Model {
	return Model{
		KeyMap:     DefaultKeyMap(),
		collection: collection,
		source:     source,
		phone:      phone,
	}
}

// Collection returns the collection this view browses.
func (m Model) Collection() catalog.Collection { return m.collection }

// Categories returns the loaded categories.
func (m Model) Categories() []catalog.Category { return m.categories }

// SelectedCategory returns the highlighted category, if any.
func (m Model) SelectedCategory() (catalog.Category, bool) {
	if m.selected < 0 || m.selected >= len(m.categories) {
		return catalog.Category{}, false
	}
	return m.categories[m.selected], true
}

// Products returns the product carousel; ok is false when the selected
// category has no products.
func (m Model) Products() (carousel.Model[catalog.Product], bool) {
	return m.products, m.hasProducts
}

// Err returns the last load error.
func (m Model) Err() error { return m.err }

// Link returns the order link requested for the current product.
func (m Model) Link() string { return m.link }

// SelectOnLoad selects the category with id once categories are loaded.
func (m *Model) SelectOnLoad(id string) {
	m.pendingID = id
}

// SetFocused focuses the view and its product carousel.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.products.SetFocused(focused)
}

// SetSize resizes the view and its product carousel.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	if m.hasProducts {
		m.products.SetSize(m.carouselSize())
	}
}

func (m Model) carouselSize() (int, int) {
	return max(m.Width()-listWidth-1, 0), max(m.Height()-linkHeight, 0)
}

// Load fetches the collection's categories.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	source, collection := m.source, m.collection
	return func() tea.Msg {
		cats, err := source.ListCategories(collection)
		return CategoriesLoadedMsg{Collection: collection, Categories: cats, Err: err}
	}
}

func (m *Model) loadProducts() tea.Cmd {
	cat, ok := m.SelectedCategory()
	if !ok {
		m.hasProducts = false
		return nil
	}
	m.loading = true
	source := m.source
	return func() tea.Msg {
		products, err := source.ListProducts(cat.ID)
		return ProductsLoadedMsg{CategoryID: cat.ID, Products: products, Err: err}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles load results, navigation keys and carousel frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CategoriesLoadedMsg:
		if msg.Collection != m.collection {
			return m, nil
		}
		return m, m.handleCategories(msg)

	case ProductsLoadedMsg:
		cat, ok := m.SelectedCategory()
		if !ok || cat.ID != msg.CategoryID {
			return m, nil
		}
		m.handleProducts(msg)
		return m, nil

	case carousel.FrameMsg:
		var cmd tea.Cmd
		m.products, cmd = m.products.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleCategories(msg CategoriesLoadedMsg) tea.Cmd {
	m.loading = false
	m.err = msg.Err
	if msg.Err != nil {
		return nil
	}

	m.categories = msg.Categories
	m.selected = 0
	for i, cat := range m.categories {
		if cat.ID == m.pendingID {
			m.selected = i
		}
	}
	m.pendingID = ""
	return m.loadProducts()
}

func (m *Model) handleProducts(msg ProductsLoadedMsg) {
	m.loading = false
	m.err = msg.Err
	m.link = ""
	if msg.Err != nil || len(msg.Products) == 0 {
		m.hasProducts = false
		return
	}

	m.products = carousel.New(msg.Products, renderProduct)
	m.products.CardStyle = styles.T().CardStyle()
	m.products.SetSize(m.carouselSize())
	m.products.SetFocused(m.IsFocused())
	m.hasProducts = true
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Up):
		cmd := m.moveSelection(-1)
		return m, cmd
	case key.Matches(msg, m.KeyMap.Down):
		cmd := m.moveSelection(1)
		return m, cmd
	case key.Matches(msg, m.KeyMap.Order):
		if !m.hasProducts {
			return m, nil
		}
		p := m.products.CurrentItem()
		m.link = inquiry.OrderLink(m.phone, m.collection, p)
		req := InquiryRequested{Product: p, Link: m.link}
		return m, func() tea.Msg { return ActionMsg(req) }
	}

	if !m.hasProducts {
		return m, nil
	}
	var cmd tea.Cmd
	m.products, cmd = m.products.Update(msg)
	return m, cmd
}

func (m *Model) moveSelection(delta int) tea.Cmd {
	next := m.selected + delta
	if next < 0 || next >= len(m.categories) {
		return nil
	}
	m.selected = next
	m.hasProducts = false
	m.link = ""

	sel := CategorySelected{Collection: m.collection, CategoryID: m.categories[next].ID}
	return tea.Batch(
		m.loadProducts(),
		func() tea.Msg { return ActionMsg(sel) },
	)
}

// View renders the category list and the product carousel side by side.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	list := m.renderList()

	cw, ch := m.carouselSize()
	var right string
	switch {
	case m.err != nil:
		right = s.Error.Render("Could not load the catalog: " + m.err.Error())
	case m.hasProducts:
		right = m.products.View() + "\n" + m.renderLink(cw)
	case m.loading:
		right = s.Muted.Render("Loading…")
	case len(m.categories) == 0:
		right = s.Muted.Render("No categories yet.")
	default:
		right = s.Muted.Render("No products in this category yet.")
	}
	right = lipgloss.NewStyle().Width(cw).Height(ch + linkHeight).MaxHeight(ch + linkHeight).Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", right)
}

func (m Model) renderList() string {
	s := styles.T().S()
	width := listWidth - ui.BorderWidth
	_, height := m.InnerSize()

	lines := make([]string, 0, len(m.categories)+2)
	lines = append(lines, s.Title.Render(m.collection.Title()), s.Subtle.Render(render.Separator(width)))
	for i, cat := range m.categories {
		name := render.TruncateAndPad(cat.Name, width)
		if i == m.selected {
			lines = append(lines, s.Cursor.Render(name))
		} else {
			lines = append(lines, s.Base.Render(name))
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return styles.T().PanelStyle(m.IsFocused()).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderLink(width int) string {
	s := styles.T().S()
	if m.link == "" {
		return s.Subtle.Render(render.Truncate("enter: order this piece on WhatsApp", width))
	}
	return s.Muted.Render(render.Truncate(m.link, width))
}

func renderProduct(p catalog.Product, _ int) string {
	s := styles.T().S()
	price := inquiry.FormatPrice(p.Price)
	if price == "" {
		price = "Price on request"
	}

	lines := []string{s.Title.Render(render.Sanitize(p.Name))}
	if p.Description != "" {
		lines = append(lines, s.Muted.Render(render.Sanitize(p.Description)))
	}
	lines = append(lines, "", s.Price.Render(price))
	return strings.Join(lines, "\n")
}
