package catalogview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arambha/showroom/internal/catalog"
	"github.com/arambha/showroom/internal/store"
	"github.com/arambha/showroom/internal/ui/action"
	"github.com/arambha/showroom/internal/ui/testutil"
)

type fakeCatalog struct {
	categories map[catalog.Collection][]catalog.Category
	products   map[string][]catalog.Product
	err        error
}

func (f *fakeCatalog) ListCategories(c catalog.Collection) ([]catalog.Category, error) {
	return f.categories[c], f.err
}

func (f *fakeCatalog) ListProducts(id string) ([]catalog.Product, error) {
	return f.products[id], f.err
}

func (f *fakeCatalog) SaveNavigation(store.NavigationState) {}

func (f *fakeCatalog) GetNavigation() (*store.NavigationState, error) { return nil, nil }

func newFake() *fakeCatalog {
	return &fakeCatalog{
		categories: map[catalog.Collection][]catalog.Category{
			catalog.Furniture: {
				{ID: "sofas", Collection: catalog.Furniture, Name: "Sofa Sets"},
				{ID: "beds", Collection: catalog.Furniture, Name: "Beds"},
				{ID: "empty", Collection: catalog.Furniture, Name: "Outdoor"},
			},
		},
		products: map[string][]catalog.Product{
			"sofas": {
				{ID: "p1", CategoryID: "sofas", Name: "Chesterfield", Price: 85000},
				{ID: "p2", CategoryID: "sofas", Name: "Sectional"},
			},
			"beds": {
				{ID: "p3", CategoryID: "beds", Name: "Platform Bed", Description: "Walnut veneer"},
			},
		},
	}
}

// loaded returns a focused view with categories and first products loaded.
func loaded(t *testing.T, source store.Catalog) *testutil.Harness[Model] {
	t.Helper()
	m := New(catalog.Furniture, source, "919999999999")
	m.SetSize(120, 10)
	m.SetFocused(true)
	cmd := m.Load()

	h := testutil.NewHarness(m)
	productsCmd := h.SendMsg(testutil.ExecuteCmd(cmd))
	if productsCmd != nil {
		h.SendMsg(testutil.ExecuteCmd(productsCmd))
	}
	h.ClearCommands()
	return h
}

func TestLoad_ShowsCategoriesAndProducts(t *testing.T) {
	h := loaded(t, newFake())

	cat, ok := h.Model().SelectedCategory()
	require.True(t, ok)
	assert.Equal(t, "sofas", cat.ID)

	_, ok = h.Model().Products()
	assert.True(t, ok)

	view := h.View()
	assert.Contains(t, view, "Furniture")
	assert.Contains(t, view, "Sofa Sets")
	assert.Contains(t, view, "Beds")
	assert.Contains(t, view, "Chesterfield")
	assert.Contains(t, view, "₹85,000")
}

func TestLoad_Error(t *testing.T) {
	fake := newFake()
	fake.err = errors.New("disk on fire")
	h := loaded(t, fake)

	assert.Error(t, h.Model().Err())
	assert.True(t, h.ViewContains("disk on fire"))
}

func TestLoad_IgnoresOtherCollections(t *testing.T) {
	m := New(catalog.Furniture, newFake(), "")
	m, cmd := m.Update(CategoriesLoadedMsg{Collection: catalog.Interiors, Categories: []catalog.Category{{ID: "x"}}})
	assert.Nil(t, cmd)
	assert.Empty(t, m.Categories())
}

func TestSelectOnLoad_RestoresCategory(t *testing.T) {
	m := New(catalog.Furniture, newFake(), "")
	m.SetSize(120, 10)
	m.SelectOnLoad("beds")
	cmd := m.Load()

	h := testutil.NewHarness(m)
	h.SendMsg(h.SendMsg(testutil.ExecuteCmd(cmd))())

	cat, ok := h.Model().SelectedCategory()
	require.True(t, ok)
	assert.Equal(t, "beds", cat.ID)
	assert.True(t, h.ViewContains("Platform Bed"))
}

func TestMoveSelection_LoadsProductsAndReports(t *testing.T) {
	h := loaded(t, newFake())

	cmd := h.SendSpecialKey(tea.KeyDown)
	require.NotNil(t, cmd)

	var selected *CategorySelected
	for _, msg := range testutil.CollectMsgs(cmd) {
		if am, ok := msg.(action.Msg); ok {
			if s, ok := am.Action.(CategorySelected); ok {
				selected = &s
			}
			continue
		}
		h.SendMsg(msg)
	}
	require.NotNil(t, selected)
	assert.Equal(t, "beds", selected.CategoryID)
	assert.Equal(t, catalog.Furniture, selected.Collection)
	assert.True(t, h.ViewContains("Platform Bed"))
	assert.True(t, h.ViewContains("Price on request"))
}

func TestMoveSelection_StopsAtEdges(t *testing.T) {
	h := loaded(t, newFake())
	assert.Nil(t, h.SendSpecialKey(tea.KeyUp))

	cat, _ := h.Model().SelectedCategory()
	assert.Equal(t, "sofas", cat.ID)
}

func TestEmptyCategory(t *testing.T) {
	h := loaded(t, newFake())
	for range 2 {
		cmd := h.SendKey("j")
		for _, msg := range testutil.CollectMsgs(cmd) {
			h.SendMsg(msg)
		}
	}

	_, ok := h.Model().Products()
	assert.False(t, ok)
	assert.True(t, h.ViewContains("No products in this category yet."))
	assert.Nil(t, h.SendSpecialKey(tea.KeyEnter))
}

func TestOrder_BuildsWhatsAppLink(t *testing.T) {
	h := loaded(t, newFake())

	cmd := h.SendSpecialKey(tea.KeyEnter)
	require.NotNil(t, cmd)

	am, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	req, ok := am.Action.(InquiryRequested)
	require.True(t, ok)

	assert.Equal(t, "p1", req.Product.ID)
	assert.True(t, strings.HasPrefix(req.Link, "https://wa.me/919999999999?text="))
	assert.Equal(t, req.Link, h.Model().Link())
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	h := loaded(t, newFake())
	m := h.Model()
	m.SetFocused(false)
	h.SetModel(m)

	assert.Nil(t, h.SendSpecialKey(tea.KeyDown))
	assert.Nil(t, h.SendSpecialKey(tea.KeyRight))
}

func TestRightKeySlidesProducts(t *testing.T) {
	h := loaded(t, newFake())

	require.NotNil(t, h.SendSpecialKey(tea.KeyRight))
	products, _ := h.Model().Products()
	assert.True(t, products.Animating())
}

func TestViewEmptyWithoutSize(t *testing.T) {
	m := New(catalog.Interiors, newFake(), "")
	assert.Empty(t, m.View())
}
