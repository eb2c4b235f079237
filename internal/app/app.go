// Package app is the root Bubble Tea model of the showroom.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arambha/showroom/internal/carousel"
	"github.com/arambha/showroom/internal/catalog"
	"github.com/arambha/showroom/internal/config"
	"github.com/arambha/showroom/internal/store"
	"github.com/arambha/showroom/internal/ui/catalogview"
	"github.com/arambha/showroom/internal/ui/sliders"
)

// ViewMode selects the page shown below the header.
type ViewMode string

const (
	ViewHome      ViewMode = "home"
	ViewFurniture ViewMode = "furniture"
	ViewInteriors ViewMode = "interiors"
)

// FocusTarget selects the focused slider on the home view.
type FocusTarget int

const (
	FocusBudget FocusTarget = iota
	FocusStyle
)

// Model is the root application model.
type Model struct {
	ViewMode ViewMode
	Focus    FocusTarget

	Budget    carousel.Model[sliders.BudgetItem]
	Style     carousel.Model[string]
	Furniture catalogview.Model
	Interiors catalogview.Model

	Catalog  store.Catalog
	Logger   *zap.Logger
	Help     help.Model
	ErrorMsg string
	Width    int
	Height   int

	startup tea.Cmd
}

// New creates the application model and restores the last saved position.
func New(cfg *config.Config, source store.Catalog, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		ViewMode:  ViewHome,
		Budget:    sliders.Budget(),
		Style:     sliders.Style(cfg.StyleImages),
		Furniture: catalogview.New(catalog.Furniture, source, cfg.WhatsAppPhone),
		Interiors: catalogview.New(catalog.Interiors, source, cfg.WhatsAppPhone),
		Catalog:   source,
		Logger:    logger,
		Help:      help.New(),
	}

	if nav, err := source.GetNavigation(); err != nil {
		logger.Warn("restore navigation", zap.Error(err))
	} else if nav != nil {
		m.restoreNavigation(*nav)
	}

	m.startup = tea.Batch(m.Furniture.Load(), m.Interiors.Load())
	m.applyFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.startup
}

// catalogView returns the catalog view for the current mode, if any.
func (m *Model) catalogView() *catalogview.Model {
	switch m.ViewMode {
	case ViewFurniture:
		return &m.Furniture
	case ViewInteriors:
		return &m.Interiors
	case ViewHome:
	}
	return nil
}
