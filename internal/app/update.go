package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arambha/showroom/internal/app/handler"
	"github.com/arambha/showroom/internal/carousel"
	"github.com/arambha/showroom/internal/errmsg"
	"github.com/arambha/showroom/internal/ui/action"
	"github.com/arambha/showroom/internal/ui/catalogview"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ResizeComponents()
		return m, nil

	case carousel.FrameMsg:
		return m.routeFrame(msg)

	case catalogview.CategoriesLoadedMsg:
		if msg.Err != nil {
			m.reportError(errmsg.OpCategoryLoad, msg.Err)
		}
		return m.routeCatalog(msg)

	case catalogview.ProductsLoadedMsg:
		if msg.Err != nil {
			m.reportError(errmsg.OpProductLoad, msg.Err)
		}
		return m.routeCatalog(msg)

	case action.Msg:
		m.handleAction(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// routeFrame offers an animation frame to every carousel. Each one ignores
// frames carrying another carousel's id.
func (m Model) routeFrame(msg carousel.FrameMsg) (tea.Model, tea.Cmd) {
	var cmds [4]tea.Cmd
	m.Budget, cmds[0] = m.Budget.Update(msg)
	m.Style, cmds[1] = m.Style.Update(msg)
	m.Furniture, cmds[2] = m.Furniture.Update(msg)
	m.Interiors, cmds[3] = m.Interiors.Update(msg)
	return m, tea.Batch(cmds[:]...)
}

// routeCatalog delivers load results to both catalog views; each keeps only
// the results for its own collection and selection.
func (m Model) routeCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var furnitureCmd, interiorsCmd tea.Cmd
	m.Furniture, furnitureCmd = m.Furniture.Update(msg)
	m.Interiors, interiorsCmd = m.Interiors.Update(msg)
	return m, tea.Batch(furnitureCmd, interiorsCmd)
}

func (m *Model) handleAction(msg action.Msg) {
	switch a := msg.Action.(type) {
	case carousel.Settled:
		m.Logger.Debug("slide settled",
			zap.Int("carousel", a.CarouselID),
			zap.Int("index", a.Index),
			zap.Int("item", a.Logical),
			zap.Bool("recentered", a.Jumped),
		)
	case catalogview.CategorySelected:
		m.SaveNavigationState()
	case catalogview.InquiryRequested:
		m.Logger.Info("order inquiry",
			zap.String("product", a.Product.ID),
			zap.String("name", a.Product.Name),
			zap.String("link", a.Link),
		)
	default:
		m.Logger.Debug("unhandled action",
			zap.String("source", msg.Source),
			zap.String("type", msg.Type()),
		)
	}
}

func (m *Model) reportError(op errmsg.Op, err error) {
	m.ErrorMsg = errmsg.Format(op, err)
	m.Logger.Error(string(op), zap.Error(err))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// An error stays on screen until the next key.
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		if key != "q" && key != "ctrl+c" {
			return m, nil
		}
	}

	if handled, cmd := handler.Chain(key,
		m.handleQuitKeys,
		m.handleViewKeys,
		m.handleFocusKeys,
	); handled {
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.ViewMode {
	case ViewHome:
		if m.Focus == FocusBudget {
			m.Budget, cmd = m.Budget.Update(msg)
		} else {
			m.Style, cmd = m.Style.Update(msg)
		}
	case ViewFurniture:
		m.Furniture, cmd = m.Furniture.Update(msg)
	case ViewInteriors:
		m.Interiors, cmd = m.Interiors.Update(msg)
	}
	return m, cmd
}
