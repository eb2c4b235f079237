// Package carousel provides an infinite, seamlessly looping card slider.
//
// The item list is repeated into a longer buffer and a virtual index walks
// that buffer one slot per slide. When a slide lands outside the central band
// the index and the offset are moved back by one full copy in the same
// update, which is invisible because both positions show the same cards.
package carousel

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/arambha/showroom/internal/ui"
)

const (
	fps = 60

	// Spring parameters: stiffness 100, damping 20, mass 1.
	angularFrequency = 10.0
	dampingRatio     = 1.0

	// maxFrames bounds a slide to one second.
	maxFrames = fps

	settleEpsilon = 0.01

	// navWidth is the width of each arrow column beside the track.
	navWidth = 2
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

var navStyle = lipgloss.NewStyle().
	Width(navWidth).
	Align(lipgloss.Center).
	AlignVertical(lipgloss.Center).
	Foreground(lipgloss.Color("240"))

// RenderFunc renders one card. logical is the item's position in the list
// supplied to New, not its buffer slot.
type RenderFunc[T any] func(item T, logical int) string

// KeyMap defines the bindings a focused carousel responds to.
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
}

// DefaultKeyMap returns the standard arrow and vim bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	}
}

// Model is a Bubble Tea carousel over items of type T.
type Model[T any] struct {
	ui.Base
	KeyMap KeyMap

	// CardStyle frames every card. Its width and height are set by the
	// carousel; borders are drawn inside the card's cell.
	CardStyle lipgloss.Style

	id          int
	items       []T
	render      RenderFunc[T]
	track       Track
	itemsToShow int

	// pos is the current track offset, vel its spring velocity.
	pos    float64
	vel    float64
	spring harmonica.Spring

	// seq identifies the in-flight slide so stale frames are ignored.
	seq    int
	frames int
}

// New creates a carousel with the default buffer size. items must not be
// empty; callers are expected to hide the carousel instead.
func New[T any](items []T, render RenderFunc[T]) Model[T] {
	return NewWithCopies(items, render, DefaultCopies)
}

// NewWithCopies creates a carousel whose buffer repeats items copies times.
func NewWithCopies[T any](items []T, render RenderFunc[T], copies int) Model[T] {
	m := Model[T]{
		KeyMap:      DefaultKeyMap(),
		CardStyle:   lipgloss.NewStyle(),
		id:          nextID(),
		items:       items,
		render:      render,
		track:       NewTrack(len(items), copies),
		itemsToShow: ItemsToShow(0),
		spring:      harmonica.NewSpring(harmonica.FPS(fps), angularFrequency, dampingRatio),
	}
	m.pos = m.offsetFor(m.track.Index())
	return m
}

// ID returns the carousel's identifier, used to route frame messages.
func (m Model[T]) ID() int { return m.id }

// Index returns the current buffer slot at the left edge.
func (m Model[T]) Index() int { return m.track.Index() }

// Current returns the logical index of the leftmost visible item.
func (m Model[T]) Current() int { return m.track.Logical(m.track.Index()) }

// CurrentItem returns the leftmost visible item.
func (m Model[T]) CurrentItem() T { return m.items[m.Current()] }

// ItemsToShow returns how many cards are visible at the current width.
func (m Model[T]) ItemsToShow() int { return m.itemsToShow }

// Offset returns the current horizontal offset of the track in cells.
func (m Model[T]) Offset() float64 { return m.pos }

// Animating reports whether a slide is in flight.
func (m Model[T]) Animating() bool { return m.track.Transitioning() }

// Track returns a copy of the underlying index state.
func (m Model[T]) Track() Track { return m.track }

// SetSize resizes the carousel. The index never changes; the offset is
// recomputed for the new geometry without animation.
func (m *Model[T]) SetSize(width, height int) {
	oldPitch := Pitch(m.trackWidth(), m.itemsToShow)
	hadWidth := m.Width() > 0

	m.Base.SetSize(width, height)
	m.itemsToShow = ItemsToShow(width)
	newPitch := Pitch(m.trackWidth(), m.itemsToShow)

	if m.track.Transitioning() && hadWidth && oldPitch > 0 {
		scale := newPitch / oldPitch
		m.pos *= scale
		m.vel *= scale
		return
	}
	m.pos = m.offsetFor(m.track.Index())
}

// Slide starts a slide in dir and returns the command driving its frames.
// While another slide is in flight the request is dropped and Slide
// returns nil.
func (m *Model[T]) Slide(dir Direction) tea.Cmd {
	if !m.track.Begin(dir) {
		return nil
	}
	m.seq++
	m.frames = 0
	return m.frame()
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles frames, resizes and, when focused, navigation keys.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != m.id || msg.Seq != m.seq || !m.track.Transitioning() {
			return m, nil
		}
		return m, m.step()

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, m.Height())

	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, m.KeyMap.Prev):
			cmd = m.Slide(Prev)
		case key.Matches(msg, m.KeyMap.Next):
			cmd = m.Slide(Next)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model[T]) step() tea.Cmd {
	target := m.offsetFor(m.track.Target())
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
	m.frames++

	if m.frames >= maxFrames ||
		(math.Abs(target-m.pos) < settleEpsilon && math.Abs(m.vel) < settleEpsilon) {
		return m.settle()
	}
	return m.frame()
}

// settle lands on the target and, when needed, jumps back into the central
// band. The index and offset are written together so no View call can
// observe one without the other.
func (m *Model[T]) settle() tea.Cmd {
	m.pos = m.offsetFor(m.track.Target())
	m.vel = 0
	index, jumped := m.track.Complete()
	if jumped {
		m.pos = m.offsetFor(index)
	}

	s := Settled{
		CarouselID: m.id,
		Index:      index,
		Logical:    m.track.Logical(index),
		Jumped:     jumped,
	}
	return func() tea.Msg { return ActionMsg(s) }
}

func (m Model[T]) frame() tea.Cmd {
	id, seq := m.id, m.seq
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Seq: seq}
	})
}

func (m Model[T]) offsetFor(index int) float64 {
	return Offset(index, m.itemsToShow, m.trackWidth())
}

func (m Model[T]) trackWidth() int {
	return max(m.Width()-2*navWidth, 0)
}

// View renders the visible window of the track between two arrow columns.
func (m Model[T]) View() string {
	trackW := m.trackWidth()
	height := m.Height()
	if trackW <= 0 || height <= 0 {
		return ""
	}

	cardW := cellWidth(trackW, m.itemsToShow)
	pitch := Pitch(trackW, m.itemsToShow)
	cellPitch := cardW + Gap

	// The offset is fractional; split it into a whole slot and a cell shift
	// within that slot's pitch.
	x := -m.pos
	first := int(math.Floor(x / pitch))
	shift := int(math.Round((x - float64(first)*pitch) / pitch * float64(cellPitch)))

	cardStyle := m.CardStyle.
		Width(max(cardW-m.CardStyle.GetHorizontalBorderSize(), 0)).
		Height(max(height-m.CardStyle.GetVerticalBorderSize(), 0)).
		MaxWidth(cardW).MaxHeight(height)
	gap := lipgloss.NewStyle().Width(Gap).Height(height).Render("")

	var blocks []string
	// Slots past either end of the buffer still map onto items, so a slide
	// landing just before a recenter shows the same cards as after it.
	for slot := first; slot <= first+m.itemsToShow; slot++ {
		logical := m.track.Logical(slot)
		if len(blocks) > 0 {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, cardStyle.Render(m.render(m.items[logical], logical)))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		cut := ansi.Cut(line, shift, shift+trackW)
		if w := ansi.StringWidth(cut); w < trackW {
			cut += strings.Repeat(" ", trackW-w)
		}
		lines[i] = cut
	}
	track := strings.Join(lines, "\n")

	left := navStyle.Height(height).Render("‹")
	right := navStyle.Height(height).Render("›")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, track, right)
}
