package carousel

import "github.com/arambha/showroom/internal/ui/action"

// FrameMsg advances the animation of one carousel's in-flight slide.
type FrameMsg struct {
	ID  int
	Seq int
}

// Settled is emitted when a slide finishes.
type Settled struct {
	CarouselID int
	Index      int  // buffer slot at rest
	Logical    int  // item index of the leftmost card
	Jumped     bool // the index was moved back into the central band
}

// ActionType implements action.Action.
func (Settled) ActionType() string { return "carousel.settled" }

// ActionMsg wraps a carousel action for the parent model.
func ActionMsg(a action.Action) action.Msg {
	return action.New("carousel", a)
}
