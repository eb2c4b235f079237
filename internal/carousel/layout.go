package carousel

import "math"

// Breakpoints are expressed in terminal cells, one cell standing in for 8px
// of the studio's web layout (640px and 1024px).
const (
	SmallBreakpoint = 80
	LargeBreakpoint = 128
)

// Gap is the spacing between two cards, in cells.
const Gap = 2

// ItemsToShow returns how many cards fit side by side for a viewport width.
func ItemsToShow(width int) int {
	switch {
	case width < SmallBreakpoint:
		return 1
	case width < LargeBreakpoint:
		return 2
	default:
		return 3
	}
}

// ItemWidth returns the width of one card when itemsToShow cards and their
// gaps share trackWidth cells.
func ItemWidth(trackWidth, itemsToShow int) float64 {
	itemsToShow = clampItems(itemsToShow)
	return float64(trackWidth-(itemsToShow-1)*Gap) / float64(itemsToShow)
}

// Pitch is the distance between the left edges of two adjacent cards.
func Pitch(trackWidth, itemsToShow int) float64 {
	return ItemWidth(trackWidth, itemsToShow) + Gap
}

// Offset returns the horizontal translation of the track when the buffer slot
// at index is the leftmost visible card. The value is negative: the content
// moves left as the index grows.
func Offset(index, itemsToShow, trackWidth int) float64 {
	return -float64(index) * Pitch(trackWidth, itemsToShow)
}

// cellWidth rounds a fractional card width down to whole cells, never below one.
func cellWidth(trackWidth, itemsToShow int) int {
	return max(int(math.Floor(ItemWidth(trackWidth, itemsToShow))), 1)
}

func clampItems(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
