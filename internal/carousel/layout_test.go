package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsToShow(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{-5, 1},
		{0, 1},
		{79, 1},
		{80, 2},
		{127, 2},
		{128, 3},
		{300, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ItemsToShow(tt.width), "width %d", tt.width)
	}
}

func TestItemWidth(t *testing.T) {
	// 100 cells, 3 cards, 2 gaps of 2 cells: (100-4)/3 = 32
	assert.InDelta(t, 32.0, ItemWidth(100, 3), 1e-9)
	assert.InDelta(t, 100.0, ItemWidth(100, 1), 1e-9)
	assert.InDelta(t, 49.0, ItemWidth(100, 2), 1e-9)
}

func TestItemWidth_ClampsItemsToShow(t *testing.T) {
	assert.InDelta(t, ItemWidth(60, 1), ItemWidth(60, 0), 1e-9)
	assert.InDelta(t, ItemWidth(60, 1), ItemWidth(60, -2), 1e-9)
}

func TestOffset(t *testing.T) {
	// pitch = 32 + 2
	assert.InDelta(t, -6*34.0, Offset(6, 3, 100), 1e-9)
	assert.InDelta(t, 0.0, Offset(0, 3, 100), 1e-9)
	// one card: pitch = 100 + 2
	assert.InDelta(t, -6*102.0, Offset(6, 1, 100), 1e-9)
}

func TestOffset_IsMonotonicInIndex(t *testing.T) {
	prev := Offset(0, 2, 90)
	for i := 1; i < 30; i++ {
		cur := Offset(i, 2, 90)
		assert.Less(t, cur, prev)
		prev = cur
	}
}

func TestCellWidth_NeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, cellWidth(0, 3))
	assert.Equal(t, 32, cellWidth(100, 3))
	assert.Equal(t, 32, cellWidth(101, 3))
	assert.Equal(t, 33, cellWidth(103, 3))
}
