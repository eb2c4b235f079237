package ui

// Base carries the focus flag and the outer size every component needs.
// Components embed it and override SetFocused or SetSize when they have
// children to propagate to.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component receives keys.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the outer dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the outer dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the outer width.
func (b Base) Width() int {
	return b.width
}

// Height returns the outer height.
func (b Base) Height() int {
	return b.height
}

// InnerSize returns the size left inside a rounded border, never negative.
func (b Base) InnerSize() (width, height int) {
	return max(b.width-BorderWidth, 0), max(b.height-BorderHeight, 0)
}
