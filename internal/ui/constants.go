// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the showroom views.
const (
	// BorderHeight is the vertical space consumed by a rounded panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a rounded panel border.
	BorderWidth = 2

	// HeaderHeight is the title line plus the tab line.
	HeaderHeight = 2

	// FooterHeight is the status line plus the help line.
	FooterHeight = 2

	// SectionTitleHeight is the heading above each slider.
	SectionTitleHeight = 1

	// MinCardHeight is the smallest height a slider card is drawn at.
	MinCardHeight = 4
)
