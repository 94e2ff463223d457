package typeset

import "image/color"

// ScrollbarInfo holds the geometry and style of the scrollbars a layout
// call may need to reserve space for. The layout core consumes only the
// geometry; the colors travel through untouched for the scrollbar-drawing
// collaborator.
type ScrollbarInfo struct {
	// Thickness is the width of a vertical scrollbar or the height of a
	// horizontal one, in pixels. This much space is subtracted from the
	// opposite axis when an axis overflows.
	Thickness float64

	// Padding of the scrollbar, in pixels. The inner bar is
	// Thickness - Padding pixels wide.
	Padding float64

	// BarColor is the style of the scrollbar bar itself.
	BarColor color.Color

	// ArrowColor is the style of the up/down arrows.
	ArrowColor color.Color

	// BackgroundColor is the style of the scrollbar background.
	BackgroundColor color.Color
}

// DefaultScrollbarInfo returns a neutral gray scrollbar 10 pixels thick.
func DefaultScrollbarInfo() ScrollbarInfo {
	return ScrollbarInfo{
		Thickness:       10,
		Padding:         2,
		BarColor:        color.Gray{Y: 0x80},
		ArrowColor:      color.Gray{Y: 0x40},
		BackgroundColor: color.Gray{Y: 0xe0},
	}
}
