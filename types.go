package typeset

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// HorizontalAlignment specifies how glyphs are shifted within the leftover
// space of each line. Usually parsed from a `text-align` style attribute
// by an upstream styling collaborator.
type HorizontalAlignment int

const (
	// AlignLeft keeps the left-aligned positions (default).
	AlignLeft HorizontalAlignment = iota
	// AlignCenter shifts each line right by half of its leftover space.
	AlignCenter
	// AlignRight shifts each line right by its full leftover space.
	AlignRight
)

// String returns the string representation of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VerticalAlignment specifies how the glyph block as a whole is shifted
// within the vertical slack of the rectangle. Unlike horizontal alignment,
// which operates per line, vertical alignment always moves the entire block
// uniformly.
type VerticalAlignment int

const (
	// AlignTop keeps the top-aligned positions (default).
	AlignTop VerticalAlignment = iota
	// AlignMiddle shifts the block down by half of the vertical slack.
	AlignMiddle
	// AlignBottom shifts the block down by the full vertical slack.
	AlignBottom
)

// String returns the string representation of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// AxisBehavior specifies whether text may overflow one axis of the target
// rectangle, usually parsed from `overflow-x` / `overflow-y`.
type AxisBehavior int

const (
	// OverflowClip bounds layout to the rectangle on this axis (default).
	// On the horizontal axis this enables line wrapping.
	OverflowClip AxisBehavior = iota
	// OverflowAllow lets text extend past the rectangle on this axis.
	OverflowAllow
)

// String returns the string representation of the behavior.
func (b AxisBehavior) String() string {
	switch b {
	case OverflowClip:
		return "Clip"
	case OverflowAllow:
		return "Allow"
	default:
		return unknownStr
	}
}

// OverflowBehavior holds the per-axis overflow permission for a layout call.
type OverflowBehavior struct {
	Horizontal AxisBehavior
	Vertical   AxisBehavior
}

// AllowsHorizontal reports whether text may overflow the rectangle width.
// When it may, no line wrapping is performed.
func (b OverflowBehavior) AllowsHorizontal() bool { return b.Horizontal == OverflowAllow }

// AllowsVertical reports whether text may overflow the rectangle height.
func (b OverflowBehavior) AllowsVertical() bool { return b.Vertical == OverflowAllow }
