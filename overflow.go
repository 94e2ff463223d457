package typeset

import "math"

// TextOverflow is the per-axis verdict of the overflow estimator: either
// the text exceeds the rectangle by some amount (needed to size the
// scrollbar), or it fits with some slack (needed to center or end-align
// the block).
type TextOverflow struct {
	overflowing bool
	amount      float64
}

// Overflowing returns a TextOverflow reporting that text exceeds the
// rectangle by excess pixels.
func Overflowing(excess float64) TextOverflow {
	return TextOverflow{overflowing: true, amount: excess}
}

// InBounds returns a TextOverflow reporting that text fits with slack
// pixels to spare.
func InBounds(slack float64) TextOverflow {
	return TextOverflow{amount: slack}
}

// IsOverflowing reports whether the text exceeds the rectangle on this axis.
func (t TextOverflow) IsOverflowing() bool { return t.overflowing }

// Amount returns the excess when overflowing, or the slack when in bounds.
func (t TextOverflow) Amount() float64 { return t.amount }

// OverflowResult holds the overflow verdict for both axes.
type OverflowResult struct {
	Horizontal TextOverflow
	Vertical   TextOverflow
}

// overflowFor compares an extent against a rectangle dimension.
func overflowFor(extent, dimension float64) TextOverflow {
	if extent > dimension {
		return Overflowing(extent - dimension)
	}
	return InBounds(dimension - extent)
}

// estimateOverflowPass1 computes whether the words will overflow the
// rectangle on either axis, without laying out a single glyph.
//
// The vertical extent depends on the horizontal behavior: when text may
// overflow horizontally no wrapping ever occurs, so only Return items
// create lines. Otherwise wrapping is simulated with the same pen
// arithmetic the positioner uses. The horizontal extent is the true
// maximum line width when overflow is permitted; when it is not, layout
// is bounded to the rectangle width by construction.
func estimateOverflowPass1(words *Words, rect Size, m FontMetrics, behavior OverflowBehavior) OverflowResult {
	var verticalExtent float64

	if behavior.AllowsHorizontal() {
		verticalExtent = float64(words.ReturnCount()) * m.VerticalAdvance
	} else {
		var cursor float64
		line := 0

		for _, item := range words.Items {
			switch item.Kind {
			case ItemWord:
				if cursor+item.TotalWidth > rect.Width {
					cursor = 0
					line++
				}
				cursor += item.TotalWidth + m.SpaceWidth
			case ItemTab:
				// A tab never triggers a wrap.
				cursor += m.TabWidth
			case ItemReturn:
				cursor = 0
				line++
			}
		}

		if len(words.Items) > 0 {
			verticalExtent = float64(line+1)*m.VerticalAdvance + m.OffsetTop
		}
	}

	var horizontalExtent float64

	if behavior.AllowsHorizontal() {
		var cursor, maxCursor float64
		lineHasWord := false

		for _, item := range words.Items {
			switch item.Kind {
			case ItemWord:
				if lineHasWord {
					cursor += m.SpaceWidth
				}
				cursor += item.TotalWidth
				lineHasWord = true
			case ItemTab:
				cursor += m.TabWidth
			case ItemReturn:
				maxCursor = math.Max(maxCursor, cursor)
				cursor = 0
				lineHasWord = false
			}
		}

		horizontalExtent = math.Max(maxCursor, cursor)
	} else {
		horizontalExtent = rect.Width
	}

	return OverflowResult{
		Horizontal: overflowFor(horizontalExtent, rect.Width),
		Vertical:   overflowFor(verticalExtent, rect.Height),
	}
}

// estimateOverflowPass2 reserves scrollbar space and re-estimates once.
//
// The axes are switched around on purpose: text overflowing vertically
// gets a scrollbar on the right edge, which consumes width, and text
// overflowing horizontally gets one on the bottom edge, which consumes
// height. If either reservation fired, pass 1 is rerun against the shrunk
// rectangle; otherwise the first pass stands.
func estimateOverflowPass2(words *Words, rect Size, m FontMetrics, behavior OverflowBehavior,
	scrollbar ScrollbarInfo, pass1 OverflowResult) (Size, OverflowResult) {

	newSize := rect

	if pass1.Horizontal.IsOverflowing() {
		newSize.Height -= scrollbar.Thickness
	}
	if pass1.Vertical.IsOverflowing() {
		newSize.Width -= scrollbar.Thickness
	}

	if !pass1.Horizontal.IsOverflowing() && !pass1.Vertical.IsOverflowing() {
		return newSize, pass1
	}

	Logger().Debug("typeset: reserving scrollbar space",
		"horizontal", pass1.Horizontal.IsOverflowing(),
		"vertical", pass1.Vertical.IsOverflowing(),
		"width", newSize.Width, "height", newSize.Height)

	return newSize, estimateOverflowPass1(words, newSize, m, behavior)
}
