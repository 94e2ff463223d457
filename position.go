package typeset

import "math"

// LineBreak records where a line of positioned glyphs ended.
type LineBreak struct {
	// GlyphIndex is the index of the last glyph on the line, or -1 when
	// the line carried no glyphs (a hard break before any word).
	GlyphIndex int

	// Leftover is the unused width on the line: the distance to the right
	// edge when the layout width was bounded, or the difference to the
	// widest line when it was not. Alignment distributes this space.
	Leftover float64
}

// noMaxWidth marks an unbounded layout width.
var noMaxWidth = math.Inf(1)

// positionLeftAligned converts words into absolute left-aligned glyph
// positions, recording one LineBreak per line. maxWidth bounds the line
// width; pass noMaxWidth to let lines run on and break only at Return
// items.
//
// When the width is unbounded, "unused width" is undefined until every
// line has been measured, so each break first records the raw pen value
// and a post-pass rewrites it to widestLine - pen. Returns the glyphs,
// the breaks, and the minimal enclosing width and height of the block.
func positionLeftAligned(words *Words, maxWidth float64, m FontMetrics) ([]GlyphInstance, []LineBreak, float64, float64) {
	var (
		glyphs []GlyphInstance
		breaks []LineBreak
	)

	bounded := !math.IsInf(maxWidth, 1)

	pen := 0.0
	maxPen := 0.0
	line := 0

	commitLine := func() {
		leftover := pen // resolved against maxPen afterwards
		if bounded {
			leftover = maxWidth - pen
		}
		breaks = append(breaks, LineBreak{GlyphIndex: len(glyphs) - 1, Leftover: leftover})
		if pen > maxPen {
			maxPen = pen
		}
	}

	for _, item := range words.Items {
		switch item.Kind {
		case ItemWord:
			if bounded && pen+item.TotalWidth > maxWidth {
				commitLine()
				pen = 0
				line++
			}

			y := float64(line)*m.VerticalAdvance + m.OffsetTop
			for _, g := range item.Glyphs {
				g.X += pen
				g.Y += y
				glyphs = append(glyphs, g)
			}

			pen += item.TotalWidth + m.SpaceWidth
		case ItemTab:
			// Advances the pen without glyphs and never wraps.
			pen += m.TabWidth
		case ItemReturn:
			commitLine()
			pen = 0
			line++
		}
	}

	// Close out the last line.
	if len(glyphs) > 0 {
		commitLine()
	}

	if !bounded {
		for i := range breaks {
			breaks[i].Leftover = maxPen - breaks[i].Leftover
		}
	}

	minWidth := maxPen
	var minHeight float64
	if len(words.Items) > 0 {
		minHeight = float64(line+1)*m.VerticalAdvance + m.OffsetTop
	}

	return glyphs, breaks, minWidth, minHeight
}
