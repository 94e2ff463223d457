package typeset

// checkTerminalBreak panics unless the last line break closes on the last
// glyph. Reaching this on valid input is a programming error in the
// positioner, not a user-facing failure.
func checkTerminalBreak(glyphs []GlyphInstance, breaks []LineBreak) {
	if breaks[len(breaks)-1].GlyphIndex != len(glyphs)-1 {
		panic("typeset: last line break does not end on the last glyph")
	}
}

// alignHorizontally shifts already-positioned glyphs right within each
// line's leftover space. AlignLeft is a no-op. The shift is applied per
// line: every glyph on a line moves by the same amount.
func alignHorizontally(alignment HorizontalAlignment, glyphs []GlyphInstance, breaks []LineBreak) {
	if len(breaks) == 0 {
		// Zero-glyph input lays out nothing to align.
		return
	}

	checkTerminalBreak(glyphs, breaks)

	var factor float64
	switch alignment {
	case AlignLeft:
		return
	case AlignCenter:
		factor = 0.5
	case AlignRight:
		factor = 1.0
	default:
		return
	}

	line := 0
	for i := range glyphs {
		if i > breaks[line].GlyphIndex {
			line++
		}
		glyphs[i].X += breaks[line].Leftover * factor
	}
}

// alignVertically shifts the whole glyph block down within the vertical
// slack of the rectangle. AlignTop is a no-op, as is any vertically
// overflowing layout: there is no slack to distribute.
//
// Unlike horizontal alignment this is a single uniform shift, not a
// per-line one; vertical centering centers the block as one unit.
func alignVertically(alignment VerticalAlignment, glyphs []GlyphInstance, breaks []LineBreak, overflow OverflowResult) {
	if len(glyphs) == 0 || len(breaks) == 0 {
		return
	}

	checkTerminalBreak(glyphs, breaks)

	var factor float64
	switch alignment {
	case AlignTop:
		return
	case AlignMiddle:
		factor = 0.5
	case AlignBottom:
		factor = 1.0
	default:
		return
	}

	if overflow.Vertical.IsOverflowing() {
		return
	}
	shift := overflow.Vertical.Amount() * factor

	for i := range glyphs {
		glyphs[i].Y += shift
	}
}

// TranslateGlyphs adds a fixed offset to every glyph position, converting
// rectangle-local coordinates into the caller's space. It is the last
// pipeline step and is also useful for placing a LayoutString result.
func TranslateGlyphs(glyphs []GlyphInstance, dx, dy float64) {
	for i := range glyphs {
		glyphs[i].X += dx
		glyphs[i].Y += dy
	}
}
