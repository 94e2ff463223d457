package typeset

const (
	// sizeCorrection compensates the rasterizer's font scaling quirk.
	// Without it, horizontal spacing comes out visibly too tight.
	sizeCorrection = 72.0 / 41.0

	// pxToPt converts a pixel font size to points.
	pxToPt = 72.0 / 96.0
)

// FontMetrics holds the scalar layout constants derived from a font at a
// requested size, so the layout passes never have to touch the font again.
type FontMetrics struct {
	// SpaceWidth is the advance of the space glyph.
	SpaceWidth float64

	// TabWidth is the advance of one tab stop, always 4 * SpaceWidth.
	TabWidth float64

	// VerticalAdvance is the baseline-to-baseline distance
	// (ascent - descent + line gap) at the line-height-scaled size.
	VerticalAdvance float64

	// OffsetTop is the baseline offset of the first line from the top of
	// the bounding rectangle (ascent / 2).
	OffsetTop float64

	// SizeWithLineHeight is the corrected font size including the
	// line-height multiplier. Used for vertical placement.
	SizeWithLineHeight float64

	// SizeNoLineHeight is the corrected font size without the line-height
	// multiplier. Used for horizontal advances, so line height never
	// distorts glyph spacing.
	SizeNoLineHeight float64
}

// ComputeFontMetrics derives the layout constants for font at the given
// size in pixels. lineHeight is a multiplier on the vertical advance
// (1.2 scales line spacing by 1.2x); pass 0 to use the font's natural
// spacing (1.0).
//
// ComputeFontMetrics is pure and never touches the font beyond metric
// lookups. It panics if the font cannot report an advance for the space
// glyph; a font without a measurable space cannot be laid out.
func ComputeFontMetrics(font ParsedFont, fontSize, lineHeight float64) FontMetrics {
	sizeNoLineHeight := fontSize * sizeCorrection * pxToPt
	if lineHeight <= 0 {
		lineHeight = 1.0
	}
	sizeWithLineHeight := sizeNoLineHeight * lineHeight

	spaceWidth := font.GlyphAdvance(font.GlyphIndex(' '), sizeNoLineHeight)
	if spaceWidth <= 0 {
		panic("typeset: font reports no metrics for the space glyph")
	}
	// TODO: make the tab stop count configurable.
	tabWidth := 4.0 * spaceWidth

	vm := font.VerticalMetrics(sizeWithLineHeight)

	return FontMetrics{
		SpaceWidth:         spaceWidth,
		TabWidth:           tabWidth,
		VerticalAdvance:    vm.Advance(),
		OffsetTop:          vm.Ascent / 2.0,
		SizeWithLineHeight: sizeWithLineHeight,
		SizeNoLineHeight:   sizeNoLineHeight,
	}
}
