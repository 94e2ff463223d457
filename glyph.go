package typeset

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// GlyphInstance is one positioned glyph.
//
// Inside a Word the position is relative to the word's own first glyph
// (X = 0 at the word start). As the pipeline progresses the same struct is
// translated in place: first to line-relative, then rectangle-relative,
// then absolute coordinates. Callers must not assume the coordinate space
// stays constant across pipeline stages.
type GlyphInstance struct {
	// ID is the glyph index in the font.
	ID GlyphID

	// X, Y are the position of the glyph's left edge at the baseline
	// offset of its line.
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Point is an x/y pair in pixels.
type Point struct {
	X, Y float64
}

// Rect is the target rectangle for a layout call.
type Rect struct {
	Origin Point
	Size   Size
}
