package typeset

// GlyphAdjuster is a post-positioning hook that corrects naive glyph
// advances with the output of a real shaping engine. The default pipeline
// runs no adjuster; see HarfbuzzAdjuster for an opt-in implementation.
//
// Adjustments returns one horizontal correction per positioned glyph, in
// glyph order, or nil to leave the layout untouched. A result whose
// length does not match the glyph count is ignored.
type GlyphAdjuster interface {
	Adjustments(text string, source *FontSource, size float64) []float64
}

// BreakOptimizer is a post-positioning hook for paragraph-level line
// break optimization over the positioned glyph sequence. No
// implementation ships with typeset; the hook exists so one can be
// plugged in without touching the pipeline.
type BreakOptimizer interface {
	Optimize(glyphs []GlyphInstance, breaks []LineBreak)
}

// applyAdjustments adds per-glyph horizontal corrections in place.
// Length mismatches (ligatures, unsupported input) leave the glyphs as
// positioned.
func applyAdjustments(glyphs []GlyphInstance, adjustments []float64) {
	if len(adjustments) != len(glyphs) {
		return
	}
	for i := range glyphs {
		glyphs[i].X += adjustments[i]
	}
}
