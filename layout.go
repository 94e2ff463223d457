package typeset

// LayoutParams configures one layout call. The styling collaborator is
// expected to have validated alignment, overflow and scrollbar values
// before they arrive here.
type LayoutParams struct {
	// Bounds is the target rectangle. Glyphs come back in the
	// coordinate space of its origin.
	Bounds Rect

	// Horizontal and Vertical select the text alignment inside Bounds.
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment

	// Overflow is the per-axis overflow permission.
	Overflow OverflowBehavior

	// Scrollbar supplies the space to reserve when an axis overflows.
	Scrollbar ScrollbarInfo

	// FontSize is the requested size in pixels.
	FontSize float64

	// LineHeight is a multiplier on the vertical advance.
	// 0 uses the font's natural spacing (1.0).
	LineHeight float64

	// Adjuster is an optional shaping-engine advance correction stage.
	// nil (the default) leaves the naive advances in place.
	Adjuster GlyphAdjuster

	// BreakOptimizer is an optional paragraph-level break optimization
	// stage. nil (the default) keeps the greedy breaks.
	BreakOptimizer BreakOptimizer
}

// DefaultLayoutParams returns sensible default layout parameters:
// top-left aligned, clipped on both axes, 12px text with the default
// scrollbar geometry.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Scrollbar: DefaultScrollbarInfo(),
		FontSize:  12,
	}
}

// Layout runs the whole pipeline for an uncached string: split, estimate
// overflow twice, position left-aligned, run the optional refinement
// hooks, align, and translate to the Bounds origin.
//
// It returns the positioned glyphs, the final per-axis overflow result
// for the scrollbar collaborator, and the usable rectangle size (shrunk
// when scrollbar space was reserved).
//
// Layout panics if source is nil: the caller must guarantee the font is
// resident before laying out with it.
func Layout(source *FontSource, text string, p LayoutParams) ([]GlyphInstance, OverflowResult, Size) {
	if source == nil {
		panic("typeset: layout with unloaded font")
	}

	m := ComputeFontMetrics(source.Parsed(), p.FontSize, p.LineHeight)
	words := SplitWords(text, source.Parsed(), m.SizeNoLineHeight)

	return layoutWords(&words, text, source, p, m)
}

// LayoutCached is Layout for a text registered with a WordCache: the
// split step is served from (or inserted into) the cache instead of
// being recomputed.
func LayoutCached(cache *WordCache, id TextID, source *FontSource, p LayoutParams) ([]GlyphInstance, OverflowResult, Size, error) {
	if source == nil {
		panic("typeset: layout with unloaded font")
	}

	m := ComputeFontMetrics(source.Parsed(), p.FontSize, p.LineHeight)

	words, err := cache.GetOrCompute(id, source.Parsed(), source.ID(), p.FontSize, m.SizeNoLineHeight)
	if err != nil {
		return nil, OverflowResult{}, Size{}, err
	}

	text, _ := cache.Text(id)
	glyphs, overflow, size := layoutWords(words, text, source, p, m)
	return glyphs, overflow, size, nil
}

// layoutWords is the shared tail of Layout and LayoutCached.
func layoutWords(words *Words, text string, source *FontSource, p LayoutParams, m FontMetrics) ([]GlyphInstance, OverflowResult, Size) {
	pass1 := estimateOverflowPass1(words, p.Bounds.Size, m, p.Overflow)
	newSize, pass2 := estimateOverflowPass2(words, p.Bounds.Size, m, p.Overflow, p.Scrollbar, pass1)

	maxWidth := noMaxWidth
	if !p.Overflow.AllowsHorizontal() {
		maxWidth = newSize.Width
	}

	glyphs, breaks, _, _ := positionLeftAligned(words, maxWidth, m)

	if p.Adjuster != nil {
		applyAdjustments(glyphs, p.Adjuster.Adjustments(text, source, m.SizeNoLineHeight))
	}
	if p.BreakOptimizer != nil {
		p.BreakOptimizer.Optimize(glyphs, breaks)
	}

	alignHorizontally(p.Horizontal, glyphs, breaks)
	alignVertically(p.Vertical, glyphs, breaks, pass2)

	TranslateGlyphs(glyphs, p.Bounds.Origin.X, p.Bounds.Origin.Y)

	return glyphs, pass2, newSize
}

// LayoutResult is the output of LayoutString.
type LayoutResult struct {
	// Words is the segmented text.
	Words Words

	// Glyphs are the left-aligned positioned glyphs.
	Glyphs []GlyphInstance

	// LineBreaks records, per line, the index of its last glyph and its
	// leftover space relative to the widest line.
	LineBreaks []LineBreak

	// MinWidth and MinHeight are the minimal enclosing box of the text.
	MinWidth, MinHeight float64
}

// LayoutString lays out a string without fitting it into a rectangle:
// no wrapping beyond hard breaks, no overflow estimation, no alignment.
// Useful for measuring text or for callers that do their own fitting;
// place the result with TranslateGlyphs.
func LayoutString(source *FontSource, text string, fontSize, lineHeight float64) LayoutResult {
	if source == nil {
		panic("typeset: layout with unloaded font")
	}

	m := ComputeFontMetrics(source.Parsed(), fontSize, lineHeight)
	words := SplitWords(text, source.Parsed(), m.SizeNoLineHeight)
	glyphs, breaks, minWidth, minHeight := positionLeftAligned(&words, noMaxWidth, m)

	return LayoutResult{
		Words:      words,
		Glyphs:     glyphs,
		LineBreaks: breaks,
		MinWidth:   minWidth,
		MinHeight:  minHeight,
	}
}
