package typeset

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// fixedFont is a deterministic ParsedFont for tests: every rune maps to a
// stable glyph id, every glyph has the same advance per unit of size, and
// kerning comes from an explicit pair table. No font file is involved, so
// scenario tests can predict positions exactly.
type fixedFont struct {
	// advance is the horizontal advance per glyph at size 1.
	advance float64

	// kern maps [prev, next] glyph pairs to a kerning value at size 1.
	kern map[[2]GlyphID]float64

	// noSpace simulates a font that cannot measure the space glyph.
	noSpace bool
}

func (f *fixedFont) Name() string    { return "Fixed" }
func (f *fixedFont) NumGlyphs() int  { return 0x10000 }
func (f *fixedFont) UnitsPerEm() int { return 1000 }

func (f *fixedFont) GlyphIndex(r rune) GlyphID { return GlyphID(r) }

func (f *fixedFont) GlyphAdvance(g GlyphID, ppem float64) float64 {
	if f.noSpace && g == GlyphID(' ') {
		return 0
	}
	return f.advance * ppem
}

func (f *fixedFont) Kern(prev, next GlyphID, ppem float64) float64 {
	return f.kern[[2]GlyphID{prev, next}] * ppem
}

func (f *fixedFont) VerticalMetrics(ppem float64) VerticalMetrics {
	return VerticalMetrics{
		Ascent:  0.8 * ppem,
		Descent: -0.2 * ppem,
		LineGap: 0,
	}
}

// testMetrics returns hand-picked layout constants: 10px glyphs and
// spaces, 40px tabs, 20px between baselines, first baseline at 5px.
// Words built with testSplit match these numbers.
func testMetrics() FontMetrics {
	return FontMetrics{
		SpaceWidth:         10,
		TabWidth:           40,
		VerticalAdvance:    20,
		OffsetTop:          5,
		SizeWithLineHeight: 10,
		SizeNoLineHeight:   10,
	}
}

// testSplit segments text with the fixed font so that every glyph is
// exactly 10px wide, matching testMetrics.
func testSplit(t *testing.T, text string) Words {
	t.Helper()
	return SplitWords(text, &fixedFont{advance: 1}, 10)
}

// regularSource creates a FontSource from Go Regular for tests that need
// a real font.
func regularSource(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	return source
}

// approxEqual reports whether two floats are within ε of each other.
func approxEqual(a, b float64) bool {
	const epsilon = 1e-6
	return math.Abs(a-b) < epsilon
}
