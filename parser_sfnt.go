package typeset

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntParser implements FontParser using golang.org/x/image/font/sfnt.
type sfntParser struct{}

// Parse implements FontParser.Parse.
func (p *sfntParser) Parse(data []byte) (ParsedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeset: failed to parse font: %w", err)
	}
	return &sfntParsedFont{font: f}, nil
}

// sfntParsedFont implements ParsedFont using sfnt.Font.
//
// All measurements use unhinted metrics: hinting quantizes advances to the
// pixel grid, which would break the word cache's assumption that advances
// are linear in font size.
type sfntParsedFont struct {
	font *sfnt.Font
}

// Name implements ParsedFont.Name.
func (f *sfntParsedFont) Name() string {
	var buf sfnt.Buffer
	if name, err := f.font.Name(&buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *sfntParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *sfntParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *sfntParsedFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *sfntParsedFont) GlyphAdvance(g GlyphID, ppem float64) float64 {
	var buf sfnt.Buffer

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(g), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}

	return fixedToFloat(advance)
}

// Kern implements ParsedFont.Kern.
func (f *sfntParsedFont) Kern(prev, next GlyphID, ppem float64) float64 {
	var buf sfnt.Buffer

	kern, err := f.font.Kern(&buf, sfnt.GlyphIndex(prev), sfnt.GlyphIndex(next), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		// sfnt reports ErrNotFound for fonts without kern tables.
		return 0
	}

	return fixedToFloat(kern)
}

// VerticalMetrics implements ParsedFont.VerticalMetrics.
func (f *sfntParsedFont) VerticalMetrics(ppem float64) VerticalMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return VerticalMetrics{}
	}

	ascent := fixedToFloat(metrics.Ascent)
	descent := -fixedToFloat(metrics.Descent) // sfnt reports descent as positive
	lineGap := fixedToFloat(metrics.Height) - ascent + descent

	return VerticalMetrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
	}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
