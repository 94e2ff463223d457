package typeset

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/sfnt vs an alternative implementation).
//
// The default implementation uses golang.org/x/image/font/sfnt.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the font-engine surface the layout pipeline consumes:
// glyph lookup, horizontal advances, pairwise kerning and vertical metrics
// at a given size. This interface abstracts the underlying font
// representation.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the horizontal advance for a glyph at the
	// given size in pixels per em. Returns 0 if the glyph cannot be
	// measured.
	GlyphAdvance(g GlyphID, ppem float64) float64

	// Kern returns the kerning adjustment between two adjacent glyphs at
	// the given size. Returns 0 when the font carries no kerning for the
	// pair.
	Kern(prev, next GlyphID, ppem float64) float64

	// VerticalMetrics returns ascent, descent and line gap at the given size.
	VerticalMetrics(ppem float64) VerticalMetrics
}

// VerticalMetrics holds font-level vertical metrics at a specific size.
type VerticalMetrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (negative, below the baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Advance returns the recommended baseline-to-baseline distance
// (ascent - descent + line gap).
func (m VerticalMetrics) Advance() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// parserRegistry holds registered font parsers.
// The default parser is "sfnt" (golang.org/x/image/font/sfnt).
var parserRegistry = map[string]FontParser{
	"sfnt": &sfntParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "sfnt"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
