package typeset

import "golang.org/x/text/unicode/norm"

// ItemKind discriminates the variants of a WordItem.
type ItemKind uint8

const (
	// ItemWord is a space-delimited word with positioned glyphs.
	ItemWord ItemKind = iota
	// ItemTab is a tab stop ('\t').
	ItemTab
	// ItemReturn is a hard line break ('\n').
	ItemReturn
)

// String returns the string representation of the kind.
func (k ItemKind) String() string {
	switch k {
	case ItemWord:
		return "Word"
	case ItemTab:
		return "Tab"
	case ItemReturn:
		return "Return"
	default:
		return unknownStr
	}
}

// WordItem is one semantic segment of source text: a word, a tab stop or a
// hard line break. Glyphs and TotalWidth are only meaningful for ItemWord.
type WordItem struct {
	Kind ItemKind

	// Glyphs are the word's glyphs in source order, positioned relative
	// to the word's own first glyph.
	Glyphs []GlyphInstance

	// TotalWidth is the sum of the glyph advances plus kerning within
	// this word.
	TotalWidth float64
}

// IsReturn reports whether the item is a hard line break.
func (w WordItem) IsReturn() bool { return w.Kind == ItemReturn }

// Words is how much horizontal space each word in a text block takes up,
// down to the individual glyph. It is enough to compute metrics such as
// the minimal bounding box of the block without accessing the font again.
//
// Words are independent of the original font. When caching them, note the
// font identity and size they were computed against; see WordCache.
type Words struct {
	Items []WordItem
}

// ReturnCount returns the number of hard line breaks.
func (w *Words) ReturnCount() int {
	n := 0
	for _, item := range w.Items {
		if item.IsReturn() {
			n++
		}
	}
	return n
}

// Scaled returns a deep copy of w with every glyph x-coordinate and every
// word width multiplied by factor. Tab and Return items pass through
// unchanged.
//
// Since each word has a local origin (the first glyph sits at x = 0),
// moving a result from one font size to another is a plain multiplication
// by newSize/oldSize. Kerning tables are not strictly linear in size, but
// the error is visually negligible at typical UI sizes, and scaling is
// O(glyph count) versus a full re-split with its per-pair kerning lookups.
func (w *Words) Scaled(factor float64) Words {
	items := make([]WordItem, len(w.Items))
	for i, item := range w.Items {
		scaled := WordItem{Kind: item.Kind, TotalWidth: item.TotalWidth * factor}
		if item.Kind == ItemWord {
			scaled.Glyphs = make([]GlyphInstance, len(item.Glyphs))
			for j, g := range item.Glyphs {
				g.X *= factor
				scaled.Glyphs[j] = g
			}
		}
		items[i] = scaled
	}
	return Words{Items: items}
}

// SplitWords segments text into semantic word items and computes per-glyph
// horizontal offsets, including kerning, relative to each word's origin.
// scale is the no-line-height font size from FontMetrics.SizeNoLineHeight.
//
// The text is NFC-normalized before segmentation. A space, tab or line
// feed terminates the current word; tab and line feed are recorded as
// items of their own, a space only marks the boundary. Kerning applies
// between adjacent glyphs of the same word and resets at every boundary.
// Only '\n' is a hard break; a bare '\r' is treated as a regular
// character.
//
// This is the cost-dominant function of the pipeline; it is expected to
// run once per distinct (text, font, size) unless served from a WordCache.
func SplitWords(text string, font ParsedFont, scale float64) Words {
	var words []WordItem

	var (
		caret   float64
		width   float64
		glyphs  []GlyphInstance
		prev    GlyphID
		hasPrev bool
	)

	endWord := func() {
		words = append(words, WordItem{
			Kind:       ItemWord,
			Glyphs:     glyphs,
			TotalWidth: width,
		})
		glyphs = nil
		caret = 0
		width = 0
		hasPrev = false
	}

	for _, r := range norm.NFC.String(text) {
		switch r {
		case '\t':
			if len(glyphs) > 0 {
				endWord()
			}
			words = append(words, WordItem{Kind: ItemTab})
		case '\n':
			if len(glyphs) > 0 {
				endWord()
			}
			words = append(words, WordItem{Kind: ItemReturn})
		case ' ':
			if len(glyphs) > 0 {
				endWord()
			}
		default:
			id := font.GlyphIndex(r)
			advance := font.GlyphAdvance(id, scale)

			if hasPrev {
				kern := font.Kern(prev, id, scale)
				caret += kern
				width += kern
			}

			glyphs = append(glyphs, GlyphInstance{ID: id, X: caret})

			prev = id
			hasPrev = true
			caret += advance
			width += advance
		}
	}

	// Flush a trailing word at end of input.
	if len(glyphs) > 0 {
		endWord()
	}

	return Words{Items: words}
}
