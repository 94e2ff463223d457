// Package typeset turns a run of text into positioned glyphs that fit a
// rectangular region, together with the overflow metadata needed to place
// scrollbars and to align text horizontally and vertically.
//
// The pipeline is deliberately small and strictly left to right:
//
//	text → font metrics + words → overflow estimate → left-aligned glyphs
//	     → horizontal align → vertical align → origin translation
//
// typeset does not rasterize glyphs or draw anything; it produces a glyph
// sequence for a rendering collaborator and a per-axis overflow result for
// a scrollbar collaborator.
//
// # Example usage
//
//	source, err := typeset.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	params := typeset.DefaultLayoutParams()
//	params.Bounds = typeset.Rect{Size: typeset.Size{Width: 200, Height: 80}}
//	params.FontSize = 14
//
//	glyphs, overflow, usable := typeset.Layout(source, "Hello, world", params)
//
// # Word caching
//
// Large or frequently re-laid-out strings can be registered with a
// WordCache. The cache memoizes the expensive word-splitting step per
// (text, font, size) and derives new sizes by scaling an existing entry
// instead of re-splitting:
//
//	cache := typeset.NewWordCache()
//	id := cache.Register(longText)
//	glyphs, overflow, usable, err := typeset.LayoutCached(cache, id, source, params)
//
// # Pluggable font parser backend
//
// Font parsing is abstracted through the FontParser interface. The default
// backend uses golang.org/x/image/font/sfnt. Custom parsers can be
// registered for alternative implementations:
//
//	typeset.RegisterParser("myparser", myCustomParser)
//	source, err := typeset.NewFontSource(data, typeset.WithParser("myparser"))
package typeset
