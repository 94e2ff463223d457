package typeset

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/norm"
)

// HarfbuzzAdjuster is an opt-in GlyphAdjuster backed by the HarfBuzz
// implementation in go-text/typesetting. It re-shapes the text and emits,
// per positioned glyph, the accumulated difference between the shaper's
// advances and the parser's naive advances. This is a first-order
// correction for shaping effects the naive pipeline cannot see (contextual
// positioning, mark placement). Cross-word kerning is ignored, and any
// input the shaper maps to a different glyph count (ligatures, complex
// scripts) yields nil, leaving the layout untouched.
//
// The default pipeline runs no adjuster. To opt in:
//
//	params.Adjuster = typeset.NewHarfbuzzAdjuster()
//
// HarfbuzzAdjuster is safe for concurrent use. It caches parsed font.Font
// objects (which are read-only and thread-safe) and pools
// shaping.HarfbuzzShaper instances, which are not.
type HarfbuzzAdjuster struct {
	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is not safe for concurrent use, but
	// reusing instances across sequential calls is efficient.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text fonts, so the
	// font data is not re-parsed on every call.
	fontCache map[*FontSource]*font.Font
}

// NewHarfbuzzAdjuster creates a HarfbuzzAdjuster.
func NewHarfbuzzAdjuster() *HarfbuzzAdjuster {
	return &HarfbuzzAdjuster{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Adjustments implements GlyphAdjuster.
func (a *HarfbuzzAdjuster) Adjustments(text string, source *FontSource, size float64) []float64 {
	if text == "" || source == nil {
		return nil
	}

	goTextFont, err := a.getOrCreateFont(source)
	if err != nil {
		return nil
	}

	// font.Face is not safe for concurrent use; each call gets its own.
	// font.NewFace is cheap, it wraps the thread-safe *Font.
	goTextFace := font.NewFace(goTextFont)

	// Shape the same normalized rune sequence the word splitter walked.
	runes := []rune(norm.NFC.String(text))

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      goTextFace,
		Size:      floatToFixed(size),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	shaper := a.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	a.shaperPool.Put(shaper)

	parsed := source.Parsed()
	return advanceDeltas(output.Glyphs, runes, parsed, size)
}

// advanceDeltas accumulates shaper-vs-parser advance differences over the
// glyphs the positioner emits (everything except space, tab and newline,
// which are boundaries rather than glyphs). The accumulator resets at
// hard line breaks, matching the positioner's pen reset.
func advanceDeltas(glyphs []shaping.Glyph, runes []rune, parsed ParsedFont, size float64) []float64 {
	var deltas []float64
	var cum float64

	for _, g := range glyphs {
		cluster := g.TextIndex()
		if cluster < 0 || cluster >= len(runes) {
			return nil
		}

		switch runes[cluster] {
		case '\n':
			cum = 0
			continue
		case ' ', '\t':
			continue
		}

		deltas = append(deltas, cum)

		gid := GlyphID(uint16(g.GlyphID))
		cum += fixedToFloat(g.XAdvance) - parsed.GlyphAdvance(gid, size)
	}

	return deltas
}

// getOrCreateFont returns a cached go-text font.Font for the source, or
// parses the font data and caches it. font.Font is read-only and safe for
// concurrent use.
func (a *HarfbuzzAdjuster) getOrCreateFont(source *FontSource) (*font.Font, error) {
	// Fast path: check the cache with a read lock.
	a.mu.RLock()
	if f, ok := a.fontCache[source]; ok {
		a.mu.RUnlock()
		return f, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring the write lock.
	if f, ok := a.fontCache[source]; ok {
		return f, nil
	}

	reader := bytes.NewReader(source.data)
	goTextFace, err := font.ParseTTF(reader)
	if err != nil {
		return nil, err
	}

	// Cache the Font (thread-safe), not the Face.
	a.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// RemoveSource removes the cached parsed font for a FontSource.
func (a *HarfbuzzAdjuster) RemoveSource(source *FontSource) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.fontCache, source)
}
