package typeset

import "sync/atomic"

// textIDCounter issues process-unique text identities.
var textIDCounter atomic.Uint64

// WordCache memoizes SplitWords output keyed by (text, font, size).
//
// The first size requested for a (text, font) pair is computed by a full
// split. Every further size of the same pair is derived by scaling an
// already-cached result (see Words.Scaled), trading exact kerning for an
// O(glyph count) copy. Entries are immutable once inserted and are never
// evicted or overwritten.
//
// A WordCache is owned by the caller's session and passed into every
// cached layout call; it is not process-wide state. It performs no
// internal locking: the design assumes single-writer access per cache
// instance. Callers using one instance from multiple goroutines must
// serialize access themselves.
type WordCache struct {
	// strings holds the source text of each registered id.
	strings map[TextID]string

	// entries is keyed text → font → size.
	entries map[TextID]map[FontID]map[float64]*Words
}

// NewWordCache creates an empty word cache.
func NewWordCache() *WordCache {
	return &WordCache{
		strings: make(map[TextID]string),
		entries: make(map[TextID]map[FontID]map[float64]*Words),
	}
}

// Register stores text under a fresh TextID and returns the id.
func (c *WordCache) Register(text string) TextID {
	id := TextID(textIDCounter.Add(1))
	c.strings[id] = text
	c.entries[id] = make(map[FontID]map[float64]*Words)
	return id
}

// Text returns the registered string for id.
func (c *WordCache) Text(id TextID) (string, bool) {
	s, ok := c.strings[id]
	return s, ok
}

// GetOrCompute returns the cached Words for (id, fontID, fontSize),
// computing or scale-deriving them on a miss. fontSize is the requested
// pixel size (the cache key); scale is the corrected no-line-height size
// used when a fresh split is needed (FontMetrics.SizeNoLineHeight).
//
// The returned Words are cache-owned and must not be mutated.
func (c *WordCache) GetOrCompute(id TextID, font ParsedFont, fontID FontID, fontSize, scale float64) (*Words, error) {
	text, ok := c.strings[id]
	if !ok {
		return nil, ErrUnknownText
	}

	fonts := c.entries[id]
	if fonts == nil {
		fonts = make(map[FontID]map[float64]*Words)
		c.entries[id] = fonts
	}

	sizes := fonts[fontID]
	if sizes == nil {
		sizes = make(map[float64]*Words)
		fonts[fontID] = sizes
	}

	if words, ok := sizes[fontSize]; ok {
		return words, nil
	}

	if len(sizes) == 0 {
		// First time this font is seen for the text: full split.
		words := SplitWords(text, font, scale)
		sizes[fontSize] = &words
		return &words, nil
	}

	// The font is known at some other size: derive by scaling any
	// existing entry instead of re-splitting.
	var (
		oldSize  float64
		oldWords *Words
	)
	for size, words := range sizes {
		oldSize, oldWords = size, words
		break
	}

	factor := fontSize / oldSize
	Logger().Debug("typeset: deriving cached words by scaling",
		"text", uint64(id), "font", uint64(fontID),
		"from_size", oldSize, "to_size", fontSize)

	scaled := oldWords.Scaled(factor)
	sizes[fontSize] = &scaled
	return &scaled, nil
}
