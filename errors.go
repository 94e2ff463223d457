package typeset

import "errors"

// Sentinel errors for the typeset package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeset: empty font data")

	// ErrUnknownText is returned when a TextID has no registered string.
	ErrUnknownText = errors.New("typeset: text id not registered with cache")
)
