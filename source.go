package typeset

import (
	"fmt"
	"os"
	"sync/atomic"
)

// FontID identifies a loaded font across layout calls and cache entries.
// Words cached under one FontID are meaningless for any other font.
type FontID uint64

// TextID identifies a registered text in a WordCache.
type TextID uint64

// fontIDCounter issues process-unique font identities.
var fontIDCounter atomic.Uint64

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be shared across the application;
// the layout pipeline itself only borrows its parsed form.
//
// FontSource is safe for concurrent use after creation.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	id   FontID
	name string

	// Configuration
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure the parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Apply options first to get the parser name
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Get parser and parse the font
	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	// Copy the data
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		id:     FontID(fontIDCounter.Add(1)),
		name:   parsed.Name(),
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeset: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Parsed returns the parsed font backing this source.
// Panics if s is nil (e.g. when a NewFontSourceFromFile error was ignored).
func (s *FontSource) Parsed() ParsedFont {
	if s == nil {
		panic("typeset: FontSource is nil — did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()
	return s.parsed
}

// ID returns the process-unique identity of this source.
func (s *FontSource) ID() FontID {
	s.copyCheck()
	return s.id
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// copyCheck panics if the FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("typeset: illegal use of non-zero FontSource copied by value")
	}
}

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "sfnt" which uses golang.org/x/image/font/sfnt.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}
