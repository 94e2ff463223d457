package typeset

import "testing"

// TestComputeFontMetrics_TabRatio verifies the fixed tab heuristic:
// a tab is always exactly four spaces, for any font and size.
func TestComputeFontMetrics_TabRatio(t *testing.T) {
	fonts := map[string]ParsedFont{
		"fixed":   &fixedFont{advance: 1},
		"regular": regularSource(t).Parsed(),
	}

	for name, font := range fonts {
		t.Run(name, func(t *testing.T) {
			for _, size := range []float64{8, 12, 16.5, 72} {
				m := ComputeFontMetrics(font, size, 0)
				if m.TabWidth != 4*m.SpaceWidth {
					t.Errorf("size %v: tab width %v is not 4x space width %v",
						size, m.TabWidth, m.SpaceWidth)
				}
			}
		})
	}
}

// TestComputeFontMetrics_SizeRepresentations verifies the split between
// the two size representations: line height scales the vertical size only.
func TestComputeFontMetrics_SizeRepresentations(t *testing.T) {
	font := &fixedFont{advance: 1}

	m := ComputeFontMetrics(font, 16, 1.5)

	wantBase := 16.0 * sizeCorrection * pxToPt
	if !approxEqual(m.SizeNoLineHeight, wantBase) {
		t.Errorf("SizeNoLineHeight = %v, want %v", m.SizeNoLineHeight, wantBase)
	}
	if !approxEqual(m.SizeWithLineHeight, wantBase*1.5) {
		t.Errorf("SizeWithLineHeight = %v, want %v", m.SizeWithLineHeight, wantBase*1.5)
	}

	// Horizontal advances must come from the unscaled size.
	if !approxEqual(m.SpaceWidth, wantBase) {
		t.Errorf("SpaceWidth = %v, want %v (line height must not distort advances)",
			m.SpaceWidth, wantBase)
	}
}

// TestComputeFontMetrics_LineHeightDefault verifies that a zero line
// height means the font's natural spacing.
func TestComputeFontMetrics_LineHeightDefault(t *testing.T) {
	font := &fixedFont{advance: 1}

	zero := ComputeFontMetrics(font, 16, 0)
	one := ComputeFontMetrics(font, 16, 1.0)

	if zero != one {
		t.Errorf("line height 0 = %+v, line height 1 = %+v; want identical", zero, one)
	}
}

// TestComputeFontMetrics_VerticalConstants verifies the vertical advance
// and baseline heuristics against the fixed font's known metrics.
func TestComputeFontMetrics_VerticalConstants(t *testing.T) {
	font := &fixedFont{advance: 1}

	m := ComputeFontMetrics(font, 16, 0)

	// fixedFont: ascent 0.8s, descent -0.2s, no line gap.
	if !approxEqual(m.VerticalAdvance, m.SizeWithLineHeight) {
		t.Errorf("VerticalAdvance = %v, want ascent-descent+gap = %v",
			m.VerticalAdvance, m.SizeWithLineHeight)
	}
	if !approxEqual(m.OffsetTop, 0.4*m.SizeWithLineHeight) {
		t.Errorf("OffsetTop = %v, want ascent/2 = %v", m.OffsetTop, 0.4*m.SizeWithLineHeight)
	}
}

// TestComputeFontMetrics_NoSpaceGlyph verifies the fatal precondition:
// a font that cannot measure the space glyph cannot be laid out.
func TestComputeFontMetrics_NoSpaceGlyph(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a font without space metrics")
		}
	}()

	ComputeFontMetrics(&fixedFont{advance: 1, noSpace: true}, 16, 0)
}
