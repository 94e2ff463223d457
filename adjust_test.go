package typeset

import "testing"

func TestApplyAdjustments(t *testing.T) {
	glyphs := []GlyphInstance{{ID: 1, X: 10}, {ID: 2, X: 20}}

	applyAdjustments(glyphs, []float64{1.5, -0.5})
	if !approxEqual(glyphs[0].X, 11.5) || !approxEqual(glyphs[1].X, 19.5) {
		t.Errorf("adjusted X = %v, %v; want 11.5, 19.5", glyphs[0].X, glyphs[1].X)
	}
}

func TestApplyAdjustments_LengthMismatch(t *testing.T) {
	glyphs := []GlyphInstance{{ID: 1, X: 10}, {ID: 2, X: 20}}

	applyAdjustments(glyphs, []float64{1})
	applyAdjustments(glyphs, nil)

	if glyphs[0].X != 10 || glyphs[1].X != 20 {
		t.Errorf("mismatched adjustments moved glyphs: %+v", glyphs)
	}
}

func TestHarfbuzzAdjuster(t *testing.T) {
	source := regularSource(t)
	adjuster := NewHarfbuzzAdjuster()

	const text = "ab cd"
	m := ComputeFontMetrics(source.Parsed(), 16, 0)

	deltas := adjuster.Adjustments(text, source, m.SizeNoLineHeight)
	if deltas == nil {
		t.Skip("shaper glyph count diverged from naive segmentation")
	}

	// One correction per positioned glyph: spaces are boundaries, not glyphs.
	words := SplitWords(text, source.Parsed(), m.SizeNoLineHeight)
	n := 0
	for _, item := range words.Items {
		n += len(item.Glyphs)
	}
	if len(deltas) != n {
		t.Fatalf("got %d deltas for %d glyphs", len(deltas), n)
	}

	// The first glyph has nothing accumulated in front of it.
	if deltas[0] != 0 {
		t.Errorf("first delta = %v, want 0", deltas[0])
	}

	// Second call hits the parsed-font cache and stays consistent.
	again := adjuster.Adjustments(text, source, m.SizeNoLineHeight)
	if len(again) != len(deltas) {
		t.Fatalf("cached call returned %d deltas, want %d", len(again), len(deltas))
	}
	for i := range deltas {
		if !approxEqual(again[i], deltas[i]) {
			t.Errorf("delta %d changed across calls: %v vs %v", i, again[i], deltas[i])
		}
	}
}

func TestHarfbuzzAdjuster_EmptyInput(t *testing.T) {
	adjuster := NewHarfbuzzAdjuster()

	if got := adjuster.Adjustments("", regularSource(t), 16); got != nil {
		t.Errorf("empty text: got %v, want nil", got)
	}
	if got := adjuster.Adjustments("ab", nil, 16); got != nil {
		t.Errorf("nil source: got %v, want nil", got)
	}
}

func TestHarfbuzzAdjuster_ResetsAtLineBreak(t *testing.T) {
	source := regularSource(t)
	adjuster := NewHarfbuzzAdjuster()

	m := ComputeFontMetrics(source.Parsed(), 16, 0)
	deltas := adjuster.Adjustments("ab\ncd", source, m.SizeNoLineHeight)
	if deltas == nil {
		t.Skip("shaper glyph count diverged from naive segmentation")
	}
	if len(deltas) != 4 {
		t.Fatalf("got %d deltas, want 4", len(deltas))
	}
	// The glyph after the hard break starts a fresh accumulation.
	if deltas[2] != 0 {
		t.Errorf("delta after line break = %v, want 0", deltas[2])
	}
}

func TestHarfbuzzAdjuster_RemoveSource(t *testing.T) {
	source := regularSource(t)
	adjuster := NewHarfbuzzAdjuster()

	if d := adjuster.Adjustments("ab", source, 16); d == nil {
		t.Skip("shaper glyph count diverged from naive segmentation")
	}
	adjuster.RemoveSource(source)

	// Re-parses from the retained data without error.
	if d := adjuster.Adjustments("ab", source, 16); d == nil {
		t.Error("adjuster failed after RemoveSource")
	}
}
