package inline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/fontcap"
)

// fixedFont is a deterministic monospace stand-in for tests, in the
// spirit of the teacher's glyphing/monospace.Shaper: every rune
// advances by a constant width regardless of size.
type fixedFont struct{ advance dimen.Dimen }

func (f fixedFont) Shape(text string, sizePx dimen.Dimen) []fontcap.Glyph {
	runes := []rune(text)
	out := make([]fontcap.Glyph, len(runes))
	for i := range runes {
		out[i] = fontcap.Glyph{GlyphID: uint32(runes[i]), Cluster: i, AdvanceX: f.advance}
	}
	return out
}

func (f fixedFont) Metrics(sizePx dimen.Dimen) fontcap.Metrics {
	return fontcap.Metrics{AscentPx: sizePx, DescentPx: sizePx / 4, LineGapPx: 0}
}

func (f fixedFont) Advance(glyphID uint32, sizePx dimen.Dimen) dimen.Dimen { return f.advance }

var _ fontcap.ParsedFont = fixedFont{}

func TestSegmentSplitsWordsAndMarksBreakable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.inline")
	defer teardown()

	words := Segment("one two", 1)
	if len(words) == 0 {
		t.Fatalf("expected at least one segment")
	}
	var sawSpace bool
	for _, w := range words {
		if w.Whitespace {
			sawSpace = true
			if !w.Breakable {
				t.Errorf("a whitespace word must be breakable")
			}
		}
	}
	if !sawSpace {
		t.Errorf("expected a whitespace segment between the two words")
	}
}

func TestLayoutInlineWrapsAtMaxWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.inline")
	defer teardown()

	words := Segment("aa bb cc", NoStyledNode)
	font := fixedFont{advance: dimen.BP * 10} // 10px per rune
	opts := Options{
		HasMaxWidth:        true,
		MaxHorizontalWidth: dimen.BP * 25, // fits "aa" (20px) but not "aa bb" (50px)
		FontSizePx:         dimen.BP * 12,
		LineHeightPx:       dimen.BP * 14,
	}
	layout := LayoutInline(words, font, opts)
	if layout.NumLines < 2 {
		t.Fatalf("expected the text to wrap onto at least 2 lines, got %d", layout.NumLines)
	}
}

func TestLayoutInlineUnconstrainedIsOneLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.inline")
	defer teardown()

	words := Segment("one two three four five", NoStyledNode)
	font := fixedFont{advance: dimen.BP * 10}
	opts := Options{FontSizePx: dimen.BP * 12, LineHeightPx: dimen.BP * 14}
	layout := LayoutInline(words, font, opts)
	if layout.NumLines != 1 {
		t.Errorf("expected a single line under MaxContent-style (unconstrained) width, got %d", layout.NumLines)
	}
}

func TestLayoutInlineNilFontProducesZeroWidthItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.inline")
	defer teardown()

	words := Segment("hello", NoStyledNode)
	opts := Options{FontSizePx: dimen.BP * 12, LineHeightPx: dimen.BP * 14}
	layout := LayoutInline(words, nil, opts)
	for _, it := range layout.Items {
		if it.Width != 0 {
			t.Errorf("expected zero width with an unresolved font, got %v", it.Width)
		}
	}
}

func TestCachedInlineLayoutValidFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.inline")
	defer teardown()

	c := CachedInlineLayout{Width: dimen.Definite(100 * dimen.BP), Floats: false}
	if !c.ValidFor(dimen.Definite(100*dimen.BP+1), false) {
		t.Errorf("expected a sub-epsilon width difference to be a cache hit")
	}
	if c.ValidFor(dimen.Definite(150*dimen.BP), false) {
		t.Errorf("expected a large width difference to be a cache miss")
	}
	floaty := CachedInlineLayout{Width: dimen.Definite(100 * dimen.BP), Floats: true}
	if !floaty.ValidFor(dimen.Definite(100*dimen.BP), false) {
		t.Errorf("a float-aware cache must be reused when the new request has no floats")
	}
	if c.ValidFor(dimen.Definite(100*dimen.BP), true) {
		t.Errorf("a non-float-aware cache must not be reused when the new request has floats")
	}
}
