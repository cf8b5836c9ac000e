package layout_test

import (
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/fontcap"
)

// fakeFont is a deterministic, offline stand-in for a shaped font: a
// fixed-width monospace advance, independent of host fonts installed on
// the machine running the tests.
type fakeFont struct{}

func (fakeFont) Shape(text string, sizePx dimen.Dimen) []fontcap.Glyph {
	runes := []rune(text)
	glyphs := make([]fontcap.Glyph, len(runes))
	adv := sizePx / 2
	cluster := 0
	for i, r := range runes {
		glyphs[i] = fontcap.Glyph{GlyphID: uint32(r), Cluster: cluster, AdvanceX: adv}
		cluster += len(string(r))
	}
	return glyphs
}

func (fakeFont) Metrics(sizePx dimen.Dimen) fontcap.Metrics {
	return fontcap.Metrics{
		AscentPx:   sizePx * 4 / 5,
		DescentPx:  sizePx / 5,
		LineGapPx:  0,
		XHeightPx:  sizePx / 2,
		UnitsPerEm: 1000,
	}
}

func (fakeFont) Advance(glyphID uint32, sizePx dimen.Dimen) dimen.Dimen {
	return sizePx / 2
}

// fakeFontLoader always resolves to the same fakeFont, never touching
// the filesystem — a clean room stand-in for fontcap/fontregistry.New()
// in tests that don't care about real glyph shapes.
type fakeFontLoader struct{}

func (fakeFontLoader) ResolveFont(familyID string, weight fontcap.Weight, style fontcap.Style) (fontcap.FontHandle, bool) {
	return fontcap.NewFallbackHandle(familyID, weight, style), true
}

func (fakeFontLoader) LoadFont(handle fontcap.FontHandle) (fontcap.ParsedFont, bool) {
	return fakeFont{}, true
}
