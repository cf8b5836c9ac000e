package fontregistry

import (
	"golang.org/x/image/font/basicfont"

	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/fontcap"
)

// fallbackFont is the deterministic, always-available substitute used
// when ResolveFont/LoadFont cannot find anything on the host (§7:
// "missing font renders as blank with correct box size"). It reports
// metrics and advances from the fixed-width basicfont face, scaled to
// the requested size, but never produces glyph ink.
type fallbackFont struct {
	face *basicfont.Face
}

func newFallbackFont() fontcap.ParsedFont {
	return &fallbackFont{face: basicfont.Face7x13}
}

// cellWidthAt returns the fallback face's fixed advance, scaled
// linearly from its native 7px cell to the requested size.
func (f *fallbackFont) cellWidthAt(sizePx dimen.Dimen) dimen.Dimen {
	const nativeCellPx = 7
	const nativeSizePx = 13
	if sizePx <= 0 {
		return 0
	}
	return sizePx * nativeCellPx / nativeSizePx
}

// Shape implements fontcap.ParsedFont: one zero-ink glyph per rune,
// each advancing by the scaled fixed cell width.
func (f *fallbackFont) Shape(text string, sizePx dimen.Dimen) []fontcap.Glyph {
	adv := f.cellWidthAt(sizePx)
	runes := []rune(text)
	out := make([]fontcap.Glyph, len(runes))
	cluster := 0
	for i, r := range runes {
		out[i] = fontcap.Glyph{GlyphID: uint32(r), Cluster: cluster, AdvanceX: adv}
		cluster += len(string(r))
	}
	return out
}

// Metrics implements fontcap.ParsedFont, scaling basicfont's native
// 13px metrics to the requested size.
func (f *fallbackFont) Metrics(sizePx dimen.Dimen) fontcap.Metrics {
	const nativeSizePx = 13
	scale := func(n int) dimen.Dimen {
		if sizePx <= 0 {
			return 0
		}
		return dimen.Dimen(n) * sizePx / nativeSizePx
	}
	return fontcap.Metrics{
		AscentPx:   scale(f.face.Ascent),
		DescentPx:  scale(f.face.Descent),
		LineGapPx:  0,
		XHeightPx:  scale(f.face.Ascent / 2),
		UnitsPerEm: nativeSizePx,
	}
}

// Advance implements fontcap.ParsedFont.
func (f *fallbackFont) Advance(glyphID uint32, sizePx dimen.Dimen) dimen.Dimen {
	return f.cellWidthAt(sizePx)
}

var _ fontcap.ParsedFont = (*fallbackFont)(nil)
