package fontregistry

import (
	"fmt"
	"io/ioutil"
	"path"
	"strings"
	"sync"

	"github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/derekparker/trie"
	"github.com/flopp/go-findfont"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/fontcap"
)

// variant is one resolved (weight, style) instance of a family, either
// a path on disk or the built-in fallback.
type variant struct {
	path     string
	weight   fontcap.Weight
	style    fontcap.Style
	fallback bool
}

// Registry is the default fontcap.FontLoader. It indexes resolved
// families in a trie keyed by lower-cased family name, discovers
// unindexed families on the host through go-findfont, and caches parsed
// fonts by handle. A lookup matches only the exact normalized family
// name; a prefix such as "times" does not match "times new roman".
//
// Grounded on the teacher's font.Registry (core/font/fontregistry), with
// the normalized-name map replaced by a trie; metrics and advances come
// from x/image sfnt/opentype, and textlayout supplies a HarfBuzz face so
// Shape can go through HarfBuzz.
type Registry struct {
	mu       sync.Mutex
	families *trie.Trie
	loaded   map[fontcap.FontHandle]fontcap.ParsedFont
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// Global returns an application-wide singleton registry.
func Global() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = New()
	})
	return globalRegistry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		families: trie.New(),
		loaded:   make(map[fontcap.FontHandle]fontcap.ParsedFont),
	}
}

// ResolveFont implements fontcap.FontLoader (§6.2 resolve_font).
//
// Resolution order: families already indexed in this registry, then a
// file-system scan via go-findfont, then the built-in fallback face.
// A miss returns ok=false together with a usable fallback handle, per
// §7's "missing font" requirement that layout must proceed with a
// substitute.
func (r *Registry) ResolveFont(familyID string, weight fontcap.Weight, style fontcap.Style) (fontcap.FontHandle, bool) {
	key := normalizeFamily(familyID)
	r.mu.Lock()
	if node, ok := r.families.Find(key); ok {
		if v, ok := node.Meta().(variant); ok {
			r.mu.Unlock()
			tracer().Debugf("resolved font %q from registry cache", familyID)
			return handleOf(familyID, weight, style, v), true
		}
	}
	r.mu.Unlock()

	if fpath, err := findfont.Find(familyID); err == nil && fpath != "" {
		gstyle, gweight := guessStyleAndWeight(fpath)
		v := variant{path: fpath, weight: gweight, style: gstyle}
		r.mu.Lock()
		r.families.Add(key, v)
		r.mu.Unlock()
		tracer().Infof("found system font for %q at %s (guessed weight=%d style=%d)", familyID, fpath, gweight, gstyle)
		return handleOf(familyID, weight, style, v), true
	}

	tracer().Infof("no font matches %q, falling back", familyID)
	return handleOf(familyID, weight, style, variant{fallback: true}), false
}

func handleOf(familyID string, weight fontcap.Weight, style fontcap.Style, v variant) fontcap.FontHandle {
	if v.fallback {
		return fontcap.NewFallbackHandle(familyID, weight, style)
	}
	return fontcap.NewHandle(familyID, weight, style, v.path)
}

// LoadFont implements fontcap.FontLoader (§6.2 load_font). Parses are
// cached per handle so repeated layout passes over the same document
// don't re-read font files.
func (r *Registry) LoadFont(handle fontcap.FontHandle) (fontcap.ParsedFont, bool) {
	r.mu.Lock()
	if pf, ok := r.loaded[handle]; ok {
		r.mu.Unlock()
		return pf, true
	}
	r.mu.Unlock()

	if handle.IsFallback() {
		pf := newFallbackFont()
		r.mu.Lock()
		r.loaded[handle] = pf
		r.mu.Unlock()
		return pf, true
	}

	fpath := handle.Path()
	bytez, err := ioutil.ReadFile(fpath)
	if err != nil {
		tracer().Errorf("reading font file %s: %v", fpath, err)
		return nil, false
	}
	pf, err := parseFont(bytez)
	if err != nil {
		tracer().Errorf("parsing font file %s: %v", fpath, err)
		return nil, false
	}
	r.mu.Lock()
	r.loaded[handle] = pf
	r.mu.Unlock()
	return pf, true
}

// normalizeFamily reduces a family-id string to the registry's trie key
// form: lower-case, single-spaced, extension stripped.
func normalizeFamily(family string) string {
	family = strings.TrimSpace(family)
	family = strings.ToLower(family)
	if dot := strings.LastIndex(family, "."); dot > 0 {
		family = family[:dot]
	}
	family = strings.Join(strings.Fields(family), " ")
	return family
}

// guessStyleAndWeight inspects a font file's base name for style/weight
// hints, the way the teacher's GuessStyleAndWeight does for its own
// normalized-name cache.
func guessStyleAndWeight(filename string) (fontcap.Style, fontcap.Weight) {
	base := path.Base(filename)
	ext := path.Ext(base)
	base = strings.ToLower(base[:len(base)-len(ext)])
	style, weight := fontcap.StyleNormal, fontcap.Weight(400)
	if strings.Contains(base, "italic") {
		style = fontcap.StyleItalic
	} else if strings.Contains(base, "oblique") {
		style = fontcap.StyleOblique
	}
	switch {
	case strings.Contains(base, "black"), strings.Contains(base, "heavy"):
		weight = 900
	case strings.Contains(base, "extrabold"):
		weight = 800
	case strings.Contains(base, "bold"):
		weight = 700
	case strings.Contains(base, "semibold"):
		weight = 600
	case strings.Contains(base, "medium"):
		weight = 500
	case strings.Contains(base, "light"):
		weight = 300
	case strings.Contains(base, "thin"):
		weight = 100
	}
	return style, weight
}

// --- ParsedFont implementation ----------------------------------------------

// loadedFont wraps an OpenType font parsed twice over: once through
// golang.org/x/image/font/{sfnt,opentype} for metrics and glyph
// advances (mirrors the teacher's ScalableFont/TypeCase), once through
// textlayout/harfbuzz for shaping, following the same split the
// teacher's harfbuzz adapter uses.
type loadedFont struct {
	sfont      *sfnt.Font
	hbFace     *truetype.Font
	mu         sync.Mutex
	faceBySize map[int]xfont.Face
}

func parseFont(bytez []byte) (fontcap.ParsedFont, error) {
	sf, err := sfnt.Parse(bytez)
	if err != nil {
		return nil, fmt.Errorf("parsing sfnt: %w", err)
	}
	hbFace, err := truetype.Parse(newReaderAt(bytez), true)
	if err != nil {
		return nil, fmt.Errorf("parsing truetype for shaping: %w", err)
	}
	return &loadedFont{sfont: sf, hbFace: hbFace, faceBySize: make(map[int]xfont.Face)}, nil
}

func (lf *loadedFont) faceAt(sizePx dimen.Dimen) xfont.Face {
	key := int(sizePx)
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if f, ok := lf.faceBySize[key]; ok {
		return f
	}
	f, err := opentype.NewFace(lf.sfont, &opentype.FaceOptions{
		Size: float64(sizePx) / 64.0,
		DPI:  72,
	})
	if err != nil {
		tracer().Errorf("creating face at size %v: %v", sizePx, err)
		return nil
	}
	lf.faceBySize[key] = f
	return f
}

// Shape implements fontcap.ParsedFont by running HarfBuzz over text,
// grounded on the teacher's glyphing/harfbuzz.Shape.
func (lf *loadedFont) Shape(text string, sizePx dimen.Dimen) []fontcap.Glyph {
	hbFont := hb.NewFont(lf.hbFace)
	hbFont.Ptem = float32(sizePx) / 64.0
	buf := hb.NewBuffer()
	buf.AddRunes([]rune(text), 0, -1)
	buf.GuessSegmentProperties()
	buf.Shape(hbFont, []hb.Feature{})
	out := make([]fontcap.Glyph, len(buf.Info))
	for i, info := range buf.Info {
		pos := buf.Pos[i]
		out[i] = fontcap.Glyph{
			GlyphID:  uint32(info.Glyph),
			Cluster:  int(info.Cluster),
			AdvanceX: dimen.Dimen(pos.XAdvance),
		}
	}
	return out
}

// Metrics implements fontcap.ParsedFont.
func (lf *loadedFont) Metrics(sizePx dimen.Dimen) fontcap.Metrics {
	face := lf.faceAt(sizePx)
	if face == nil {
		return fontcap.Metrics{UnitsPerEm: int(lf.sfont.UnitsPerEm())}
	}
	m := face.Metrics()
	// x-height has no dedicated field on font.Metrics; approximate it
	// from the glyph bounds of a lower-case 'x', falling back to half
	// the ascent when the font has no such glyph.
	xh := dimen.Dimen(m.Ascent) / 2
	if bounds, _, ok := face.GlyphBounds('x'); ok {
		xh = dimen.Dimen(-bounds.Min.Y.Ceil())
	}
	return fontcap.Metrics{
		AscentPx:   dimen.Dimen(m.Ascent),
		DescentPx:  dimen.Dimen(m.Descent),
		LineGapPx:  dimen.Dimen(m.Height) - dimen.Dimen(m.Ascent) - dimen.Dimen(m.Descent),
		XHeightPx:  xh,
		UnitsPerEm: int(lf.sfont.UnitsPerEm()),
	}
}

// Advance implements fontcap.ParsedFont.
func (lf *loadedFont) Advance(glyphID uint32, sizePx dimen.Dimen) dimen.Dimen {
	face := lf.faceAt(sizePx)
	if face == nil {
		return 0
	}
	adv, ok := face.GlyphAdvance(rune(glyphID))
	if !ok {
		return 0
	}
	return dimen.Dimen(adv)
}

var _ fontcap.ParsedFont = (*loadedFont)(nil)

// readerAt adapts a byte slice to io.ReaderAt for truetype.Parse.
type readerAt struct{ b []byte }

func newReaderAt(b []byte) *readerAt { return &readerAt{b: b} }

func (r *readerAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(r.b)) {
		return 0, fmt.Errorf("fontregistry: read past end of font data")
	}
	n := copy(p, r.b[off:])
	return n, nil
}

