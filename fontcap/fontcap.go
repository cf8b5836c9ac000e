package fontcap

import "github.com/npillmayer/boxkit/core/dimen"

// Weight is a CSS font-weight value (100-900; 400 normal, 700 bold).
type Weight int

// Style is a CSS font-style value.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

// Metrics is the small set of font-wide measurements the box/line
// solvers need (§6.2 `metrics()`).
type Metrics struct {
	AscentPx    dimen.Dimen
	DescentPx   dimen.Dimen
	LineGapPx   dimen.Dimen
	XHeightPx   dimen.Dimen
	UnitsPerEm  int
}

// Glyph is one shaped glyph cluster: a glyph id plus its advance,
// produced by Shape.
type Glyph struct {
	GlyphID  uint32
	Cluster  int // byte offset into the source text this glyph covers
	AdvanceX dimen.Dimen
}

// FontHandle identifies a resolved, not-yet-loaded font (§6.2
// `resolve_font`). Opaque outside this package.
type FontHandle struct {
	FamilyID string
	Weight   Weight
	Style    Style
	path     string
	fallback bool
}

// IsFallback reports whether this handle resolved to the built-in
// fallback face rather than a real font file (§7 missing-font path).
func (h FontHandle) IsFallback() bool { return h.fallback }

// NewHandle builds a FontHandle pointing at a font file on disk.
// Constructors live here, alongside the unexported fields, so that
// FontLoader implementations in other packages (e.g. fontregistry)
// can still only build well-formed handles.
func NewHandle(familyID string, weight Weight, style Style, path string) FontHandle {
	return FontHandle{FamilyID: familyID, Weight: weight, Style: style, path: path}
}

// NewFallbackHandle builds a FontHandle marked as resolved to the
// built-in fallback face.
func NewFallbackHandle(familyID string, weight Weight, style Style) FontHandle {
	return FontHandle{FamilyID: familyID, Weight: weight, Style: style, fallback: true}
}

// Path returns the resolved font file path. Empty for a fallback handle.
func (h FontHandle) Path() string { return h.path }

// ParsedFont is a loaded font ready to shape text and report metrics
// (§6.2 `load_font`).
type ParsedFont interface {
	Shape(text string, sizePx dimen.Dimen) []Glyph
	Metrics(sizePx dimen.Dimen) Metrics
	Advance(glyphID uint32, sizePx dimen.Dimen) dimen.Dimen
}

// FontLoader is the capability the core consumes (§6.2).
type FontLoader interface {
	ResolveFont(familyID string, weight Weight, style Style) (FontHandle, bool)
	LoadFont(handle FontHandle) (ParsedFont, bool)
}
