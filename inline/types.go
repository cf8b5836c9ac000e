package inline

import (
	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
)

// ItemKind distinguishes the shaped item kinds a UnifiedLayout carries
// (glossary "UnifiedLayout").
type ItemKind uint8

const (
	ItemGlyphRun ItemKind = iota
	ItemTab
	ItemHardBreak
	ItemInlineBlock
	ItemCombinedBlock
)

// Word is one segmented, not-yet-shaped run of text between
// line-break opportunities, as produced by Segment.
type Word struct {
	Text         string
	Breakable    bool // a line may break immediately after this word
	Whitespace   bool // word is entirely whitespace (collapses at line end)
	StyledNodeID int  // originating styled-node id, -1 if synthetic
}

// NoStyledNode marks a Word/PositionedItem with no originating styled node.
const NoStyledNode = -1

// PositionedItem is one entry of a UnifiedLayout: a shaped item placed
// on a line within the IFC (glossary "UnifiedLayout").
type PositionedItem struct {
	Kind         ItemKind
	Text         string
	X, Y         dimen.Dimen // position within the IFC's content box
	Width        dimen.Dimen
	Height       dimen.Dimen
	Ascent       dimen.Dimen
	LineIndex    int
	StyledNodeID int
	Breakable    bool
}

// UnifiedLayout is the inline payload of §3.1: an ordered list of
// PositionedItems plus the overall content size they occupy.
type UnifiedLayout struct {
	Items       []PositionedItem
	ContentSize dimen.Point // bounding width/height of all lines
	NumLines    int
}

// ItemMetrics is per-item derived data cached alongside a UnifiedLayout
// (§4.7): advance width, line-height contribution, breakability, line
// index, x offset, and originating styled-node id where known.
type ItemMetrics struct {
	AdvanceWidth      dimen.Dimen
	LineHeightContrib dimen.Dimen
	Breakable         bool
	LineIndex         int
	XOffset           dimen.Dimen
	StyledNodeID      int
}

// DeriveItemMetrics builds the item_metrics[] side table from a
// UnifiedLayout's positioned items, as required on a cache miss by §4.7.
func DeriveItemMetrics(layout UnifiedLayout, lineHeight dimen.Dimen) []ItemMetrics {
	out := make([]ItemMetrics, len(layout.Items))
	for i, it := range layout.Items {
		out[i] = ItemMetrics{
			AdvanceWidth:      it.Width,
			LineHeightContrib: lineHeight,
			Breakable:         it.Breakable,
			LineIndex:         it.LineIndex,
			XOffset:           it.X,
			StyledNodeID:      it.StyledNodeID,
		}
	}
	return out
}

// Options configures one invocation of LayoutInline (§6.3).
type Options struct {
	MaxHorizontalWidth dimen.Dimen // only read when HasMaxWidth; 0 then means min-content
	HasMaxWidth        bool        // false means unconstrained
	Leading            dimen.Dimen // initial indent on the first line
	Holes              []dimen.Rect
	FontSizePx         dimen.Dimen
	LineHeightPx       dimen.Dimen // 0 means "font's natural" (LayoutInline fills it in)
	LetterSpacing      dimen.Dimen
	WordSpacing        dimen.Dimen
	TabWidth           dimen.Dimen // 0 means "4x space advance" (LayoutInline fills it in)
	TextAlignH         TextAlign
}

// TextAlign mirrors style/css.TextAlign for the subset inline layout
// needs to act on directly (left/right/center/justify); kept local to
// avoid a dependency from inline on style/css.
type TextAlign uint8

const (
	AlignStart TextAlign = iota
	AlignEnd
	AlignCenter
	AlignJustify
)

// CachedInlineLayout is the node-level cache entry of §3.1/§4.7:
// {layout, available_width, has_floats, item_metrics[]}.
type CachedInlineLayout struct {
	Layout      UnifiedLayout
	Width       dimen.AvailableSpace
	Floats      bool
	ItemMetrics []ItemMetrics
}

// AvailableWidth, HasFloats and ContentSize implement
// boxtree.InlineLayoutCache, so a *CachedInlineLayout can be stored
// directly in a LayoutNode's InlineLayoutResult field.
func (c CachedInlineLayout) AvailableWidth() dimen.AvailableSpace { return c.Width }
func (c CachedInlineLayout) HasFloats() bool                      { return c.Floats }
func (c CachedInlineLayout) ContentSize() boxtree.Size {
	return boxtree.Size{W: c.Layout.ContentSize.X, H: c.Layout.ContentSize.Y}
}

var _ boxtree.InlineLayoutCache = CachedInlineLayout{}
