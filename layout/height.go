package layout

import (
	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/fontcap"
	"github.com/npillmayer/boxkit/inline"
	"github.com/npillmayer/boxkit/style/css"
)

// HeightSolver assigns used heights bottom-up (§4.5): a container's
// height depends on its children's, so children must already have a
// height before the parent can compute its own.
type HeightSolver struct {
	Fonts fontcap.FontLoader
}

// Solve walks idx's subtree in post-order (children before parent, per
// §5's "height assignment ... bottom-up" ordering guarantee) and
// assigns every node's used height.
func (s HeightSolver) Solve(t *boxtree.LayoutTree, idx boxtree.NodeIndex) {
	t.WalkPostOrder(idx, func(n boxtree.NodeIndex) {
		s.solveOne(t, n)
	})
}

func (s HeightSolver) solveOne(t *boxtree.LayoutTree, idx boxtree.NodeIndex) {
	node := t.Node(idx)

	if node.FormattingContext == boxtree.FCInline && len(node.Children) == 0 && node.Text == "" {
		node.UsedSize.H = node.BoxProps.DecorationHeight()
		return
	}

	if node.Text != "" {
		s.solveTextLeaf(node)
		return
	}

	if node.FormattingContext == boxtree.FCInline && len(node.Children) > 0 {
		s.solveIfcRoot(t, idx)
		return
	}

	s.solveBlockChildren(t, idx)
}

// solveTextLeaf measures a bare text node (one not wrapped by an IFC
// root box of its own, e.g. when it is itself the sole content) via its
// own natural line height.
func (s HeightSolver) solveTextLeaf(node *boxtree.LayoutNode) {
	font := s.resolveFont(node)
	lh := node.ComputedStyle.LineHeightPx
	if lh == 0 {
		lh = naturalLineHeightFor(font, node.ComputedStyle.FontSizePx)
	}
	node.UsedSize.H = lh
}

// solveIfcRoot implements §4.5's inline case: invoke the inline layout
// capability at the node's already-solved content width, honoring the
// §4.7 cache-validity predicate so repeated passes at the same width
// reuse the prior UnifiedLayout.
func (s HeightSolver) solveIfcRoot(t *boxtree.LayoutTree, idx boxtree.NodeIndex) {
	node := t.Node(idx)
	contentW := node.BoxProps.ContentWidth(node.UsedSize.W)
	requestWidth := dimen.Definite(contentW)
	hasFloats := false

	if cached, ok := node.InlineLayoutResult.(inline.CachedInlineLayout); ok {
		if cached.ValidFor(requestWidth, hasFloats) {
			node.UsedSize.H = cached.Layout.ContentSize.Y + node.BoxProps.DecorationHeight()
			return
		}
	}

	text := collectInlineText(t, idx)
	font := s.resolveFont(node)
	words := inline.Segment(text, int(idx))
	lh := node.ComputedStyle.LineHeightPx
	opts := inline.Options{
		HasMaxWidth:        true,
		MaxHorizontalWidth: contentW,
		FontSizePx:         node.ComputedStyle.FontSizePx,
		LineHeightPx:       lh,
		TextAlignH:         toInlineAlign(node.ComputedStyle.TextAlign),
	}
	result := inline.LayoutInline(words, font, opts)
	lineHeight := opts.LineHeightPx
	if lineHeight == 0 {
		lineHeight = naturalLineHeightFor(font, opts.FontSizePx)
	}
	cached := inline.CachedInlineLayout{
		Layout:      result,
		Width:       requestWidth,
		Floats:      hasFloats,
		ItemMetrics: inline.DeriveItemMetrics(result, lineHeight),
	}
	node.InlineLayoutResult = cached
	node.UsedSize.H = result.ContentSize.Y + node.BoxProps.DecorationHeight()
}

func toInlineAlign(a css.TextAlign) inline.TextAlign {
	switch a {
	case css.TextAlignEnd, css.TextAlignRight:
		return inline.AlignEnd
	case css.TextAlignCenter:
		return inline.AlignCenter
	case css.TextAlignJustify:
		return inline.AlignJustify
	}
	return inline.AlignStart
}

func naturalLineHeightFor(font fontcap.ParsedFont, fontSizePx dimen.Dimen) dimen.Dimen {
	if font == nil {
		return fontSizePx
	}
	m := font.Metrics(fontSizePx)
	return m.AscentPx + m.DescentPx + m.LineGapPx
}

func (s HeightSolver) resolveFont(node *boxtree.LayoutNode) fontcap.ParsedFont {
	if s.Fonts == nil {
		return nil
	}
	handle, _ := s.Fonts.ResolveFont("", 400, fontcap.StyleNormal)
	font, ok := s.Fonts.LoadFont(handle)
	if !ok {
		return nil
	}
	return font
}

// solveBlockChildren implements §4.5's block case: stack in-flow
// children's heights, collapsing adjacent vertical margins (CSS 2.1),
// and sum to the container's own content height unless an explicit
// height was already resolved.
func (s HeightSolver) solveBlockChildren(t *boxtree.LayoutTree, idx boxtree.NodeIndex) {
	node := t.Node(idx)
	var h dimen.Dimen
	var prevMargin dimen.Dimen
	first := true
	for _, c := range node.Children {
		cn := t.Node(c)
		if cn.ComputedStyle.Position == css.PositionAbsolute || cn.ComputedStyle.Position == css.PositionFixed {
			continue
		}
		topMargin := cn.BoxProps.Margin[css.Top]
		if first {
			if !node.EstablishesNewBFC {
				// First child's top margin collapses through to the
				// parent; record it as escaped rather than adding it
				// here (§4.5 "on escape ... escaped_top_margin").
				cn.EscapedTopMargin = topMargin
				topMargin = 0
			}
			first = false
		} else {
			collapsed := css.CollapseMargins(prevMargin, topMargin)
			h -= prevMargin
			topMargin = collapsed
		}
		h += topMargin
		h += cn.UsedSize.H
		prevMargin = cn.BoxProps.Margin[css.Bottom]
		h += prevMargin
	}
	if !node.EstablishesNewBFC && !first {
		// The last child's bottom margin escapes symmetrically unless
		// padding/border intervenes (approximated: it always escapes
		// here since box-prop resolution already folds border/padding
		// into decoration height, which callers add separately).
		h -= prevMargin
		node.EscapedBottomMargin = prevMargin
	}

	if !node.BoxProps.HeightIsAuto {
		h = node.BoxProps.Height
	}
	if node.BoxProps.HasMaxHeight && h > node.BoxProps.MaxHeight {
		h = node.BoxProps.MaxHeight
	}
	if h < node.BoxProps.MinHeight {
		h = node.BoxProps.MinHeight
	}
	if h < 0 {
		h = 0
	}
	node.UsedSize.H = h + node.BoxProps.DecorationHeight()
}
