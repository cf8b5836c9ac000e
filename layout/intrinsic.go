package layout

import (
	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/fontcap"
	"github.com/npillmayer/boxkit/inline"
)

// IntrinsicSizer computes and memoizes §4.3's min/max-content widths. It
// needs the font loader and a way to segment a node's text runs because
// an IFC root's intrinsic width comes from actually measuring its inline
// content (at the MinContent/MaxContent tokens), not a formula.
type IntrinsicSizer struct {
	Fonts fontcap.FontLoader
}

// WidthOf computes (and caches on the node) the min-content/max-content
// width pair for node idx, recursing into children first (§4.3:
// "children's intrinsic sizes drive the parent's").
func (s IntrinsicSizer) WidthOf(t *boxtree.LayoutTree, idx boxtree.NodeIndex) boxtree.IntrinsicSizes {
	node := t.Node(idx)
	if node.IntrinsicWidth.Valid {
		return node.IntrinsicWidth
	}

	var sizes boxtree.IntrinsicSizes
	switch {
	case node.Text != "":
		sizes = s.inlineIntrinsic(t, idx)
	case node.FormattingContext == boxtree.FCInline && len(node.Children) > 0:
		// IFC root with element children: gather all descendant text
		// under this node's inline run and measure it as one paragraph.
		sizes = s.ifcRootIntrinsic(t, idx)
	default:
		sizes = s.blockIntrinsic(t, idx)
	}

	if node.UnresolvedBoxProps.Width.IsAbsolute() {
		w := node.UnresolvedBoxProps.Width.AbsoluteValue()
		sizes = boxtree.IntrinsicSizes{MinContent: w, MaxContent: w}
	}
	if node.UnresolvedBoxProps.MaxWidth.IsAbsolute() {
		mw := node.UnresolvedBoxProps.MaxWidth.AbsoluteValue()
		sizes.MinContent = dimen.Min(sizes.MinContent, mw)
		sizes.MaxContent = dimen.Min(sizes.MaxContent, mw)
	}
	if node.UnresolvedBoxProps.MinWidth.IsAbsolute() {
		mw := node.UnresolvedBoxProps.MinWidth.AbsoluteValue()
		sizes.MinContent = dimen.Max(sizes.MinContent, mw)
		sizes.MaxContent = dimen.Max(sizes.MaxContent, mw)
	}
	sizes.Valid = true
	node.IntrinsicWidth = sizes
	return sizes
}

// blockIntrinsic implements the non-inline case of §4.3: max-content is
// the maximum of block children's max-content; min-content is the
// maximum of block children's min-content (a block container cannot be
// narrower than its widest child's own minimum).
func (s IntrinsicSizer) blockIntrinsic(t *boxtree.LayoutTree, idx boxtree.NodeIndex) boxtree.IntrinsicSizes {
	node := t.Node(idx)
	var out boxtree.IntrinsicSizes
	for _, c := range node.Children {
		cs := s.WidthOf(t, c)
		out.MaxContent = dimen.Max(out.MaxContent, cs.MaxContent)
		out.MinContent = dimen.Max(out.MinContent, cs.MinContent)
	}
	dec := decorationWidth(node)
	out.MaxContent += dec
	out.MinContent += dec
	return out
}

// inlineIntrinsic measures a single text-bearing inline node in
// isolation by segmenting and shaping its own text.
func (s IntrinsicSizer) inlineIntrinsic(t *boxtree.LayoutTree, idx boxtree.NodeIndex) boxtree.IntrinsicSizes {
	node := t.Node(idx)
	if node.Text == "" {
		return boxtree.IntrinsicSizes{}
	}
	font := s.resolveFont(node)
	words := inline.Segment(node.Text, int(idx))
	minOpts := inline.Options{FontSizePx: node.ComputedStyle.FontSizePx, HasMaxWidth: true, MaxHorizontalWidth: 0}
	maxOpts := inline.Options{FontSizePx: node.ComputedStyle.FontSizePx}
	minLayout := inline.LayoutInline(words, font, minOpts)
	maxLayout := inline.LayoutInline(words, font, maxOpts)
	return boxtree.IntrinsicSizes{MinContent: minLayout.ContentSize.X, MaxContent: maxLayout.ContentSize.X}
}

// ifcRootIntrinsic gathers every descendant text node of an IFC root
// (stopping at nested block/IFC boundaries), concatenates it into one
// paragraph, and measures that paragraph at both constraint extremes —
// the literal reading of §4.3's "for IFC roots, the result of
// layout_inline(MaxContent)'s bounding width".
func (s IntrinsicSizer) ifcRootIntrinsic(t *boxtree.LayoutTree, idx boxtree.NodeIndex) boxtree.IntrinsicSizes {
	node := t.Node(idx)
	text := collectInlineText(t, idx)
	if text == "" {
		return boxtree.IntrinsicSizes{}
	}
	font := s.resolveFont(node)
	words := inline.Segment(text, int(idx))
	minOpts := inline.Options{FontSizePx: node.ComputedStyle.FontSizePx, HasMaxWidth: true, MaxHorizontalWidth: 0}
	maxOpts := inline.Options{FontSizePx: node.ComputedStyle.FontSizePx}
	minLayout := inline.LayoutInline(words, font, minOpts)
	maxLayout := inline.LayoutInline(words, font, maxOpts)
	dec := decorationWidth(node)
	return boxtree.IntrinsicSizes{
		MinContent: minLayout.ContentSize.X + dec,
		MaxContent: maxLayout.ContentSize.X + dec,
	}
}

func collectInlineText(t *boxtree.LayoutTree, idx boxtree.NodeIndex) string {
	node := t.Node(idx)
	if node.Text != "" {
		return node.Text
	}
	var out string
	for _, c := range node.Children {
		out += collectInlineText(t, c)
	}
	return out
}

func (s IntrinsicSizer) resolveFont(node *boxtree.LayoutNode) fontcap.ParsedFont {
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

func decorationWidth(node *boxtree.LayoutNode) dimen.Dimen {
	return node.BoxProps.DecorationWidth()
}
