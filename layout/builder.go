package layout

import (
	"strconv"

	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/domcap"
	"github.com/npillmayer/boxkit/style/css"
)

// Build constructs a LayoutTree from a styled DOM (§4.2), depth-first,
// creating each parent before its children. Mirrors the dispatch shape
// of the teacher's layout.NewContextFor (engine/frame/layout/context.go),
// generalized from the teacher's two formatting contexts to the full set
// LayoutNode.FormattingContext distinguishes.
func Build(dom domcap.StyledDOM) *boxtree.LayoutTree {
	t := boxtree.NewLayoutTree()
	t.ResetIfcCounter()
	root := dom.Root()
	idx := buildNode(t, dom, boxtree.NoIndex, root)
	t.Root = idx
	return t
}

// buildNode builds the layout node for domNode (and its subtree) and
// attaches it to parent, returning its index. Returns boxtree.NoIndex if
// the node is skipped (display: none).
func buildNode(t *boxtree.LayoutTree, dom domcap.StyledDOM, parent boxtree.NodeIndex, domNode domcap.NodeID) boxtree.NodeIndex {
	nt := dom.NodeType(domNode)
	if nt.Kind == domcap.KindText {
		idx := t.NewNode()
		if parent != boxtree.NoIndex {
			t.AddChild(parent, idx)
		}
		t.RegisterDomRef(domNode, idx)
		node := t.Node(idx)
		node.DomRef = domNode
		node.FormattingContext = boxtree.FCInline
		node.Text = nt.Text
		return idx
	}

	display := css.ParseDisplay(dom.CSS(domNode, domcap.PropDisplay))
	if display == css.DisplayNone {
		return boxtree.NoIndex
	}

	idx := t.NewNode()
	if parent != boxtree.NoIndex {
		t.AddChild(parent, idx)
	}
	t.RegisterDomRef(domNode, idx)
	node := t.Node(idx)
	node.DomRef = domNode
	node.ComputedStyle = resolveComputedStyle(dom, domNode, display)
	node.UnresolvedBoxProps = resolveUnresolvedBoxProps(dom, domNode)
	node.UnresolvedOffsets = css.UnresolvedOffsets{
		Top:    css.DimenOption(dom.CSS(domNode, domcap.PropTop)),
		Right:  css.DimenOption(dom.CSS(domNode, domcap.PropRight)),
		Bottom: css.DimenOption(dom.CSS(domNode, domcap.PropBottom)),
		Left:   css.DimenOption(dom.CSS(domNode, domcap.PropLeft)),
	}

	isRoot := parent == boxtree.NoIndex
	children := dom.Children(domNode)
	allInline := allChildrenInlineLevel(dom, children)
	fc, establishesNew := determineFormattingContext(node.ComputedStyle, display, allInline, isRoot)
	node.FormattingContext = fc
	node.EstablishesNewBFC = establishesNew

	if display == css.DisplayListItem {
		marker := t.NewNode()
		t.AddChild(idx, marker)
		t.RegisterDomRef(domNode, marker)
		m := t.Node(marker)
		m.DomRef = domNode
		m.Pseudo = boxtree.PseudoMarker
		m.FormattingContext = boxtree.FCInline
	}

	switch {
	case isBlockish(display) && fc != boxtree.FCInline:
		buildBlockishChildren(t, dom, idx, children)
	case display.IsTableRelated():
		buildTableChildren(t, dom, idx, display, children)
	default:
		buildOtherChildren(t, dom, idx, children, fc == boxtree.FCInline)
	}
	return idx
}

func isBlockish(d css.Display) bool {
	switch d {
	case css.DisplayBlock, css.DisplayInlineBlock, css.DisplayFlowRoot, css.DisplayListItem:
		return true
	}
	return false
}

// allChildrenInlineLevel reports whether every child of domNode is
// either a text node or an inline-level element (§4.2.1), without
// building any layout nodes for them.
func allChildrenInlineLevel(dom domcap.StyledDOM, children []domcap.NodeID) bool {
	for _, c := range children {
		nt := dom.NodeType(c)
		if nt.Kind == domcap.KindText {
			continue
		}
		d := css.ParseDisplay(dom.CSS(c, domcap.PropDisplay))
		if d == css.DisplayNone {
			continue
		}
		if !d.IsInlineLevel() {
			return false
		}
	}
	return true
}

// determineFormattingContext implements §4.2.1.
func determineFormattingContext(style boxtree.ComputedStyle, display css.Display, allChildrenInline, isRoot bool) (boxtree.FormattingContext, bool) {
	switch display {
	case css.DisplayInline:
		return boxtree.FCInline, false
	case css.DisplayInlineBlock:
		return boxtree.FCInlineBlock, establishesNewBFC(style, display, isRoot)
	case css.DisplayBlock, css.DisplayFlowRoot, css.DisplayListItem:
		if allChildrenInline {
			return boxtree.FCInline, establishesNewBFC(style, display, isRoot)
		}
		return boxtree.FCBlock, establishesNewBFC(style, display, isRoot)
	case css.DisplayFlex, css.DisplayInlineFlex:
		return boxtree.FCFlex, true
	case css.DisplayGrid, css.DisplayInlineGrid:
		return boxtree.FCGrid, true
	case css.DisplayTable, css.DisplayInlineTable:
		return boxtree.FCTable, true
	case css.DisplayTableRowGroup, css.DisplayTableHeaderGroup, css.DisplayTableFooterGroup:
		return boxtree.FCTableRowGroup, false
	case css.DisplayTableRow:
		return boxtree.FCTableRow, false
	case css.DisplayTableCell:
		return boxtree.FCTableCell, true
	case css.DisplayTableColumnGroup, css.DisplayTableColumn:
		return boxtree.FCTableColumnGroup, false
	case css.DisplayTableCaption:
		return boxtree.FCTableCaption, false
	}
	return boxtree.FCInline, false
}

// establishesNewBFC implements the `establishes_new` clause of §4.2.1.
func establishesNewBFC(style boxtree.ComputedStyle, display css.Display, isRoot bool) bool {
	if isRoot {
		return true
	}
	if style.OverflowX.EstablishesNewBlockContext() || style.OverflowY.EstablishesNewBlockContext() {
		return true
	}
	if style.Position == css.PositionAbsolute || style.Position == css.PositionFixed {
		return true
	}
	if style.Float != css.FloatNone {
		return true
	}
	switch display {
	case css.DisplayInlineBlock, css.DisplayTableCell, css.DisplayFlowRoot:
		return true
	}
	return false
}

// buildBlockishChildren implements §4.2 step 4's "Block-ish" dispatch
// for a block container with at least one block-level child: inline-level
// runs are collected and wrapped in an anonymous inline_wrapper unless
// the run is entirely whitespace, in which case it is dropped (CSS 2.1
// §9.2.2.1). A block-ish container whose children are all inline-level
// is an IFC root and is built by buildOtherChildren instead, with its
// inline children attached directly.
func buildBlockishChildren(t *boxtree.LayoutTree, dom domcap.StyledDOM, parent boxtree.NodeIndex, children []domcap.NodeID) {
	var run []domcap.NodeID
	flushRun := func() {
		if len(run) == 0 {
			return
		}
		if isWhitespaceOnlyRun(dom, run) {
			run = nil
			return
		}
		anon := t.NewNode()
		t.AddChild(parent, anon)
		a := t.Node(anon)
		a.Anon = boxtree.AnonInlineWrapper
		a.FormattingContext = boxtree.FCInline
		for _, c := range run {
			buildNode(t, dom, anon, c)
		}
		run = nil
	}
	for _, c := range children {
		nt := dom.NodeType(c)
		if nt.Kind == domcap.KindText {
			run = append(run, c)
			continue
		}
		d := css.ParseDisplay(dom.CSS(c, domcap.PropDisplay))
		if d == css.DisplayNone {
			continue
		}
		if d.IsInlineLevel() {
			run = append(run, c)
			continue
		}
		flushRun()
		buildNode(t, dom, parent, c)
	}
	flushRun()
}

// buildOtherChildren implements the "Other" dispatch category: descend
// directly, filtering display:none always, and filtering whitespace-only
// text when this container does not itself establish an IFC (its own
// text would have nowhere to lay out).
func buildOtherChildren(t *boxtree.LayoutTree, dom domcap.StyledDOM, parent boxtree.NodeIndex, children []domcap.NodeID, isIfcRoot bool) {
	for _, c := range children {
		nt := dom.NodeType(c)
		if nt.Kind == domcap.KindText {
			if !isIfcRoot && isAllWhitespace(nt.Text) {
				continue
			}
			buildNode(t, dom, parent, c)
			continue
		}
		if css.ParseDisplay(dom.CSS(c, domcap.PropDisplay)) == css.DisplayNone {
			continue
		}
		buildNode(t, dom, parent, c)
	}
}

// buildTableChildren implements §4.2's CSS 2.2 §17.2.1 anonymous table
// staging.
func buildTableChildren(t *boxtree.LayoutTree, dom domcap.StyledDOM, parent boxtree.NodeIndex, parentDisplay css.Display, children []domcap.NodeID) {
	filtered := make([]domcap.NodeID, 0, len(children))
	for _, c := range children {
		nt := dom.NodeType(c)
		if nt.Kind == domcap.KindText && isAllWhitespace(nt.Text) {
			continue
		}
		filtered = append(filtered, c)
	}

	switch parentDisplay {
	case css.DisplayTable, css.DisplayInlineTable:
		wrapRunsInAnon(t, dom, parent, filtered, isTableProperChild, boxtree.AnonTableRow, boxtree.FCTableRow)
	case css.DisplayTableRowGroup, css.DisplayTableHeaderGroup, css.DisplayTableFooterGroup:
		wrapRunsInAnon(t, dom, parent, filtered, isTableRowDisplay, boxtree.AnonTableRow, boxtree.FCTableRow)
	case css.DisplayTableRow:
		wrapRunsInAnon(t, dom, parent, filtered, isTableCellDisplay, boxtree.AnonTableCell, boxtree.FCTableCell)
	default:
		for _, c := range filtered {
			buildNode(t, dom, parent, c)
		}
	}
}

func isTableCellDisplay(dom domcap.StyledDOM, n domcap.NodeID) bool {
	return css.ParseDisplay(dom.CSS(n, domcap.PropDisplay)) == css.DisplayTableCell
}

func isTableRowDisplay(dom domcap.StyledDOM, n domcap.NodeID) bool {
	return css.ParseDisplay(dom.CSS(n, domcap.PropDisplay)) == css.DisplayTableRow
}

// isTableProperChild reports whether n may sit directly under a table
// box; any other child (a cell or stray content) is wrapped in an
// anonymous row.
func isTableProperChild(dom domcap.StyledDOM, n domcap.NodeID) bool {
	switch css.ParseDisplay(dom.CSS(n, domcap.PropDisplay)) {
	case css.DisplayTableRow, css.DisplayTableRowGroup, css.DisplayTableHeaderGroup,
		css.DisplayTableFooterGroup, css.DisplayTableColumnGroup, css.DisplayTableColumn,
		css.DisplayTableCaption:
		return true
	}
	return false
}

// wrapRunsInAnon groups consecutive children that do not already satisfy
// isTarget into an anonymous box of anonKind/anonFC; children that do
// satisfy isTarget are built directly.
func wrapRunsInAnon(t *boxtree.LayoutTree, dom domcap.StyledDOM, parent boxtree.NodeIndex, children []domcap.NodeID, isTarget func(domcap.StyledDOM, domcap.NodeID) bool, anonKind boxtree.AnonKind, anonFC boxtree.FormattingContext) {
	var run []domcap.NodeID
	flush := func() {
		if len(run) == 0 {
			return
		}
		anon := t.NewNode()
		t.AddChild(parent, anon)
		a := t.Node(anon)
		a.Anon = anonKind
		a.FormattingContext = anonFC
		for _, c := range run {
			buildNode(t, dom, anon, c)
		}
		run = nil
	}
	for _, c := range children {
		if isTarget(dom, c) {
			flush()
			buildNode(t, dom, parent, c)
			continue
		}
		run = append(run, c)
	}
	flush()
}

func isWhitespaceOnlyRun(dom domcap.StyledDOM, run []domcap.NodeID) bool {
	for _, c := range run {
		nt := dom.NodeType(c)
		if nt.Kind != domcap.KindText {
			return false
		}
		if !isAllWhitespace(nt.Text) {
			return false
		}
	}
	return true
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// resolveComputedStyle reads the subset of §6.1's css(n, property) that
// LayoutNode caches for O(1) access in later passes.
func resolveComputedStyle(dom domcap.StyledDOM, n domcap.NodeID, display css.Display) boxtree.ComputedStyle {
	s := boxtree.ComputedStyle{
		Display:        display,
		Position:       css.ParsePosition(dom.CSS(n, domcap.PropPosition)),
		Float:          css.ParseFloat(dom.CSS(n, domcap.PropFloat)),
		OverflowX:      css.ParseOverflow(dom.CSS(n, domcap.PropOverflowX)),
		OverflowY:      css.ParseOverflow(dom.CSS(n, domcap.PropOverflowY)),
		WritingMode:    css.ParseWritingMode(dom.CSS(n, domcap.PropWritingMode)),
		Direction:      css.ParseDirection(dom.CSS(n, domcap.PropDirection)),
		TextAlign:      css.ParseTextAlign(dom.CSS(n, domcap.PropTextAlign)),
		JustifyContent: css.ParseJustifyContent(dom.CSS(n, domcap.PropJustifyContent)),
		FlexDirection:  string(dom.CSS(n, domcap.PropFlexDirection)),
		Visible:        string(dom.CSS(n, domcap.PropVisibility)) != "hidden",
	}
	s.FlexGrow = parseFloatProp(dom.CSS(n, domcap.PropFlexGrow), 0)
	s.FlexShrink = parseFloatProp(dom.CSS(n, domcap.PropFlexShrink), 1)
	s.AspectRatio = parseFloatProp(dom.CSS(n, domcap.PropAspectRatio), 0)
	if fs := css.DimenOption(dom.CSS(n, domcap.PropFontSize)); fs.IsAbsolute() {
		s.FontSizePx = fs.AbsoluteValue()
	}
	if lh := css.DimenOption(dom.CSS(n, domcap.PropLineHeight)); lh.IsAbsolute() {
		s.LineHeightPx = lh.AbsoluteValue()
	}
	if rg := css.DimenOption(dom.CSS(n, domcap.PropRowGap)); rg.IsAbsolute() {
		s.RowGap = rg.AbsoluteValue()
	}
	if cg := css.DimenOption(dom.CSS(n, domcap.PropColumnGap)); cg.IsAbsolute() {
		s.ColumnGap = cg.AbsoluteValue()
	}
	return s
}

func parseFloatProp(p css.Property, fallback float64) float64 {
	if p == css.NullStyle {
		return fallback
	}
	f, err := strconv.ParseFloat(string(p), 64)
	if err != nil {
		tracer().Debugf("flex factor %q not a number, using %v", p, fallback)
		return fallback
	}
	return f
}

func resolveUnresolvedBoxProps(dom domcap.StyledDOM, n domcap.NodeID) css.UnresolvedBoxProps {
	var u css.UnresolvedBoxProps
	u.Margin[css.Top] = css.DimenOption(dom.CSS(n, domcap.PropMarginTop))
	u.Margin[css.Right] = css.DimenOption(dom.CSS(n, domcap.PropMarginRight))
	u.Margin[css.Bottom] = css.DimenOption(dom.CSS(n, domcap.PropMarginBottom))
	u.Margin[css.Left] = css.DimenOption(dom.CSS(n, domcap.PropMarginLeft))
	u.Padding[css.Top] = css.DimenOption(dom.CSS(n, domcap.PropPaddingTop))
	u.Padding[css.Right] = css.DimenOption(dom.CSS(n, domcap.PropPaddingRight))
	u.Padding[css.Bottom] = css.DimenOption(dom.CSS(n, domcap.PropPaddingBottom))
	u.Padding[css.Left] = css.DimenOption(dom.CSS(n, domcap.PropPaddingLeft))
	u.BorderWidth[css.Top] = css.DimenOption(dom.CSS(n, domcap.PropBorderTopWidth))
	u.BorderWidth[css.Right] = css.DimenOption(dom.CSS(n, domcap.PropBorderRightWidth))
	u.BorderWidth[css.Bottom] = css.DimenOption(dom.CSS(n, domcap.PropBorderBottomWidth))
	u.BorderWidth[css.Left] = css.DimenOption(dom.CSS(n, domcap.PropBorderLeftWidth))
	u.Width = css.DimenOption(dom.CSS(n, domcap.PropWidth))
	u.Height = css.DimenOption(dom.CSS(n, domcap.PropHeight))
	u.MinWidth = css.DimenOption(dom.CSS(n, domcap.PropMinWidth))
	u.MaxWidth = css.DimenOption(dom.CSS(n, domcap.PropMaxWidth))
	u.MinHeight = css.DimenOption(dom.CSS(n, domcap.PropMinHeight))
	u.MaxHeight = css.DimenOption(dom.CSS(n, domcap.PropMaxHeight))
	u.BorderBoxSizing = string(dom.CSS(n, domcap.PropBoxSizing)) == "border-box"
	return u
}
