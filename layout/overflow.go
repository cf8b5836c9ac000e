package layout

import (
	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/style/css"
)

// OverflowSolver computes each node's overflow outcome per §4.9, once
// children are positioned.
type OverflowSolver struct{}

// Solve walks idx's subtree bottom-up (a parent's own content rect
// depends on nothing below it, but visiting post-order keeps every
// solver in this package walking the tree the same way) and resolves
// OverflowX/OverflowY plus the children_union_rect-derived overflow
// amount for every node.
func (s OverflowSolver) Solve(t *boxtree.LayoutTree, idx boxtree.NodeIndex) {
	t.WalkPostOrder(idx, func(n boxtree.NodeIndex) {
		s.solveOne(t, n)
	})
}

func (s OverflowSolver) solveOne(t *boxtree.LayoutTree, idx boxtree.NodeIndex) {
	node := t.Node(idx)

	union := s.childrenUnionRect(t, node)
	contentW := node.BoxProps.ContentWidth(node.UsedSize.W)
	contentH := node.UsedSize.H - node.BoxProps.DecorationHeight()

	overflowAmountX := contentW - union.BotR.X
	overflowAmountY := contentH - union.BotR.Y

	node.OverflowX = resolveDirectionalOverflow(node.ComputedStyle.OverflowX, overflowAmountX)
	node.OverflowY = resolveDirectionalOverflow(node.ComputedStyle.OverflowY, overflowAmountY)
	node.OverflowContentSize = boxtree.Size{W: union.BotR.X, H: union.BotR.Y}
}

// childrenUnionRect implements §4.9 step 1: the union of every in-flow
// child's border-box rect, in the node's own content-box coordinate
// space. For an IFC root, the inline layout's content rect stands in
// for per-child rects.
func (s OverflowSolver) childrenUnionRect(t *boxtree.LayoutTree, node *boxtree.LayoutNode) dimen.Rect {
	if node.FormattingContext == boxtree.FCInline && node.InlineLayoutResult != nil {
		size := node.InlineLayoutResult.ContentSize()
		return dimen.Rect{TopL: dimen.Origin, BotR: dimen.Point{X: size.W, Y: size.H}}
	}

	var union dimen.Rect
	for _, c := range node.Children {
		cn := t.Node(c)
		if cn.ComputedStyle.Position == css.PositionAbsolute || cn.ComputedStyle.Position == css.PositionFixed {
			// Out-of-flow descendants do not contribute to the
			// scrollable overflow of their static-position container.
			continue
		}
		rect := dimen.Rect{
			TopL: dimen.Point{X: cn.RelativePosition.X, Y: cn.RelativePosition.Y},
			BotR: dimen.Point{
				X: cn.RelativePosition.X + cn.UsedSize.W,
				Y: cn.RelativePosition.Y + cn.UsedSize.H,
			},
		}
		union = union.Union(rect)
	}
	return union
}

// resolveDirectionalOverflow implements §4.9 steps 2-3: amount is
// parent_rect.right (or bottom) minus children_union_rect.right (or
// bottom); negative means content overflows, and only then is an amount
// carried.
func resolveDirectionalOverflow(o css.Overflow, amount dimen.Dimen) boxtree.DirectionalOverflow {
	var kind boxtree.OverflowKind
	switch o {
	case css.OverflowHidden, css.OverflowClip:
		kind = boxtree.OverflowResultHidden
	case css.OverflowScroll:
		kind = boxtree.OverflowResultScroll
	case css.OverflowAuto:
		kind = boxtree.OverflowResultAuto
	default:
		kind = boxtree.OverflowResultVisible
	}
	if amount >= 0 {
		return boxtree.DirectionalOverflow{Kind: kind}
	}
	return boxtree.DirectionalOverflow{Kind: kind, HasAmount: true, Amount: -amount}
}

// isScrolling reports whether a resolved overflow outcome is actually
// showing a scrollbar on this pass (auto only scrolls when content
// overflows; scroll always reserves the scrollbar).
func isScrolling(o boxtree.DirectionalOverflow) bool {
	switch o.Kind {
	case boxtree.OverflowResultScroll:
		return true
	case boxtree.OverflowResultAuto:
		return o.HasAmount
	}
	return false
}
