package layout

import (
	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/style/css"
)

// PositionSolver assigns relative positions top-down (§4.6), tracking a
// stack of nearest-positioned-ancestor indices so absolutely/fixed
// positioned descendants can be placed against the right containing
// block regardless of nesting depth.
type PositionSolver struct{}

// ancestorFrame is one entry of the positioned-ancestor stack: the
// index of a positioned container plus its resolved content-box rect in
// its own coordinate space (used as the frame of reference for
// absolutely-positioned descendants).
type ancestorFrame struct {
	idx  boxtree.NodeIndex
	size boxtree.Size
}

// Solve positions root (assumed already at dimen.Origin) and every
// descendant.
func (s PositionSolver) Solve(t *boxtree.LayoutTree, root boxtree.NodeIndex) {
	node := t.Node(root)
	node.RelativePosition = dimen.Origin
	stack := []ancestorFrame{{
		idx:  root,
		size: boxtree.Size{W: node.UsedSize.W, H: node.UsedSize.H},
	}}
	s.positionChildren(t, root, stack)
}

// Reposition re-runs positionChildren for idx's own children without
// disturbing idx's own RelativePosition, for the scrollbar-triggered
// re-layout of §4.9 step 4: idx's place in its parent does not change,
// only its children shift to account for a newly-reserved scrollbar
// gutter. The ancestor stack is seeded with idx alone, which loses
// visibility of any positioned ancestor above idx — an accepted
// approximation, since idx's existing positioned descendants were
// already placed correctly by the preceding full Solve and only
// in-flow children move here.
func (s PositionSolver) Reposition(t *boxtree.LayoutTree, idx boxtree.NodeIndex) {
	node := t.Node(idx)
	stack := []ancestorFrame{{idx: idx, size: boxtree.Size{W: node.UsedSize.W, H: node.UsedSize.H}}}
	s.positionChildren(t, idx, stack)
}

func (s PositionSolver) positionChildren(t *boxtree.LayoutTree, parent boxtree.NodeIndex, stack []ancestorFrame) {
	node := t.Node(parent)
	if node.ComputedStyle.Position.IsPositioned() {
		stack = append(stack, ancestorFrame{
			idx:  parent,
			size: boxtree.Size{W: node.BoxProps.ContentWidth(node.UsedSize.W), H: node.UsedSize.H - node.BoxProps.DecorationHeight()},
		})
	}

	ancestor := stack[len(stack)-1]

	isColumnFlex := node.FormattingContext == boxtree.FCFlex &&
		(node.ComputedStyle.FlexDirection == "column" || node.ComputedStyle.FlexDirection == "column-reverse")
	mainAxisIsInline := node.FormattingContext != boxtree.FCBlock &&
		node.FormattingContext != boxtree.FCTableRowGroup && !isColumnFlex
	reversed := node.ComputedStyle.FlexDirection == "row-reverse" || node.ComputedStyle.FlexDirection == "column-reverse"

	children := node.Children
	order := make([]boxtree.NodeIndex, len(children))
	copy(order, children)
	if reversed {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	originX := node.BoxProps.Padding[css.Left] + node.BoxProps.BorderWidth[css.Left]
	originY := node.BoxProps.Padding[css.Top] + node.BoxProps.BorderWidth[css.Top]
	innerW := node.BoxProps.ContentWidth(node.UsedSize.W)

	cursor := dimen.Dimen(0)
	var inFlow []boxtree.NodeIndex
	var prevBottomMargin dimen.Dimen
	firstInFlow := true
	for _, c := range order {
		cn := t.Node(c)
		if cn.ComputedStyle.Position == css.PositionAbsolute || cn.ComputedStyle.Position == css.PositionFixed {
			s.positionOutOfFlow(t, c, ancestor)
			continue
		}
		if mainAxisIsInline {
			cn.RelativePosition.X = originX + cursor + cn.BoxProps.Margin[css.Left]
			cn.RelativePosition.Y = originY + cn.BoxProps.Margin[css.Top]
			cursor += cn.BoxProps.Margin[css.Left] + cn.UsedSize.W + cn.BoxProps.Margin[css.Right]
		} else {
			// Vertically stacked siblings collapse adjacent margins the
			// same way solveBlockChildren sums them (§4.5), so a sibling's
			// top lands at the previous one's bottom plus the collapsed
			// margin, not the sum of both.
			topMargin := cn.BoxProps.Margin[css.Top]
			if !firstInFlow {
				collapsed := css.CollapseMargins(prevBottomMargin, topMargin)
				cursor -= prevBottomMargin
				topMargin = collapsed
			}
			cn.RelativePosition.Y = originY + cursor + topMargin
			cn.RelativePosition.X = originX + cn.BoxProps.Margin[css.Left]
			cursor += topMargin + cn.UsedSize.H
			prevBottomMargin = cn.BoxProps.Margin[css.Bottom]
			cursor += prevBottomMargin
		}
		inFlow = append(inFlow, c)
		firstInFlow = false
	}

	if mainAxisIsInline {
		jc := node.ComputedStyle.JustifyContent
		if reversed {
			switch jc {
			case css.JustifyStart:
				jc = css.JustifyEnd
			case css.JustifyEnd:
				jc = css.JustifyStart
			}
		}
		applyJustifyContent(t, inFlow, jc, innerW, cursor)
	}

	for _, c := range node.Children {
		s.positionChildren(t, c, stack)
	}
}

// applyJustifyContent implements §4.6's justify-content adjustments
// along the main (inline) axis. For a reversed direction positionChildren
// places inFlow in reverse order and swaps Start/End before calling, so
// this operates on the "as placed" ordering either way.
func applyJustifyContent(t *boxtree.LayoutTree, inFlow []boxtree.NodeIndex, jc css.JustifyContent, innerWidth, used dimen.Dimen) {
	slack := innerWidth - used
	if slack <= 0 || len(inFlow) == 0 {
		return
	}
	switch jc {
	case css.JustifyEnd:
		for _, c := range inFlow {
			t.Node(c).RelativePosition.X += slack
		}
	case css.JustifyCenter:
		shift := slack / 2
		for _, c := range inFlow {
			t.Node(c).RelativePosition.X += shift
		}
	case css.JustifySpaceBetween:
		if len(inFlow) == 1 {
			return
		}
		gap := slack / dimen.Dimen(len(inFlow)-1)
		var shift dimen.Dimen
		for i, c := range inFlow {
			t.Node(c).RelativePosition.X += shift
			if i < len(inFlow)-1 {
				shift += gap
			}
		}
	case css.JustifySpaceAround:
		gap := slack / dimen.Dimen(len(inFlow))
		shift := gap / 2
		for _, c := range inFlow {
			t.Node(c).RelativePosition.X += shift
			shift += gap
		}
	case css.JustifySpaceEvenly:
		gap := slack / dimen.Dimen(len(inFlow)+1)
		shift := gap
		for _, c := range inFlow {
			t.Node(c).RelativePosition.X += shift
			shift += gap
		}
	}
}

// positionOutOfFlow implements §4.6's absolute/fixed placement against
// the nearest positioned ancestor's content-box frame.
func (s PositionSolver) positionOutOfFlow(t *boxtree.LayoutTree, idx boxtree.NodeIndex, ancestor ancestorFrame) {
	node := t.Node(idx)
	left, hasLeft := node.Offsets.Left, !node.Offsets.LeftIsAuto
	right, hasRight := node.Offsets.Right, !node.Offsets.RightIsAuto
	topOff, hasTop := node.Offsets.Top, !node.Offsets.TopIsAuto
	bottomOff, hasBottom := node.Offsets.Bottom, !node.Offsets.BottomIsAuto

	switch {
	case hasRight:
		node.RelativePosition.X = ancestor.size.W - right - node.UsedSize.W - node.BoxProps.Margin[css.Right]
	case hasLeft:
		node.RelativePosition.X = left + node.BoxProps.Margin[css.Left]
	default:
		node.RelativePosition.X = node.BoxProps.Margin[css.Left]
	}
	switch {
	case hasBottom:
		node.RelativePosition.Y = ancestor.size.H - bottomOff - node.UsedSize.H - node.BoxProps.Margin[css.Bottom]
	case hasTop:
		node.RelativePosition.Y = topOff + node.BoxProps.Margin[css.Top]
	default:
		node.RelativePosition.Y = node.BoxProps.Margin[css.Top]
	}
}
