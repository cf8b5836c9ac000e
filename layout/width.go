package layout

import (
	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/style/css"
)

// WidthSolver assigns used widths top-down (§4.4), consulting an
// IntrinsicSizer for each variable child's minimum needed space.
type WidthSolver struct {
	Intrinsic IntrinsicSizer
}

// Solve assigns idx's own used width (already known to the caller via
// constraint) and every in-flow child's used width, recursing
// depth-first (a container's width completes before its descendants',
// §5 "ordering guarantees").
func (s WidthSolver) Solve(t *boxtree.LayoutTree, idx boxtree.NodeIndex, constraint dimen.WhConstraint, rc css.ResolutionContext) {
	node := t.Node(idx)
	node.BoxProps = css.ResolveBoxProps(node.UnresolvedBoxProps, rc)
	node.BoxPropsResolved = true
	node.Offsets = css.ResolveOffsets(node.UnresolvedOffsets, rc)

	borderBoxW := s.ownWidth(node, constraint)
	node.UsedSize.W = borderBoxW
	contentW := node.BoxProps.ContentWidth(borderBoxW)

	if len(node.Children) == 0 {
		return
	}
	if node.FormattingContext == boxtree.FCInline {
		// Width is fully determined by the container; children are
		// shaped by the inline layout capability (§4.5), not by this
		// solver — nothing further to assign here.
		return
	}
	s.solveChildren(t, idx, contentW, rc)
}

func (s WidthSolver) ownWidth(node *boxtree.LayoutNode, constraint dimen.WhConstraint) dimen.Dimen {
	b := node.BoxProps
	switch {
	case constraint.IsEqual():
		return constraint.Clamp(constraint.MaxAvailableSpace())
	case !b.WidthIsAuto:
		w := b.Width
		if !b.BorderBoxSizing {
			w += b.DecorationWidth()
		}
		return clampWidth(b, constraint.Clamp(w))
	default:
		return clampWidth(b, constraint.Clamp(constraint.MaxAvailableSpace()))
	}
}

func clampWidth(b css.BoxProps, w dimen.Dimen) dimen.Dimen {
	if w < 0 {
		w = 0
	}
	if b.HasMaxWidth && w > b.MaxWidth {
		w = b.MaxWidth
	}
	if w < b.MinWidth {
		w = b.MinWidth
	}
	return w
}

type childKind int

const (
	childAbsolute childKind = iota
	childFixed
	childVariable
)

// solveChildren implements §4.4 steps 1-5: subtract padding/border,
// partition children, assign fixed widths, then distribute the
// remaining pool across variable children by flex-grow.
func (s WidthSolver) solveChildren(t *boxtree.LayoutTree, parent boxtree.NodeIndex, innerWidth dimen.Dimen, rc css.ResolutionContext) {
	node := t.Node(parent)
	childRC := rc
	childRC.ContainingBlockWidth = innerWidth

	kinds := make([]childKind, len(node.Children))
	grow := make([]float64, len(node.Children))
	maxW := make([]dimen.Dimen, len(node.Children))
	hasMaxW := make([]bool, len(node.Children))
	assigned := make([]dimen.Dimen, len(node.Children))
	solved := make([]bool, len(node.Children))

	pool := innerWidth
	for i, c := range node.Children {
		cn := t.Node(c)
		cbp := css.ResolveBoxProps(cn.UnresolvedBoxProps, childRC)
		maxW[i], hasMaxW[i] = cbp.MaxWidth, cbp.HasMaxWidth
		switch {
		case cn.ComputedStyle.Position == css.PositionAbsolute || cn.ComputedStyle.Position == css.PositionFixed:
			kinds[i] = childAbsolute
			solved[i] = true
		case !cbp.WidthIsAuto:
			kinds[i] = childFixed
			w := cbp.Width
			if !cbp.BorderBoxSizing {
				w += cbp.DecorationWidth()
			}
			w = clampWidth(cbp, w)
			assigned[i] = w
			solved[i] = true
			pool -= w
		default:
			kinds[i] = childVariable
			g := cn.ComputedStyle.FlexGrow
			if g <= 0 {
				g = 1.0
			}
			grow[i] = g
			min := s.Intrinsic.WidthOf(t, c).MinContent
			assigned[i] = min
			pool -= min
		}
	}

	for {
		variableLeft := false
		sumGrow := 0.0
		for i := range node.Children {
			if kinds[i] == childVariable && !solved[i] {
				variableLeft = true
				sumGrow += grow[i]
			}
		}
		if !variableLeft || pool <= 0 || sumGrow == 0 {
			break
		}
		anyViolation := false
		for i := range node.Children {
			if kinds[i] != childVariable || solved[i] {
				continue
			}
			share := dimen.Dimen(float64(pool) * grow[i] / sumGrow)
			tentative := assigned[i] + share
			if hasMaxW[i] && tentative > maxW[i] {
				pool -= maxW[i] - assigned[i]
				assigned[i] = maxW[i]
				solved[i] = true
				anyViolation = true
			}
		}
		if !anyViolation {
			for i := range node.Children {
				if kinds[i] != childVariable || solved[i] {
					continue
				}
				share := dimen.Dimen(float64(pool) * grow[i] / sumGrow)
				assigned[i] += share
			}
			break
		}
	}

	for i, c := range node.Children {
		// Absolutely-positioned children are not sized from the
		// distribution pool (§4.4 step 2); their final containing
		// block is the nearest positioned ancestor, resolved by the
		// position solver, but their own auto-width is approximated
		// here against the immediate parent's content width.
		constraint := dimen.EqualTo(assigned[i])
		if kinds[i] == childAbsolute {
			constraint = dimen.Between(0, innerWidth)
		}
		s.Solve(t, c, constraint, childRC)
	}
}
