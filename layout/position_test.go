package layout_test

import (
	"testing"

	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/layout"
	"github.com/npillmayer/boxkit/style/css"
)

// TestPositionSolverAbsolutePositioning mirrors the spec's absolute
// positioning scenario: a 300x200 position:relative container with a
// child position:absolute; top:10; right:20; width:50; height:30. The
// child must land at (230, 10).
func TestPositionSolverAbsolutePositioning(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCBlock
	rn.ComputedStyle.Position = css.PositionRelative
	rn.UsedSize = boxtree.Size{W: 300 * dimen.PX, H: 200 * dimen.PX}

	child := tree.NewNode()
	tree.AddChild(root, child)
	cn := tree.Node(child)
	cn.FormattingContext = boxtree.FCBlock
	cn.ComputedStyle.Position = css.PositionAbsolute
	cn.UsedSize = boxtree.Size{W: 50 * dimen.PX, H: 30 * dimen.PX}
	cn.Offsets = css.Offsets{
		Top:         10 * dimen.PX,
		Right:       20 * dimen.PX,
		LeftIsAuto:  true,
		BottomIsAuto: true,
	}

	layout.PositionSolver{}.Solve(tree, root)

	if cn.RelativePosition.X != 230*dimen.PX || cn.RelativePosition.Y != 10*dimen.PX {
		t.Errorf("expected child at (230,10), got (%v,%v)", cn.RelativePosition.X, cn.RelativePosition.Y)
	}
}

// TestPositionSolverMarginCollapsingBetweenSiblings verifies that
// adjacent block siblings' vertical margins collapse when positioned,
// matching HeightSolver's own collapsing of the same margins: the
// second sibling's top must be first.bottom + 20, not + 40.
func TestPositionSolverMarginCollapsingBetweenSiblings(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCBlock
	rn.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 100 * dimen.PX}

	a := tree.NewNode()
	tree.AddChild(root, a)
	an := tree.Node(a)
	an.FormattingContext = boxtree.FCBlock
	an.BoxProps.Margin[css.Top] = 20 * dimen.PX
	an.BoxProps.Margin[css.Bottom] = 20 * dimen.PX
	an.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 10 * dimen.PX}

	b := tree.NewNode()
	tree.AddChild(root, b)
	bn := tree.Node(b)
	bn.FormattingContext = boxtree.FCBlock
	bn.BoxProps.Margin[css.Top] = 20 * dimen.PX
	bn.BoxProps.Margin[css.Bottom] = 20 * dimen.PX
	bn.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 10 * dimen.PX}

	layout.PositionSolver{}.Solve(tree, root)

	if an.RelativePosition.Y != 20*dimen.PX {
		t.Fatalf("expected A's top at 20px, got %v", an.RelativePosition.Y)
	}
	firstBottom := an.RelativePosition.Y + an.UsedSize.H
	want := firstBottom + 20*dimen.PX
	if bn.RelativePosition.Y != want {
		t.Errorf("expected B's top at first.bottom+20 (%v), got %v", want, bn.RelativePosition.Y)
	}
}

// TestPositionSolverColumnFlexStacksVertically checks that a
// flex-direction:column container treats the block axis as its main
// axis, stacking children vertically rather than horizontally.
func TestPositionSolverColumnFlexStacksVertically(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCFlex
	rn.ComputedStyle.FlexDirection = "column"
	rn.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 100 * dimen.PX}

	a := tree.NewNode()
	tree.AddChild(root, a)
	an := tree.Node(a)
	an.FormattingContext = boxtree.FCBlock
	an.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 10 * dimen.PX}

	b := tree.NewNode()
	tree.AddChild(root, b)
	bn := tree.Node(b)
	bn.FormattingContext = boxtree.FCBlock
	bn.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 20 * dimen.PX}

	layout.PositionSolver{}.Solve(tree, root)

	if an.RelativePosition.X != 0 || an.RelativePosition.Y != 0 {
		t.Errorf("expected A at origin, got (%v,%v)", an.RelativePosition.X, an.RelativePosition.Y)
	}
	if bn.RelativePosition.X != 0 || bn.RelativePosition.Y != 10*dimen.PX {
		t.Errorf("expected B stacked below A at (0,10), got (%v,%v)", bn.RelativePosition.X, bn.RelativePosition.Y)
	}
}

// TestPositionSolverJustifyContentCenter checks the main-axis centering math on a
// flex row with slack remaining after placement.
func TestPositionSolverJustifyContentCenter(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCFlex
	rn.ComputedStyle.JustifyContent = css.JustifyCenter
	rn.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 20 * dimen.PX}

	a := tree.NewNode()
	tree.AddChild(root, a)
	an := tree.Node(a)
	an.FormattingContext = boxtree.FCBlock
	an.UsedSize = boxtree.Size{W: 40 * dimen.PX, H: 20 * dimen.PX}

	layout.PositionSolver{}.Solve(tree, root)

	// slack = 100-40 = 60, centered shift = 30
	if an.RelativePosition.X != 30*dimen.PX {
		t.Errorf("expected A centered at x=30px, got %v", an.RelativePosition.X)
	}
}
