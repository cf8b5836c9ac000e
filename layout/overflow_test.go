package layout_test

import (
	"testing"

	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/layout"
	"github.com/npillmayer/boxkit/style/css"
)

// TestOverflowSolverContentFits checks the no-overflow case: a container
// whose children fit entirely within its content box resolves both axes
// to visible with no carried amount.
func TestOverflowSolverContentFits(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCBlock
	rn.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 100 * dimen.PX}

	child := tree.NewNode()
	tree.AddChild(root, child)
	cn := tree.Node(child)
	cn.RelativePosition = dimen.Point{X: 0, Y: 0}
	cn.UsedSize = boxtree.Size{W: 50 * dimen.PX, H: 50 * dimen.PX}

	layout.OverflowSolver{}.Solve(tree, root)

	if rn.OverflowX.HasAmount || rn.OverflowY.HasAmount {
		t.Errorf("expected no overflow amount, got X=%+v Y=%+v", rn.OverflowX, rn.OverflowY)
	}
	if rn.OverflowX.Kind != boxtree.OverflowResultVisible {
		t.Errorf("expected visible overflow-x, got %v", rn.OverflowX.Kind)
	}
}

// TestOverflowSolverScrollingContainer checks that content exceeding the
// content box on both axes resolves overflow-x:hidden to Hidden and
// overflow-y:auto to Auto, each carrying the overflowing amount (§4.9
// step 2 computes the amount independently of the resolved kind; only
// isScrolling distinguishes whether a kind actually shows a scrollbar).
func TestOverflowSolverScrollingContainer(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCBlock
	rn.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 100 * dimen.PX}
	rn.ComputedStyle.OverflowX = css.OverflowHidden
	rn.ComputedStyle.OverflowY = css.OverflowAuto

	child := tree.NewNode()
	tree.AddChild(root, child)
	cn := tree.Node(child)
	cn.RelativePosition = dimen.Point{X: 0, Y: 0}
	cn.UsedSize = boxtree.Size{W: 150 * dimen.PX, H: 140 * dimen.PX}

	layout.OverflowSolver{}.Solve(tree, root)

	if rn.OverflowX.Kind != boxtree.OverflowResultHidden {
		t.Errorf("expected hidden overflow-x, got %v", rn.OverflowX.Kind)
	}
	if !rn.OverflowX.HasAmount || rn.OverflowX.Amount != 50*dimen.PX {
		t.Errorf("expected 50px overflow-x amount even though it clips rather than scrolls, got %+v", rn.OverflowX)
	}

	if rn.OverflowY.Kind != boxtree.OverflowResultAuto {
		t.Errorf("expected auto overflow-y, got %v", rn.OverflowY.Kind)
	}
	if !rn.OverflowY.HasAmount || rn.OverflowY.Amount != 40*dimen.PX {
		t.Errorf("expected 40px overflow-y amount, got %+v", rn.OverflowY)
	}
}

// TestOverflowSolverIgnoresOutOfFlowChildren checks that an
// absolutely-positioned child does not inflate the scrollable overflow
// of its static-position container.
func TestOverflowSolverIgnoresOutOfFlowChildren(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCBlock
	rn.UsedSize = boxtree.Size{W: 100 * dimen.PX, H: 100 * dimen.PX}

	child := tree.NewNode()
	tree.AddChild(root, child)
	cn := tree.Node(child)
	cn.ComputedStyle.Position = css.PositionAbsolute
	cn.RelativePosition = dimen.Point{X: 500, Y: 500}
	cn.UsedSize = boxtree.Size{W: 50 * dimen.PX, H: 50 * dimen.PX}

	layout.OverflowSolver{}.Solve(tree, root)

	if rn.OverflowX.HasAmount || rn.OverflowY.HasAmount {
		t.Errorf("an out-of-flow child must not count toward scrollable overflow, got X=%+v Y=%+v", rn.OverflowX, rn.OverflowY)
	}
}
