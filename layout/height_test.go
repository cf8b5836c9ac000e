package layout_test

import (
	"testing"

	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/layout"
	"github.com/npillmayer/boxkit/style/css"
)

// TestHeightSolverMarginCollapsing mirrors the spec's margin-collapsing
// scenario: two sibling blocks, both margin: 20px 0, inside a block
// parent that establishes its own BFC (so neither margin escapes). The
// collapsed margin between the two siblings must count once, not twice.
func TestHeightSolverMarginCollapsing(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCBlock
	rn.EstablishesNewBFC = true
	rn.BoxProps.HeightIsAuto = true

	a := tree.NewNode()
	tree.AddChild(root, a)
	an := tree.Node(a)
	an.FormattingContext = boxtree.FCBlock
	an.BoxProps.Margin[css.Top] = 20 * dimen.PX
	an.BoxProps.Margin[css.Bottom] = 20 * dimen.PX
	an.BoxProps.Height = 10 * dimen.PX

	b := tree.NewNode()
	tree.AddChild(root, b)
	bn := tree.Node(b)
	bn.FormattingContext = boxtree.FCBlock
	bn.BoxProps.Margin[css.Top] = 20 * dimen.PX
	bn.BoxProps.Margin[css.Bottom] = 20 * dimen.PX
	bn.BoxProps.Height = 10 * dimen.PX

	solver := layout.HeightSolver{}
	solver.Solve(tree, root)

	if an.UsedSize.H != 10*dimen.PX {
		t.Fatalf("A's own used height should be its explicit 10px, got %v", an.UsedSize.H)
	}
	if bn.UsedSize.H != 10*dimen.PX {
		t.Fatalf("B's own used height should be its explicit 10px, got %v", bn.UsedSize.H)
	}

	// parent content height = 20 (top) + 10 (A) + 20 (collapsed A/B
	// margin, not 40) + 10 (B) + 20 (bottom) = 80
	want := 80 * dimen.PX
	if rn.UsedSize.H != want {
		t.Errorf("expected parent used height %v, got %v", want, rn.UsedSize.H)
	}
}

// TestHeightSolverFirstChildMarginEscapes checks that when the parent
// does not establish a new BFC, the first child's top margin escapes
// (recorded on EscapedTopMargin) rather than adding to the parent's own
// content height.
func TestHeightSolverFirstChildMarginEscapes(t *testing.T) {
	tree := boxtree.NewLayoutTree()
	root := tree.NewNode()
	tree.Root = root
	rn := tree.Node(root)
	rn.FormattingContext = boxtree.FCBlock
	rn.EstablishesNewBFC = false
	rn.BoxProps.HeightIsAuto = true

	a := tree.NewNode()
	tree.AddChild(root, a)
	an := tree.Node(a)
	an.FormattingContext = boxtree.FCBlock
	an.BoxProps.Margin[css.Top] = 20 * dimen.PX
	an.BoxProps.Height = 10 * dimen.PX

	solver := layout.HeightSolver{}
	solver.Solve(tree, root)

	if an.EscapedTopMargin != 20*dimen.PX {
		t.Errorf("expected A's top margin to be recorded as escaped, got %v", an.EscapedTopMargin)
	}
	if rn.UsedSize.H != 10*dimen.PX {
		t.Errorf("escaped top margin must not inflate the parent's own height, got %v", rn.UsedSize.H)
	}
}
