package layout_test

import (
	"testing"

	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/layout"
	"github.com/npillmayer/boxkit/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// findFlexContainer returns the first FCFlex node in the tree.
func findFlexContainer(t *testing.T, tree *boxtree.LayoutTree) boxtree.NodeIndex {
	t.Helper()
	found := boxtree.NoIndex
	tree.WalkDepthFirst(tree.Root, func(idx boxtree.NodeIndex) {
		if found == boxtree.NoIndex && tree.Node(idx).FormattingContext == boxtree.FCFlex {
			found = idx
		}
	})
	if found == boxtree.NoIndex {
		t.Fatalf("expected to find a flex container in the built tree")
	}
	return found
}

// runSolversOn drives the four geometry solvers over containerWidth's
// subtree directly, as Pass.Run does for a real document root — used
// here on the fixture's flex container rather than the fixture's true
// tree.Root, since the test adapter has no UA stylesheet forcing
// html/body to block display (they default to CSS's inline initial
// value, which would stop width solving at the very first node).
func runSolversOn(tree *boxtree.LayoutTree, idx boxtree.NodeIndex, width dimen.Dimen) {
	sizer := layout.IntrinsicSizer{Fonts: fakeFontLoader{}}
	ws := layout.WidthSolver{Intrinsic: sizer}
	hs := layout.HeightSolver{Fonts: fakeFontLoader{}}
	ps := layout.PositionSolver{}
	os := layout.OverflowSolver{}
	rc := css.ResolutionContext{ContainingBlockWidth: width, ViewportWidth: width, FontSizePx: 16 * dimen.PX, RootFontSizePx: 16 * dimen.PX}

	ws.Solve(tree, idx, dimen.EqualTo(width), rc)
	hs.Solve(tree, idx)
	ps.Solve(tree, idx)
	os.Solve(tree, idx)
}

// TestPassRunFixedWidthSiblings mirrors the spec's basic sibling-layout
// scenario: a 200px flex row holding two fixed-width block children
// (50px, 150px) lands them at (0,0) and (50,0).
func TestPassRunFixedWidthSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.layout")
	defer teardown()

	dom := buildFixture(t, `<div style="display:flex;width:200px;"><div style="width:50px;"></div><div style="width:150px;"></div></div>`, "")
	tree := layout.Build(dom)
	container := findFlexContainer(t, tree)
	runSolversOn(tree, container, 200*dimen.PX)

	cn := tree.Node(container)
	if len(cn.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(cn.Children))
	}
	a, b := tree.Node(cn.Children[0]), tree.Node(cn.Children[1])

	if a.UsedSize.W != 50*dimen.PX || b.UsedSize.W != 150*dimen.PX {
		t.Fatalf("expected widths 50px/150px, got %v/%v", a.UsedSize.W, b.UsedSize.W)
	}
	if a.RelativePosition.X != 0 || a.RelativePosition.Y != 0 {
		t.Errorf("expected A at (0,0), got (%v,%v)", a.RelativePosition.X, a.RelativePosition.Y)
	}
	if b.RelativePosition.X != 50*dimen.PX || b.RelativePosition.Y != 0 {
		t.Errorf("expected B at (50,0), got (%v,%v)", b.RelativePosition.X, b.RelativePosition.Y)
	}
}

// TestPassRunFlexGrowDistribution mirrors the spec's flex-grow pool
// distribution scenario: a 300px flex row with three auto-width
// children of flex-grow 1/2/1 resolves to widths 75/150/75 at positions
// 0/75/225.
func TestPassRunFlexGrowDistribution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.layout")
	defer teardown()

	dom := buildFixture(t, `<div style="display:flex;width:300px;">`+
		`<div style="flex-grow:1;"></div>`+
		`<div style="flex-grow:2;"></div>`+
		`<div style="flex-grow:1;"></div>`+
		`</div>`, "")
	tree := layout.Build(dom)
	container := findFlexContainer(t, tree)
	runSolversOn(tree, container, 300*dimen.PX)

	cn := tree.Node(container)
	if len(cn.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(cn.Children))
	}
	a, b, c := tree.Node(cn.Children[0]), tree.Node(cn.Children[1]), tree.Node(cn.Children[2])

	if a.UsedSize.W != 75*dimen.PX || b.UsedSize.W != 150*dimen.PX || c.UsedSize.W != 75*dimen.PX {
		t.Fatalf("expected widths 75/150/75px, got %v/%v/%v", a.UsedSize.W, b.UsedSize.W, c.UsedSize.W)
	}
	if a.RelativePosition.X != 0 {
		t.Errorf("expected A at x=0, got %v", a.RelativePosition.X)
	}
	if b.RelativePosition.X != 75*dimen.PX {
		t.Errorf("expected B at x=75, got %v", b.RelativePosition.X)
	}
	if c.RelativePosition.X != 225*dimen.PX {
		t.Errorf("expected C at x=225, got %v", c.RelativePosition.X)
	}
}

// TestPassRunClearsDirtyFlags checks §5's cross-pass invariant: after a
// successful pass every node's dirty flag is cleared.
func TestPassRunClearsDirtyFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.layout")
	defer teardown()

	dom := buildFixture(t, `<div style="width:100px;"><p>hi</p></div>`, "")
	pass := layout.Pass{Fonts: fakeFontLoader{}, ViewportWidth: 300 * dimen.PX, ViewportHeight: 600 * dimen.PX}
	tree := pass.Run(dom)

	tree.WalkDepthFirst(tree.Root, func(idx boxtree.NodeIndex) {
		if tree.Node(idx).DirtyFlag != boxtree.DirtyNone {
			t.Errorf("node %d still dirty after a successful pass", idx)
		}
	})
}
