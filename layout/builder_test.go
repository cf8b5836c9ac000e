package layout_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/domcap"
	"github.com/npillmayer/boxkit/domcap/htmladapter"
	"github.com/npillmayer/boxkit/layout"
	"github.com/npillmayer/boxkit/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildFixture(t *testing.T, body, stylesheet string) domcap.StyledDOM {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	a, err := htmladapter.New(doc, stylesheet)
	if err != nil {
		t.Fatalf("adapting fixture: %v", err)
	}
	return a
}

func TestBuildSkipsDisplayNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.layout")
	defer teardown()

	dom := buildFixture(t, `<div><span style="display:none;">x</span><p>y</p></div>`, "")
	tree := layout.Build(dom)

	found := false
	tree.WalkDepthFirst(tree.Root, func(idx boxtree.NodeIndex) {
		if tree.Node(idx).Text == "x" {
			found = true
		}
	})
	if found {
		t.Errorf("display:none subtree should not appear in the layout tree")
	}
}

func TestBuildAnonymousInlineWrapper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.layout")
	defer teardown()

	// <div><span>a</span><p>b</p><span>c</span></div>
	dom := buildFixture(t, `<div><span>a</span><p>b</p><span>c</span></div>`, "div, p { display: block; }")
	tree := layout.Build(dom)

	var divIdx boxtree.NodeIndex = boxtree.NoIndex
	tree.WalkDepthFirst(tree.Root, func(idx boxtree.NodeIndex) {
		n := tree.Node(idx)
		for _, c := range n.Children {
			if tree.Node(c).Anon == boxtree.AnonInlineWrapper {
				divIdx = idx
			}
		}
	})
	if divIdx == boxtree.NoIndex {
		t.Fatalf("expected an anonymous inline_wrapper among the div's children")
	}
	div := tree.Node(divIdx)
	if len(div.Children) != 3 {
		t.Fatalf("expected 3 direct children (anon-block, p, anon-block), got %d", len(div.Children))
	}
	if tree.Node(div.Children[0]).Anon != boxtree.AnonInlineWrapper {
		t.Errorf("first child should be an anonymous inline wrapper")
	}
	if tree.Node(div.Children[2]).Anon != boxtree.AnonInlineWrapper {
		t.Errorf("third child should be an anonymous inline wrapper")
	}
}

func TestBuildListItemMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.layout")
	defer teardown()

	dom := buildFixture(t, `<li>item</li>`, "li { display: list-item; }")
	tree := layout.Build(dom)

	var liIdx boxtree.NodeIndex = boxtree.NoIndex
	tree.WalkDepthFirst(tree.Root, func(idx boxtree.NodeIndex) {
		if tree.Node(idx).ComputedStyle.Display == css.DisplayListItem {
			liIdx = idx
		}
	})
	if liIdx == boxtree.NoIndex {
		t.Fatalf("expected a list-item layout node")
	}
	li := tree.Node(liIdx)
	if len(li.Children) == 0 || li.Children[0] == boxtree.NoIndex {
		t.Fatalf("list-item should have at least one child")
	}
	if tree.Node(li.Children[0]).Pseudo != boxtree.PseudoMarker {
		t.Errorf("first child of a list-item must be a ::marker pseudo-element")
	}
}

func TestBuildWhitespaceOnlyRunDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.layout")
	defer teardown()

	dom := buildFixture(t, "<div><p>a</p>\n  \n<p>b</p></div>", "div, p { display: block; }")
	tree := layout.Build(dom)

	var divIdx boxtree.NodeIndex = boxtree.NoIndex
	tree.WalkDepthFirst(tree.Root, func(idx boxtree.NodeIndex) {
		n := tree.Node(idx)
		if n.ComputedStyle.Display == css.DisplayBlock && len(n.Children) == 2 {
			divIdx = idx
		}
	})
	if divIdx == boxtree.NoIndex {
		t.Fatalf("expected to find the div with its two <p> children and nothing else")
	}
}

func TestEveryNodeHasExactlyOneParentExceptRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.layout")
	defer teardown()

	dom := buildFixture(t, `<div><span>a</span><p>b</p></div>`, "")
	tree := layout.Build(dom)

	tree.WalkDepthFirst(tree.Root, func(idx boxtree.NodeIndex) {
		n := tree.Node(idx)
		if idx == tree.Root {
			if n.Parent != boxtree.NoIndex {
				t.Errorf("root must have no parent")
			}
			return
		}
		if n.Parent == boxtree.NoIndex {
			t.Errorf("non-root node %d has no parent", idx)
		}
	})
}
