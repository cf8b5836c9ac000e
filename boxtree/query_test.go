package boxtree_test

import (
	"testing"

	"github.com/npillmayer/boxkit/boxtree"
)

func buildQueryFixture() (*boxtree.LayoutTree, boxtree.NodeIndex) {
	t := boxtree.NewLayoutTree()
	root := t.NewNode()
	t.Root = root
	t.Node(root).FormattingContext = boxtree.FCBlock

	wrapper := t.NewNode()
	t.AddChild(root, wrapper)
	t.Node(wrapper).Anon = boxtree.AnonInlineWrapper
	t.Node(wrapper).FormattingContext = boxtree.FCInline

	text := t.NewNode()
	t.AddChild(wrapper, text)
	t.Node(text).FormattingContext = boxtree.FCInline
	t.Node(text).Text = "hello"

	cell := t.NewNode()
	t.AddChild(root, cell)
	t.Node(cell).FormattingContext = boxtree.FCTableCell

	return t, root
}

func TestQueryFindsAnonymousInlineWrapper(t *testing.T) {
	tree, root := buildQueryFixture()

	got, err := boxtree.Query(tree, root, "//inline_wrapper")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if tree.Node(got[0]).Anon != boxtree.AnonInlineWrapper {
		t.Errorf("matched node is not the anonymous inline wrapper")
	}
}

func TestQueryFindsByFormattingContextName(t *testing.T) {
	tree, root := buildQueryFixture()

	got, err := boxtree.Query(tree, root, "//table-cell")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if tree.Node(got[0]).FormattingContext != boxtree.FCTableCell {
		t.Errorf("matched node is not the table-cell node")
	}
}

func TestQueryNoMatch(t *testing.T) {
	tree, root := buildQueryFixture()

	got, err := boxtree.Query(tree, root, "//table_row_group")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
