package boxtree

import (
	"fmt"

	"github.com/antchfx/xpath"
)

// NodeNavigator is an xpath.NodeNavigator over a LayoutTree, letting
// tests and the boxkitcli dump tool run xpath-ish queries
// (`//inline_wrapper`) against the arena instead of walking
// it by hand. Grounded on the teacher's styledtree/xpathadapter, adapted
// from a pointer tree to arena indices.
type NodeNavigator struct {
	tree    *LayoutTree
	root    NodeIndex
	current NodeIndex
	chinx   int
}

// NewNavigator creates a NodeNavigator rooted at root.
func NewNavigator(tree *LayoutTree, root NodeIndex) *NodeNavigator {
	return &NodeNavigator{tree: tree, root: root, current: root}
}

// Current returns the index the navigator currently points to.
func (nav *NodeNavigator) Current() NodeIndex {
	return nav.current
}

func (nav *NodeNavigator) node() *LayoutNode {
	return nav.tree.Node(nav.current)
}

// NodeType implements xpath.NodeNavigator.
func (nav *NodeNavigator) NodeType() xpath.NodeType {
	n := nav.node()
	if n.Text != "" && len(n.Children) == 0 && n.Pseudo != PseudoMarker {
		return xpath.TextNode
	}
	if nav.current == nav.root {
		return xpath.RootNode
	}
	return xpath.ElementNode
}

// LocalName implements xpath.NodeNavigator: the node's formatting
// context name doubles as its "tag" for query purposes, since layout
// nodes have no element name of their own once anonymous boxes exist.
func (nav *NodeNavigator) LocalName() string {
	n := nav.node()
	if n.Anon != AnonNone {
		return anonName(n.Anon)
	}
	return n.FormattingContext.String()
}

func anonName(a AnonKind) string {
	switch a {
	case AnonInlineWrapper:
		return "inline_wrapper"
	case AnonTableWrapper:
		return "table_wrapper"
	case AnonTableRowGroup:
		return "table_row_group"
	case AnonTableRow:
		return "table_row"
	case AnonTableCell:
		return "table_cell"
	case AnonListMarker:
		return "list_marker"
	}
	return "node"
}

// Prefix implements xpath.NodeNavigator (no namespaces).
func (nav *NodeNavigator) Prefix() string { return "" }

// Value implements xpath.NodeNavigator.
func (nav *NodeNavigator) Value() string {
	return nav.node().Text
}

// Copy implements xpath.NodeNavigator.
func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

// MoveToRoot implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
}

// MoveToParent implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToParent() bool {
	if nav.current == nav.root {
		return false
	}
	p := nav.node().Parent
	if p == NoIndex {
		return false
	}
	nav.current = p
	nav.chinx = 0
	return true
}

// MoveToChild implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToChild() bool {
	kids := nav.node().Children
	if len(kids) == 0 {
		return false
	}
	nav.chinx = 0
	nav.current = kids[0]
	return true
}

// MoveToFirst implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToFirst() bool {
	parentIdx := nav.node().Parent
	if parentIdx == NoIndex {
		return false
	}
	kids := nav.tree.Node(parentIdx).Children
	if len(kids) == 0 {
		return false
	}
	nav.chinx = 0
	nav.current = kids[0]
	return true
}

// String implements xpath.NodeNavigator (and fmt.Stringer).
func (nav *NodeNavigator) String() string {
	return nav.Value()
}

// MoveToNext implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNext() bool {
	parentIdx := nav.node().Parent
	if parentIdx == NoIndex {
		return false
	}
	kids := nav.tree.Node(parentIdx).Children
	if nav.chinx < len(kids)-1 {
		nav.chinx++
		nav.current = kids[nav.chinx]
		return true
	}
	return false
}

// MoveToPrevious implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.chinx <= 0 {
		return false
	}
	parentIdx := nav.node().Parent
	kids := nav.tree.Node(parentIdx).Children
	nav.chinx--
	nav.current = kids[nav.chinx]
	return true
}

// MoveToNextAttribute implements xpath.NodeNavigator: layout nodes carry
// no attributes.
func (nav *NodeNavigator) MoveToNextAttribute() bool {
	return false
}

// MoveTo implements xpath.NodeNavigator.
func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*NodeNavigator)
	if !ok || o.tree != nav.tree || o.root != nav.root {
		return false
	}
	nav.current = o.current
	nav.chinx = o.chinx
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// Query runs an xpath expression against tree starting at root and
// returns the matching node indices, for debug tooling (boxkitcli) and
// test assertions. It is not used by the layout pass itself.
func Query(tree *LayoutTree, root NodeIndex, expr string) ([]NodeIndex, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling xpath %q: %w", expr, err)
	}
	nav := NewNavigator(tree, root)
	iter := compiled.Select(nav)
	var out []NodeIndex
	for iter.MoveNext() {
		cur := iter.Current().(*NodeNavigator)
		out = append(out, cur.Current())
	}
	return out, nil
}
