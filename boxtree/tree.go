package boxtree

import (
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/domcap"
	"github.com/npillmayer/boxkit/style/css"
)

// NodeIndex is an arena index into a LayoutTree. The zero value indexes
// the tree's root; there is no sentinel "invalid" value distinct from
// NoIndex.
type NodeIndex int

// NoIndex marks the absence of a node reference (e.g. a node with no
// parent, or an unset ifc_root_layout_index).
const NoIndex NodeIndex = -1

// Size is a resolved width/height pair.
type Size struct {
	W, H dimen.Dimen
}

// IntrinsicSizes is the cached {min_content, max_content} pair for one
// axis (§3.1 `intrinsic_sizes`).
type IntrinsicSizes struct {
	MinContent dimen.Dimen
	MaxContent dimen.Dimen
	Valid      bool
}

// IfcMembership is the back-pointer a text/inline node carries into the
// IFC it participates in (§3.1 `ifc_membership`).
type IfcMembership struct {
	IfcID              int
	IfcRootLayoutIndex NodeIndex
	RunIndex           int
}

// InlineLayoutCache is the narrow view boxtree needs of an inline
// package's CachedInlineLayout, kept as an interface here to avoid an
// import cycle (inline lays out boxtree nodes; boxtree must not import
// inline). The inline package's concrete CachedInlineLayout satisfies
// this.
type InlineLayoutCache interface {
	AvailableWidth() dimen.AvailableSpace
	HasFloats() bool
	ContentSize() Size
}

// ComputedStyle is the pre-resolved subset of CSS properties a
// LayoutNode carries so later passes read in O(1) (§3.1 `computed_style`).
type ComputedStyle struct {
	Display        css.Display
	Position       css.Position
	Float          css.Float
	OverflowX      css.Overflow
	OverflowY      css.Overflow
	WritingMode    css.WritingMode
	Direction      css.Direction
	TextAlign      css.TextAlign
	JustifyContent css.JustifyContent
	FlexGrow       float64
	FlexShrink     float64
	FlexDirection  string
	FontSizePx     dimen.Dimen
	LineHeightPx   dimen.Dimen
	Visible        bool // false for `visibility: hidden`; still takes space (§ SUPPLEMENTED FEATURES)
	AspectRatio    float64 // 0 if unset
	RowGap         dimen.Dimen
	ColumnGap      dimen.Dimen
}

// LayoutNode is one node of the layout tree (§3.1).
type LayoutNode struct {
	DomRef domcap.NodeID // domcap.NoNode for anonymous boxes
	Pseudo Pseudo
	Anon   AnonKind

	Parent   NodeIndex
	Children []NodeIndex

	FormattingContext       FormattingContext
	EstablishesNewBFC       bool
	ParentFormattingContext FormattingContext

	UnresolvedBoxProps css.UnresolvedBoxProps
	BoxProps           css.BoxProps
	BoxPropsResolved   bool

	UnresolvedOffsets css.UnresolvedOffsets
	Offsets           css.Offsets

	DirtyFlag DirtyFlag

	NodeDataFingerprint uint64
	SubtreeHash         uint64

	IntrinsicWidth  IntrinsicSizes
	IntrinsicHeight IntrinsicSizes

	UsedSize         Size
	RelativePosition dimen.Point
	Baseline         dimen.Dimen

	InlineLayoutResult InlineLayoutCache

	EscapedTopMargin    dimen.Dimen
	EscapedBottomMargin dimen.Dimen

	ScrollbarThicknessX dimen.Dimen
	ScrollbarThicknessY dimen.Dimen
	OverflowContentSize Size
	OverflowX           DirectionalOverflow
	OverflowY           DirectionalOverflow

	IfcID         int // 0 means "not an IFC root"
	IfcMembership *IfcMembership

	ComputedStyle ComputedStyle

	Text string // source text for text/marker nodes
}

// IsAnonymous reports whether n has no backing styled-DOM node.
func (n *LayoutNode) IsAnonymous() bool {
	return n.DomRef == domcap.NoNode
}

// LayoutTree is an arena of LayoutNodes plus the root index and the
// dom-to-layout association (§3.1 `LayoutTree`).
type LayoutTree struct {
	Nodes        []LayoutNode
	Root         NodeIndex
	DomToLayout  map[domcap.NodeID][]NodeIndex
	nextIfcID    int
}

// NewLayoutTree creates an empty tree.
func NewLayoutTree() *LayoutTree {
	return &LayoutTree{
		Root:        NoIndex,
		DomToLayout: make(map[domcap.NodeID][]NodeIndex),
	}
}

// NewNode appends a new node and returns its index. Callers fill in the
// returned node's fields via Node(idx).
func (t *LayoutTree) NewNode() NodeIndex {
	idx := NodeIndex(len(t.Nodes))
	t.Nodes = append(t.Nodes, LayoutNode{Parent: NoIndex, DomRef: domcap.NoNode})
	return idx
}

// Node returns a pointer to the node at idx for in-place mutation.
func (t *LayoutTree) Node(idx NodeIndex) *LayoutNode {
	return &t.Nodes[idx]
}

// AddChild appends child as the last child of parent and sets child's
// Parent link. Mirrors the teacher's container.AddChild.
func (t *LayoutTree) AddChild(parent, child NodeIndex) {
	t.Nodes[child].Parent = parent
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, child)
}

// RegisterDomRef records that domNode produced layout node idx, allowing
// multiple layout nodes per styled node (pseudo-elements generate
// extras, §3.1 LayoutTree).
func (t *LayoutTree) RegisterDomRef(domNode domcap.NodeID, idx NodeIndex) {
	t.DomToLayout[domNode] = append(t.DomToLayout[domNode], idx)
}

// NextIfcID allocates a process-stable (pass-stable) IFC identifier.
// Reset at the start of each pass via ResetIfcCounter (§3.3, §5).
func (t *LayoutTree) NextIfcID() int {
	t.nextIfcID++
	return t.nextIfcID
}

// ResetIfcCounter resets the IfcId counter; called at the start of a
// fresh build (§3.3 "the IfcId counter is reset").
func (t *LayoutTree) ResetIfcCounter() {
	t.nextIfcID = 0
}

// WalkDepthFirst visits every node reachable from root, parent before
// children, calling visit(idx) for each. Uses an explicit stack rather
// than recursion (§9 "use an explicit stack ... to avoid stack overflow
// on pathological inputs").
func (t *LayoutTree) WalkDepthFirst(root NodeIndex, visit func(NodeIndex)) {
	if root == NoIndex {
		return
	}
	stack := []NodeIndex{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n)
		children := t.Nodes[n].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// WalkPostOrder visits every node reachable from root with all of a
// node's descendants visited before the node itself — the order the
// height solver needs (§5 "Height assignment ... bottom-up").
func (t *LayoutTree) WalkPostOrder(root NodeIndex, visit func(NodeIndex)) {
	if root == NoIndex {
		return
	}
	type frame struct {
		idx     NodeIndex
		visited bool
	}
	stack := []frame{{idx: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.visited {
			visit(top.idx)
			stack = stack[:len(stack)-1]
			continue
		}
		top.visited = true
		children := t.Nodes[top.idx].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{idx: children[i]})
		}
	}
}

// MarkDirty implements §4.8 mark_dirty: if flag is None or n's current
// flag is already >= flag, this is a no-op (the mark and the ancestor
// propagation both stop). Otherwise the flag is raised and the mark
// recurses to the parent.
func (t *LayoutTree) MarkDirty(n NodeIndex, flag DirtyFlag) {
	for n != NoIndex {
		if flag == DirtyNone || t.Nodes[n].DirtyFlag >= flag {
			return
		}
		t.Nodes[n].DirtyFlag = flag
		n = t.Nodes[n].Parent
	}
}

// ClearAllDirtyFlags implements §4.8 clear_all_dirty_flags, called at
// the end of a successful layout pass (§3.3).
func (t *LayoutTree) ClearAllDirtyFlags() {
	for i := range t.Nodes {
		t.Nodes[i].DirtyFlag = DirtyNone
	}
}
