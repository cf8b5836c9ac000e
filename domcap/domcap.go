package domcap

import (
	"github.com/npillmayer/boxkit/style/css"
)

// NodeID identifies a node in the styled DOM. It is opaque to the core;
// hosts are free to use whatever representation is convenient (an index,
// a pointer cast to uintptr, ...) as long as it is comparable.
type NodeID int

// NoNode means "no such node" (e.g. the parent of the root). It is -1,
// not the zero value of NodeID.
const NoNode NodeID = -1

// NodeKind is the closed sum of node kinds the core distinguishes
// (§6.1 node_type).
type NodeKind uint8

const (
	KindNone NodeKind = iota
	KindElement
	KindText
	KindImage
	KindReplaced
	KindBody
)

// NodeType is the result of a node_type(n) query: the node's kind plus
// whatever payload that kind carries (text content, image intrinsic
// size).
type NodeType struct {
	Kind          NodeKind
	Text          string  // valid when Kind == KindText
	IntrinsicW    float64 // valid when Kind == KindImage/KindReplaced
	IntrinsicH    float64
	HasAspectRatio bool
}

// NodeState reports the pseudo-class state of a node, consulted when
// resolving `:hover`/`:active`/`:focus` style variants (§6.1
// styled_node_state).
type NodeState struct {
	Hovered bool
	Active  bool
	Focused bool
}

// StyledDOM is the capability the layout core reads the styled element
// tree through (§6.1). Implementations must be read-only: the core never
// calls a mutating method because there isn't one.
type StyledDOM interface {
	// Root returns the id of the document root.
	Root() NodeID
	// Children returns n's children in document order.
	Children(n NodeID) []NodeID
	// Parent returns n's parent, or (NoNode, false) for the root.
	Parent(n NodeID) (NodeID, bool)
	// NodeType returns n's kind and any type-specific payload.
	NodeType(n NodeID) NodeType
	// CSS returns the resolved value of property on n. Unset properties
	// return css.NullStyle — never an error; per spec §7 the core treats
	// an absent/unparseable value as the property's initial value.
	CSS(n NodeID, property string) css.Property
	// NodeState returns n's pseudo-class state.
	NodeState(n NodeID) NodeState
}

// Properties the core reads via CSS (§6.1); not an exhaustive enum since
// CSS(n, property) takes a plain string, but named here so call sites
// don't scatter string literals.
const (
	PropDisplay        = "display"
	PropPosition       = "position"
	PropFloat          = "float"
	PropOverflowX      = "overflow-x"
	PropOverflowY      = "overflow-y"
	PropWritingMode    = "writing-mode"
	PropDirection      = "direction"
	PropWidth          = "width"
	PropHeight         = "height"
	PropMinWidth       = "min-width"
	PropMaxWidth       = "max-width"
	PropMinHeight      = "min-height"
	PropMaxHeight      = "max-height"
	PropMarginTop      = "margin-top"
	PropMarginRight    = "margin-right"
	PropMarginBottom   = "margin-bottom"
	PropMarginLeft     = "margin-left"
	PropPaddingTop     = "padding-top"
	PropPaddingRight   = "padding-right"
	PropPaddingBottom  = "padding-bottom"
	PropPaddingLeft    = "padding-left"
	PropBorderTopWidth = "border-top-width"
	PropBorderRightWidth = "border-right-width"
	PropBorderBottomWidth = "border-bottom-width"
	PropBorderLeftWidth = "border-left-width"
	PropBoxSizing      = "box-sizing"
	PropFontSize       = "font-size"
	PropLineHeight     = "line-height"
	PropLetterSpacing  = "letter-spacing"
	PropWordSpacing    = "word-spacing"
	PropTabSize        = "tab-size"
	PropTextAlign      = "text-align"
	PropAlignItems     = "align-items"
	PropJustifyContent = "justify-content"
	PropFlexGrow       = "flex-grow"
	PropFlexShrink     = "flex-shrink"
	PropFlexDirection  = "flex-direction"
	PropFlexWrap       = "flex-wrap"
	PropVisibility     = "visibility"
	PropAspectRatio    = "aspect-ratio"
	PropRowGap         = "row-gap"
	PropColumnGap      = "column-gap"
	PropTop            = "top"
	PropRight          = "right"
	PropBottom         = "bottom"
	PropLeft           = "left"
	PropColor          = "color"
	PropBackgroundColor = "background-color"
	PropBorderColor    = "border-color"
	PropWhiteSpace     = "white-space"
)
