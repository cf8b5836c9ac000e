package css

// Display is the closed sum of CSS `display` values this module
// dispatches on when building the layout tree (§4.2.1) and deciding
// formatting contexts.
type Display uint8

// Display values. DisplayNone nodes are skipped entirely during tree
// construction (§4.2 step 1).
const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
	DisplayFlowRoot
	DisplayListItem
	DisplayFlex
	DisplayInlineFlex
	DisplayGrid
	DisplayInlineGrid
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableCell
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCaption
)

var displayStringMap = map[string]Display{
	"none":              DisplayNone,
	"block":             DisplayBlock,
	"inline":            DisplayInline,
	"inline-block":      DisplayInlineBlock,
	"flow-root":         DisplayFlowRoot,
	"list-item":         DisplayListItem,
	"flex":              DisplayFlex,
	"inline-flex":       DisplayInlineFlex,
	"grid":              DisplayGrid,
	"inline-grid":       DisplayInlineGrid,
	"table":             DisplayTable,
	"inline-table":      DisplayInlineTable,
	"table-row-group":   DisplayTableRowGroup,
	"table-header-group": DisplayTableHeaderGroup,
	"table-footer-group": DisplayTableFooterGroup,
	"table-row":         DisplayTableRow,
	"table-cell":        DisplayTableCell,
	"table-column-group": DisplayTableColumnGroup,
	"table-column":      DisplayTableColumn,
	"table-caption":     DisplayTableCaption,
}

// ParseDisplay parses a `display` property value. Unrecognized or unset
// values resolve to DisplayInline, the CSS initial value — never an
// error (§7: "unparseable values are treated as initial").
func ParseDisplay(p Property) Display {
	if p == NullStyle {
		return DisplayInline
	}
	if d, ok := displayStringMap[string(p)]; ok {
		return d
	}
	tracer().Debugf("unknown display value %q, treating as inline", p)
	return DisplayInline
}

// IsInlineLevel reports whether d participates in an ancestor's inline
// formatting context rather than flowing as a block-level sibling.
func (d Display) IsInlineLevel() bool {
	switch d {
	case DisplayInline, DisplayInlineBlock, DisplayInlineFlex, DisplayInlineGrid, DisplayInlineTable:
		return true
	}
	return false
}

// IsTableRelated reports whether d is one of the table-generated display
// values subject to CSS 2.2 §17.2.1 anonymous-box rules.
func (d Display) IsTableRelated() bool {
	switch d {
	case DisplayTable, DisplayInlineTable, DisplayTableRowGroup, DisplayTableHeaderGroup,
		DisplayTableFooterGroup, DisplayTableRow, DisplayTableCell,
		DisplayTableColumnGroup, DisplayTableColumn, DisplayTableCaption:
		return true
	}
	return false
}

// Position is the CSS `position` property (§4.6).
type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky // handled like PositionRelative by the solvers
)

var positionStringMap = map[string]Position{
	"static":   PositionStatic,
	"relative": PositionRelative,
	"absolute": PositionAbsolute,
	"fixed":    PositionFixed,
	"sticky":   PositionSticky,
}

// ParsePosition parses a `position` property value, defaulting to static.
func ParsePosition(p Property) Position {
	if pos, ok := positionStringMap[string(p)]; ok {
		return pos
	}
	return PositionStatic
}

// IsPositioned reports whether a node with this position establishes a
// positioned-ancestor frame of reference for absolutely-positioned
// descendants (§4.6).
func (p Position) IsPositioned() bool {
	return p != PositionStatic
}

// Float is the CSS `float` property.
type Float uint8

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

// ParseFloat parses a `float` property value, defaulting to none.
func ParseFloat(p Property) Float {
	switch p {
	case "left":
		return FloatLeft
	case "right":
		return FloatRight
	}
	return FloatNone
}

// Overflow is the CSS `overflow-x`/`overflow-y` property (§4.9).
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
	OverflowClip
)

var overflowStringMap = map[string]Overflow{
	"visible": OverflowVisible,
	"hidden":  OverflowHidden,
	"scroll":  OverflowScroll,
	"auto":    OverflowAuto,
	"clip":    OverflowClip,
}

// ParseOverflow parses an `overflow-x`/`overflow-y` value, defaulting to
// visible.
func ParseOverflow(p Property) Overflow {
	if o, ok := overflowStringMap[string(p)]; ok {
		return o
	}
	return OverflowVisible
}

// EstablishesNewBlockContext reports whether this overflow value alone
// forces a block container to establish a new block formatting context
// (§4.2.1): anything other than visible/clip.
func (o Overflow) EstablishesNewBlockContext() bool {
	return o != OverflowVisible && o != OverflowClip
}

// JustifyContent is the CSS `justify-content` value (§4.6).
type JustifyContent uint8

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

var justifyStringMap = map[string]JustifyContent{
	"start":          JustifyStart,
	"flex-start":     JustifyStart,
	"end":            JustifyEnd,
	"flex-end":       JustifyEnd,
	"center":         JustifyCenter,
	"space-between":  JustifySpaceBetween,
	"space-around":   JustifySpaceAround,
	"space-evenly":   JustifySpaceEvenly,
}

// ParseJustifyContent parses a `justify-content` value, defaulting to start.
func ParseJustifyContent(p Property) JustifyContent {
	if j, ok := justifyStringMap[string(p)]; ok {
		return j
	}
	return JustifyStart
}

// Direction is the CSS `direction` property (text/layout direction).
type Direction uint8

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// ParseDirection parses a `direction` value, defaulting to ltr.
func ParseDirection(p Property) Direction {
	if p == "rtl" {
		return DirectionRTL
	}
	return DirectionLTR
}

// WritingMode is the CSS `writing-mode` property.
type WritingMode uint8

const (
	WritingModeHorizontalTB WritingMode = iota
	WritingModeVerticalRL
	WritingModeVerticalLR
)

// ParseWritingMode parses a `writing-mode` value, defaulting to horizontal-tb.
func ParseWritingMode(p Property) WritingMode {
	switch p {
	case "vertical-rl":
		return WritingModeVerticalRL
	case "vertical-lr":
		return WritingModeVerticalLR
	}
	return WritingModeHorizontalTB
}

// TextAlign is the CSS `text-align` property, consumed by the inline
// layout capability (§6.3's text_align_horizontal).
type TextAlign uint8

const (
	TextAlignStart TextAlign = iota
	TextAlignEnd
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

var textAlignStringMap = map[string]TextAlign{
	"start":   TextAlignStart,
	"end":     TextAlignEnd,
	"left":    TextAlignLeft,
	"right":   TextAlignRight,
	"center":  TextAlignCenter,
	"justify": TextAlignJustify,
}

// ParseTextAlign parses a `text-align` value, defaulting to start.
func ParseTextAlign(p Property) TextAlign {
	if t, ok := textAlignStringMap[string(p)]; ok {
		return t
	}
	return TextAlignStart
}
