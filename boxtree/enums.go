package boxtree

import "github.com/npillmayer/boxkit/core/dimen"

// Pseudo is the closed sum of pseudo-element kinds a LayoutNode may
// represent (§3.1 `pseudo`).
type Pseudo uint8

const (
	PseudoNone Pseudo = iota
	PseudoMarker
	PseudoBefore
	PseudoAfter
)

// AnonKind is the closed sum of anonymous-box kinds (§3.1 `anon_kind`).
type AnonKind uint8

const (
	AnonNone AnonKind = iota
	AnonInlineWrapper
	AnonTableWrapper
	AnonTableRowGroup
	AnonTableRow
	AnonTableCell
	AnonListMarker
)

// FormattingContext is the closed sum a LayoutNode's own content is laid
// out under (§3.1 `formatting_context`).
type FormattingContext uint8

const (
	FCNone FormattingContext = iota
	FCInline
	FCBlock           // establishes_new recorded separately, see LayoutNode.EstablishesNewBFC
	FCInlineBlock
	FCFlex
	FCGrid
	FCTable
	FCTableRowGroup
	FCTableRow
	FCTableCell
	FCTableColumnGroup
	FCTableCaption
)

func (fc FormattingContext) String() string {
	switch fc {
	case FCNone:
		return "none"
	case FCInline:
		return "inline"
	case FCBlock:
		return "block"
	case FCInlineBlock:
		return "inline-block"
	case FCFlex:
		return "flex"
	case FCGrid:
		return "grid"
	case FCTable:
		return "table"
	case FCTableRowGroup:
		return "table-row-group"
	case FCTableRow:
		return "table-row"
	case FCTableCell:
		return "table-cell"
	case FCTableColumnGroup:
		return "table-column-group"
	case FCTableCaption:
		return "table-caption"
	}
	return "?"
}

// DirtyFlag is the totally-ordered dirty severity of §3.2/§4.8:
// None < Paint < Layout.
type DirtyFlag uint8

const (
	DirtyNone DirtyFlag = iota
	DirtyPaint
	DirtyLayout
)

func (f DirtyFlag) String() string {
	switch f {
	case DirtyNone:
		return "none"
	case DirtyPaint:
		return "paint"
	case DirtyLayout:
		return "layout"
	}
	return "?"
}

// OverflowKind is the resolved overflow behavior for one axis (§4.9,
// §6.4 DirectionalOverflowInfo).
type OverflowKind uint8

const (
	OverflowResultVisible OverflowKind = iota
	OverflowResultHidden
	OverflowResultScroll
	OverflowResultAuto
)

// DirectionalOverflow is one axis's resolved overflow outcome: the kind
// plus how much content overflows the box, if any. HasAmount is set when
// §4.9 step 2's overflow_amount is negative; Amount then holds its
// magnitude as a positive value.
type DirectionalOverflow struct {
	Kind     OverflowKind
	HasAmount bool
	Amount   dimen.Dimen
}
