package css

import (
	"github.com/npillmayer/boxkit/core/dimen"
)

// Edge indexes the four box edges, clockwise from the top — matching the
// teacher's `frame.Top/Right/Bottom/Left` convention.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

// UnresolvedBoxProps holds the four margin/padding/border-width edges as
// raw, unresolved CSS dimensions (§3.1 `unresolved_box_props`). Each edge
// is independent and may be `auto` (margins only), a length, a
// percentage, or a font-/viewport-relative unit.
type UnresolvedBoxProps struct {
	Margin      [4]DimenT
	Padding     [4]DimenT
	BorderWidth [4]DimenT
	Width       DimenT
	Height      DimenT
	MinWidth    DimenT
	MaxWidth    DimenT
	MinHeight   DimenT
	MaxHeight   DimenT

	BorderBoxSizing bool // from `box-sizing: border-box`
}

// ResolutionContext carries the values a box-property resolution needs
// beyond the raw CSS (§4.1): the containing block's content-box size,
// the viewport size, and the font sizes used for em/rem.
type ResolutionContext struct {
	ContainingBlockWidth  dimen.Dimen
	ContainingBlockHeight dimen.Dimen
	ViewportWidth         dimen.Dimen
	ViewportHeight        dimen.Dimen
	FontSizePx            dimen.Dimen // this element's computed font-size
	RootFontSizePx        dimen.Dimen // the root element's font-size, for rem
}

// BoxProps holds resolved pixel values for the four margin/padding/
// border edges, plus which margins were `auto` (§3.1 `box_props`).
type BoxProps struct {
	Margin        [4]dimen.Dimen
	MarginIsAuto  [4]bool
	Padding       [4]dimen.Dimen
	BorderWidth   [4]dimen.Dimen
	Width         dimen.Dimen
	WidthIsAuto   bool
	Height        dimen.Dimen
	HeightIsAuto  bool
	MinWidth      dimen.Dimen
	MaxWidth      dimen.Dimen
	MinHeight     dimen.Dimen
	MaxHeight     dimen.Dimen
	HasMaxWidth   bool
	HasMaxHeight  bool
	BorderBoxSizing bool
}

// resolveEdge resolves one dimension against the resolution context.
// isVertical selects which axis a percentage resolves against: per
// spec §4.1, percentages on margin/padding resolve against the
// containing block's *inline* (width) axis regardless of which physical
// edge they appear on — so isVertical is accepted for symmetry/clarity
// at call sites but does not change which axis is used.
func resolveEdge(d DimenT, rc ResolutionContext, _ bool) (px dimen.Dimen, isAuto bool) {
	switch {
	case d.IsNone():
		return 0, false
	case d.IsAuto():
		return 0, true
	case d.IsAbsolute():
		return d.AbsoluteValue(), false
	case d.IsPercent():
		pct := d.PercentValue()
		return dimen.Dimen(int64(rc.ContainingBlockWidth) * int64(pct) / 100), false
	case d.IsRootFontRelative():
		return d.RelativeValue() * rc.RootFontSizePx / dimen.SP, false
	case d.IsFontRelative():
		return d.RelativeValue() * rc.FontSizePx / dimen.SP, false
	case d.flags == dimenVW:
		return dimen.Dimen(int64(d.RelativeValue()) * int64(rc.ViewportWidth) / 100 / int64(dimen.SP)), false
	case d.flags == dimenVH:
		return dimen.Dimen(int64(d.RelativeValue()) * int64(rc.ViewportHeight) / 100 / int64(dimen.SP)), false
	default:
		// initial/inherit/content-dependent keywords are resolved by the
		// intrinsic sizer or the cascade, not here; use 0, not flagged auto.
		tracer().Debugf("resolveEdge: unresolved keyword dimension %v, using 0", d)
		return 0, false
	}
}

// ResolveBoxProps implements §4.1: turns raw CSS length/percentage/auto
// values into resolved pixel margins, padding, borders, width and height,
// given the containing block. Resolution is idempotent (§3.2,
// §8.2 "box-property resolution idempotence") — calling it twice with
// the same inputs produces byte-identical output, since it is a pure
// function of (props, rc) with no hidden state.
func ResolveBoxProps(props UnresolvedBoxProps, rc ResolutionContext) BoxProps {
	var out BoxProps
	out.BorderBoxSizing = props.BorderBoxSizing
	for i := 0; i < 4; i++ {
		vertical := Edge(i) == Top || Edge(i) == Bottom
		mpx, mauto := resolveEdge(props.Margin[i], rc, vertical)
		out.Margin[i], out.MarginIsAuto[i] = mpx, mauto

		ppx, _ := resolveEdge(props.Padding[i], rc, vertical)
		out.Padding[i] = dimen.Max(ppx, 0)

		bpx, _ := resolveEdge(props.BorderWidth[i], rc, vertical)
		out.BorderWidth[i] = dimen.Max(bpx, 0)
	}

	wpx, wauto := resolveEdge(props.Width, rc, false)
	out.Width, out.WidthIsAuto = wpx, wauto || props.Width.IsNone()

	hpx, hauto := resolveEdge(props.Height, rc, true)
	out.Height, out.HeightIsAuto = hpx, hauto || props.Height.IsNone()

	if !props.MinWidth.IsNone() {
		out.MinWidth, _ = resolveEdge(props.MinWidth, rc, false)
	}
	if !props.MaxWidth.IsNone() {
		out.MaxWidth, _ = resolveEdge(props.MaxWidth, rc, false)
		out.HasMaxWidth = true
	}
	if !props.MinHeight.IsNone() {
		out.MinHeight, _ = resolveEdge(props.MinHeight, rc, true)
	}
	if !props.MaxHeight.IsNone() {
		out.MaxHeight, _ = resolveEdge(props.MaxHeight, rc, true)
		out.HasMaxHeight = true
	}
	return out
}

// ContentWidth returns the resolved content-box width, given the
// border-box width already assigned by the solver. The width solver
// stores border-box widths under both box-sizing values (it adds padding
// and border to an explicit content-box width), so padding and border
// are subtracted either way.
func (b BoxProps) ContentWidth(borderBoxWidth dimen.Dimen) dimen.Dimen {
	w := borderBoxWidth - b.Padding[Left] - b.Padding[Right] - b.BorderWidth[Left] - b.BorderWidth[Right]
	return dimen.Max(w, 0)
}

// DecorationWidth returns the combined horizontal padding+border, i.e.
// the gap between content-box width and border-box width.
func (b BoxProps) DecorationWidth() dimen.Dimen {
	return b.Padding[Left] + b.Padding[Right] + b.BorderWidth[Left] + b.BorderWidth[Right]
}

// DecorationHeight returns the combined vertical padding+border.
func (b BoxProps) DecorationHeight() dimen.Dimen {
	return b.Padding[Top] + b.Padding[Bottom] + b.BorderWidth[Top] + b.BorderWidth[Bottom]
}

// UnresolvedOffsets holds the raw CSS `top`/`right`/`bottom`/`left`
// values used to place a positioned box (§4.6), independent of the
// box-model edges in UnresolvedBoxProps.
type UnresolvedOffsets struct {
	Top, Right, Bottom, Left DimenT
}

// Offsets holds resolved pixel offsets plus which were `auto`.
type Offsets struct {
	Top, Right, Bottom, Left                         dimen.Dimen
	TopIsAuto, RightIsAuto, BottomIsAuto, LeftIsAuto bool
}

// ResolveOffsets resolves top/right/bottom/left against a containing
// block, mirroring ResolveBoxProps (§4.1) for the positioning offsets.
// An unspecified offset resolves the same as `auto` — both mean "not
// used to place this box" to the position solver.
func ResolveOffsets(o UnresolvedOffsets, rc ResolutionContext) Offsets {
	var out Offsets
	out.Top, out.TopIsAuto = resolveOffsetEdge(o.Top, rc)
	out.Right, out.RightIsAuto = resolveOffsetEdge(o.Right, rc)
	out.Bottom, out.BottomIsAuto = resolveOffsetEdge(o.Bottom, rc)
	out.Left, out.LeftIsAuto = resolveOffsetEdge(o.Left, rc)
	return out
}

func resolveOffsetEdge(d DimenT, rc ResolutionContext) (dimen.Dimen, bool) {
	if d.IsNone() {
		return 0, true
	}
	px, isAuto := resolveEdge(d, rc, true)
	return px, isAuto
}

// CollapseMargins collapses two adjacent vertical margins per CSS 2.1:
// the maximum of the positive margins plus the minimum of the negative
// margins (§4.5). Mirrors the teacher's frame.CollapseMargins.
func CollapseMargins(m1, m2 dimen.Dimen) dimen.Dimen {
	pos := dimen.Max(dimen.Max(m1, 0), dimen.Max(m2, 0))
	neg := dimen.Min(dimen.Min(m1, 0), dimen.Min(m2, 0))
	return pos + neg
}
