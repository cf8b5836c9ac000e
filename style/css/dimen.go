package css

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/boxkit/core/dimen"
	. "github.com/npillmayer/boxkit/core/percent"
)

const (
	dimenUnset uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content-dependent dimensions (CSS `fit-content`/`min-content`/`max-content`).
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an unresolved CSS dimension: one of auto, inherit, initial, a
// fixed pixel value, a percentage, or a font-/viewport-relative length.
// Resolution into a pixel value happens in ResolveBoxProps (§4.1), which
// needs the containing block, viewport and font sizes that DimenT itself
// does not carry.
type DimenT struct {
	d       dimen.Dimen
	percent Percent
	flags   uint32
}

// Auto returns the CSS `auto` keyword as a DimenT.
func Auto() DimenT { return DimenT{flags: dimenAuto} }

// Inherit returns the CSS `inherit` keyword as a DimenT.
func Inherit() DimenT { return DimenT{flags: dimenInherit} }

// Initial returns the CSS `initial` keyword as a DimenT.
func Initial() DimenT { return DimenT{flags: dimenInitial} }

// JustDimen creates a CSS dimension with a fixed pixel value of x.
func JustDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// DimenOption returns an optional dimension type from a property string.
// It never returns an error, even with illegal input, but instead returns
// an unset dimension.
func DimenOption(p Property) DimenT {
	switch p {
	case NullStyle:
		return DimenT{}
	case "auto":
		return DimenT{flags: dimenAuto}
	case "initial":
		return DimenT{flags: dimenInitial}
	case "inherit":
		return DimenT{flags: dimenInherit}
	case "fit-content":
		return DimenT{flags: DimenContentFit}
	case "min-content":
		return DimenT{flags: DimenContentMin}
	case "max-content":
		return DimenT{flags: DimenContentMax}
	}
	d, err := ParseDimen(string(p))
	if err != nil {
		tracer().Debugf("dimension option from property %q: %v", p, err)
		return DimenT{}
	}
	return d
}

// --- fluent matching ---------------------------------------------------

// Match starts a fluent, nil-chaining match against d: each predicate returns either the receiver (continue matching) or nil
// (no match), so `d.Match().IsKind(x).Just(&out)` reads as a single
// conditional without an explicit type switch.
func (d DimenT) Match() *DMatcher {
	return &DMatcher{dimen: d}
}

// DMatcher is the chainable matcher returned by DimenT.Match.
type DMatcher struct {
	dimen DimenT
}

// IsKind continues the match only if d is the same broad kind as other
// (both absolute, both relative-with-same-unit-class, or both content
// dependent).
func (m *DMatcher) IsKind(d DimenT) *DMatcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent > 0) != (d.flags&dimenPercent > 0) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

// Unset continues the match only if d is unset.
func (m *DMatcher) Unset() *DMatcher {
	if m == nil || m.dimen.flags == dimenUnset {
		return m
	}
	return nil
}

// Just continues the match only if d is an absolute pixel dimension,
// writing it to out.
func (m *DMatcher) Just(out *dimen.Dimen) *DMatcher {
	if m != nil && m.dimen.flags&dimenAbsolute > 0 {
		if out != nil {
			*out = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage continues the match only if d is a percentage, writing it
// to out.
func (m *DMatcher) Percentage(out *Percent) *DMatcher {
	if m != nil && m.dimen.flags&relativeMask == dimenPercent {
		if out != nil {
			*out = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- predicates ----------------------------------------------------------

// IsNone returns true if d is unset.
func (d DimenT) IsNone() bool {
	return d.flags == dimenUnset
}

// IsAuto returns true if d is the `auto` keyword.
func (d DimenT) IsAuto() bool {
	return d.flags == dimenAuto
}

// IsRelative returns true if d represents a valid relative dimension
// (`%`, `em`, `vw`, etc.).
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// IsPercent returns true if d represents a percentage dimension (`%`).
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsAbsolute returns true if d represents a fixed pixel dimension.
func (d DimenT) IsAbsolute() bool {
	return d.flags == dimenAbsolute
}

// IsFontRelative returns true if d is expressed in em/ex/ch/rem.
func (d DimenT) IsFontRelative() bool {
	switch d.flags & relativeMask {
	case dimenEM, dimenEX, dimenCH, dimenREM:
		return true
	}
	return false
}

// IsViewportRelative returns true if d is expressed in vw/vh/vmin/vmax.
func (d DimenT) IsViewportRelative() bool {
	switch d.flags & relativeMask {
	case dimenVW, dimenVH, dimenVMIN, dimenVMAX:
		return true
	}
	return false
}

// IsRootFontRelative returns true if d is expressed in rem.
func (d DimenT) IsRootFontRelative() bool {
	return d.flags&relativeMask == dimenREM
}

// AbsoluteValue returns the raw pixel value of d; only meaningful when
// IsAbsolute() is true.
func (d DimenT) AbsoluteValue() dimen.Dimen { return d.d }

// PercentValue returns the raw percentage of d; only meaningful when
// IsPercent() is true.
func (d DimenT) PercentValue() Percent { return d.percent }

// RelativeValue returns the raw numeric value of a font-/viewport-relative
// dimension (e.g. the `2` in `2em`); only meaningful when IsRelative()
// is true and not a percentage.
func (d DimenT) RelativeValue() dimen.Dimen { return d.d }

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(%|[a-zA-Z]{2,4})?$`)

// ParseDimen parses a string to return an unresolved dimension. Syntax is
// CSS Unit, plus the border-width keywords `thin`/`medium`/`thick`.
//
//	15px
//	80%
//	-33rem
func ParseDimen(s string) (DimenT, error) {
	if s == "" || s == "none" {
		return DimenT{}, nil
	}
	switch s {
	case "thin":
		return JustDimen(dimen.PX / 2), nil
	case "medium":
		return JustDimen(dimen.PX), nil
	case "thick":
		return JustDimen(dimen.PX * 2), nil
	}
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return DimenT{}, errors.New("format error parsing dimension")
	}
	scale := dimen.SP
	dim := JustDimen(0)
	if len(d) > 2 && d[2] != "" {
		switch d[2] {
		case "pt", "PT":
			scale = dimen.PT
		case "mm", "MM":
			scale = dimen.MM
		case "bp", "px", "BP", "PX":
			scale = dimen.BP
		case "cm", "CM":
			scale = dimen.CM
		case "in", "IN":
			scale = dimen.IN
		case "sp", "SP":
			scale = dimen.SP
		default:
			u := strings.ToLower(d[2])
			if unit, ok := relUnitStringMap[u]; ok {
				dim = DimenT{}
				dim.flags = unit
			} else {
				return DimenT{}, errors.New("format error parsing dimension")
			}
		}
	}
	n, err := strconv.Atoi(d[1])
	if err != nil { // cannot happen: regexp already constrains d[1] to digits
		return DimenT{}, errors.New("format error parsing dimension")
	}
	if dim.flags&relativeMask > 0 && dim.flags != dimenPercent {
		dim.d = dimen.Dimen(n)
	} else if dim.flags == dimenPercent {
		dim.percent = FromInt(n)
	} else {
		dim.d = dimen.Dimen(n) * scale
	}
	return dim, nil
}

// UnitString returns "sp" (scaled points) for non-relative dimensions and
// the unit string for relative dimensions.
func (d DimenT) UnitString() string {
	if d.IsRelative() {
		if unit, ok := relUnitMap[d.flags&relativeMask]; ok {
			return unit
		}
	}
	return "sp"
}

var relUnitMap = map[uint32]string{
	dimenEM:      "em",
	dimenEX:      "ex",
	dimenCH:      "ch",
	dimenREM:     "rem",
	dimenVW:      "vw",
	dimenVH:      "vh",
	dimenVMIN:    "vmin",
	dimenVMAX:    "vmax",
	dimenPercent: "%",
}

var relUnitStringMap = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
	"%":    dimenPercent,
}
