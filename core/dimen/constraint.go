package dimen

// WhConstraint is a resolved size constraint on one axis, as handed from a
// container to one of its children during width/height solving (§3.1,
// §4.4). The zero value is Unconstrained.
type WhConstraint struct {
	kind     whKind
	min, max Dimen
}

type whKind uint8

const (
	whUnconstrained whKind = iota
	whEqual
	whBetween
)

// Unconstrained returns a WhConstraint that places no bound on the child.
func Unconstrained() WhConstraint {
	return WhConstraint{kind: whUnconstrained}
}

// EqualTo returns a WhConstraint that pins the child to exactly px.
func EqualTo(px Dimen) WhConstraint {
	return WhConstraint{kind: whEqual, min: px, max: px}
}

// Between returns a WhConstraint bounding the child to [min, max]. If
// max < min, max is raised to min (construction must not produce an
// inverted range).
func Between(min, max Dimen) WhConstraint {
	if max < min {
		max = min
	}
	return WhConstraint{kind: whBetween, min: min, max: max}
}

// IsUnconstrained reports whether c places no bound on the child.
func (c WhConstraint) IsUnconstrained() bool {
	return c.kind == whUnconstrained
}

// IsEqual reports whether c pins the child to an exact size.
func (c WhConstraint) IsEqual() bool {
	return c.kind == whEqual
}

// MinNeededSpace returns the minimum size the child must be given.
// Unconstrained.min_needed ≡ 0, per §3.1.
func (c WhConstraint) MinNeededSpace() Dimen {
	if c.kind == whUnconstrained {
		return 0
	}
	return c.min
}

// MaxAvailableSpace returns the maximum size the child may be given.
// EqualTo.max ≡ v, per §3.1. Unconstrained has no finite ceiling.
func (c WhConstraint) MaxAvailableSpace() Dimen {
	if c.kind == whUnconstrained {
		return Infinity
	}
	return c.max
}

// Clamp fits d within the constraint's [min, max] range.
func (c WhConstraint) Clamp(d Dimen) Dimen {
	if c.kind == whUnconstrained {
		return d
	}
	return Clamp(d, c.min, c.max)
}

func (c WhConstraint) String() string {
	switch c.kind {
	case whEqual:
		return "=" + c.min.String()
	case whBetween:
		return "[" + c.min.String() + ".." + c.max.String() + "]"
	default:
		return "unconstrained"
	}
}

// AvailableSpace is the token passed into inline layout (§3.1, §6.3): a
// definite pixel width, or one of two intrinsic-measurement modes.
type AvailableSpace struct {
	kind asKind
	px   Dimen
}

type asKind uint8

const (
	asDefinite asKind = iota
	asMinContent
	asMaxContent
)

// Definite returns an AvailableSpace pinned to an exact pixel width.
func Definite(px Dimen) AvailableSpace {
	return AvailableSpace{kind: asDefinite, px: px}
}

// MinContent returns the min-content measurement token.
func MinContent() AvailableSpace {
	return AvailableSpace{kind: asMinContent}
}

// MaxContent returns the max-content measurement token.
func MaxContent() AvailableSpace {
	return AvailableSpace{kind: asMaxContent}
}

// IsDefinite reports whether this is a pinned pixel width.
func (a AvailableSpace) IsDefinite() bool {
	return a.kind == asDefinite
}

// IsMinContent reports whether this is the min-content token.
func (a AvailableSpace) IsMinContent() bool {
	return a.kind == asMinContent
}

// IsMaxContent reports whether this is the max-content token.
func (a AvailableSpace) IsMaxContent() bool {
	return a.kind == asMaxContent
}

// Px returns the pixel value of a. Only meaningful if IsDefinite().
func (a AvailableSpace) Px() Dimen {
	return a.px
}

// SameVariant reports whether a and b are both Definite and within
// epsilon of one another, or both the same indefinite variant. This is
// the cache-hit predicate of §4.7, minus the has_floats check (which the
// caller layers on top).
func (a AvailableSpace) SameVariant(b AvailableSpace, epsilon Dimen) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == asDefinite {
		d := a.px - b.px
		if d < 0 {
			d = -d
		}
		return d < epsilon
	}
	return true
}

func (a AvailableSpace) String() string {
	switch a.kind {
	case asDefinite:
		return "Definite(" + a.px.String() + ")"
	case asMinContent:
		return "MinContent"
	case asMaxContent:
		return "MaxContent"
	}
	return "?"
}
