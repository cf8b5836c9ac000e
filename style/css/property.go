package css

// Property is a raw CSS property value as read from the styled DOM
// capability (spec §6.1's css(n, property) -> ResolvedValue). It is the
// string the stylesheet or user-agent default produced, before this
// package turns it into a typed, resolved value.
type Property string

// NullStyle marks the absence of a declared or inherited value for a
// property; callers fall back to the initial value for that property.
const NullStyle Property = ""
