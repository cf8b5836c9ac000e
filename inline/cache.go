package inline

import "github.com/npillmayer/boxkit/core/dimen"

// cacheEpsilon is the "less than 0.1px" tolerance §4.7 allows between
// two Definite widths before they're considered the same request.
const cacheEpsilon = dimen.Dimen(dimen.BP) / 10

// ValidFor reports whether a cached inline layout can be reused for a
// new request, per §4.7's validity predicate:
//
//   - both widths are Definite and differ by less than 0.1px, or
//   - both widths are the same indefinite variant (both MinContent or
//     both MaxContent), and
//   - either the float-ness matches, or the cache has floats and the
//     request doesn't (a float-aware cache is strictly more correct, so
//     it's reused rather than recomputed).
func (c CachedInlineLayout) ValidFor(requestWidth dimen.AvailableSpace, requestHasFloats bool) bool {
	if !c.Width.SameVariant(requestWidth, cacheEpsilon) {
		return false
	}
	if c.Floats == requestHasFloats {
		return true
	}
	return c.Floats && !requestHasFloats
}
