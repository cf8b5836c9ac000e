/*
Package inline implements the inline layout capability consumed by the
layout core (spec §6.3): turning a run of shaped words into a
UnifiedLayout of positioned line items, under a given available width
and a set of float holes to route around.

Word segmentation is grounded on the teacher's typesetting pipeline
(engine/frame/khipu/khipukamayuq.go), which chains a uax29.WordBreaker
through a uax/segment.Segmenter; line breaking here is a first-fit
greedy breaker in the idiom of the teacher's (unretrieved) firstfit.go,
rather than the teacher's full Knuth-Plass optimizer — the core only
needs one correct, terminating strategy, not optimal paragraph breaking.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxkit.inline'.
func tracer() tracing.Trace {
	return tracing.Select("boxkit.inline")
}
