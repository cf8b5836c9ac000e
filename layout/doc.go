/*
Package layout is the orchestrating core: it builds a LayoutTree from a
styled DOM (§4.2), resolves box properties (§4.1), computes intrinsic
sizes (§4.3), solves widths (§4.4) and heights (§4.5, with margin
collapsing), assigns positions (§4.6), drives the inline layout
capability through its cache (§4.7), propagates dirty flags (§4.8), and
resolves overflow/scrollbars (§4.9).

The control flow mirrors the teacher's layout.Context/NewContextFor
dispatch (engine/frame/layout/context.go) and its driver-function style
(engine/frame/layout/layout.go) generalized from the teacher's two
formatting contexts (block, inline) to the full set this module's
LayoutTree distinguishes (§4.2.1).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxkit.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxkit.layout")
}
