/*
Package boxtree holds the layout tree data model: the arena of
LayoutNodes everything downstream (style/css resolution, the
width/height/position solvers, the inline cache) operates over. The
tree itself, with its anonymous boxes and formatting contexts, is
built by layout.Build.

The layout tree's parent/child links and IFC membership back-pointers
form cycles, so it is represented as an arena of LayoutNodes addressed by
integer NodeIndex rather than a pointer tree — the teacher's own
`engine/tree` package (a generic pointer tree) does not appear in this
tree for that reason; see DESIGN.md.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxkit.boxtree'.
func tracer() tracing.Trace {
	return tracing.Select("boxkit.boxtree")
}
