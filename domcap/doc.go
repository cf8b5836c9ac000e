/*
Package domcap defines the narrow styled-DOM capability the layout core
reads through (spec §6.1): node identity, tree shape, node type, and
resolved CSS property lookup. The core never mutates the styled DOM —
every method here is a read.

A default adapter over golang.org/x/net/html plus a minimal cascadia-based
cascade lives in the htmladapter subpackage, for tests and the demo CLI.
Hosts embedding the real product are expected to supply their own
StyledDOM backed by their actual style/cascade engine.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domcap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxkit.domcap'.
func tracer() tracing.Trace {
	return tracing.Select("boxkit.domcap")
}
