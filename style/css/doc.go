/*
Package css holds resolved and unresolved CSS values used by the layout
core: dimensions, the box-property resolver, and the small closed-sum
enums (display, position, float, overflow, ...) the solver dispatches on.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxkit.style.css'.
func tracer() tracing.Trace {
	return tracing.Select("boxkit.style.css")
}
