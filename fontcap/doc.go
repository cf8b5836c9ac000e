/*
Package fontcap defines the font-loader capability the layout core
consumes (spec §6.2): resolving a family/weight/style to a font handle,
loading it, and querying metrics and advances. Font file loading and
glyph rasterization proper are out of the core's scope (§1); fontcap
only needs enough of a font to drive box sizing — ascent/descent/
units-per-em and per-glyph advance widths.

The default implementation (package fontregistry) wires
golang.org/x/image/font/{sfnt,opentype} for metrics,
benoitkugler/textlayout for HarfBuzz shaping, flopp/go-findfont for system font
discovery, derekparker/trie for family-name indexing, and
golang.org/x/image/font/basicfont as a deterministic fallback face used
when resolution fails (§7: "missing font → text renders as blank with
correct box size for the substitute metrics").

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontcap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxkit.font'.
func tracer() tracing.Trace {
	return tracing.Select("boxkit.font")
}
