/*
Package fontregistry is the default fontcap.FontLoader: it resolves a
family/weight/style triple to a font file on the host and parses it,
wiring golang.org/x/image/font/{sfnt,opentype} for metrics,
benoitkugler/textlayout for HarfBuzz shaping, flopp/go-findfont
for system font discovery, derekparker/trie for a family-name index, and
golang.org/x/image/font/basicfont as the deterministic fallback face.

Resolution order mirrors the teacher's ResolveTypeCase: first an
in-process cache, then a file-system scan via go-findfont, falling back
to basicfont when nothing on the host matches.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxkit.font.registry'.
func tracer() tracing.Trace {
	return tracing.Select("boxkit.font.registry")
}
