/*
Package grid draws fixed-width character grids: matrices, cases,
Markdown tables and fraction bars.

Every drawing is built line by line from a row template. Matrices alternate
content rows, which hold one node marker per column, with blank spacer rows.
Bordered shapes pick distinct glyphs for the top, middle and bottom lines,
as multi-line brackets are assembled from pieces (⎛ ⎜ ⎝). Curly braces have
a hinge glyph (⎨) at their vertical midpoint.

With a compact layout spacer rows are left out, except for one hinge-only
row in curly braces with an even number of rows.

Drawings have no trailing newline.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'warp.engine'.
func tracer() tracing.Trace {
	return tracing.Select("warp.engine")
}
