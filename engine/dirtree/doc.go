/*
Package dirtree draws directory trees from a sequence of depth levels.

The level sequence `1,2,3,2` denotes a root, a child of the root, a grandchild
and a second child of the root:

	x
	├─ x
	│  └─ x
	└─ x

Drawing works on a character grid rather than on a tree structure. Every
entry gets a skeleton row with a corner glyph (└) in the column of its
depth. The grid is then transposed and every column is scanned bottom-up:
the lowest corner of a vertical run stays a corner, corners above it become
tees (├) and blanks in between become bars (│). A node marker in the column
of the parent ends the run. Transposing back gives the finished drawing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dirtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'warp.engine'.
func tracer() tracing.Trace {
	return tracing.Select("warp.engine")
}
