/*
Package subst implements the table-driven substitution engines.

Substitution maps an argument string to glyphs by walking a glyph table front
to back. Every engine is a pure function of its inputs; glyph tables are
immutable, so engines may be called concurrently.

Substitute is the general engine for superscripts and subscripts.
ComposeDiacritical appends a combining mark to every user-perceived character.
StyleSubstitute and Stylize map text to math alphabets. Fraction composes
`{x}{y}` fractions from superscript and subscript glyphs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package subst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'warp.engine'.
func tracer() tracing.Trace {
	return tracing.Select("warp.engine")
}
