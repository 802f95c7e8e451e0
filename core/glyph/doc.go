/*
Package glyph holds the glyph tables of warp.

A glyph table is an ordered, immutable sequence of (token, glyph) pairs for one
symbol family: superscripts, subscripts, base symbols, diacritical marks, math
font alphabets, roman numerals and the fraction/root shorthands. Tables are
created once during package initialization and are never mutated afterwards,
therefore they may be shared between goroutines without locking.

Order matters: substitution engines walk a table front to back, replacing every
occurrence of a token. Tables are laid out so that no glyph produced by an
earlier entry can be matched by the token of a later entry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'warp.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("warp.glyphs")
}
