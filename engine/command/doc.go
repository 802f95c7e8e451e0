/*
Package command is the entry point to the rendering engines.

The Registry holds the closed set of commands. Every command belongs to a
family which selects the engine that renders the command's argument:

	Base         ^ _                  superscripts and subscripts
	Symbol       \alpha \infty …      a single glyph, no argument needed
	Diacritical  \hat \vec …          combining marks
	Font         \mathbb \textit …    math alphabets
	Roman        \RN \Rn              roman numerals
	Matrix       \pmatrix \cases …    matrices and cases
	Table        \table               Markdown tables
	Tree         \dirtree             directory trees
	Operation    \frac \Frac \sqrt    fractions and roots

A Dispatcher renders a command for an argument and returns a list of
results. Validation errors never escape the dispatcher: they are turned into
error results carrying a message for the user.

A Session wraps a dispatcher into the interaction model of a command palette:
select a command first, then type the argument, then choose a result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package command

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'warp.command'.
func tracer() tracing.Trace {
	return tracing.Select("warp.command")
}
