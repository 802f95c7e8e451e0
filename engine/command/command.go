package command

import (
	"fmt"

	"github.com/npillmayer/warp/core/glyph"
	"github.com/npillmayer/warp/engine/grid"
)

// Family is a class of commands sharing one rendering engine.
type Family int

// Command families.
const (
	Base Family = iota
	Symbol
	Diacritical
	Font
	Roman
	Matrix
	Table
	Tree
	Operation
)

var familyNames = [...]string{"base", "symbol", "diacritical", "font", "roman",
	"matrix", "table", "tree", "operation"}

func (f Family) String() string {
	if f < Base || f > Operation {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// operation discriminates the commands of family Operation.
type operation int

const (
	noOp operation = iota
	opFrac
	opFractionBar
	opRoot
)

// Command is a registered command. Commands are created by the registry
// only; the zero value is not a valid command.
type Command struct {
	Keyword     string // e.g. `\pmatrix`
	Family      Family
	Description string // human readable, e.g. "Parentheses; Round Brackets Matrix: (X)"
	//
	main  *glyph.Table // Base, Font, Roman
	extra *glyph.Table // Font
	glyph string       // Symbol: the symbol, Diacritical: the combining mark
	shape grid.Shape   // Matrix
	cases bool         // Matrix: cases instead of a matrix
	op    operation    // Operation
}

func (cmd Command) String() string {
	return fmt.Sprintf("%s (%s)", cmd.Keyword, cmd.Family)
}

// RenderResult is a single result of rendering a command.
type RenderResult struct {
	Label       string // what the result has been rendered from
	Description string // short description, e.g. "pmatrix [3 x 3]"
	DisplayText string // preview, or the error message for error results
	CopyText    string // payload to transfer to the destination
	IsError     bool
}

func (r RenderResult) String() string {
	if r.IsError {
		return "error: " + r.DisplayText
	}
	return fmt.Sprintf("%s → %q", r.Label, r.DisplayText)
}
