package grid

import (
	"strings"

	params "github.com/npillmayer/warp/core/parameters"
)

// Shape selects the border of a matrix or cases.
type Shape int

// Matrix shapes. Cases accept Brace and Bracket only.
const (
	Plain      Shape = iota // no border
	Paren                   // ( )
	Bracket                 // [ ]
	Brace                   // { }
	Pipe                    // | |
	DoublePipe              // ‖ ‖
)

var shapeNames = [...]string{"matrix", "pmatrix", "bmatrix", "Bmatrix", "vmatrix", "Vmatrix"}

func (sh Shape) String() string {
	if sh < Plain || sh > DoublePipe {
		return "unknown shape"
	}
	return shapeNames[sh]
}

// border holds the glyphs of a shape, left and right.
type border struct {
	flat, top, mid, hinge, bottom [2]string
}

var borders = [...]border{
	Plain:      {flat: [2]string{" ", " "}, top: [2]string{" ", " "}, mid: [2]string{" ", " "}, hinge: [2]string{" ", " "}, bottom: [2]string{" ", " "}},
	Paren:      {flat: [2]string{"(", ")"}, top: [2]string{"⎛", "⎞"}, mid: [2]string{"⎜", "⎟"}, hinge: [2]string{"⎜", "⎟"}, bottom: [2]string{"⎝", "⎠"}},
	Bracket:    {flat: [2]string{"[", "]"}, top: [2]string{"⎡", "⎤"}, mid: [2]string{"⎢", "⎥"}, hinge: [2]string{"⎢", "⎥"}, bottom: [2]string{"⎣", "⎦"}},
	Brace:      {flat: [2]string{"{", "}"}, top: [2]string{"⎧", "⎫"}, mid: [2]string{"⎪", "⎪"}, hinge: [2]string{"⎨", "⎬"}, bottom: [2]string{"⎩", "⎭"}},
	Pipe:       {flat: [2]string{"⎢", "⎥"}, top: [2]string{"⎢", "⎥"}, mid: [2]string{"⎢", "⎥"}, hinge: [2]string{"⎢", "⎥"}, bottom: [2]string{"⎢", "⎥"}},
	DoublePipe: {flat: [2]string{"║", "║"}, top: [2]string{"║", "║"}, mid: [2]string{"║", "║"}, hinge: [2]string{"║", "║"}, bottom: [2]string{"║", "║"}},
}

// glyphs returns the border glyphs for line i of n lines.
func (b border) glyphs(i, n int) [2]string {
	switch {
	case n == 1:
		return b.flat
	case i == 0:
		return b.top
	case i == n-1:
		return b.bottom
	case i == (n-1)/2:
		return b.hinge
	}
	return b.mid
}

// Layout holds the rendering parameters of grids.
type Layout struct {
	Marker       string // placeholder for a cell, a single character
	Compact      bool   // omit spacer rows
	TableWidth   int    // default column width of tables
	MaxDimension int    // upper bound for every dimension
}

// DefaultLayout returns the layout of a fresh set of rendering parameters.
func DefaultLayout() Layout {
	return LayoutFrom(params.NewRenderingRegisters())
}

// LayoutFrom copies grid parameters from a set of rendering registers.
func LayoutFrom(regs *params.RenderingRegisters) Layout {
	return Layout{
		Marker:       regs.S(params.P_NODEMARKER),
		Compact:      regs.B(params.P_COMPACT),
		TableWidth:   regs.N(params.P_TABLEWIDTH),
		MaxDimension: regs.N(params.P_MAXDIMENSION),
	}
}

// rowContent and rowSpacer are the kinds of matrix lines.
const (
	rowContent = iota
	rowSpacer
)

// rowKinds lays out the lines for nrows content rows.
func rowKinds(nrows int, compact bool, hinged bool) []int {
	if !compact {
		kinds := make([]int, 2*nrows-1)
		for i := range kinds {
			kinds[i] = i % 2
		}
		return kinds
	}
	kinds := make([]int, nrows, nrows+1)
	if hinged && nrows%2 == 0 && nrows > 1 {
		kinds = append(kinds, rowContent)
		kinds[nrows/2] = rowSpacer // hinge only
	}
	return kinds
}

// Matrix draws a matrix with nrows × ncols cells. Both dimensions must be ≥ 1.
//
// Without layout.Compact, content rows are separated by spacer rows, so a
// matrix of 3 rows takes 5 lines. A compact matrix takes one line per row.
func Matrix(shape Shape, nrows, ncols int, layout Layout) string {
	cells := make([]string, ncols)
	for i := range cells {
		cells[i] = layout.Marker
	}
	content := " " + strings.Join(cells, "  ") + " "
	spacer := strings.Repeat(" ", 3*ncols)
	b := borders[shape]
	kinds := rowKinds(nrows, layout.Compact, shape == Brace)
	lines := make([]string, len(kinds))
	for i, k := range kinds {
		g := b.glyphs(i, len(kinds))
		if k == rowSpacer {
			lines[i] = g[0] + spacer + g[1]
		} else {
			lines[i] = g[0] + content + g[1]
		}
	}
	tracer().Debugf("%s %d×%d: %d lines", shape, nrows, ncols, len(lines))
	return strings.Join(lines, "\n")
}

// Cases draws a left brace (Brace) or bracket (Bracket) in front of nrows
// cases.
func Cases(shape Shape, nrows int, layout Layout) string {
	if shape != Brace && shape != Bracket {
		panic("cases must be drawn with braces or brackets")
	}
	b := borders[shape]
	kinds := rowKinds(nrows, layout.Compact, shape == Brace)
	lines := make([]string, len(kinds))
	for i, k := range kinds {
		g := b.glyphs(i, len(kinds))
		if k == rowSpacer {
			lines[i] = g[0]
		} else {
			lines[i] = g[0] + " " + layout.Marker
		}
	}
	return strings.Join(lines, "\n")
}

// Table draws a Markdown table with a blank header row, a separator row
// and nrows blank body rows. Every cell is width characters wide.
func Table(nrows, ncols, width int) string {
	blank := strings.Repeat("| "+strings.Repeat(" ", width)+" ", ncols) + "|"
	sep := strings.Repeat("| "+strings.Repeat("-", width)+" ", ncols) + "|"
	lines := make([]string, 0, nrows+2)
	lines = append(lines, blank, sep)
	for i := 0; i < nrows; i++ {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// FractionBar draws a three-line fraction: a blank line for the numerator,
// a bar of n+2 horizontal lines and a blank line for the denominator.
func FractionBar(n int) string {
	blank := strings.Repeat(" ", n+2)
	return blank + "\n" + strings.Repeat("―", n+2) + "\n" + blank
}
