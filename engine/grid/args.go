package grid

import (
	"fmt"

	"github.com/npillmayer/warp/core"
	"github.com/npillmayer/warp/core/dimen"
)

// A Drawing is a validated and rendered grid.
type Drawing struct {
	Text        string
	Description string // e.g. "pmatrix [3 x 4]"
}

// ParseMatrix draws a matrix from an argument `m,n` or `n` (square matrix).
func ParseMatrix(shape Shape, arg string, layout Layout) (Drawing, error) {
	spec, err := dimen.Parse(shape.String(), arg, layout.MaxDimension, 1, 2)
	if err != nil {
		return Drawing{}, err
	}
	nrows := spec[0]
	ncols := spec.Get(1, nrows)
	return Drawing{
		Text:        Matrix(shape, nrows, ncols, layout),
		Description: fmt.Sprintf("%s [%d x %d]", shape, nrows, ncols),
	}, nil
}

// ParseCases draws cases from an argument `n`.
func ParseCases(shape Shape, arg string, layout Layout) (Drawing, error) {
	name := "cases"
	if shape == Bracket {
		name = "sqcases"
	}
	spec, err := dimen.Parse(name, arg, layout.MaxDimension, 1)
	if err != nil {
		return Drawing{}, err
	}
	return Drawing{
		Text:        Cases(shape, spec[0], layout),
		Description: fmt.Sprintf("%s [%d]", name, spec[0]),
	}, nil
}

// ParseTable draws a table from an argument `rows,cols` or `rows,cols,width`.
// The width defaults to layout.TableWidth.
func ParseTable(arg string, layout Layout) (Drawing, error) {
	spec, err := dimen.Parse("table", arg, layout.MaxDimension, 2, 3)
	if err != nil {
		return Drawing{}, err
	}
	nrows, ncols, width := spec[0], spec[1], spec.Get(2, layout.TableWidth)
	return Drawing{
		Text:        Table(nrows, ncols, width),
		Description: fmt.Sprintf("table [rows: %d, cols: %d, width: %d]", nrows, ncols, width),
	}, nil
}

// ParseFractionBar draws a fraction bar from an argument `n`, the length of
// the bar without its two boundary glyphs.
func ParseFractionBar(arg string, layout Layout) (Drawing, error) {
	n, ok := dimen.Atoi(arg)
	if !ok {
		return Drawing{}, core.Error(core.ENOTPOSINT,
			"Length of the fraction must be a positive integer. Wrong value: %s", arg)
	}
	if n < 1 {
		return Drawing{}, core.Error(core.ERANGE,
			"Length of the fraction must be ≥ 1. Wrong value: %s", arg)
	}
	if layout.MaxDimension != dimen.Unbounded && n > layout.MaxDimension {
		return Drawing{}, core.Error(core.ERANGE,
			"Length of the fraction must be ≤ %d. Wrong value: %s", layout.MaxDimension, arg)
	}
	return Drawing{
		Text:        FractionBar(n),
		Description: fmt.Sprintf("fraction [%d]", n),
	}, nil
}
