package dirtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/warp/core/dimen"
)

const (
	corner = '└'
	tee    = '├'
	bar    = '│'
	blank  = ' '
)

// Render draws a tree for a validated level sequence, using marker for
// nodes. The first level must be 1 and no level may exceed its predecessor
// by more than 1.
func Render(levels []int, marker rune) string {
	rows := skeleton(levels, marker)
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	for i, r := range rows {
		for len(r) < width {
			r = append(r, blank)
		}
		rows[i] = r
	}
	cols := transpose(rows, width)
	for _, c := range cols {
		reverse(c)
		join(c, marker)
		reverse(c)
	}
	rows = transpose(cols, len(levels))
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.TrimRight(string(r), " ")
	}
	tracer().Debugf("dirtree with %d entries, %d columns", len(levels), width)
	return strings.Join(lines, "\n")
}

// ParseAndRender validates an argument like `1,2,3,2` and draws its tree.
// The drawing is preceded by a comment line holding the argument, which
// keeps the tree re-editable in Markdown documents.
func ParseAndRender(arg string, marker rune) (string, error) {
	levels, err := dimen.ParseLevels(arg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<!-- command: %s -->\n%s", arg, Render(levels, marker)), nil
}

// skeleton creates one row per entry: the root is a bare marker, deeper
// entries are indented by 3 columns per level below 2 and hang from a corner.
func skeleton(levels []int, marker rune) [][]rune {
	rows := make([][]rune, len(levels))
	for i, level := range levels {
		if level <= 1 {
			rows[i] = []rune{marker}
			continue
		}
		row := []rune(strings.Repeat(" ", 3*(level-2)))
		rows[i] = append(row, corner, '─', blank, marker)
	}
	return rows
}

// transpose turns rows of equal length width into width columns.
func transpose(grid [][]rune, width int) [][]rune {
	t := make([][]rune, width)
	for j := range t {
		t[j] = make([]rune, len(grid))
		for i, row := range grid {
			t[j][i] = row[j]
		}
	}
	return t
}

func reverse(r []rune) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// join connects the corners of a (reversed) column. The first corner of a
// run is kept, further corners become tees and blanks become bars, until a
// node marker ends the run.
func join(col []rune, marker rune) {
	inRun := false
	for i, c := range col {
		switch {
		case c == corner && !inRun:
			inRun = true
		case c == corner:
			col[i] = tee
		case c == blank && inRun:
			col[i] = bar
		case c == marker:
			inRun = false
		}
	}
}
