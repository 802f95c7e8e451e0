package subst

import (
	"regexp"
	"strings"

	"github.com/npillmayer/warp/core"
	"github.com/npillmayer/warp/core/glyph"
)

var fracPattern = regexp.MustCompile(`^\{(.*)\}\{(.*)\}`)

// Fraction composes a fraction from an argument of the form `{x}{y}`.
// Characters of x are set as superscripts, characters of y as subscripts,
// separated by a fraction slash. Characters without such a glyph are dropped.
//
// The argument must contain exactly two opening and two closing braces;
// otherwise an error with code core.EPATTERN is returned.
func Fraction(arg string) (string, error) {
	m := fracPattern.FindStringSubmatch(arg)
	if m == nil || strings.Count(arg, "{") != 2 || strings.Count(arg, "}") != 2 {
		return "", core.Error(core.EPATTERN,
			"Fraction must be written as `{x}{y}`. Wrong input: `%s`.", arg)
	}
	var b strings.Builder
	scriptChars(&b, m[1], glyph.Superscript)
	b.WriteString(glyph.FractionSlash)
	scriptChars(&b, m[2], glyph.Subscript)
	return b.String(), nil
}

func scriptChars(b *strings.Builder, s string, table *glyph.Table) {
	for _, r := range s {
		if g, ok := table.Lookup(string(r)); ok {
			b.WriteString(g)
		}
	}
}
