package subst

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/warp/core/glyph"
)

func init() {
	grapheme.SetupGraphemeClasses()
}

// ComposeDiacritical appends mark to every character of input.
//
// If input as a whole names a base symbol (e.g. `\alpha`), the result is the
// symbol's glyph followed by mark. Otherwise input is split into grapheme
// clusters, each cluster is replaced by its base symbol if there is one, and
// mark is appended after every cluster. Clustering keeps marks out of the
// middle of characters which are already decomposed, e.g. "é".
//
// Empty input yields empty output. Bytes of input which are not valid UTF-8
// are composed as U+FFFD.
func ComposeDiacritical(input string, mark string) string {
	if input == "" {
		return ""
	}
	if !utf8.ValidString(input) {
		input = strings.ToValidUTF8(input, string(utf8.RuneError))
	}
	if g, ok := glyph.Symbols.Lookup(input); ok {
		return g + mark
	}
	gstr := grapheme.StringFromString(input)
	var b strings.Builder
	for i := 0; i < gstr.Len(); i++ {
		c := gstr.Nth(i)
		if g, ok := glyph.Symbols.Lookup(c); ok {
			c = g
		}
		b.WriteString(c)
		b.WriteString(mark)
	}
	tracer().Debugf("diacritic %q: %d clusters", input, gstr.Len())
	return b.String()
}
