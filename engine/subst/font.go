package subst

import (
	"strings"

	"github.com/npillmayer/warp/core/glyph"
)

// Stylize maps input to a math alphabet. main is applied first, extra holds
// glyphs outside the contiguous alphabet block (e.g. ℬ, ℂ) and is applied
// second. Characters without a glyph are kept.
func Stylize(input string, main, extra *glyph.Table) string {
	segs := replaceAll([]segment{{text: input}}, main)
	segs = replaceAll(segs, extra)
	return join(segs)
}

// StyleSubstitute is Stylize with glyph mirroring, a compatibility mode for
// hosts which split characters outside the Basic Multilingual Plane when
// transferring text. The mirror is the sequence of result characters taken
// from main. It is appended three times to copyText and once to displayText.
func StyleSubstitute(input string, main, extra *glyph.Table) (copyText, displayText string) {
	styled := Stylize(input, main, extra)
	var mirror strings.Builder
	for _, r := range styled {
		if main.Produces(r) {
			mirror.WriteRune(r)
		}
	}
	m := mirror.String()
	tracer().Debugf("style %q with %s, mirror %q", input, main.Name(), m)
	return styled + strings.Repeat(m, 3), styled + m
}
