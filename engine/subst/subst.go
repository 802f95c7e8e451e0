package subst

import (
	"strings"

	"github.com/npillmayer/warp/core/glyph"
)

// segment is a piece of the working string. mapped is set for glyphs
// produced by a table entry; unmapped segments are pass-through input.
type segment struct {
	text   string
	mapped bool
}

// Substitute maps input to glyphs of table.
//
// If input equals a token of table, the token's glyph is returned. Otherwise
// every occurrence of every token is replaced, in table order. Glyphs produced
// by an entry are never matched again by later entries. With dropUnmapped set,
// input text not covered by any token is removed from the result, otherwise
// it is kept verbatim.
//
// Callers must not pass empty input. The result may be empty if every
// character has been dropped.
func Substitute(input string, table *glyph.Table, dropUnmapped bool) string {
	if g, ok := table.Lookup(input); ok {
		return g
	}
	segs := replaceAll([]segment{{text: input}}, table)
	var b strings.Builder
	for _, s := range segs {
		if s.mapped || !dropUnmapped {
			b.WriteString(s.text)
		}
	}
	tracer().Debugf("substitute %q with %s: %q", input, table.Name(), b.String())
	return b.String()
}

// replaceAll applies every entry of table to the unmapped segments of segs.
func replaceAll(segs []segment, table *glyph.Table) []segment {
	table.Each(func(token, g string) {
		segs = replace(segs, token, g)
	})
	return segs
}

func replace(segs []segment, token, g string) []segment {
	out := segs[:0:0]
	for _, s := range segs {
		if s.mapped || !strings.Contains(s.text, token) {
			out = append(out, s)
			continue
		}
		parts := strings.Split(s.text, token)
		for i, p := range parts {
			if i > 0 {
				out = append(out, segment{text: g, mapped: true})
			}
			if p != "" {
				out = append(out, segment{text: p})
			}
		}
	}
	return out
}

func join(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.text)
	}
	return b.String()
}
