package glyph

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var allTables = []*Table{
	Superscript, Subscript, Symbols, Diacritics,
	MathcalMain, MathcalExtra, MathbbMain, MathbbExtra, MathfrakMain, MathfrakExtra,
	Mathsf, Mathbf, Mathbi, TextitMain, TextitExtra, Texttt,
	RomanCapital, RomanSmall, Fractions, Roots, NoExtra,
}

func TestTableOrderAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.glyphs")
	defer teardown()
	//
	tab := NewTable("test", Pair{"b", "ᵇ"}, Pair{"a", "ᵃ"}, Pair{"\\beta", "ᵝ"})
	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, []Pair{{"b", "ᵇ"}, {"a", "ᵃ"}, {"\\beta", "ᵝ"}}, tab.Pairs(),
		"pairs must come back in declaration order")
	g, ok := tab.Lookup("\\beta")
	assert.True(t, ok)
	assert.Equal(t, "ᵝ", g)
	_, ok = tab.Lookup("c")
	assert.False(t, ok)
	assert.True(t, tab.Produces('ᵃ'))
	assert.False(t, tab.Produces('a'))
}

func TestDuplicateTokenPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.glyphs")
	defer teardown()
	//
	assert.Panics(t, func() {
		NewTable("dup", Pair{"s", "ˢ"}, Pair{"s", "ˢ"})
	})
	assert.Panics(t, func() {
		NewTable("empty-token", Pair{"", "x"})
	})
}

func TestStaticTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.glyphs")
	defer teardown()
	//
	for _, tab := range allTables {
		tab.Each(func(token, glyph string) {
			assert.True(t, utf8.ValidString(token), "table %s: token %q invalid", tab.Name(), token)
			assert.True(t, utf8.ValidString(glyph), "table %s: glyph for %q invalid", tab.Name(), token)
		})
	}
	assert.Equal(t, 0, NoExtra.Len())
	assert.Equal(t, 25, Fractions.Len())
	assert.Equal(t, 3, Roots.Len())
	assert.Equal(t, 24, Diacritics.Len())
	assert.Equal(t, 16, RomanCapital.Len())
	assert.Equal(t, 62, Mathbf.Len())
}

func TestSuperscriptData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.glyphs")
	defer teardown()
	//
	g, ok := Superscript.Lookup("c") // Latin c, not Cyrillic с
	assert.True(t, ok)
	assert.Equal(t, "ᶜ", g)
	_, ok = Superscript.Lookup("S")
	assert.False(t, ok, "capital S has no superscript glyph")
	g, _ = Superscript.Lookup("\\beta")
	assert.Equal(t, "ᵝ", g)
	g, _ = Subscript.Lookup("w")
	assert.Equal(t, "ᵥᵥ", g)
}

func TestFontTablesDisjointFromExtras(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.glyphs")
	defer teardown()
	//
	pairs := [][2]*Table{
		{MathcalMain, MathcalExtra},
		{MathbbMain, MathbbExtra},
		{MathfrakMain, MathfrakExtra},
		{TextitMain, TextitExtra},
	}
	for _, p := range pairs {
		p[1].Each(func(token, _ string) {
			_, dup := p[0].Lookup(token)
			assert.False(t, dup, "token %q of %s shadowed by %s", token, p[1].Name(), p[0].Name())
		})
	}
}
