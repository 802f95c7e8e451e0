package subst

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/warp/core"
	"github.com/npillmayer/warp/core/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactTokenMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	for _, tab := range []*glyph.Table{
		glyph.Superscript, glyph.Subscript, glyph.Symbols, glyph.Fractions, glyph.Roots,
	} {
		tab.Each(func(token, g string) {
			assert.Equal(t, g, Substitute(token, tab, false), "token %q of %s", token, tab.Name())
			assert.Equal(t, g, Substitute(token, tab, true), "token %q of %s", token, tab.Name())
		})
	}
}

func TestSubstitute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	assert.Equal(t, "⁽⁹⁶⁺⁴⁸⁾", Substitute("(96+48)", glyph.Superscript, true))
	assert.Equal(t, "ₐₕ", Substitute("a%h", glyph.Subscript, true))
	assert.Equal(t, "ₐ%ₕ", Substitute("a%h", glyph.Subscript, false))
	assert.Equal(t, "¹,²", Substitute("1,2", glyph.Superscript, true),
		"identity mappings must survive dropping")
}

func TestSubstituteDropsUnmapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	for _, s := range []string{"%", "%&", "§§§", "ü"} {
		assert.Equal(t, "", Substitute(s, glyph.Superscript, true), "input %q", s)
	}
}

func TestSubstituteMultiRuneToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	tab := glyph.NewTable("test", glyph.Pair{Token: "ab", Glyph: "X"}, glyph.Pair{Token: "c", Glyph: "Y"})
	assert.Equal(t, "XY", Substitute("abqc", tab, true))
	assert.Equal(t, "XqY", Substitute("abqc", tab, false))
	tab = glyph.NewTable("test", glyph.Pair{Token: "a", Glyph: "b"}, glyph.Pair{Token: "b", Glyph: "c"})
	assert.Equal(t, "bc", Substitute("ab", tab, true), "glyphs must not be matched again")
}

func TestComposeDiacritical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	overline := "̅"
	assert.Equal(t, "a"+overline+"b"+overline, ComposeDiacritical("ab", overline))
	assert.Equal(t, "α⃗", ComposeDiacritical("\\alpha", "⃗"))
	assert.Equal(t, "é"+overline+"x"+overline, ComposeDiacritical("éx", overline))
	assert.Equal(t, "", ComposeDiacritical("", overline))
}

func TestComposeDiacriticalInvalidUTF8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	hat := "\u0302"
	assert.Equal(t, "\uFFFD"+hat, ComposeDiacritical("\xff", hat))
	assert.Equal(t, "a"+hat+"\uFFFD"+hat, ComposeDiacritical("a\xff", hat))
}

func TestStylize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	assert.Equal(t, "𝔸ℂ𝕒𝟙!", Stylize("ACa1!", glyph.MathbbMain, glyph.MathbbExtra))
	assert.Equal(t, "𝐀 𝐛", Stylize("A b", glyph.Mathbf, glyph.NoExtra))
}

func TestStyleSubstituteMirror(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	cp, display := StyleSubstitute("AC", glyph.MathbbMain, glyph.MathbbExtra)
	// ℂ is taken from the extra table and is not mirrored
	assert.Equal(t, "𝔸ℂ𝔸", display)
	assert.Equal(t, "𝔸ℂ𝔸𝔸𝔸", cp)
	cp, display = StyleSubstitute("%", glyph.MathbbMain, glyph.MathbbExtra)
	assert.Equal(t, "%", cp)
	assert.Equal(t, "%", display)
}

func TestFraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	f, err := Fraction("{1}{2}")
	require.NoError(t, err)
	assert.Equal(t, "¹⁄₂", f)
	f, err = Fraction("{a+1}{x%}")
	require.NoError(t, err)
	assert.Equal(t, "ᵃ⁺¹⁄ₓ", f)
	f, err = Fraction("{}{}")
	require.NoError(t, err)
	assert.Equal(t, "⁄", f)
	for _, bad := range []string{"1/2", "{1}", "{1}{2", "{{1}{2}", "x{1}{2}"} {
		_, err = Fraction(bad)
		assert.Error(t, err, "input %q", bad)
		assert.Equal(t, core.EPATTERN, core.Code(err))
		assert.Contains(t, core.UserMessage(err), bad)
	}
}
