package roman

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/warp/core"
	"github.com/npillmayer/warp/core/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoman(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	tests := []struct {
		n        int
		expected string
	}{
		{1, "Ⅰ"},
		{4, "Ⅳ"},
		{9, "Ⅸ"},
		{12, "Ⅻ"},
		{13, "ⅩⅢ"},
		{29, "ⅩⅩⅨ"},
		{40, "ⅩⅬ"},
		{444, "ⅭⅮⅩⅬⅣ"},
		{1000, "Ⅿ"},
		{1994, "ⅯⅭⅯⅩⅭⅣ"},
		{2021, "ⅯⅯⅩⅩⅠ"},
		{4000, "ⅯⅯⅯⅯ"},
	}
	for _, test := range tests {
		r, err := ToRoman(test.n, glyph.RomanCapital)
		require.NoError(t, err, test.n)
		assert.Equal(t, test.expected, r, "roman(%d)", test.n)
	}
	r, err := ToRoman(2021, glyph.RomanSmall)
	require.NoError(t, err)
	assert.Equal(t, "ⅿⅿⅹⅹⅰ", r)
}

func TestToRomanErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	for _, n := range []int{0, -1} {
		_, err := ToRoman(n, glyph.RomanCapital)
		assert.Error(t, err)
		assert.Equal(t, core.ERANGE, core.Code(err))
	}
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	r, err := Convert("2021", glyph.RomanCapital)
	require.NoError(t, err)
	assert.Equal(t, "ⅯⅯⅩⅩⅠ", r)
	_, err = Convert("IV", glyph.RomanCapital)
	assert.Equal(t, core.ENOTPOSINT, core.Code(err))
	assert.Equal(t, "Converts only arabic numbers into roman numbers. Wrong input: IV", core.UserMessage(err))
	_, err = Convert("-1", glyph.RomanCapital)
	assert.Equal(t, core.ENOTPOSINT, core.Code(err))
	_, err = Convert("0", glyph.RomanCapital)
	assert.Equal(t, core.ERANGE, core.Code(err))
	assert.Equal(t, "Arabic number must be a positive integer. Wrong input: 0", core.UserMessage(err))
}

func TestConvertTooLarge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	r, err := Convert("100000", glyph.RomanCapital)
	require.NoError(t, err)
	assert.Equal(t, 100, len([]rune(r)))
	for _, arg := range []string{"100001", "99999999999999999", "9000000000000000000", "123456789012345678901234567890"} {
		_, err := Convert(arg, glyph.RomanCapital)
		require.Error(t, err, arg)
		assert.Equal(t, core.ERANGE, core.Code(err), arg)
		assert.Equal(t, "Arabic number must be ≤ 100000. Wrong input: "+arg, core.UserMessage(err))
	}
	_, err = ToRoman(MaxArabic+1, glyph.RomanCapital)
	assert.Equal(t, core.ERANGE, core.Code(err))
}
