/*
Package roman converts arabic numbers to roman numerals made of the Unicode
number forms (Ⅰ Ⅴ Ⅹ Ⅼ Ⅽ Ⅾ Ⅿ and their small variants).

Numbers up to 12 have a precomposed glyph of their own (Ⅻ). Larger numbers
are composed decimal place by decimal place, with the units place again using
the precomposed glyphs (ⅯⅯⅩⅩⅠ for 2021, ⅩⅩⅨ for 29). There is no numeral
for 5000, thousands are therefore written by repeating Ⅿ.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package roman

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/warp/core"
	"github.com/npillmayer/warp/core/dimen"
	"github.com/npillmayer/warp/core/glyph"
)

// tracer traces with key 'warp.engine'.
func tracer() tracing.Trace {
	return tracing.Select("warp.engine")
}

// MaxArabic is the largest number ToRoman will convert.
const MaxArabic = 100000

// ToRoman converts 1 ≤ n ≤ MaxArabic to a roman numeral with glyphs from
// table, which must be keyed like glyph.RomanCapital.
func ToRoman(n int, table *glyph.Table) (string, error) {
	if n < 1 {
		return "", core.Error(core.ERANGE,
			"Arabic number must be a positive integer. Wrong input: %d", n)
	}
	if n > MaxArabic {
		return "", core.Error(core.ERANGE,
			"Arabic number must be ≤ %d. Wrong input: %d", MaxArabic, n)
	}
	if n <= 12 {
		return numeral(table, n), nil
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(numeral(table, 1000), n/1000))
	n %= 1000
	for _, place := range []int{100, 10} {
		b.WriteString(digit(table, n/place, place))
		n %= place
	}
	if n > 0 {
		b.WriteString(numeral(table, n))
	}
	return b.String(), nil
}

// Convert parses a digit-only argument and converts it with ToRoman.
func Convert(arg string, table *glyph.Table) (string, error) {
	n, ok := dimen.Atoi(arg)
	if !ok && arg != "" && strings.Trim(arg, "0123456789") == "" {
		// digits only, but too large for an int
		return "", core.Error(core.ERANGE,
			"Arabic number must be ≤ %d. Wrong input: %s", MaxArabic, arg)
	}
	if !ok {
		return "", core.Error(core.ENOTPOSINT,
			"Converts only arabic numbers into roman numbers. Wrong input: %s", arg)
	}
	if n < 1 {
		return "", core.Error(core.ERANGE,
			"Arabic number must be a positive integer. Wrong input: %s", arg)
	}
	if n > MaxArabic {
		return "", core.Error(core.ERANGE,
			"Arabic number must be ≤ %d. Wrong input: %s", MaxArabic, arg)
	}
	r, err := ToRoman(n, table)
	tracer().Debugf("roman %s = %s", arg, r)
	return r, err
}

// digit writes d (0…9) of a decimal place with the subtractive rule for 4
// and 9.
func digit(table *glyph.Table, d int, place int) string {
	one, five, ten := numeral(table, place), numeral(table, 5*place), numeral(table, 10*place)
	switch {
	case d == 9:
		return one + ten
	case d >= 5:
		return five + strings.Repeat(one, d-5)
	case d == 4:
		return one + five
	}
	return strings.Repeat(one, d)
}

func numeral(table *glyph.Table, n int) string {
	g, ok := table.Lookup(strconv.Itoa(n))
	if !ok {
		panic("roman numeral table lacks value " + strconv.Itoa(n))
	}
	return g
}
