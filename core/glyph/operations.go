package glyph

// FractionSlash separates numerator and denominator of a composed fraction.
const FractionSlash = "⁄"

// Fractions are the vulgar fraction and account glyphs offered by `\frac`,
// keyed in `{numerator}{denominator}` form.
var Fractions = NewTable("fractions",
	Pair{"{1}{2}", "½"},
	Pair{"{1}{4}", "¼"},
	Pair{"{3}{4}", "¾"},
	Pair{"{1}{7}", "⅐"},
	Pair{"{1}{9}", "⅑"},
	Pair{"{1}{10}", "⅒"},
	Pair{"{1}{3}", "⅓"},
	Pair{"{2}{3}", "⅔"},
	Pair{"{1}{5}", "⅕"},
	Pair{"{2}{5}", "⅖"},
	Pair{"{3}{5}", "⅗"},
	Pair{"{4}{5}", "⅘"},
	Pair{"{1}{6}", "⅙"},
	Pair{"{5}{6}", "⅚"},
	Pair{"{1}{8}", "⅛"},
	Pair{"{3}{8}", "⅜"},
	Pair{"{5}{8}", "⅝"},
	Pair{"{7}{8}", "⅞"},
	Pair{"{1}", "⅟"},
	Pair{"{0}{3}", "↉"},
	Pair{"{a}{c}", "℀"},
	Pair{"{a}{s}", "℁"},
	Pair{"{c}{u}", "℆"},
	Pair{"{c}{o}", "℅"},
	Pair{"{A}{S}", "⅍"},
)

// Roots are the radical glyphs offered by `\sqrt`, keyed by root index.
var Roots = NewTable("roots",
	Pair{"[2]", "√"},
	Pair{"[3]", "∛"},
	Pair{"[4]", "∜"},
)

// NoExtra is an empty table for fonts without supplementary glyphs.
var NoExtra = NewTable("none")
