package glyph

// RomanCapital holds the capital roman numeral glyphs, keyed by their
// arabic value. Values 1–12 have precomposed glyphs of their own.
var RomanCapital = NewTable("roman-capital",
	Pair{"1", "Ⅰ"},
	Pair{"2", "Ⅱ"},
	Pair{"3", "Ⅲ"},
	Pair{"4", "Ⅳ"},
	Pair{"5", "Ⅴ"},
	Pair{"6", "Ⅵ"},
	Pair{"7", "Ⅶ"},
	Pair{"8", "Ⅷ"},
	Pair{"9", "Ⅸ"},
	Pair{"10", "Ⅹ"},
	Pair{"11", "Ⅺ"},
	Pair{"12", "Ⅻ"},
	Pair{"50", "Ⅼ"},
	Pair{"100", "Ⅽ"},
	Pair{"500", "Ⅾ"},
	Pair{"1000", "Ⅿ"},
)

// RomanSmall holds the small roman numeral glyphs.
var RomanSmall = NewTable("roman-small",
	Pair{"1", "ⅰ"},
	Pair{"2", "ⅱ"},
	Pair{"3", "ⅲ"},
	Pair{"4", "ⅳ"},
	Pair{"5", "ⅴ"},
	Pair{"6", "ⅵ"},
	Pair{"7", "ⅶ"},
	Pair{"8", "ⅷ"},
	Pair{"9", "ⅸ"},
	Pair{"10", "ⅹ"},
	Pair{"11", "ⅺ"},
	Pair{"12", "ⅻ"},
	Pair{"50", "ⅼ"},
	Pair{"100", "ⅽ"},
	Pair{"500", "ⅾ"},
	Pair{"1000", "ⅿ"},
)
