package glyph

// Diacritics maps diacritic commands to combining marks. A mark is appended
// after every character of the argument.
var Diacritics = NewTable("diacritics",
	Pair{"\\overline", "\u0305"},
	Pair{"\\overleftarrow", "\u20D6"},
	Pair{"\\acute", "\u0301"},
	Pair{"\\breve", "\u0306"},
	Pair{"\\ddot", "\u0308"},
	Pair{"\\grave", "\u0300"},
	Pair{"\\tilde", "\u0303"},
	Pair{"\\bar", "\u0304"},
	Pair{"\\check", "\u030C"},
	Pair{"\\dot", "\u0307"},
	Pair{"\\hat", "\u0302"},
	Pair{"\\vec", "\u20D7"},
	Pair{"\\r", "\u030A"},
	Pair{"\\t", "\u0311"},
	Pair{"\\H", "\u030B"},
	Pair{"\\c", "\u0327"},
	Pair{"\\d", "\u0323"},
	// ulem package
	Pair{"\\uline", "\u0332"},
	Pair{"\\uuline", "\u0333"},
	Pair{"\\uwave", "\u0330"},
	Pair{"\\sout", "\u0336"},
	Pair{"\\xout", "\u0338"},
	Pair{"\\dashuline", "\u0331"},
	Pair{"\\dotuline", "\u0324"},
)
