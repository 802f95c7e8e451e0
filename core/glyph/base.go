package glyph

// Superscript is the table of the `^` command.
//
// Latin capital S, X, Y and Z have no superscript form and are left unmapped.
var Superscript = NewTable("superscript",
	// Punctuation
	Pair{"!", "ᵎ"},
	Pair{".", "ᐧ"},
	Pair{",", ","},
	// Numbers
	Pair{"0", "⁰"},
	Pair{"1", "¹"},
	Pair{"2", "²"},
	Pair{"3", "³"},
	Pair{"4", "⁴"},
	Pair{"5", "⁵"},
	Pair{"6", "⁶"},
	Pair{"7", "⁷"},
	Pair{"8", "⁸"},
	Pair{"9", "⁹"},
	// Math symbols
	Pair{"+", "⁺"},
	Pair{"-", "⁻"},
	Pair{"=", "⁼"},
	Pair{"(", "⁽"},
	Pair{")", "⁾"},
	Pair{"\\dot", "ᐧ"},
	Pair{"\\times", "ᕁ"},
	Pair{"\\neq", "ᙾ"},
	// Latin small letters
	Pair{"a", "ᵃ"},
	Pair{"b", "ᵇ"},
	Pair{"c", "ᶜ"},
	Pair{"d", "ᵈ"},
	Pair{"e", "ᵉ"},
	Pair{"f", "ᶠ"},
	Pair{"g", "ᵍ"},
	Pair{"h", "ʰ"},
	Pair{"i", "ⁱ"},
	Pair{"j", "ʲ"},
	Pair{"k", "ᵏ"},
	Pair{"l", "ˡ"},
	Pair{"m", "ᵐ"},
	Pair{"n", "ⁿ"},
	Pair{"o", "ᵒ"},
	Pair{"p", "ᵖ"},
	Pair{"q", "ᑫ"}, // displaced
	Pair{"r", "ʳ"},
	Pair{"s", "ˢ"},
	Pair{"t", "ᵗ"},
	Pair{"u", "ᵘ"},
	Pair{"v", "ᵛ"},
	Pair{"w", "ʷ"},
	Pair{"x", "ˣ"},
	Pair{"y", "ʸ"},
	Pair{"z", "ᶻ"},
	// Latin capital letters; C and F borrow the small letter glyphs
	Pair{"A", "ᴬ"},
	Pair{"B", "ᴮ"},
	Pair{"C", "ᶜ"},
	Pair{"D", "ᴰ"},
	Pair{"E", "ᴱ"},
	Pair{"F", "ᶠ"},
	Pair{"G", "ᴳ"},
	Pair{"H", "ᴴ"},
	Pair{"I", "ᴵ"},
	Pair{"J", "ᴶ"},
	Pair{"K", "ᴷ"},
	Pair{"L", "ᴸ"},
	Pair{"M", "ᴹ"},
	Pair{"N", "ᴺ"},
	Pair{"O", "ᴼ"},
	Pair{"P", "ᴾ"},
	Pair{"Q", "Q"}, // no superscript glyph
	Pair{"R", "ᴿ"},
	Pair{"T", "ᵀ"},
	Pair{"U", "ᵁ"},
	Pair{"V", "ⱽ"},
	Pair{"W", "ᵂ"},
	// Greek letters
	Pair{"\\beta", "ᵝ"},
	Pair{"\\gamma", "ᵞ"},
	Pair{"\\delta", "ᵟ"},
	Pair{"\\Delta", "ᐞ"},
	Pair{"\\theta", "ᶿ"},
	Pair{"\\phi", "ᶲ"},
	Pair{"\\psi", "ᵠ"},
	Pair{"\\upsilon", "ᶹ"},
	Pair{"\\zeta", "ᶼ"},
	Pair{"\\Omega", "ᶷ"},
	Pair{"\\chi", "ᵡ"},
)

// Subscript is the table of the `_` command.
var Subscript = NewTable("subscript",
	// Numbers
	Pair{"0", "₀"},
	Pair{"1", "₁"},
	Pair{"2", "₂"},
	Pair{"3", "₃"},
	Pair{"4", "₄"},
	Pair{"5", "₅"},
	Pair{"6", "₆"},
	Pair{"7", "₇"},
	Pair{"8", "₈"},
	Pair{"9", "₉"},
	// Math symbols
	Pair{"+", "₊"},
	Pair{"-", "₋"},
	Pair{"=", "₌"},
	Pair{"(", "₍"},
	Pair{")", "₎"},
	// Latin letters; several are displaced look-alikes
	Pair{"a", "ₐ"},
	Pair{"b", "₆"},
	Pair{"c", "꜀"},
	Pair{"d", "ₔ"},
	Pair{"e", "ₑ"},
	Pair{"f", "բ"},
	Pair{"g", "₉"},
	Pair{"h", "ₕ"},
	Pair{"i", "ᵢ"},
	Pair{"j", "ⱼ"},
	Pair{"k", "ₖ"},
	Pair{"l", "ₗ"},
	Pair{"m", "ₘ"},
	Pair{"n", "ₙ"},
	Pair{"o", "ₒ"},
	Pair{"p", "ₚ"},
	Pair{"q", "q"},
	Pair{"r", "ᵣ"},
	Pair{"s", "ₛ"},
	Pair{"t", "ₜ"},
	Pair{"u", "ᵤ"},
	Pair{"v", "ᵥ"},
	Pair{"w", "ᵥᵥ"},
	Pair{"x", "ₓ"},
	Pair{"y", "ᵧ"},
	Pair{"z", "₂"},
	// Greek letters
	Pair{"\\beta", "ᵦ"},
	Pair{"\\gamma", "ᵧ"},
	Pair{"\\rho", "ᵨ"},
	Pair{"\\psi", "ᵩ"},
	Pair{"\\chi", "ᵪ"},
)
