package glyph

// MathcalMain maps to the Mathematical Script block (𝒜, 𝒶).
var MathcalMain = NewTable("mathcal-main",
	Pair{"A", "𝒜"},
	Pair{"C", "𝒞"},
	Pair{"D", "𝒟"},
	Pair{"G", "𝒢"},
	Pair{"J", "𝒥"},
	Pair{"K", "𝒦"},
	Pair{"N", "𝒩"},
	Pair{"O", "𝒪"},
	Pair{"P", "𝒫"},
	Pair{"Q", "𝒬"},
	Pair{"S", "𝒮"},
	Pair{"T", "𝒯"},
	Pair{"U", "𝒰"},
	Pair{"V", "𝒱"},
	Pair{"W", "𝒲"},
	Pair{"X", "𝒳"},
	Pair{"Y", "𝒴"},
	Pair{"Z", "𝒵"},
	Pair{"a", "𝒶"},
	Pair{"b", "𝒷"},
	Pair{"c", "𝒸"},
	Pair{"d", "𝒹"},
	Pair{"f", "𝒻"},
	Pair{"h", "𝒽"},
	Pair{"i", "𝒾"},
	Pair{"j", "𝒿"},
	Pair{"k", "𝓀"},
	Pair{"l", "𝓁"},
	Pair{"m", "𝓂"},
	Pair{"n", "𝓃"},
	Pair{"p", "𝓅"},
	Pair{"q", "𝓆"},
	Pair{"r", "𝓇"},
	Pair{"s", "𝓈"},
	Pair{"t", "𝓉"},
	Pair{"u", "𝓊"},
	Pair{"v", "𝓋"},
	Pair{"w", "𝓌"},
	Pair{"x", "𝓍"},
	Pair{"y", "𝓎"},
	Pair{"z", "𝓏"},
)

// MathcalExtra holds the script letters living in Letterlike Symbols.
var MathcalExtra = NewTable("mathcal-extra",
	Pair{"B", "ℬ"},
	Pair{"E", "ℰ"},
	Pair{"F", "ℱ"},
	Pair{"H", "ℋ"},
	Pair{"I", "ℐ"},
	Pair{"L", "ℒ"},
	Pair{"M", "ℳ"},
	Pair{"R", "ℛ"},
	Pair{"e", "ℯ"},
	Pair{"g", "ℊ"},
	Pair{"o", "ℴ"},
)

// MathbbMain maps to Mathematical Double-Struck letters and digits.
var MathbbMain = NewTable("mathbb-main",
	Pair{"A", "𝔸"},
	Pair{"B", "𝔹"},
	Pair{"D", "𝔻"},
	Pair{"E", "𝔼"},
	Pair{"F", "𝔽"},
	Pair{"G", "𝔾"},
	Pair{"I", "𝕀"},
	Pair{"J", "𝕁"},
	Pair{"K", "𝕂"},
	Pair{"L", "𝕃"},
	Pair{"M", "𝕄"},
	Pair{"O", "𝕆"},
	Pair{"S", "𝕊"},
	Pair{"T", "𝕋"},
	Pair{"U", "𝕌"},
	Pair{"V", "𝕍"},
	Pair{"W", "𝕎"},
	Pair{"X", "𝕏"},
	Pair{"Y", "𝕐"},
	Pair{"a", "𝕒"},
	Pair{"b", "𝕓"},
	Pair{"c", "𝕔"},
	Pair{"d", "𝕕"},
	Pair{"e", "𝕖"},
	Pair{"f", "𝕗"},
	Pair{"g", "𝕘"},
	Pair{"h", "𝕙"},
	Pair{"i", "𝕚"},
	Pair{"j", "𝕛"},
	Pair{"k", "𝕜"},
	Pair{"l", "𝕝"},
	Pair{"m", "𝕞"},
	Pair{"n", "𝕟"},
	Pair{"o", "𝕠"},
	Pair{"p", "𝕡"},
	Pair{"q", "𝕢"},
	Pair{"r", "𝕣"},
	Pair{"s", "𝕤"},
	Pair{"t", "𝕥"},
	Pair{"u", "𝕦"},
	Pair{"v", "𝕧"},
	Pair{"w", "𝕨"},
	Pair{"x", "𝕩"},
	Pair{"y", "𝕪"},
	Pair{"z", "𝕫"},
	Pair{"0", "𝟘"},
	Pair{"1", "𝟙"},
	Pair{"2", "𝟚"},
	Pair{"3", "𝟛"},
	Pair{"4", "𝟜"},
	Pair{"5", "𝟝"},
	Pair{"6", "𝟞"},
	Pair{"7", "𝟟"},
	Pair{"8", "𝟠"},
	Pair{"9", "𝟡"},
)

var MathbbExtra = NewTable("mathbb-extra",
	Pair{"C", "ℂ"},
	Pair{"H", "ℍ"},
	Pair{"N", "ℕ"},
	Pair{"P", "ℙ"},
	Pair{"Q", "ℚ"},
	Pair{"R", "ℝ"},
	Pair{"Z", "ℤ"},
)

// MathfrakMain maps to Mathematical Fraktur.
var MathfrakMain = NewTable("mathfrak-main",
	Pair{"A", "𝔄"},
	Pair{"B", "𝔅"},
	Pair{"D", "𝔇"},
	Pair{"E", "𝔈"},
	Pair{"F", "𝔉"},
	Pair{"G", "𝔊"},
	Pair{"J", "𝔍"},
	Pair{"K", "𝔎"},
	Pair{"L", "𝔏"},
	Pair{"M", "𝔐"},
	Pair{"N", "𝔑"},
	Pair{"O", "𝔒"},
	Pair{"P", "𝔓"},
	Pair{"Q", "𝔔"},
	Pair{"S", "𝔖"},
	Pair{"T", "𝔗"},
	Pair{"U", "𝔘"},
	Pair{"V", "𝔙"},
	Pair{"W", "𝔚"},
	Pair{"X", "𝔛"},
	Pair{"Y", "𝔜"},
	Pair{"a", "𝔞"},
	Pair{"b", "𝔟"},
	Pair{"c", "𝔠"},
	Pair{"d", "𝔡"},
	Pair{"e", "𝔢"},
	Pair{"f", "𝔣"},
	Pair{"g", "𝔤"},
	Pair{"h", "𝔥"},
	Pair{"i", "𝔦"},
	Pair{"j", "𝔧"},
	Pair{"k", "𝔨"},
	Pair{"l", "𝔩"},
	Pair{"m", "𝔪"},
	Pair{"n", "𝔫"},
	Pair{"o", "𝔬"},
	Pair{"p", "𝔭"},
	Pair{"q", "𝔮"},
	Pair{"r", "𝔯"},
	Pair{"s", "𝔰"},
	Pair{"t", "𝔱"},
	Pair{"u", "𝔲"},
	Pair{"v", "𝔳"},
	Pair{"w", "𝔴"},
	Pair{"x", "𝔵"},
	Pair{"y", "𝔶"},
	Pair{"z", "𝔷"},
)

var MathfrakExtra = NewTable("mathfrak-extra",
	Pair{"C", "ℭ"},
	Pair{"H", "ℌ"},
	Pair{"I", "ℑ"},
	Pair{"R", "ℜ"},
	Pair{"Z", "ℨ"},
)

// Mathsf is sans-serif, used by \mathsf and \textsf.
var Mathsf = NewTable("mathsf",
	Pair{"A", "𝖠"},
	Pair{"B", "𝖡"},
	Pair{"C", "𝖢"},
	Pair{"D", "𝖣"},
	Pair{"E", "𝖤"},
	Pair{"F", "𝖥"},
	Pair{"G", "𝖦"},
	Pair{"H", "𝖧"},
	Pair{"I", "𝖨"},
	Pair{"J", "𝖩"},
	Pair{"K", "𝖪"},
	Pair{"L", "𝖫"},
	Pair{"M", "𝖬"},
	Pair{"N", "𝖭"},
	Pair{"O", "𝖮"},
	Pair{"P", "𝖯"},
	Pair{"Q", "𝖰"},
	Pair{"R", "𝖱"},
	Pair{"S", "𝖲"},
	Pair{"T", "𝖳"},
	Pair{"U", "𝖴"},
	Pair{"V", "𝖵"},
	Pair{"W", "𝖶"},
	Pair{"X", "𝖷"},
	Pair{"Y", "𝖸"},
	Pair{"Z", "𝖹"},
	Pair{"a", "𝖺"},
	Pair{"b", "𝖻"},
	Pair{"c", "𝖼"},
	Pair{"d", "𝖽"},
	Pair{"e", "𝖾"},
	Pair{"f", "𝖿"},
	Pair{"g", "𝗀"},
	Pair{"h", "𝗁"},
	Pair{"i", "𝗂"},
	Pair{"j", "𝗃"},
	Pair{"k", "𝗄"},
	Pair{"l", "𝗅"},
	Pair{"m", "𝗆"},
	Pair{"n", "𝗇"},
	Pair{"o", "𝗈"},
	Pair{"p", "𝗉"},
	Pair{"q", "𝗊"},
	Pair{"r", "𝗋"},
	Pair{"s", "𝗌"},
	Pair{"t", "𝗍"},
	Pair{"u", "𝗎"},
	Pair{"v", "𝗏"},
	Pair{"w", "𝗐"},
	Pair{"x", "𝗑"},
	Pair{"y", "𝗒"},
	Pair{"z", "𝗓"},
	Pair{"0", "𝟢"},
	Pair{"1", "𝟣"},
	Pair{"2", "𝟤"},
	Pair{"3", "𝟥"},
	Pair{"4", "𝟦"},
	Pair{"5", "𝟧"},
	Pair{"6", "𝟨"},
	Pair{"7", "𝟩"},
	Pair{"8", "𝟪"},
	Pair{"9", "𝟫"},
)

// Mathbf is serif bold, used by \mathbf and \textbf.
var Mathbf = NewTable("mathbf",
	Pair{"A", "𝐀"},
	Pair{"B", "𝐁"},
	Pair{"C", "𝐂"},
	Pair{"D", "𝐃"},
	Pair{"E", "𝐄"},
	Pair{"F", "𝐅"},
	Pair{"G", "𝐆"},
	Pair{"H", "𝐇"},
	Pair{"I", "𝐈"},
	Pair{"J", "𝐉"},
	Pair{"K", "𝐊"},
	Pair{"L", "𝐋"},
	Pair{"M", "𝐌"},
	Pair{"N", "𝐍"},
	Pair{"O", "𝐎"},
	Pair{"P", "𝐏"},
	Pair{"Q", "𝐐"},
	Pair{"R", "𝐑"},
	Pair{"S", "𝐒"},
	Pair{"T", "𝐓"},
	Pair{"U", "𝐔"},
	Pair{"V", "𝐕"},
	Pair{"W", "𝐖"},
	Pair{"X", "𝐗"},
	Pair{"Y", "𝐘"},
	Pair{"Z", "𝐙"},
	Pair{"a", "𝐚"},
	Pair{"b", "𝐛"},
	Pair{"c", "𝐜"},
	Pair{"d", "𝐝"},
	Pair{"e", "𝐞"},
	Pair{"f", "𝐟"},
	Pair{"g", "𝐠"},
	Pair{"h", "𝐡"},
	Pair{"i", "𝐢"},
	Pair{"j", "𝐣"},
	Pair{"k", "𝐤"},
	Pair{"l", "𝐥"},
	Pair{"m", "𝐦"},
	Pair{"n", "𝐧"},
	Pair{"o", "𝐨"},
	Pair{"p", "𝐩"},
	Pair{"q", "𝐪"},
	Pair{"r", "𝐫"},
	Pair{"s", "𝐬"},
	Pair{"t", "𝐭"},
	Pair{"u", "𝐮"},
	Pair{"v", "𝐯"},
	Pair{"w", "𝐰"},
	Pair{"x", "𝐱"},
	Pair{"y", "𝐲"},
	Pair{"z", "𝐳"},
	Pair{"0", "𝟎"},
	Pair{"1", "𝟏"},
	Pair{"2", "𝟐"},
	Pair{"3", "𝟑"},
	Pair{"4", "𝟒"},
	Pair{"5", "𝟓"},
	Pair{"6", "𝟔"},
	Pair{"7", "𝟕"},
	Pair{"8", "𝟖"},
	Pair{"9", "𝟗"},
)

var Mathbi = NewTable("mathbi",
	Pair{"A", "𝑨"},
	Pair{"B", "𝑩"},
	Pair{"C", "𝑪"},
	Pair{"D", "𝑫"},
	Pair{"E", "𝑬"},
	Pair{"F", "𝑭"},
	Pair{"G", "𝑮"},
	Pair{"H", "𝑯"},
	Pair{"I", "𝑰"},
	Pair{"J", "𝑱"},
	Pair{"K", "𝑲"},
	Pair{"L", "𝑳"},
	Pair{"M", "𝑴"},
	Pair{"N", "𝑵"},
	Pair{"O", "𝑶"},
	Pair{"P", "𝑷"},
	Pair{"Q", "𝑸"},
	Pair{"R", "𝑹"},
	Pair{"S", "𝑺"},
	Pair{"T", "𝑻"},
	Pair{"U", "𝑼"},
	Pair{"V", "𝑽"},
	Pair{"W", "𝑾"},
	Pair{"X", "𝑿"},
	Pair{"Y", "𝒀"},
	Pair{"Z", "𝒁"},
	Pair{"a", "𝒂"},
	Pair{"b", "𝒃"},
	Pair{"c", "𝒄"},
	Pair{"d", "𝒅"},
	Pair{"e", "𝒆"},
	Pair{"f", "𝒇"},
	Pair{"g", "𝒈"},
	Pair{"h", "𝒉"},
	Pair{"i", "𝒊"},
	Pair{"j", "𝒋"},
	Pair{"k", "𝒌"},
	Pair{"l", "𝒍"},
	Pair{"m", "𝒎"},
	Pair{"n", "𝒏"},
	Pair{"o", "𝒐"},
	Pair{"p", "𝒑"},
	Pair{"q", "𝒒"},
	Pair{"r", "𝒓"},
	Pair{"s", "𝒔"},
	Pair{"t", "𝒕"},
	Pair{"u", "𝒖"},
	Pair{"v", "𝒗"},
	Pair{"w", "𝒘"},
	Pair{"x", "𝒙"},
	Pair{"y", "𝒚"},
	Pair{"z", "𝒛"},
	Pair{"0", "𝟎"},
	Pair{"1", "𝟏"},
	Pair{"2", "𝟐"},
	Pair{"3", "𝟑"},
	Pair{"4", "𝟒"},
	Pair{"5", "𝟓"},
	Pair{"6", "𝟔"},
	Pair{"7", "𝟕"},
	Pair{"8", "𝟖"},
	Pair{"9", "𝟗"},
)

// TextitMain is serif italic. Digits have no italic form and map to themselves.
var TextitMain = NewTable("textit-main",
	Pair{"A", "𝐴"},
	Pair{"B", "𝐵"},
	Pair{"C", "𝐶"},
	Pair{"D", "𝐷"},
	Pair{"E", "𝐸"},
	Pair{"F", "𝐹"},
	Pair{"G", "𝐺"},
	Pair{"H", "𝐻"},
	Pair{"I", "𝐼"},
	Pair{"J", "𝐽"},
	Pair{"K", "𝐾"},
	Pair{"L", "𝐿"},
	Pair{"M", "𝑀"},
	Pair{"N", "𝑁"},
	Pair{"O", "𝑂"},
	Pair{"P", "𝑃"},
	Pair{"Q", "𝑄"},
	Pair{"R", "𝑅"},
	Pair{"S", "𝑆"},
	Pair{"T", "𝑇"},
	Pair{"U", "𝑈"},
	Pair{"V", "𝑉"},
	Pair{"W", "𝑊"},
	Pair{"X", "𝑋"},
	Pair{"Y", "𝑌"},
	Pair{"Z", "𝑍"},
	Pair{"a", "𝑎"},
	Pair{"b", "𝑏"},
	Pair{"c", "𝑐"},
	Pair{"d", "𝑑"},
	Pair{"e", "𝑒"},
	Pair{"f", "𝑓"},
	Pair{"g", "𝑔"},
	Pair{"i", "𝑖"},
	Pair{"j", "𝑗"},
	Pair{"k", "𝑘"},
	Pair{"l", "𝑙"},
	Pair{"m", "𝑚"},
	Pair{"n", "𝑛"},
	Pair{"o", "𝑜"},
	Pair{"p", "𝑝"},
	Pair{"q", "𝑞"},
	Pair{"r", "𝑟"},
	Pair{"s", "𝑠"},
	Pair{"t", "𝑡"},
	Pair{"u", "𝑢"},
	Pair{"v", "𝑣"},
	Pair{"w", "𝑤"},
	Pair{"x", "𝑥"},
	Pair{"y", "𝑦"},
	Pair{"z", "𝑧"},
	Pair{"0", "0"},
	Pair{"1", "1"},
	Pair{"2", "2"},
	Pair{"3", "3"},
	Pair{"4", "4"},
	Pair{"5", "5"},
	Pair{"6", "6"},
	Pair{"7", "7"},
	Pair{"8", "8"},
	Pair{"9", "9"},
)

// TextitExtra holds italic small h (Planck constant).
var TextitExtra = NewTable("textit-extra",
	Pair{"h", "ℎ"},
)

var Texttt = NewTable("texttt",
	Pair{"A", "𝙰"},
	Pair{"B", "𝙱"},
	Pair{"C", "𝙲"},
	Pair{"D", "𝙳"},
	Pair{"E", "𝙴"},
	Pair{"F", "𝙵"},
	Pair{"G", "𝙶"},
	Pair{"H", "𝙷"},
	Pair{"I", "𝙸"},
	Pair{"J", "𝙹"},
	Pair{"K", "𝙺"},
	Pair{"L", "𝙻"},
	Pair{"M", "𝙼"},
	Pair{"N", "𝙽"},
	Pair{"O", "𝙾"},
	Pair{"P", "𝙿"},
	Pair{"Q", "𝚀"},
	Pair{"R", "𝚁"},
	Pair{"S", "𝚂"},
	Pair{"T", "𝚃"},
	Pair{"U", "𝚄"},
	Pair{"V", "𝚅"},
	Pair{"W", "𝚆"},
	Pair{"X", "𝚇"},
	Pair{"Y", "𝚈"},
	Pair{"Z", "𝚉"},
	Pair{"a", "𝚊"},
	Pair{"b", "𝚋"},
	Pair{"c", "𝚌"},
	Pair{"d", "𝚍"},
	Pair{"e", "𝚎"},
	Pair{"f", "𝚏"},
	Pair{"g", "𝚐"},
	Pair{"h", "𝚑"},
	Pair{"i", "𝚒"},
	Pair{"j", "𝚓"},
	Pair{"k", "𝚔"},
	Pair{"l", "𝚕"},
	Pair{"m", "𝚖"},
	Pair{"n", "𝚗"},
	Pair{"o", "𝚘"},
	Pair{"p", "𝚙"},
	Pair{"q", "𝚚"},
	Pair{"r", "𝚛"},
	Pair{"s", "𝚜"},
	Pair{"t", "𝚝"},
	Pair{"u", "𝚞"},
	Pair{"v", "𝚟"},
	Pair{"w", "𝚠"},
	Pair{"x", "𝚡"},
	Pair{"y", "𝚢"},
	Pair{"z", "𝚣"},
	Pair{"0", "𝟶"},
	Pair{"1", "𝟷"},
	Pair{"2", "𝟸"},
	Pair{"3", "𝟹"},
	Pair{"4", "𝟺"},
	Pair{"5", "𝟻"},
	Pair{"6", "𝟼"},
	Pair{"7", "𝟽"},
	Pair{"8", "𝟾"},
	Pair{"9", "𝟿"},
)
