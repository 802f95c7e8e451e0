package glyph

// Symbols are the base symbols. Every token is a command of its own which
// yields the glyph directly; the diacritic commands accept them as argument
// as well (`\vec` applied to `\alpha` gives α⃗).
var Symbols = NewTable("symbols",
	// Greek small letters
	Pair{"\\alpha", "α"},
	Pair{"\\beta", "β"},
	Pair{"\\gamma", "γ"},
	Pair{"\\delta", "δ"},
	Pair{"\\epsilon", "ϵ"},
	Pair{"\\varepsilon", "ε"},
	Pair{"\\zeta", "ζ"},
	Pair{"\\eta", "η"},
	Pair{"\\theta", "θ"},
	Pair{"\\vartheta", "ϑ"},
	Pair{"\\iota", "ι"},
	Pair{"\\kappa", "κ"},
	Pair{"\\varkappa", "ϰ"},
	Pair{"\\lambda", "λ"},
	Pair{"\\mu", "μ"},
	Pair{"\\nu", "ν"},
	Pair{"\\xi", "ξ"},
	Pair{"\\omicron", "ο"},
	Pair{"\\pi", "π"},
	Pair{"\\varpi", "ϖ"},
	Pair{"\\rho", "ρ"},
	Pair{"\\varrho", "ϱ"},
	Pair{"\\sigma", "σ"},
	Pair{"\\varsigma", "ς"},
	Pair{"\\tau", "τ"},
	Pair{"\\upsilon", "υ"},
	Pair{"\\phi", "ϕ"},
	Pair{"\\varphi", "φ"},
	Pair{"\\chi", "χ"},
	Pair{"\\psi", "ψ"},
	Pair{"\\omega", "ω"},
	// Greek capital letters
	Pair{"\\Gamma", "Γ"},
	Pair{"\\Delta", "Δ"},
	Pair{"\\Theta", "Θ"},
	Pair{"\\Lambda", "Λ"},
	Pair{"\\Xi", "Ξ"},
	Pair{"\\Pi", "Π"},
	Pair{"\\Sigma", "Σ"},
	Pair{"\\Upsilon", "Υ"},
	Pair{"\\Phi", "Φ"},
	Pair{"\\Psi", "Ψ"},
	Pair{"\\Omega", "Ω"},
	// Relations
	Pair{"\\leq", "≤"},
	Pair{"\\geq", "≥"},
	Pair{"\\leqq", "≦"},
	Pair{"\\geqq", "≧"},
	Pair{"\\ll", "≪"},
	Pair{"\\gg", "≫"},
	Pair{"\\neq", "≠"},
	Pair{"\\approx", "≈"},
	Pair{"\\equiv", "≡"},
	Pair{"\\sim", "∼"},
	Pair{"\\simeq", "≃"},
	Pair{"\\cong", "≅"},
	Pair{"\\propto", "∝"},
	Pair{"\\in", "∈"},
	Pair{"\\notin", "∉"},
	Pair{"\\ni", "∋"},
	Pair{"\\subset", "⊂"},
	Pair{"\\supset", "⊃"},
	Pair{"\\subseteq", "⊆"},
	Pair{"\\supseteq", "⊇"},
	Pair{"\\perp", "⊥"},
	Pair{"\\parallel", "∥"},
	Pair{"\\mid", "∣"},
	// Binary operators
	Pair{"\\pm", "±"},
	Pair{"\\mp", "∓"},
	Pair{"\\times", "×"},
	Pair{"\\div", "÷"},
	Pair{"\\cdot", "⋅"},
	Pair{"\\ast", "∗"},
	Pair{"\\star", "⋆"},
	Pair{"\\circ", "∘"},
	Pair{"\\bullet", "∙"},
	Pair{"\\oplus", "⊕"},
	Pair{"\\otimes", "⊗"},
	Pair{"\\odot", "⊙"},
	Pair{"\\cap", "∩"},
	Pair{"\\cup", "∪"},
	Pair{"\\wedge", "∧"},
	Pair{"\\vee", "∨"},
	Pair{"\\setminus", "∖"},
	// Big operators
	Pair{"\\sum", "∑"},
	Pair{"\\prod", "∏"},
	Pair{"\\coprod", "∐"},
	Pair{"\\int", "∫"},
	Pair{"\\iint", "∬"},
	Pair{"\\iiint", "∭"},
	Pair{"\\oint", "∮"},
	Pair{"\\bigcap", "⋂"},
	Pair{"\\bigcup", "⋃"},
	Pair{"\\bigwedge", "⋀"},
	Pair{"\\bigvee", "⋁"},
	Pair{"\\bigoplus", "⨁"},
	Pair{"\\bigotimes", "⨂"},
	// Arrows
	Pair{"\\leftarrow", "←"},
	Pair{"\\gets", "←"},
	Pair{"\\rightarrow", "→"},
	Pair{"\\to", "→"},
	Pair{"\\uparrow", "↑"},
	Pair{"\\downarrow", "↓"},
	Pair{"\\leftrightarrow", "↔"},
	Pair{"\\updownarrow", "↕"},
	Pair{"\\nearrow", "↗"},
	Pair{"\\searrow", "↘"},
	Pair{"\\swarrow", "↙"},
	Pair{"\\nwarrow", "↖"},
	Pair{"\\mapsto", "↦"},
	Pair{"\\Leftarrow", "⇐"},
	Pair{"\\Rightarrow", "⇒"},
	Pair{"\\Leftrightarrow", "⇔"},
	Pair{"\\implies", "⟹"},
	Pair{"\\iff", "⟺"},
	// Logic and sets
	Pair{"\\forall", "∀"},
	Pair{"\\exists", "∃"},
	Pair{"\\nexists", "∄"},
	Pair{"\\neg", "¬"},
	Pair{"\\land", "∧"},
	Pair{"\\lor", "∨"},
	Pair{"\\top", "⊤"},
	Pair{"\\bot", "⊥"},
	Pair{"\\emptyset", "∅"},
	Pair{"\\varnothing", "∅"},
	Pair{"\\therefore", "∴"},
	Pair{"\\because", "∵"},
	// Miscellaneous
	Pair{"\\infty", "∞"},
	Pair{"\\partial", "∂"},
	Pair{"\\nabla", "∇"},
	Pair{"\\hbar", "ℏ"},
	Pair{"\\ell", "ℓ"},
	Pair{"\\Re", "ℜ"},
	Pair{"\\Im", "ℑ"},
	Pair{"\\aleph", "ℵ"},
	Pair{"\\wp", "℘"},
	Pair{"\\angle", "∠"},
	Pair{"\\triangle", "△"},
	Pair{"\\prime", "′"},
	Pair{"\\degree", "°"},
	Pair{"\\ldots", "…"},
	Pair{"\\cdots", "⋯"},
	Pair{"\\vdots", "⋮"},
	Pair{"\\ddots", "⋱"},
	Pair{"\\langle", "⟨"},
	Pair{"\\rangle", "⟩"},
	Pair{"\\lceil", "⌈"},
	Pair{"\\rceil", "⌉"},
	Pair{"\\lfloor", "⌊"},
	Pair{"\\rfloor", "⌋"},
)
