package command

import (
	"fmt"
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/warp/core/glyph"
	"github.com/npillmayer/warp/engine/grid"
)

// Registry is the closed set of commands. It is immutable after creation
// and may be shared between goroutines.
type Registry struct {
	commands []Command
	keywords *trie.Trie // keyword → position in commands
}

// NewRegistry creates a registry holding every command, in the order they
// are presented to the user.
func NewRegistry() *Registry {
	reg := &Registry{keywords: trie.New()}
	reg.add(Command{Keyword: "^", Family: Base, Description: "Superscript: ¹²³", main: glyph.Superscript})
	reg.add(Command{Keyword: "_", Family: Base, Description: "Subscript: ₁₂₃", main: glyph.Subscript})
	glyph.Symbols.Each(func(token, g string) {
		reg.add(Command{Keyword: token, Family: Symbol, Description: "Symbol: " + g, glyph: g})
	})
	reg.add(Command{Keyword: `\frac`, Family: Operation, Description: "Fraction: ½", op: opFrac})
	reg.add(Command{Keyword: `\Frac`, Family: Operation, Description: "Fraction: ÷", op: opFractionBar})
	reg.add(Command{Keyword: `\sqrt`, Family: Operation, Description: "Root: √", op: opRoot})
	glyph.Diacritics.Each(func(token, mark string) {
		reg.add(Command{Keyword: token, Family: Diacritical,
			Description: "Diacritical symbol: o" + mark, glyph: mark})
	})
	fonts := []struct {
		keyword, desc string
		main, extra   *glyph.Table
	}{
		{`\mathcal`, "Script (or calligraphy): 𝒜ℬ𝒞𝒶𝒷𝒸", glyph.MathcalMain, glyph.MathcalExtra},
		{`\mathbb`, "Double-struck: 𝔸𝔹ℂ𝕒𝕓𝕔𝟙𝟚𝟛", glyph.MathbbMain, glyph.MathbbExtra},
		{`\mathfrak`, "Fraktur: 𝔄𝔅ℭ𝔞𝔟𝔠", glyph.MathfrakMain, glyph.MathfrakExtra},
		{`\mathsf`, "Sans-serif: 𝖠𝖡𝖢𝖺𝖻𝖼𝟣𝟤𝟥", glyph.Mathsf, glyph.NoExtra},
		{`\textsf`, "Sans-serif: 𝖠𝖡𝖢𝖺𝖻𝖼𝟣𝟤𝟥", glyph.Mathsf, glyph.NoExtra},
		{`\mathbf`, "Serif Bold: 𝐀𝐁𝐂𝐚𝐛𝐜𝟏𝟐𝟑", glyph.Mathbf, glyph.NoExtra},
		{`\textbf`, "Serif Bold: 𝐀𝐁𝐂𝐚𝐛𝐜𝟏𝟐𝟑", glyph.Mathbf, glyph.NoExtra},
		{`\mathbi`, "Serif Bold italic: 𝑨𝑩𝑪𝒂𝒃𝒄𝟏𝟐𝟑", glyph.Mathbi, glyph.NoExtra},
		{`\textit`, "Serif Italic: 𝐴𝐵𝐶𝑎𝑏𝑐123", glyph.TextitMain, glyph.TextitExtra},
		{`\texttt`, "Mono-space: 𝙰𝙱𝙲𝚊𝚋𝚌𝟷𝟸𝟹", glyph.Texttt, glyph.NoExtra},
	}
	for _, f := range fonts {
		reg.add(Command{Keyword: f.keyword, Family: Font, Description: f.desc, main: f.main, extra: f.extra})
	}
	reg.add(Command{Keyword: `\RN`, Family: Roman, Description: "Roman Capital Number: ⅯⅮⅭⅬⅩⅤⅠ", main: glyph.RomanCapital})
	reg.add(Command{Keyword: `\Rn`, Family: Roman, Description: "Roman Small Number: ⅿⅾⅽⅼⅹⅴⅰ", main: glyph.RomanSmall})
	reg.add(Command{Keyword: `\matrix`, Family: Matrix, Description: "Plain Matrix:  X ", shape: grid.Plain})
	reg.add(Command{Keyword: `\pmatrix`, Family: Matrix, Description: "Parentheses; Round Brackets Matrix: (X)", shape: grid.Paren})
	reg.add(Command{Keyword: `\bmatrix`, Family: Matrix, Description: "Brackets; Square Brackets Matrix: [X]", shape: grid.Bracket})
	reg.add(Command{Keyword: `\Bmatrix`, Family: Matrix, Description: "Braces; Curly Brackets Matrix: {X}", shape: grid.Brace})
	reg.add(Command{Keyword: `\vmatrix`, Family: Matrix, Description: "Pipes Matrix: |X|", shape: grid.Pipe})
	reg.add(Command{Keyword: `\Vmatrix`, Family: Matrix, Description: "Double Pipes Matrix: ║X║", shape: grid.DoublePipe})
	reg.add(Command{Keyword: `\cases`, Family: Matrix, Description: "Cases: {X", shape: grid.Brace, cases: true})
	reg.add(Command{Keyword: `\sqcases`, Family: Matrix, Description: "Square Cases: [X", shape: grid.Bracket, cases: true})
	reg.add(Command{Keyword: `\table`, Family: Table, Description: "Table"})
	reg.add(Command{Keyword: `\dirtree`, Family: Tree, Description: "Directory Tree"})
	tracer().Debugf("command registry holds %d commands", len(reg.commands))
	return reg
}

func (reg *Registry) add(cmd Command) {
	if _, exists := reg.keywords.Find(cmd.Keyword); exists {
		panic(fmt.Sprintf("command %s registered twice", cmd.Keyword))
	}
	reg.keywords.Add(cmd.Keyword, len(reg.commands))
	reg.commands = append(reg.commands, cmd)
}

// ListCommands returns all commands.
func (reg *Registry) ListCommands() []Command {
	cmds := make([]Command, len(reg.commands))
	copy(cmds, reg.commands)
	return cmds
}

// Lookup finds the command for a keyword.
func (reg *Registry) Lookup(keyword string) (Command, bool) {
	node, found := reg.keywords.Find(keyword)
	if !found {
		return Command{}, false
	}
	return reg.commands[node.Meta().(int)], true
}

// Suggest returns the commands whose keyword starts with prefix, in registry
// order. An exact match is always the first suggestion.
func (reg *Registry) Suggest(prefix string) []Command {
	keys := reg.keywords.PrefixSearch(prefix)
	positions := make([]int, 0, len(keys))
	for _, k := range keys {
		if node, found := reg.keywords.Find(k); found {
			positions = append(positions, node.Meta().(int))
		}
	}
	sort.Ints(positions)
	cmds := make([]Command, 0, len(positions))
	if cmd, ok := reg.Lookup(prefix); ok {
		cmds = append(cmds, cmd)
	}
	for _, p := range positions {
		if reg.commands[p].Keyword != prefix {
			cmds = append(cmds, reg.commands[p])
		}
	}
	return cmds
}
