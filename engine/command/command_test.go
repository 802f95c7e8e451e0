package command

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/warp/core"
	"github.com/npillmayer/warp/core/glyph"
	params "github.com/npillmayer/warp/core/parameters"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type DispatchTestEnviron struct {
	suite.Suite
	registry   *Registry
	dispatcher *Dispatcher
}

// listen for 'go test' command --> run test methods
func TestDispatchFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.command")
	defer teardown()
	suite.Run(t, new(DispatchTestEnviron))
}

// run once, before test suite methods
func (env *DispatchTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("warp.engine").SetTraceLevel(tracing.LevelError)
	env.registry = NewRegistry()
	env.dispatcher = NewDispatcher(env.registry, nil)
}

func (env *DispatchTestEnviron) dispatch(keyword, arg string) []RenderResult {
	results, err := env.dispatcher.DispatchKeyword(keyword, arg)
	env.Require().NoError(err, keyword)
	return results
}

// --- Tests -----------------------------------------------------------------

func (env *DispatchTestEnviron) TestRegistry() {
	cmds := env.registry.ListCommands()
	expected := 2 + glyph.Symbols.Len() + 3 + glyph.Diacritics.Len() + 10 + 2 + 8 + 2
	env.Len(cmds, expected)
	env.Equal("^", cmds[0].Keyword)
	env.Equal(`\dirtree`, cmds[len(cmds)-1].Keyword)
	cmd, ok := env.registry.Lookup(`\pmatrix`)
	env.Require().True(ok)
	env.Equal(Matrix, cmd.Family)
	_, ok = env.registry.Lookup(`\pmat`)
	env.False(ok, "prefixes are not commands")
	cmd, ok = env.registry.Lookup(`\alpha`)
	env.Require().True(ok)
	env.Equal(Symbol, cmd.Family)
}

func (env *DispatchTestEnviron) TestSuggest() {
	var keywords []string
	for _, cmd := range env.registry.Suggest(`\mathb`) {
		keywords = append(keywords, cmd.Keyword)
	}
	env.Equal([]string{`\mathbb`, `\mathbf`, `\mathbi`}, keywords)
	suggestions := env.registry.Suggest(`\t`)
	env.Require().NotEmpty(suggestions)
	env.Equal(`\t`, suggestions[0].Keyword, "exact match must come first")
	env.Empty(env.registry.Suggest("zz"))
}

func (env *DispatchTestEnviron) TestBaseFamily() {
	results := env.dispatch("^", "(96+48)")
	env.Require().Len(results, 1)
	env.Equal("⁽⁹⁶⁺⁴⁸⁾", results[0].CopyText)
	env.Equal("(96+48)", results[0].Label)
	env.Empty(env.dispatch("^", "%"), "fully dropped input yields no result")
	env.Empty(env.dispatch("_", ""), "empty input yields no result")
	results = env.dispatch("^", `\beta`)
	env.Require().Len(results, 1)
	env.Equal("ᵝ", results[0].CopyText)
}

func (env *DispatchTestEnviron) TestInvalidUTF8() {
	for _, keyword := range []string{`\hat`, "^", `\mathbb`, `\RN`, `\pmatrix`, `\dirtree`, `\frac`} {
		for _, arg := range []string{"\xff", "a\xff"} {
			results := env.dispatch(keyword, arg)
			env.Require().Len(results, 1, keyword)
			env.True(results[0].IsError, keyword)
			env.Empty(results[0].CopyText)
			env.True(strings.HasPrefix(results[0].DisplayText, "Argument must be UTF-8 text."), keyword)
		}
	}
}

func (env *DispatchTestEnviron) TestRomanTooLarge() {
	results := env.dispatch(`\RN`, "99999999999999999")
	env.Require().Len(results, 1)
	env.True(results[0].IsError)
	env.Equal("Arabic number must be ≤ 100000. Wrong input: 99999999999999999", results[0].DisplayText)
}

func (env *DispatchTestEnviron) TestSymbolFamily() {
	results := env.dispatch(`\infty`, "")
	env.Require().Len(results, 1)
	env.Equal("∞", results[0].CopyText)
}

func (env *DispatchTestEnviron) TestDiacriticalFamily() {
	results := env.dispatch(`\hat`, "e\u0301")
	env.Require().Len(results, 1)
	env.Equal("\u00e9\u0302", results[0].CopyText, "argument must be NFC normalized")
	results = env.dispatch(`\vec`, `\alpha`)
	env.Require().Len(results, 1)
	env.Equal("α⃗", results[0].CopyText)
}

func (env *DispatchTestEnviron) TestFontFamily() {
	results := env.dispatch(`\mathbb`, "AC")
	env.Require().Len(results, 1)
	env.Equal("𝔸ℂ", results[0].CopyText)
	env.Equal("𝔸ℂ", results[0].DisplayText)
	results = env.dispatch(`\textbf`, "ab")
	env.Require().Len(results, 1)
	env.Equal("𝐚𝐛", results[0].CopyText)
	//
	regs := params.NewRenderingRegisters()
	env.Require().NoError(regs.Set(params.P_FONTMIRROR, "true"))
	mirroring := NewDispatcher(env.registry, regs)
	results, _ = mirroring.DispatchKeyword(`\mathbb`, "AC")
	env.Require().Len(results, 1)
	env.Equal("𝔸ℂ𝔸", results[0].DisplayText)
	env.Equal("𝔸ℂ𝔸𝔸𝔸", results[0].CopyText)
}

func (env *DispatchTestEnviron) TestRomanFamily() {
	results := env.dispatch(`\RN`, "2021")
	env.Require().Len(results, 1)
	env.Equal("ⅯⅯⅩⅩⅠ", results[0].CopyText)
	results = env.dispatch(`\Rn`, "0")
	env.Require().Len(results, 1)
	env.True(results[0].IsError)
	env.Equal("", results[0].CopyText)
}

func (env *DispatchTestEnviron) TestMatrixFamily() {
	results := env.dispatch(`\pmatrix`, "1,3")
	env.Require().Len(results, 1)
	env.Equal("( x  x  x )", results[0].CopyText)
	env.Equal("pmatrix [1 x 3]", results[0].Description)
	results = env.dispatch(`\cases`, "2")
	env.Require().Len(results, 1)
	env.Equal("⎧ x\n⎨\n⎩ x", results[0].CopyText)
	env.Equal("cases [2]", results[0].Description)
	results = env.dispatch(`\bmatrix`, "1,2,3")
	env.Require().Len(results, 1)
	env.True(results[0].IsError)
	env.Equal("`bmatrix` number of dimensions must be 1 or 2. Wrong input: `1,2,3`.",
		results[0].DisplayText)
	//
	regs := params.NewRenderingRegisters()
	env.Require().NoError(regs.Set(params.P_COMPACT, "true"))
	compact := NewDispatcher(env.registry, regs)
	results, _ = compact.DispatchKeyword(`\pmatrix`, "3,3")
	env.Require().Len(results, 1)
	env.Len(strings.Split(results[0].CopyText, "\n"), 3)
}

func (env *DispatchTestEnviron) TestTableFamily() {
	results := env.dispatch(`\table`, "2,3,8")
	env.Require().Len(results, 1)
	env.Len(strings.Split(results[0].CopyText, "\n"), 4)
	env.Equal("table [rows: 2, cols: 3, width: 8]", results[0].Description)
}

func (env *DispatchTestEnviron) TestTreeFamily() {
	results := env.dispatch(`\dirtree`, "1,2,3,2")
	env.Require().Len(results, 1)
	env.Equal("<!-- command: 1,2,3,2 -->\nx\n├─ x\n│  └─ x\n└─ x", results[0].CopyText)
	env.Equal("dirtree", results[0].Description)
	for _, arg := range []string{"2", "2,3", "2,1,1"} {
		results = env.dispatch(`\dirtree`, arg)
		env.Require().Len(results, 1)
		env.True(results[0].IsError, arg)
	}
}

func (env *DispatchTestEnviron) TestOperations() {
	results := env.dispatch(`\frac`, "{1}{2}")
	env.Require().Len(results, 1+glyph.Fractions.Len())
	env.Equal("¹⁄₂", results[0].CopyText)
	env.Equal("½", results[1].CopyText)
	env.Equal("{1}{2}", results[1].Label)
	env.Len(env.dispatch(`\frac`, ""), glyph.Fractions.Len())
	results = env.dispatch(`\frac`, "1/2")
	env.Require().Len(results, 1+glyph.Fractions.Len())
	env.True(results[0].IsError)
	//
	results = env.dispatch(`\sqrt`, "[3]")
	env.Require().Len(results, 4)
	env.Equal("∛", results[0].CopyText)
	env.Len(env.dispatch(`\sqrt`, "x"), 3)
	//
	results = env.dispatch(`\Frac`, "3")
	env.Require().Len(results, 1)
	env.Equal("     \n―――――\n     ", results[0].CopyText)
	results = env.dispatch(`\Frac`, "three")
	env.Require().Len(results, 1)
	env.True(results[0].IsError)
}

func (env *DispatchTestEnviron) TestDeterminism() {
	for _, cmd := range env.registry.ListCommands() {
		a := env.dispatcher.Dispatch(cmd, "2,3")
		b := env.dispatcher.Dispatch(cmd, "2,3")
		env.Equal(a, b, cmd.Keyword)
	}
}

func (env *DispatchTestEnviron) TestUnknownKeyword() {
	_, err := env.dispatcher.DispatchKeyword(`\nosuchthing`, "1")
	env.Error(err)
	env.Equal(core.EINVALID, core.Code(err))
}
