package command

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/warp/core"
	"github.com/npillmayer/warp/core/glyph"
	params "github.com/npillmayer/warp/core/parameters"
	"github.com/npillmayer/warp/engine/dirtree"
	"github.com/npillmayer/warp/engine/grid"
	"github.com/npillmayer/warp/engine/roman"
	"github.com/npillmayer/warp/engine/subst"
	"golang.org/x/text/unicode/norm"
)

// Dispatcher renders commands. It holds no state besides its rendering
// parameters and may be called concurrently.
type Dispatcher struct {
	registry *Registry
	params   *params.RenderingRegisters
}

// NewDispatcher creates a dispatcher for the commands of reg. If regs is nil,
// default rendering parameters are used.
func NewDispatcher(reg *Registry, regs *params.RenderingRegisters) *Dispatcher {
	if regs == nil {
		regs = params.NewRenderingRegisters()
	}
	return &Dispatcher{registry: reg, params: regs}
}

// Registry returns the registry of the dispatcher.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch renders cmd for a raw argument. The argument is normalized to NFC
// before rendering.
//
// Most commands yield a single result. Commands of family Symbol yield their
// glyph for any argument. `\frac` and `\sqrt` append a static list of
// shorthand glyphs to the computed result. An empty argument or an empty
// rendering yields no computed result. Invalid arguments, including
// arguments which are not valid UTF-8, yield a single error result.
func (d *Dispatcher) Dispatch(cmd Command, arg string) []RenderResult {
	var results []RenderResult
	if cmd.Family == Symbol {
		return append(results, textResult(cmd.Keyword, cmd.glyph, cmd.glyph))
	}
	if !utf8.ValidString(arg) {
		err := core.Error(core.EINVALID, "Argument must be UTF-8 text. Wrong input: %q", arg)
		tracer().Infof("%s: %v", cmd.Keyword, err)
		return append(results, errorResult(strings.ToValidUTF8(arg, "\uFFFD"), err))
	}
	arg = norm.NFC.String(arg)
	if arg != "" {
		r, ok, err := d.render(cmd, arg)
		if err != nil {
			if core.IsValidationError(err) {
				tracer().Infof("%s %q: %v", cmd.Keyword, arg, err)
			} else {
				tracer().Errorf("%s %q: %v", cmd.Keyword, arg, err)
			}
			results = append(results, errorResult(arg, err))
		} else if ok {
			results = append(results, r)
		}
	}
	switch cmd.op {
	case opFrac:
		results = append(results, staticResults(glyph.Fractions)...)
	case opRoot:
		results = append(results, staticResults(glyph.Roots)...)
	}
	return results
}

// DispatchKeyword looks up keyword and dispatches the command.
func (d *Dispatcher) DispatchKeyword(keyword, arg string) ([]RenderResult, error) {
	cmd, ok := d.registry.Lookup(keyword)
	if !ok {
		return nil, core.Error(core.EINVALID, "Unknown command `%s`.", keyword)
	}
	return d.Dispatch(cmd, arg), nil
}

// render computes the result for a non-empty argument. ok is false if the
// rendering is empty.
func (d *Dispatcher) render(cmd Command, arg string) (r RenderResult, ok bool, err error) {
	var text string
	switch cmd.Family {
	case Base:
		text = subst.Substitute(arg, cmd.main, true)
	case Diacritical:
		text = subst.ComposeDiacritical(arg, cmd.glyph)
	case Font:
		if d.params.B(params.P_FONTMIRROR) {
			copyText, display := subst.StyleSubstitute(arg, cmd.main, cmd.extra)
			return RenderResult{Label: arg, Description: display, DisplayText: display, CopyText: copyText}, true, nil
		}
		text = subst.Stylize(arg, cmd.main, cmd.extra)
	case Roman:
		text, err = roman.Convert(arg, cmd.main)
	case Matrix, Table:
		return d.drawing(cmd, arg)
	case Tree:
		text, err = dirtree.ParseAndRender(arg, d.marker())
		if err != nil {
			return
		}
		return RenderResult{Label: arg, Description: "dirtree", DisplayText: text, CopyText: text}, true, nil
	case Operation:
		switch cmd.op {
		case opFrac:
			text, err = subst.Fraction(arg)
		case opFractionBar:
			return d.drawing(cmd, arg)
		case opRoot:
			text, _ = glyph.Roots.Lookup(arg)
		}
	default:
		err = core.Error(core.EINTERNAL, "No engine for command %s.", cmd)
	}
	if err != nil || text == "" {
		return RenderResult{}, false, err
	}
	return textResult(arg, text, text), true, nil
}

func (d *Dispatcher) drawing(cmd Command, arg string) (RenderResult, bool, error) {
	layout := grid.LayoutFrom(d.params)
	var drawing grid.Drawing
	var err error
	switch {
	case cmd.Family == Table:
		drawing, err = grid.ParseTable(arg, layout)
	case cmd.op == opFractionBar:
		drawing, err = grid.ParseFractionBar(arg, layout)
	case cmd.cases:
		drawing, err = grid.ParseCases(cmd.shape, arg, layout)
	default:
		drawing, err = grid.ParseMatrix(cmd.shape, arg, layout)
	}
	if err != nil {
		return RenderResult{}, false, err
	}
	return RenderResult{
		Label:       arg,
		Description: drawing.Description,
		DisplayText: drawing.Text,
		CopyText:    drawing.Text,
	}, true, nil
}

func (d *Dispatcher) marker() rune {
	r, _ := utf8.DecodeRuneInString(d.params.S(params.P_NODEMARKER))
	return r
}

func textResult(label, display, copyText string) RenderResult {
	return RenderResult{Label: label, Description: display, DisplayText: display, CopyText: copyText}
}

func errorResult(arg string, err error) RenderResult {
	return RenderResult{
		Label:       arg,
		Description: "Error",
		DisplayText: core.UserMessage(err),
		IsError:     true,
	}
}

func staticResults(table *glyph.Table) []RenderResult {
	results := make([]RenderResult, 0, table.Len())
	table.Each(func(token, g string) {
		results = append(results, textResult(token, g, g))
	})
	return results
}
