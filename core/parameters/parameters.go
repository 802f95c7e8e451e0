/*
Package parameters holds the rendering parameters of the command engines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'warp.core'.
func tracer() tracing.Trace {
	return tracing.Select("warp.core")
}

type RenderingParameter int

//go:generate stringer -type=RenderingParameter
const (
	none RenderingParameter = iota
	P_NODEMARKER
	P_TABLEWIDTH
	P_MAXDIMENSION
	P_COMPACT
	P_FONTMIRROR
	P_STOPPER
)

// configKeys maps parameters to keys of a schuko.Configuration.
var configKeys = map[RenderingParameter]string{
	P_NODEMARKER:   "warp.node",
	P_TABLEWIDTH:   "warp.table-width",
	P_MAXDIMENSION: "warp.max-dimension",
	P_COMPACT:      "warp.compact",
	P_FONTMIRROR:   "warp.font-mirror",
}

// RenderingRegisters is a set of rendering parameters. It is safe for
// concurrent use; engines receive copies of single values, never the registers.
type RenderingRegisters struct {
	sync.RWMutex
	base [P_STOPPER]interface{}
}

// ----------------------------------------------------------------------

func NewRenderingRegisters() *RenderingRegisters {
	regs := &RenderingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_NODEMARKER] = "x"   // a string
	p[P_TABLEWIDTH] = 10    // default column width of tables (int)
	p[P_MAXDIMENSION] = 256 // upper bound for dimension components (int)
	p[P_COMPACT] = false    // omit spacer rows in matrices and cases
	p[P_FONTMIRROR] = false // legacy glyph duplication for math fonts
}

// FromConfig creates registers with defaults, overridden by all keys set in
// conf. Values which cannot be converted are ignored with an error trace.
func FromConfig(conf schuko.Configuration) *RenderingRegisters {
	regs := NewRenderingRegisters()
	if conf == nil {
		return regs
	}
	for key := P_NODEMARKER; key < P_STOPPER; key++ {
		s := strings.TrimSpace(conf.GetString(configKeys[key]))
		if s == "" {
			continue
		}
		if err := regs.Set(key, s); err != nil {
			tracer().Errorf("config %s = %q: %v", configKeys[key], s, err)
		}
	}
	return regs
}

// Set converts a string value to the parameter's type and stores it.
func (regs *RenderingRegisters) Set(key RenderingParameter, s string) error {
	switch key {
	case P_NODEMARKER:
		if utf8.RuneCountInString(s) != 1 {
			return errors.New("node marker must be a single character")
		}
		if r, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(r) || strings.ContainsRune("└├│─", r) {
			return errors.New("node marker must not be blank or a tree glyph")
		}
		regs.Push(key, s)
	case P_TABLEWIDTH, P_MAXDIMENSION:
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if n < 1 {
			return errors.New("table width and maximum dimension must be ≥ 1")
		}
		regs.Push(key, n)
	case P_COMPACT, P_FONTMIRROR:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		regs.Push(key, b)
	default:
		panic("parameter key outside range of rendering parameters")
	}
	return nil
}

func (regs *RenderingRegisters) Push(key RenderingParameter, value interface{}) {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of rendering parameters")
	}
	regs.Lock()
	defer regs.Unlock()
	tracer().Debugf("parameter %d := %v", key, value)
	regs.base[key] = value
}

func (regs *RenderingRegisters) Get(key RenderingParameter) interface{} {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of rendering parameters")
	}
	regs.RLock()
	defer regs.RUnlock()
	return regs.base[key]
}

func (regs *RenderingRegisters) S(key RenderingParameter) string {
	return regs.Get(key).(string)
}

func (regs *RenderingRegisters) N(key RenderingParameter) int {
	return regs.Get(key).(int)
}

func (regs *RenderingRegisters) B(key RenderingParameter) bool {
	return regs.Get(key).(bool)
}
