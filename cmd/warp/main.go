/*
Command warp converts LaTeX-like commands to Unicode.

Usage:

	warp [-config file] [-trace level] [-compact] [-font-mirror] [-marker c]

On a terminal warp starts an interactive session. Every input line has the
form

	<command> <argument>

e.g. `\pmatrix 3,4` or `^ (n+1)`. Results are listed and, if there is a single
one, printed for copying; `:N` prints result number N of the latest input.
`list [prefix]` lists commands, `quit` or <ctrl>D ends the session.

If standard input is not a terminal, warp reads command lines and writes the
first result of every line to standard output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/warp/core"
	params "github.com/npillmayer/warp/core/parameters"
	"github.com/npillmayer/warp/engine/command"
	"github.com/pterm/pterm"
)

// tracer traces with key 'warp.cli'
func tracer() tracing.Trace {
	return tracing.Select("warp.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	confpath := flag.String("config", "", "Configuration file (YAML)")
	compact := flag.Bool("compact", false, "Compact matrices without spacer rows")
	mirror := flag.Bool("font-mirror", false, "Append mirrored glyphs to math font output")
	marker := flag.String("marker", "", "Node marker for matrices and trees")
	flag.Parse()

	// set up configuration and logging
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.warp.cli":     *tlevel,
		"trace.warp.command": *tlevel,
		"trace.warp.engine":  *tlevel,
		"trace.warp.glyphs":  *tlevel,
		"trace.warp.core":    *tlevel,
	}
	path, optional := *confpath, false
	if path == "" {
		path, optional = defaultConfigPath(), true
	}
	if err := loadConfig(conf, path, optional); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)

	// rendering parameters: defaults < config file < flags
	regs := params.FromConfig(conf)
	if *compact {
		regs.Push(params.P_COMPACT, true)
	}
	if *mirror {
		regs.Push(params.P_FONTMIRROR, true)
	}
	if *marker != "" {
		if err := regs.Set(params.P_NODEMARKER, *marker); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	dispatcher := command.NewDispatcher(command.NewRegistry(), regs)

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if failed := batch(dispatcher, os.Stdin, os.Stdout); failed > 0 {
			os.Exit(3)
		}
		return
	}
	intp, err := newIntp(dispatcher)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Welcome to warp, quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// splitLine splits an input line into command keyword and argument. The
// argument is everything after the first blank, verbatim.
func splitLine(line string) (keyword, arg string) {
	line = strings.TrimLeft(line, " \t")
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], line[i+1:]
	}
	return line, ""
}

// batch renders every line of r and writes the first result to w. Errors
// go to stderr; batch returns the number of failed lines.
func batch(d *command.Dispatcher, r io.Reader, w io.Writer) (failed int) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		keyword, arg := splitLine(line)
		results, err := d.DispatchKeyword(keyword, arg)
		if err == nil && len(results) == 0 {
			err = core.Error(core.EINVALID, "No result for `%s`.", line)
		} else if err == nil && results[0].IsError {
			err = core.Error(core.EINVALID, "%s", results[0].DisplayText)
		}
		if err != nil {
			core.UserError(err)
			failed++
			continue
		}
		fmt.Fprintln(w, results[0].CopyText)
	}
	if err := scanner.Err(); err != nil {
		core.UserError(core.WrapError(err, core.EINTERNAL, "reading input"))
		failed++
	}
	return failed
}
