package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/warp/core"
	"github.com/npillmayer/warp/engine/command"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	registry *command.Registry
	session  *command.Session
}

func newIntp(d *command.Dispatcher) (*Intp, error) {
	completer := readline.NewPrefixCompleter(keywordItems(d.Registry())...)
	repl, err := readline.NewEx(&readline.Config{
		Prompt:          "warp > ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}
	sink := command.SinkFunc(func(r command.RenderResult) {
		fmt.Fprintln(os.Stdout, r.CopyText)
	})
	return &Intp{
		repl:     repl,
		registry: d.Registry(),
		session:  command.NewSession(d, sink),
	}, nil
}

func keywordItems(reg *command.Registry) []readline.PrefixCompleterInterface {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("list"),
		readline.PcItem("quit"),
	}
	for _, cmd := range reg.ListCommands() {
		items = append(items, readline.PcItem(cmd.Keyword))
	}
	return items
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (quit bool) {
	keyword, arg := splitLine(line)
	switch {
	case keyword == "quit":
		return true
	case keyword == "list":
		intp.list(strings.TrimSpace(arg))
	case strings.HasPrefix(keyword, ":"):
		intp.choose(keyword[1:])
	default:
		intp.render(keyword, arg)
	}
	return false
}

func (intp *Intp) render(keyword, arg string) {
	intp.session.Reset()
	if err := intp.session.Select(keyword); err != nil {
		pterm.Error.Println(core.UserMessage(err))
		if s := intp.registry.Suggest(keyword); len(s) > 0 {
			pterm.Info.Printfln("Did you mean %s?", s[0].Keyword)
		}
		return
	}
	results, err := intp.session.Input(arg)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	if len(results) == 0 {
		pterm.Info.Println("No result")
		return
	}
	if len(results) == 1 {
		intp.chooseResult(results[0])
		return
	}
	data := pterm.TableData{{"#", "Input", "Result"}}
	for i, r := range results {
		data = append(data, []string{strconv.Itoa(i + 1), r.Label, r.Description})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func (intp *Intp) choose(index string) {
	results := intp.session.Results()
	n, err := strconv.Atoi(index)
	if err != nil || n < 1 || n > len(results) {
		pterm.Error.Printfln("No result #%s", index)
		return
	}
	intp.chooseResult(results[n-1])
}

func (intp *Intp) chooseResult(r command.RenderResult) {
	if r.IsError {
		pterm.Error.Println(r.DisplayText)
		return
	}
	pterm.Info.Println(r.Description)
	if err := intp.session.Choose(r); err != nil {
		pterm.Error.Println(core.UserMessage(err))
	}
}

func (intp *Intp) list(prefix string) {
	data := pterm.TableData{{"Command", "Family", "Description"}}
	for _, cmd := range intp.registry.Suggest(prefix) {
		data = append(data, []string{cmd.Keyword, cmd.Family.String(), cmd.Description})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}
