package command

import (
	"github.com/npillmayer/warp/core"
)

// State is the state of a session.
type State int

// Session states.
const (
	AwaitingCommand State = iota
	AwaitingArgument
)

func (s State) String() string {
	if s == AwaitingArgument {
		return "awaiting argument"
	}
	return "awaiting command"
}

// Sink receives the payload of chosen results, e.g. a clipboard.
type Sink interface {
	OnResultChosen(RenderResult)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(RenderResult)

// OnResultChosen calls f(r).
func (f SinkFunc) OnResultChosen(r RenderResult) {
	f(r)
}

// Session tracks a single user interaction: a command is selected, then its
// argument is typed, then one of the results is chosen. Every change of the
// argument re-renders from scratch.
//
// A session is not safe for concurrent use.
type Session struct {
	dispatcher *Dispatcher
	sink       Sink
	state      State
	cmd        Command
	results    []RenderResult
}

// NewSession creates a session in state AwaitingCommand. sink may be nil,
// chosen results are dropped then.
func NewSession(d *Dispatcher, sink Sink) *Session {
	return &Session{dispatcher: d, sink: sink}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Command returns the selected command, if any.
func (s *Session) Command() (Command, bool) {
	return s.cmd, s.state == AwaitingArgument
}

// Results returns the results of the latest input.
func (s *Session) Results() []RenderResult {
	return s.results
}

// Select selects the command for keyword and moves the session to
// AwaitingArgument. Unknown keywords leave the session unchanged.
func (s *Session) Select(keyword string) error {
	if s.state != AwaitingCommand {
		return core.Error(core.EINVALID, "Command `%s` already selected.", s.cmd.Keyword)
	}
	cmd, ok := s.dispatcher.Registry().Lookup(keyword)
	if !ok {
		return core.Error(core.EINVALID, "Unknown command `%s`.", keyword)
	}
	tracer().Debugf("session: selected %s", cmd)
	s.cmd, s.state = cmd, AwaitingArgument
	s.results = nil
	return nil
}

// Input renders the selected command for the current argument, replacing
// all previous results.
func (s *Session) Input(arg string) ([]RenderResult, error) {
	if s.state != AwaitingArgument {
		return nil, core.Error(core.EINVALID, "Select a command first.")
	}
	s.results = s.dispatcher.Dispatch(s.cmd, arg)
	return s.results, nil
}

// Reset returns to command selection.
func (s *Session) Reset() {
	s.state = AwaitingCommand
	s.cmd = Command{}
	s.results = nil
}

// Choose hands the copy text of r over to the sink. Error results cannot
// be chosen.
func (s *Session) Choose(r RenderResult) error {
	if r.IsError {
		return core.Error(core.EINVALID, "Cannot use an error: %s", r.DisplayText)
	}
	if s.sink != nil {
		s.sink.OnResultChosen(r)
	}
	return nil
}
