package uci

import (
	"strings"
)

// Command is one parsed input line. The set of implementations is closed.
type Command interface {
	command()
}

type (
	UciCommand       struct{}
	IsReadyCommand   struct{}
	NewGameCommand   struct{}
	StopCommand      struct{}
	QuitCommand      struct{}
	PonderHitCommand struct{}
	DisplayCommand   struct{}
	EvalCommand      struct{}
	FlipCommand      struct{}
	CompilerCommand  struct{}

	SetOptionCommand struct {
		Name  string
		Value string
	}

	// SetCommand is the console shortcut for setoption: a one word name or
	// shortcut followed by a value that may contain spaces.
	SetCommand struct {
		Name  string
		Value string
	}

	// PositionCommand with neither StartPos nor Fen set is ignored.
	PositionCommand struct {
		StartPos bool
		Fen      string
		Moves    []string
	}

	GoCommand struct {
		Args []string
	}

	BenchCommand struct {
		Args []string
	}

	UnknownCommand struct {
		Line string
	}
)

func (UciCommand) command()       {}
func (IsReadyCommand) command()   {}
func (NewGameCommand) command()   {}
func (StopCommand) command()      {}
func (QuitCommand) command()      {}
func (PonderHitCommand) command() {}
func (DisplayCommand) command()   {}
func (EvalCommand) command()      {}
func (FlipCommand) command()      {}
func (CompilerCommand) command()  {}
func (SetOptionCommand) command() {}
func (SetCommand) command()       {}
func (PositionCommand) command()  {}
func (GoCommand) command()        {}
func (BenchCommand) command()     {}
func (UnknownCommand) command()   {}

var commandParsers = map[string]func(args []string) Command{
	"uci":        func([]string) Command { return UciCommand{} },
	"isready":    func([]string) Command { return IsReadyCommand{} },
	"ucinewgame": func([]string) Command { return NewGameCommand{} },
	"setoption":  parseSetOption,
	"so":         parseSetOption,
	"set":        parseSet,
	"s":          parseSet,
	"position":   parsePosition,
	"p":          parsePosition,
	"go":         func(args []string) Command { return GoCommand{Args: args} },
	"g":          func(args []string) Command { return GoCommand{Args: args} },
	"stop":       func([]string) Command { return StopCommand{} },
	"?":          func([]string) Command { return StopCommand{} },
	"quit":       func([]string) Command { return QuitCommand{} },
	"q":          func([]string) Command { return QuitCommand{} },
	"ponderhit":  func([]string) Command { return PonderHitCommand{} },
	"bench":      func(args []string) Command { return BenchCommand{Args: args} },
	"b":          func(args []string) Command { return BenchCommand{Args: args} },
	"d":          func([]string) Command { return DisplayCommand{} },
	"eval":       func([]string) Command { return EvalCommand{} },
	"flip":       func([]string) Command { return FlipCommand{} },
	"compiler":   func([]string) Command { return CompilerCommand{} },
}

// ParseCommand returns nil for blank lines and comments.
func ParseCommand(line string) Command {
	var fields = strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	var parse, found = commandParsers[fields[0]]
	if !found {
		return UnknownCommand{Line: line}
	}
	return parse(fields[1:])
}

// parseSetOption reads "name <name...> value <value...>". Both parts may
// contain spaces.
func parseSetOption(args []string) Command {
	if len(args) != 0 {
		// name
		args = args[1:]
	}
	var valueIndex = findIndexString(args, "value")
	if valueIndex < 0 {
		return SetOptionCommand{Name: strings.Join(args, " ")}
	}
	return SetOptionCommand{
		Name:  strings.Join(args[:valueIndex], " "),
		Value: strings.Join(args[valueIndex+1:], " "),
	}
}

func parseSet(args []string) Command {
	if len(args) == 0 {
		return SetCommand{}
	}
	return SetCommand{
		Name:  args[0],
		Value: strings.Join(args[1:], " "),
	}
}

func parsePosition(args []string) Command {
	if len(args) == 0 {
		return PositionCommand{}
	}
	var result PositionCommand
	var movesIndex = findIndexString(args, "moves")
	switch args[0] {
	case "startpos":
		result.StartPos = true
	case "fen", "f":
		var end = len(args)
		if movesIndex >= 0 {
			end = movesIndex
		}
		result.Fen = strings.Join(args[1:end], " ")
	default:
		return PositionCommand{}
	}
	if movesIndex >= 0 {
		result.Moves = args[movesIndex+1:]
	}
	return result
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
