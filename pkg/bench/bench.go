package bench

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ChizhovVadim/CounterUci/pkg/common"
)

const (
	CorpusDefault  = "default"
	CorpusCurrent  = "current"
	CorpusExtended = "extended"
)

// DefaultEvalSource is used when the bench command does not name one.
var DefaultEvalSource = "pesto"

// Params are the positional bench arguments:
// ttSize threads limit useNN evalSource corpus limitType.
type Params struct {
	TTSize     string
	Threads    string
	Limit      string
	UseNN      string
	EvalSource string
	Corpus     string
	LimitType  string
}

func ParseParams(args []string) Params {
	var next = func(def string) string {
		if len(args) == 0 {
			return def
		}
		var token = args[0]
		args = args[1:]
		return token
	}
	var p Params
	p.TTSize = next("256")
	p.Threads = next("1")
	p.Limit = next("13")
	p.UseNN = next("false")
	p.EvalSource = next(DefaultEvalSource)
	p.Corpus = next(CorpusDefault)
	p.LimitType = next("depth")
	return p
}

func (p Params) GoCommand() string {
	if p.LimitType == "eval" {
		return "eval"
	}
	return "go " + p.LimitType + " " + p.Limit
}

// Setup builds the list of protocol commands executed by the bench command.
// Positions the board cannot load are left out, so every search gets a lap
// of its own.
func Setup(currentFEN string, args []string) ([]string, error) {
	var p = ParseParams(args)
	var entries, err = LoadCorpus(p.Corpus, currentFEN)
	if err != nil {
		return nil, err
	}

	var list = []string{
		"setoption name Threads value " + p.Threads,
		"setoption name Hash value " + p.TTSize,
		"setoption name UseNN value " + p.UseNN,
		"setoption name EvalSource value " + p.EvalSource,
		"ucinewgame",
	}
	var goCommand = p.GoCommand()
	for _, entry := range entries {
		switch {
		case IsCommand(entry):
			list = append(list, entry)
		case loadable(entry):
			list = append(list, "position fen "+entry, goCommand)
		}
	}
	list = append(list, "setoption name UseNN value true")
	return list, nil
}

// IsCommand reports whether a corpus entry is a protocol command rather than a position.
func IsCommand(entry string) bool {
	return strings.Contains(entry, "setoption")
}

// loadable reports whether the position of a corpus entry, ignoring trailing
// moves, is accepted by the board.
func loadable(entry string) bool {
	var fen, _, _ = strings.Cut(entry, " moves ")
	var _, err = common.NewPositionFromFEN(fen)
	return err == nil
}

// IsSearch reports whether a command produces a bench lap.
func IsSearch(cmd string) bool {
	return strings.HasPrefix(cmd, "go ") || strings.HasPrefix(cmd, "eval")
}

func CountSearches(list []string) int {
	var n = 0
	for _, cmd := range list {
		if IsSearch(cmd) {
			n++
		}
	}
	return n
}

func LoadCorpus(selector, currentFEN string) ([]string, error) {
	switch selector {
	case CorpusDefault:
		return append([]string(nil), defaultCorpus...), nil
	case CorpusCurrent:
		return []string{currentFEN}, nil
	case CorpusExtended:
		var result = append([]string(nil), defaultCorpus...)
		return append(result, tacticalCorpus...), nil
	}
	return readCorpusFile(selector)
}

func readCorpusFile(path string) ([]string, error) {
	var file, err = os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %v: %w", path, err)
	}
	defer file.Close()

	var result []string
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			result = append(result, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %v: %w", path, err)
	}
	return result, nil
}
