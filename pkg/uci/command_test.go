package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	var tests = []struct {
		line string
		want Command
	}{
		{"", nil},
		{"  ", nil},
		{"#go depth 5", nil},
		{"uci", UciCommand{}},
		{"isready", IsReadyCommand{}},
		{"ucinewgame", NewGameCommand{}},
		{"q", QuitCommand{}},
		{"quit", QuitCommand{}},
		{"?", StopCommand{}},
		{"stop", StopCommand{}},
		{"ponderhit", PonderHitCommand{}},
		{"d", DisplayCommand{}},
		{"eval", EvalCommand{}},
		{"flip", FlipCommand{}},
		{"compiler", CompilerCommand{}},
		{"g depth 5", GoCommand{Args: []string{"depth", "5"}}},
		{"go", GoCommand{Args: []string{}}},
		{"b 16 1 10", BenchCommand{Args: []string{"16", "1", "10"}}},
		{"setoption name Clear Hash", SetOptionCommand{Name: "Clear Hash"}},
		{"so name SyzygyPath value /a b/c", SetOptionCommand{Name: "SyzygyPath", Value: "/a b/c"}},
		{"set", SetCommand{}},
		{"s z /tb dir", SetCommand{Name: "z", Value: "/tb dir"}},
		{"position startpos", PositionCommand{StartPos: true}},
		{"p startpos moves e2e4 e7e5", PositionCommand{StartPos: true, Moves: []string{"e2e4", "e7e5"}}},
		{"position fen 8/8/8/8/8/8/8/k6K w - - 0 1 moves h1g1",
			PositionCommand{Fen: "8/8/8/8/8/8/8/k6K w - - 0 1", Moves: []string{"h1g1"}}},
		{"p f 8/8/8/8/8/8/8/k6K w", PositionCommand{Fen: "8/8/8/8/8/8/8/k6K w"}},
		{"position banana", PositionCommand{}},
		{"Go depth 5", UnknownCommand{Line: "Go depth 5"}},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			assert.Equal(t, test.want, ParseCommand(test.line))
		})
	}
}
