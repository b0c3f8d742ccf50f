package bench

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChizhovVadim/CounterUci/pkg/common"
)

const testFEN = "8/8/8/8/8/8/8/k6K w - - 0 1"

func TestParseParamsDefaults(t *testing.T) {
	var p = ParseParams(nil)
	require.Equal(t, Params{
		TTSize:     "256",
		Threads:    "1",
		Limit:      "13",
		UseNN:      "false",
		EvalSource: DefaultEvalSource,
		Corpus:     CorpusDefault,
		LimitType:  "depth",
	}, p)
	require.Equal(t, "go depth 13", p.GoCommand())

	p = ParseParams(strings.Fields("64 4 5000 true material current movetime"))
	require.Equal(t, "64", p.TTSize)
	require.Equal(t, "4", p.Threads)
	require.Equal(t, "current", p.Corpus)
	require.Equal(t, "go movetime 5000", p.GoCommand())

	p = ParseParams(strings.Fields("16 1 1 false pesto default eval"))
	require.Equal(t, "eval", p.GoCommand())
}

func TestSetupCurrent(t *testing.T) {
	var list, err = Setup(testFEN, strings.Fields("64 4 5000 false pesto current movetime"))
	require.NoError(t, err)
	require.Equal(t, []string{
		"setoption name Threads value 4",
		"setoption name Hash value 64",
		"setoption name UseNN value false",
		"setoption name EvalSource value pesto",
		"ucinewgame",
		"position fen " + testFEN,
		"go movetime 5000",
		"setoption name UseNN value true",
	}, list)
	require.Equal(t, 1, CountSearches(list))
}

func TestSetupDefaultCorpus(t *testing.T) {
	var list, err = Setup(testFEN, nil)
	require.NoError(t, err)

	var positions = 0
	for _, entry := range defaultCorpus {
		if !IsCommand(entry) {
			positions++
		}
	}
	require.Equal(t, positions, CountSearches(list))
	require.Equal(t, "setoption name UseNN value true", list[len(list)-1])

	extended, err := Setup(testFEN, strings.Fields("16 1 5 false pesto extended perft"))
	require.NoError(t, err)
	require.Equal(t, positions+len(tacticalCorpus), CountSearches(extended))
	require.Contains(t, extended, "go perft 5")
}

func TestSetupFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "fens.epd")
	var content = testFEN + "\n\n" + "setoption name Hash value 8\r\n" + "4k3/8/8/8/8/8/8/4K3 b - - 0 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var list, err = Setup(testFEN, []string{"16", "1", "3", "false", "pesto", path})
	require.NoError(t, err)
	require.Equal(t, []string{
		"setoption name Threads value 1",
		"setoption name Hash value 16",
		"setoption name UseNN value false",
		"setoption name EvalSource value pesto",
		"ucinewgame",
		"position fen " + testFEN,
		"go depth 3",
		"setoption name Hash value 8",
		"position fen 4k3/8/8/8/8/8/8/4K3 b - - 0 1",
		"go depth 3",
		"setoption name UseNN value true",
	}, list)

	_, err = Setup(testFEN, []string{"16", "1", "3", "false", "pesto", filepath.Join(t.TempDir(), "missing.epd")})
	require.Error(t, err)
}

func TestSetupSkipsUnloadablePositions(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "fens.epd")
	var content = strings.Join([]string{
		"setoption name UCI_Chess960 value true",
		"bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w HFhf - 0 1 moves g2g3 d7d5",
		"not a position",
		testFEN + " moves h1g1",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var list, err = Setup(testFEN, []string{"16", "1", "3", "false", "pesto", path})
	require.NoError(t, err)
	require.Equal(t, []string{
		"setoption name Threads value 1",
		"setoption name Hash value 16",
		"setoption name UseNN value false",
		"setoption name EvalSource value pesto",
		"ucinewgame",
		"setoption name UCI_Chess960 value true",
		"position fen " + testFEN + " moves h1g1",
		"go depth 3",
		"setoption name UseNN value true",
	}, list)
	require.Equal(t, 1, CountSearches(list))
}

func TestCorporaLoad(t *testing.T) {
	for _, entry := range append(append([]string(nil), defaultCorpus...), tacticalCorpus...) {
		if IsCommand(entry) {
			continue
		}
		var fen, _, _ = strings.Cut(entry, " moves ")
		var _, err = common.NewPositionFromFEN(fen)
		assert.NoError(t, err, entry)
	}
}

func TestNodesPerSecond(t *testing.T) {
	var tests = []struct {
		nodes, ms uint64
		want      string
	}{
		{0, 1, "0"},
		{5000, 1000, "5000"},
		{9_999_999, 1000, "9999999"},
		{10_000_000, 1000, "10000k"},
		{20_000_000, 1000, "20000k"},
		{1000, 0, "1000000"},
		{math.MaxUint64, 1, "18446744073709551615k"},
		{math.MaxUint64 / 2, 1 << 20, "8796093022207k"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, NodesPerSecond(test.nodes, test.ms), "%d/%d", test.nodes, test.ms)
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRecorder(t *testing.T) {
	var clock = &fakeClock{t: time.Unix(1000, 0)}
	var out = &bytes.Buffer{}
	var r = NewRecorderWithClock(out, 2, clock.now)

	clock.advance(500 * time.Millisecond)
	r.ResetClock()

	r.BeginPosition(testFEN)
	clock.advance(999 * time.Millisecond)
	r.EndSearch(20_000_000, "Classical evaluation enabled.")

	r.BeginPosition(testFEN)
	clock.advance(99 * time.Millisecond)
	r.EndSearch(1000, "")

	var report = r.Finish()
	require.Equal(t, 2, report.Positions)
	require.Equal(t, uint64(20_001_000), report.Nodes)
	require.Equal(t, 1098*time.Millisecond, report.Elapsed)
	require.Len(t, report.Laps, 2)
	require.Equal(t, uint64(1000), report.Laps[1].Nodes)

	var text = out.String()
	require.Contains(t, text, "Position: 1/2\nFEN: "+testFEN)
	require.Contains(t, text, "Nodes/Second: 20000k\nClassical evaluation enabled.")
	require.Contains(t, text, "Nodes/Second: 10000\n")
	require.Contains(t, text, "Total time (ms) : 1099\nNodes searched  : 20001000\n")
	require.Contains(t, text, "Nodes/second    : 18199k\n")
}
