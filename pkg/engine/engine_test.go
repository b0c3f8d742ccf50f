package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ChizhovVadim/CounterUci/pkg/common"
	pesto "github.com/ChizhovVadim/CounterUci/pkg/eval/pesto"
)

func newTestEngine() *Engine {
	return NewEngine(func() interface{} { return pesto.NewEvaluationService() }, zerolog.Nop())
}

func search(t *testing.T, e *Engine, fen string, limits LimitsType) SearchInfo {
	t.Helper()
	p, err := NewPositionFromFEN(fen)
	require.NoError(t, err)
	return e.Search(context.Background(), SearchParams{
		Positions: []Position{p},
		Limits:    limits,
	})
}

func TestSearchFindsMate(t *testing.T) {
	var tests = []struct {
		name    string
		fen     string
		threads int
	}{
		{"single thread", "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", 1},
		{"lazy smp", "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var e = newTestEngine()
			e.SetThreads(test.threads)
			var si = search(t, e, test.fen, LimitsType{Depth: 4})
			require.NotEmpty(t, si.MainLine)
			assert.Equal(t, "a1a8", si.MainLine[0].String())
			assert.Equal(t, 1, si.Score.Mate)
		})
	}
}

func TestSearchDepthLimit(t *testing.T) {
	var e = newTestEngine()
	var infos []SearchInfo
	p, err := NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	var si = e.Search(context.Background(), SearchParams{
		Positions: []Position{p},
		Limits:    LimitsType{Depth: 3},
		Progress:  func(si SearchInfo) { infos = append(infos, si) },
	})
	assert.Equal(t, 3, si.Depth)
	assert.NotEmpty(t, si.MainLine)
	assert.Positive(t, si.Nodes)
	require.NotEmpty(t, infos)
	assert.Equal(t, 3, infos[len(infos)-1].Depth)
}

func TestSearchNodesLimit(t *testing.T) {
	var e = newTestEngine()
	var si = search(t, e, InitialPositionFen, LimitsType{Nodes: 2000})
	assert.NotEmpty(t, si.MainLine)
	assert.GreaterOrEqual(t, si.Nodes, int64(2000))
	assert.Less(t, si.Nodes, int64(2000+nodesCheckInterval))
}

func TestSearchMoves(t *testing.T) {
	var e = newTestEngine()
	var si = search(t, e, InitialPositionFen, LimitsType{
		Depth:       3,
		SearchMoves: []Move{{From: mustSquare(t, "a2"), To: mustSquare(t, "a3")}},
	})
	require.NotEmpty(t, si.MainLine)
	assert.Equal(t, "a2a3", si.MainLine[0].String())
}

func TestSearchMultiPV(t *testing.T) {
	var e = newTestEngine()
	e.SetMultiPV(3)
	var mu sync.Mutex
	var lines = map[int]SearchInfo{}
	p, err := NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	e.Search(context.Background(), SearchParams{
		Positions: []Position{p},
		Limits:    LimitsType{Depth: 2},
		Progress: func(si SearchInfo) {
			mu.Lock()
			defer mu.Unlock()
			if si.Depth == 2 {
				lines[si.MultiPV] = si
			}
		},
	})
	require.Len(t, lines, 3)
	assert.NotEqual(t, lines[1].MainLine[0], lines[2].MainLine[0])
	assert.NotEqual(t, lines[2].MainLine[0], lines[3].MainLine[0])
}

func TestSearchNoLegalMoves(t *testing.T) {
	var e = newTestEngine()
	var si = search(t, e, "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 1 1", LimitsType{Depth: 5})
	assert.Empty(t, si.MainLine)
}

func TestSearchCancel(t *testing.T) {
	var e = newTestEngine()
	p, err := NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	var si = e.Search(ctx, SearchParams{
		Positions: []Position{p},
		Limits:    LimitsType{Infinite: true},
	})
	assert.NotEmpty(t, si.MainLine)
}

func TestClearDeferredDuringSearch(t *testing.T) {
	var e = newTestEngine()
	e.Prepare()

	e.searchMu.Lock()
	e.Clear()
	assert.True(t, e.clearPending.Load())
	e.searchMu.Unlock()

	e.Prepare()
	assert.False(t, e.clearPending.Load())
}

func TestHashResize(t *testing.T) {
	var e = newTestEngine()
	e.SetHash(1)
	e.Prepare()
	assert.Equal(t, 1, e.transTable.Size())
	e.SetHash(2)
	e.Prepare()
	assert.Equal(t, 2, e.transTable.Size())
}

func TestRepetitionHistory(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	var positions = []Position{p}
	for _, lan := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		var ok bool
		p, ok = p.MakeMoveLAN(lan)
		require.True(t, ok)
		positions = append(positions, p)
	}
	var keys = getHistoryKeys(positions)
	assert.Equal(t, 2, keys[positions[0].Key()])
}

func TestCalcLimits(t *testing.T) {
	var tests = []struct {
		name       string
		main, inc  time.Duration
		moves      int
		slowMover  int
		soft, hard time.Duration
	}{
		{"sudden death", 35 * time.Second, 0, 0, 100, 700 * time.Millisecond, 2100 * time.Millisecond},
		{"moves to go", 10 * time.Second, 0, 9, 100, 700 * time.Millisecond, 2100 * time.Millisecond},
		{"slow mover", 35 * time.Second, 0, 0, 200, 1400 * time.Millisecond, 4200 * time.Millisecond},
		{"low time", 0, 0, 0, 100, time.Millisecond, time.Millisecond},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			soft, hard := calcLimits(test.main, test.inc, test.moves, 0, test.slowMover)
			assert.Equal(t, test.soft, soft)
			assert.Equal(t, test.hard, hard)
		})
	}
}

func TestNewUciScore(t *testing.T) {
	assert.Equal(t, UciScore{Centipawns: 35}, newUciScore(35))
	assert.Equal(t, UciScore{Mate: 1}, newUciScore(winIn(1)))
	assert.Equal(t, UciScore{Mate: 2}, newUciScore(winIn(3)))
	assert.Equal(t, UciScore{Mate: -1}, newUciScore(lossIn(2)))
}

func mustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	var sq = ParseSquare(s)
	require.NotEqual(t, SquareNone, sq)
	return chess.Square(sq)
}

func TestNodesTime(t *testing.T) {
	var limits = LimitsType{WhiteTime: 35000, BlackTime: 35000}
	var tm = newTimeManager(context.Background(), time.Now(), limits, true,
		settings{slowMover: 100, nodesTime: 10}, nil)
	defer tm.Close()
	require.Equal(t, 2100*time.Millisecond, tm.hardLimit)

	tm.OnNodesChanged(20000)
	assert.False(t, tm.IsDone())
	tm.OnNodesChanged(21000)
	assert.True(t, tm.IsDone())
}

func TestLimitStrength(t *testing.T) {
	var tests = []struct {
		name   string
		limits LimitsType
		cap    int64
	}{
		{"movetime", LimitsType{MoveTime: 1000}, 24000},
		{"clock", LimitsType{WhiteTime: 35000, BlackTime: 35000}, 24 * 2100},
		{"depth only", LimitsType{Depth: 5}, 0},
		{"infinite", LimitsType{Infinite: true, MoveTime: 1000}, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var tm = newTimeManager(context.Background(), time.Now(), test.limits, true,
				settings{slowMover: 100, limitStrength: true, strengthNPS: 24}, nil)
			defer tm.Close()
			assert.Equal(t, test.cap, tm.nodeCap)
			if test.cap != 0 {
				tm.OnNodesChanged(test.cap - 1)
				assert.False(t, tm.IsDone())
				tm.OnNodesChanged(test.cap)
				assert.True(t, tm.IsDone())
			}
		})
	}
}

func TestRootBonus(t *testing.T) {
	p, err := NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	var moves = p.Board().ValidMoves()

	assert.Nil(t, newRootBonus(moves, 0))

	var bonus = newRootBonus(moves, 20)
	require.Len(t, bonus, len(moves))
	for _, m := range moves {
		assert.GreaterOrEqual(t, bonus[packMove(m)], 0)
		assert.LessOrEqual(t, bonus[packMove(m)], 20)
	}
}

func TestSearchWithVarietyAndTactical(t *testing.T) {
	var tests = []struct {
		name      string
		configure func(e *Engine)
	}{
		{"variety", func(e *Engine) { e.SetVariety(80) }},
		{"tactical", func(e *Engine) { e.SetTactical(8, 0) }},
		{"tactical shallow", func(e *Engine) { e.SetTactical(2, 2) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var e = newTestEngine()
			test.configure(e)
			var si = search(t, e, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", LimitsType{Depth: 4})
			require.NotEmpty(t, si.MainLine)
			assert.Equal(t, "a1a8", si.MainLine[0].String())
			assert.Equal(t, 1, si.Score.Mate)
		})
	}
}

func TestTacticalSearchesMoreNodes(t *testing.T) {
	var normal = search(t, newTestEngine(), InitialPositionFen, LimitsType{Depth: 4})

	var e = newTestEngine()
	e.SetTactical(8, 0)
	var tactical = search(t, e, InitialPositionFen, LimitsType{Depth: 4})
	assert.Greater(t, tactical.Nodes, normal.Nodes)
}
