package engine

import (
	"errors"

	"github.com/notnil/chess"
	"golang.org/x/sync/errgroup"

	. "github.com/ChizhovVadim/CounterUci/pkg/common"
)

var errSearchTimeout = errors.New("search timeout")

// lazySmp runs one iterative deepening loop per thread. Threads share only the
// transposition table; the main thread also reports progress and searches the
// extra lines of a MultiPV search.
func lazySmp(e *Engine, root Position, rootMoves []*chess.Move, multiPV int) {
	var allowed = make(map[uint32]bool, len(rootMoves))
	for _, m := range rootMoves {
		allowed[packMove(m)] = true
	}

	var g errgroup.Group
	for i := range e.threads {
		var t = &e.threads[i]
		var p = root.Clone()
		g.Go(func() error {
			defer e.timeManager.Close()
			t.prepareRoot(p.Board(), allowed)
			if t.index == 0 {
				iterativeDeepening(t, multiPV)
			} else {
				iterativeDeepening(t, 1)
			}
			return nil
		})
	}
	g.Wait()
}

func (t *thread) prepareRoot(p *chess.Position, allowed map[uint32]bool) {
	t.rootPosition = p
	t.rootMoves = t.rootMoves[:0]
	for _, m := range p.ValidMoves() {
		if allowed[packMove(m)] {
			t.rootMoves = append(t.rootMoves, m)
		}
	}
	t.nodes = 0
	t.excluded = make(map[uint32]bool)
	for h := 0; h <= 2; h++ {
		t.stack[h].killer1 = 0
		t.stack[h].killer2 = 0
	}
}

func iterativeDeepening(t *thread, multiPV int) {
	defer t.flushNodes()
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				return
			}
			panic(r)
		}
	}()

	var prevScore int
	for depth := 1 + t.index%2; depth <= maxHeight; depth++ {
		if t.engine.timeManager.IsDone() {
			return
		}
		t.selDepth = 0
		t.tacticalPlies = 0
		if t.engine.tacticalUntil == 0 || depth <= t.engine.tacticalUntil {
			t.tacticalPlies = t.engine.tacticalPlies
		}
		clear(t.excluded)
		var lines = make([]mainLine, 0, multiPV)
		for pvIndex := 0; pvIndex < multiPV; pvIndex++ {
			var score int
			if multiPV == 1 {
				score = aspirationWindow(t, depth, prevScore)
			} else {
				score = t.searchRoot(-valueInfinity, valueInfinity, depth)
			}
			var moves = t.stack[0].pv.toSlice()
			if len(moves) == 0 {
				break
			}
			lines = append(lines, mainLine{
				moves:    moves,
				score:    score,
				depth:    depth,
				selDepth: t.selDepth,
			})
			t.excluded[packMove(moves[0])] = true
		}
		if len(lines) == 0 {
			continue
		}
		prevScore = lines[0].score
		if index := findMove(t.rootMoves, packMove(lines[0].moves[0])); index >= 0 {
			moveToBegin(t.rootMoves, index)
		}
		t.engine.onIterationComplete(t, lines)
	}
}

func (e *Engine) onIterationComplete(t *thread, lines []mainLine) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t.flushNodes()
	var line = lines[0]
	if line.depth <= e.mainLine.depth {
		return
	}
	// helpers cannot replace the lines of a MultiPV search
	if t.index != 0 && e.multiPVLines > 1 {
		return
	}
	e.mainLine = line
	e.timeManager.OnIterationComplete(line)
	if e.progress == nil {
		return
	}
	for i := range lines {
		var si = e.lineInfo(lines[i])
		si.MultiPV = i + 1
		e.progress(si)
	}
}
