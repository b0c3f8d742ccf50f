package engine

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/CounterUci/pkg/common"
)

type Engine struct {
	Hash          int
	Threads       int
	MultiPV       int
	MoveOverhead  int
	SlowMover     int
	NodesTime     int
	LimitStrength bool
	StrengthNPS   int
	Tactical      int
	TacticalDepth int
	Variety       int
	logger        zerolog.Logger
	settingsMu    sync.Mutex
	searchMu      sync.Mutex
	clearPending  atomic.Bool
	evalBuilder   func() interface{}
	evalVersion   int
	lmr           lmrTable
	transTable    *transTable
	threads       []thread
	threadsEval   int
	timeManager   *timeManager
	historyKeys   map[uint64]int
	rootBonus     map[uint32]int
	tacticalPlies int
	tacticalUntil int
	progress      func(SearchInfo)
	multiPVLines  int
	mainLine      mainLine
	start         time.Time
	nodes         atomic.Int64
	mu            sync.Mutex
}

type thread struct {
	engine        *Engine
	index         int
	history       historyService
	evaluator     IEvaluator
	nodes         int64
	selDepth      int
	tacticalPlies int
	rootPosition  *chess.Position
	rootMoves     []*chess.Move
	excluded      map[uint32]bool
	stack         [stackSize]struct {
		key      uint64
		moveList []orderedMove
		quiets   []*chess.Move
		pv       pv
		killer1  uint32
		killer2  uint32
	}
}

type pv struct {
	items [stackSize]*chess.Move
	size  int
}

type mainLine struct {
	moves    []*chess.Move
	score    int
	depth    int
	selDepth int
}

type IEvaluator interface {
	Evaluate(p *chess.Position) int
}

type IExplainer interface {
	Explain(p *chess.Position) string
}

func NewEngine(evalBuilder func() interface{}, logger zerolog.Logger) *Engine {
	var e = &Engine{
		Hash:         16,
		Threads:      1,
		MultiPV:      1,
		MoveOverhead: 10,
		SlowMover:    100,
		StrengthNPS:  50,
		evalBuilder:  evalBuilder,
		logger:       logger,
	}
	initLmr(&e.lmr, lmrMult)
	return e
}

func (e *Engine) SetHash(megabytes int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.Hash = megabytes
}

func (e *Engine) SetThreads(threads int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.Threads = threads
}

func (e *Engine) SetMultiPV(multiPV int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.MultiPV = multiPV
}

func (e *Engine) SetMoveOverhead(ms int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.MoveOverhead = ms
}

func (e *Engine) SetSlowMover(percent int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.SlowMover = percent
}

// SetNodesTime makes clock limits count nodes: each millisecond of the
// clock is worth nodesPerMs nodes. Zero uses the wall clock.
func (e *Engine) SetNodesTime(nodesPerMs int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.NodesTime = nodesPerMs
}

// SetLimitStrength caps timed searches at thousandsNPS nodes per second of
// the time allotted to the move.
func (e *Engine) SetLimitStrength(enabled bool, thousandsNPS int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.LimitStrength = enabled
	e.StrengthNPS = thousandsNPS
}

// SetTactical disables pruning and reductions on the first plies of the tree.
// maxDepth limits it to iterations up to that depth; zero means every iteration.
func (e *Engine) SetTactical(plies, maxDepth int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.Tactical = plies
	e.TacticalDepth = maxDepth
}

// SetVariety adds a random bonus of up to variety centipawns to each root
// move, fixed for the duration of a search.
func (e *Engine) SetVariety(variety int) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.Variety = variety
}

// SetEvalBuilder replaces the evaluation; threads pick it up on the next Prepare.
func (e *Engine) SetEvalBuilder(evalBuilder func() interface{}) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	e.evalBuilder = evalBuilder
	e.evalVersion++
}

type settings struct {
	hash, threads, multiPV, moveOverhead, slowMover int
	nodesTime, strengthNPS                          int
	limitStrength                                   bool
	tactical, tacticalDepth, variety                int
	evalBuilder                                     func() interface{}
	evalVersion                                     int
}

func (e *Engine) settings() settings {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	return settings{
		hash:          e.Hash,
		threads:       e.Threads,
		multiPV:       e.MultiPV,
		moveOverhead:  e.MoveOverhead,
		slowMover:     e.SlowMover,
		nodesTime:     e.NodesTime,
		strengthNPS:   e.StrengthNPS,
		limitStrength: e.LimitStrength,
		tactical:      e.Tactical,
		tacticalDepth: e.TacticalDepth,
		variety:       e.Variety,
		evalBuilder:   e.evalBuilder,
		evalVersion:   e.evalVersion,
	}
}

func (e *Engine) Prepare() {
	e.searchMu.Lock()
	defer e.searchMu.Unlock()
	e.prepare(e.settings())
}

func (e *Engine) prepare(s settings) {
	if e.transTable == nil || e.transTable.Size() != s.hash {
		if e.transTable != nil {
			e.transTable = nil
			runtime.GC()
		}
		e.transTable = newTransTable(s.hash)
		e.clearPending.Store(false)
		e.logger.Debug().Int("hash", s.hash).Msg("transposition table allocated")
	}
	if e.clearPending.Swap(false) {
		e.clearTables()
	}
	if len(e.threads) != s.threads || e.threadsEval != s.evalVersion {
		e.threads = make([]thread, s.threads)
		for i := range e.threads {
			var t = &e.threads[i]
			t.engine = e
			t.index = i
			t.evaluator = buildEvaluator(s.evalBuilder)
		}
		e.threadsEval = s.evalVersion
		e.logger.Debug().Int("threads", s.threads).Msg("search threads prepared")
	}
}

// Clear forgets everything learned in previous searches. While a search is
// running the request is remembered and applied by the next Prepare.
func (e *Engine) Clear() {
	if !e.searchMu.TryLock() {
		e.clearPending.Store(true)
		return
	}
	defer e.searchMu.Unlock()
	e.clearTables()
}

func (e *Engine) clearTables() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
	for i := range e.threads {
		e.threads[i].history.Clear()
	}
}

func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.searchMu.Lock()
	defer e.searchMu.Unlock()

	e.start = searchParams.Limits.StartTime
	if e.start.IsZero() {
		e.start = time.Now()
	}
	var s = e.settings()
	e.prepare(s)

	var root = searchParams.Positions[len(searchParams.Positions)-1].Clone()
	e.timeManager = newTimeManager(ctx, e.start, searchParams.Limits, root.WhiteMove(),
		s, searchParams.Ponder)
	defer e.timeManager.Close()
	e.transTable.IncDate()
	e.historyKeys = getHistoryKeys(searchParams.Positions)
	e.nodes.Store(0)
	e.mainLine = mainLine{}
	e.multiPVLines = 1
	e.progress = searchParams.Progress

	var rootMoves = genRootMoves(root, searchParams.Limits.SearchMoves)
	if len(rootMoves) == 0 {
		return e.currentSearchResult()
	}
	e.mainLine = mainLine{moves: []*chess.Move{rootMoves[0]}}
	if len(rootMoves) == 1 && searchParams.Limits.UseTimeManagement() {
		return e.currentSearchResult()
	}

	e.multiPVLines = min(s.multiPV, len(rootMoves))
	e.tacticalPlies, e.tacticalUntil = s.tactical, s.tacticalDepth
	e.rootBonus = newRootBonus(rootMoves, s.variety)
	lazySmp(e, root, rootMoves, e.multiPVLines)
	return e.currentSearchResult()
}

func genRootMoves(root Position, searchMoves []Move) []*chess.Move {
	var ml = root.Board().ValidMoves()
	if len(searchMoves) == 0 {
		return ml
	}
	var result []*chess.Move
	for _, m := range ml {
		for _, sm := range searchMoves {
			if sm.Matches(m) {
				result = append(result, m)
				break
			}
		}
	}
	if len(result) == 0 {
		return ml
	}
	return result
}

func getHistoryKeys(positions []Position) map[uint64]int {
	var result = make(map[uint64]int)
	for i := len(positions) - 1; i >= 0; i-- {
		var p = &positions[i]
		result[p.Key()]++
		if p.Rule50() == 0 {
			break
		}
	}
	return result
}

// Explain describes the current evaluation of p.
func (e *Engine) Explain(p Position) string {
	var evaluator = buildEvaluator(e.settings().evalBuilder)
	if explainer, ok := evaluator.(IExplainer); ok {
		return explainer.Explain(p.Board())
	}
	return ""
}

func (e *Engine) currentSearchResult() SearchInfo {
	return e.lineInfo(e.mainLine)
}

func (e *Engine) lineInfo(line mainLine) SearchInfo {
	var moves = make([]Move, len(line.moves))
	for i, m := range line.moves {
		moves[i] = NewMove(m)
	}
	var hashfull int
	if e.transTable != nil {
		hashfull = e.transTable.Hashfull()
	}
	return SearchInfo{
		Depth:    line.depth,
		SelDepth: line.selDepth,
		MultiPV:  1,
		MainLine: moves,
		Score:    newUciScore(line.score),
		Nodes:    e.nodes.Load(),
		Time:     time.Since(e.start),
		HashFull: hashfull,
	}
}

func (pv *pv) clear() {
	pv.size = 0
}

func (pv *pv) assign(m *chess.Move, child *pv) {
	pv.size = 1
	pv.items[0] = m
	if child.size > 0 {
		pv.size += child.size
		copy(pv.items[1:], child.items[:child.size])
	}
}

func (pv *pv) toSlice() []*chess.Move {
	var result = make([]*chess.Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}

func buildEvaluator(evalBuilder func() interface{}) IEvaluator {
	var evaluationService = evalBuilder()
	if e, ok := evaluationService.(IEvaluator); ok {
		return e
	}
	panic(errors.New("bad eval builder"))
}
