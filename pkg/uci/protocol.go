package uci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CounterUci/pkg/bench"
	"github.com/ChizhovVadim/CounterUci/pkg/common"
)

// Option names the session reads or forwards.
const (
	OptionDebugLogFile        = "Debug Log File"
	OptionClearHash           = "Clear Hash"
	OptionHash                = "Hash"
	OptionLimitStrengthNPSAdj = "LimitStrength_NPS_Adj"
	OptionMinimalOutput       = "Minimal_Output"
	OptionMoveOverhead        = "Move Overhead"
	OptionMultiPV             = "MultiPV"
	OptionNodesTime           = "nodestime"
	OptionPonder              = "Ponder"
	OptionSearchDepth         = "Search_Depth"
	OptionSearchNodes         = "Search_Nodes"
	OptionSlowMover           = "Slow Mover"
	OptionSyzygy50MoveRule    = "Syzygy50MoveRule"
	OptionSyzygyPath          = "SyzygyPath"
	OptionSyzygyProbeDepth    = "SyzygyProbeDepth"
	OptionSyzygyProbeLimit    = "SyzygyProbeLimit"
	OptionTacticalDepth       = "Tactical_Depth"
	OptionTactical            = "Tactical"
	OptionThreads             = "Threads"
	OptionAnalyseMode         = "UCI_AnalyseMode"
	OptionChess960            = "UCI_Chess960"
	OptionLimitStrength       = "UCI_LimitStrength"
	OptionShowWDL             = "UCI_ShowWDL"
	OptionVariety             = "Variety"
	OptionUseNN               = "UseNN"
	OptionEvalSource          = "EvalSource"
)

// EmptyPath is the value of a path option that names no file.
const EmptyPath = "<empty>"

var errSearchRunning = errors.New("search still run")

type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
	Explain(p common.Position) string
}

type State int32

const (
	StateIdle State = iota
	StateAwaitingInput
	StateDispatching
	StateSearchInFlight
	StateStopping
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingInput:
		return "awaiting input"
	case StateDispatching:
		return "dispatching"
	case StateSearchInFlight:
		return "search in flight"
	case StateStopping:
		return "stopping"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// searchJob is the asynchronous side of one go command.
type searchJob struct {
	cancel    context.CancelFunc
	ponder    atomic.Bool
	infinite  bool
	stopOnce  sync.Once
	stopped   chan struct{}
	hitOnce   sync.Once
	ponderhit chan struct{}
	done      chan struct{}
	result    common.SearchInfo
}

func (job *searchJob) stop() {
	job.stopOnce.Do(func() {
		job.cancel()
		close(job.stopped)
	})
}

func (job *searchJob) ponderHit() {
	job.ponder.Store(false)
	job.hitOnce.Do(func() { close(job.ponderhit) })
}

// awaitRelease holds bestmove back while pondering or analysing.
func (job *searchJob) awaitRelease() {
	if job.infinite {
		<-job.stopped
		return
	}
	if job.ponder.Load() {
		select {
		case <-job.stopped:
		case <-job.ponderhit:
		}
	}
}

type Protocol struct {
	name      string
	author    string
	version   string
	options   *OptionRegistry
	engine    Engine
	logger    zerolog.Logger
	out       *syncWriter
	diag      io.Writer
	exit      func(code int)
	state     atomic.Int32
	positions []common.Position
	job       *searchJob
	lastBench bench.Report
}

type Config struct {
	Name    string
	Author  string
	Version string
	Engine  Engine
	Options *OptionRegistry
	Logger  zerolog.Logger
	// Out receives protocol output, Diag the bench report. They default to
	// stdout and stderr.
	Out  io.Writer
	Diag io.Writer
	// Exit terminates the process. Defaults to os.Exit.
	Exit func(code int)
}

func New(cfg Config) *Protocol {
	var initPosition, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		panic(err)
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Diag == nil {
		cfg.Diag = os.Stderr
	}
	if cfg.Exit == nil {
		cfg.Exit = os.Exit
	}
	if cfg.Options == nil {
		cfg.Options = NewOptionRegistry()
	}
	return &Protocol{
		name:      cfg.Name,
		author:    cfg.Author,
		version:   cfg.Version,
		options:   cfg.Options,
		engine:    cfg.Engine,
		logger:    cfg.Logger,
		out:       &syncWriter{w: cfg.Out},
		diag:      cfg.Diag,
		exit:      cfg.Exit,
		positions: []common.Position{initPosition},
	}
}

func (uci *Protocol) State() State {
	return State(uci.state.Load())
}

func (uci *Protocol) setState(s State) {
	uci.state.Store(int32(s))
}

// Run processes input lines until quit or end of input.
func (uci *Protocol) Run(ctx context.Context, input LineReader) error {
	defer uci.shutdown()
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		uci.reap()
		if uci.job == nil {
			uci.setState(StateAwaitingInput)
		}
		var line, err = input.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		uci.out.logInput(line)
		if quit := uci.Execute(line); quit {
			return nil
		}
	}
}

// RunOnce executes a single command line and waits for a search it started.
func (uci *Protocol) RunOnce(line string) {
	defer uci.shutdown()
	uci.out.logInput(line)
	uci.Execute(line)
	if job := uci.job; job != nil {
		if job.infinite {
			job.stop()
		}
		<-job.done
	}
}

func (uci *Protocol) shutdown() {
	if job := uci.job; job != nil {
		job.stop()
		<-job.done
	}
	uci.setState(StateTerminated)
	uci.out.setLog(nil)
}

// Execute runs one input line and reports whether the session should end.
func (uci *Protocol) Execute(line string) bool {
	var cmd = ParseCommand(line)
	if cmd == nil {
		return false
	}
	if _, quit := cmd.(QuitCommand); quit {
		uci.stopSearch()
		return true
	}
	uci.reap()
	if uci.job == nil {
		uci.setState(StateDispatching)
	}
	if err := uci.handle(cmd); err != nil {
		uci.logger.Warn().Err(err).Str("command", line).Msg("command failed")
	}
	return false
}

func (uci *Protocol) handle(cmd Command) error {
	switch cmd := cmd.(type) {
	case UciCommand:
		return uci.uciCommand()
	case IsReadyCommand:
		return uci.isReadyCommand()
	case NewGameCommand:
		return uci.uciNewGameCommand()
	case SetOptionCommand:
		return uci.setOptionCommand(cmd)
	case SetCommand:
		return uci.setCommand(cmd)
	case PositionCommand:
		return uci.positionCommand(cmd)
	case GoCommand:
		return uci.goCommand(cmd)
	case StopCommand:
		uci.stopSearch()
		return nil
	case PonderHitCommand:
		return uci.ponderhitCommand()
	case BenchCommand:
		return uci.benchCommand(cmd)
	case DisplayCommand:
		uci.printf("%v", uci.currentPosition())
		return nil
	case EvalCommand:
		return uci.evalCommand()
	case FlipCommand:
		return uci.flipCommand()
	case CompilerCommand:
		uci.printf("%v", compilerInfo())
		return nil
	case UnknownCommand:
		uci.printf("Unknown command: %v\n", cmd.Line)
		uci.logger.Warn().Str("command", cmd.Line).Msg("unknown command")
		return nil
	}
	return fmt.Errorf("unhandled command %T", cmd)
}

func (uci *Protocol) printf(format string, a ...interface{}) {
	fmt.Fprintf(uci.out, format, a...)
}

func (uci *Protocol) currentPosition() common.Position {
	return uci.positions[len(uci.positions)-1]
}

func (uci *Protocol) uciCommand() error {
	uci.printf("id name %s %s\n", uci.name, uci.version)
	uci.printf("id author %s\n", uci.author)
	uci.printf("%s", uci.options.Display())
	uci.printf("uciok\n")
	return nil
}

func (uci *Protocol) isReadyCommand() error {
	// Prepare would wait for the running search
	if uci.job == nil {
		uci.engine.Prepare()
	}
	uci.printf("readyok\n")
	return nil
}

func (uci *Protocol) uciNewGameCommand() error {
	uci.engine.Clear()
	return nil
}

func (uci *Protocol) setOptionCommand(cmd SetOptionCommand) error {
	var changed, err = uci.options.Set(cmd.Name, cmd.Value)
	if errors.Is(err, ErrUnknownOption) {
		uci.printf("No such option: %v\n", cmd.Name)
		uci.logger.Warn().Str("option", cmd.Name).Msg("no such option")
		return nil
	}
	if err != nil {
		return err
	}
	if !changed {
		uci.logger.Debug().Str("option", cmd.Name).Str("value", cmd.Value).Msg("option value rejected")
	}
	return nil
}

func (uci *Protocol) positionCommand(cmd PositionCommand) error {
	var fen string
	switch {
	case cmd.StartPos:
		fen = common.InitialPositionFen
	case cmd.Fen != "":
		fen = cmd.Fen
	default:
		return errors.New("unknown position command")
	}
	var p, err = common.NewPosition(fen, uci.options.Bool(OptionChess960))
	if err != nil {
		return err
	}
	var positions = []common.Position{p}
	for _, lan := range cmd.Moves {
		var newPos, ok = positions[len(positions)-1].MakeMoveLAN(lan)
		if !ok {
			uci.logger.Debug().Str("move", lan).Msg("move list truncated")
			break
		}
		positions = append(positions, newPos)
	}
	uci.positions = positions
	return nil
}

func (uci *Protocol) flipCommand() error {
	var p, err = uci.currentPosition().Flip()
	if err != nil {
		return err
	}
	uci.positions = []common.Position{p}
	return nil
}

func (uci *Protocol) evalCommand() error {
	uci.printf("%v", uci.engine.Explain(uci.currentPosition()))
	return nil
}

func (uci *Protocol) goCommand(cmd GoCommand) error {
	var p = uci.currentPosition()
	var limits = parseLimits(cmd.Args, p)
	if uci.job != nil {
		return errSearchRunning
	}
	if limits.Perft > 0 {
		uci.perft(p, limits.Perft)
		return nil
	}
	if !hasLimit(&limits) {
		limits.Depth = uci.options.Int(OptionSearchDepth)
		limits.Nodes = uci.options.Int(OptionSearchNodes)
	}
	uci.startSearch(limits)
	return nil
}

func (uci *Protocol) startSearch(limits common.LimitsType) {
	var ctx, cancel = context.WithCancel(context.Background())
	var job = &searchJob{
		cancel:    cancel,
		infinite:  limits.Infinite,
		stopped:   make(chan struct{}),
		ponderhit: make(chan struct{}),
		done:      make(chan struct{}),
	}
	job.ponder.Store(limits.Ponder)
	uci.job = job
	uci.setState(StateSearchInFlight)

	var positions = uci.positions
	var ply = positions[len(positions)-1].GamePly()
	var minimalOutput = uci.options.Bool(OptionMinimalOutput)
	var showWDL = uci.options.Bool(OptionShowWDL)

	go func() {
		defer close(job.done)
		defer cancel()
		var result = uci.engine.Search(ctx, common.SearchParams{
			Positions: positions,
			Limits:    limits,
			Ponder:    &job.ponder,
			Progress: func(si common.SearchInfo) {
				if !minimalOutput {
					uci.printf("%v\n", searchInfoToUci(si, ply, showWDL))
				}
			},
		})
		job.result = result
		job.awaitRelease()
		if len(result.MainLine) != 0 {
			uci.printf("%v\n", searchInfoToUci(result, ply, showWDL))
		}
		uci.printf("%v\n", bestMoveToUci(result))
		if !uci.state.CompareAndSwap(int32(StateSearchInFlight), int32(StateAwaitingInput)) {
			uci.state.CompareAndSwap(int32(StateStopping), int32(StateAwaitingInput))
		}
	}()
}

func (uci *Protocol) stopSearch() {
	if job := uci.job; job != nil {
		uci.setState(StateStopping)
		job.stop()
	}
}

func (uci *Protocol) ponderhitCommand() error {
	if job := uci.job; job != nil {
		job.ponderHit()
	}
	return nil
}

// waitSearch blocks until the running search has printed its bestmove.
// Only the bench replay calls it.
func (uci *Protocol) waitSearch() common.SearchInfo {
	var job = uci.job
	if job == nil {
		return common.SearchInfo{}
	}
	<-job.done
	uci.job = nil
	uci.setState(StateDispatching)
	return job.result
}

// reap forgets a finished search so that the next go may start.
func (uci *Protocol) reap() {
	if job := uci.job; job != nil {
		select {
		case <-job.done:
			uci.job = nil
		default:
		}
	}
}

func (uci *Protocol) perft(p common.Position, depth int) {
	var total int64
	for _, entry := range common.Divide(p, depth) {
		uci.printf("%v: %v\n", entry.Move, entry.Nodes)
		total += entry.Nodes
	}
	uci.printf("\nNodes searched: %v\n", total)
}

func searchInfoToUci(si common.SearchInfo, ply int, showWDL bool) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v seldepth %v multipv %v", si.Depth, si.SelDepth, max(1, si.MultiPV))
	if si.Score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	if showWDL {
		var w, d, l = WDL(internalValue(si.Score), ply)
		fmt.Fprintf(sb, " wdl %v %v %v", w, d, l)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v nps %v hashfull %v time %v", si.Nodes, nps, si.HashFull, timeMs)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func bestMoveToUci(si common.SearchInfo) string {
	switch len(si.MainLine) {
	case 0:
		return "bestmove (none)"
	case 1:
		return fmt.Sprintf("bestmove %v", si.MainLine[0])
	}
	return fmt.Sprintf("bestmove %v ponder %v", si.MainLine[0], si.MainLine[1])
}

func compilerInfo() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "Compiled by %v\n", runtime.Version())
	fmt.Fprintf(sb, "Platform: %v/%v\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(sb, "CPUs: %v\n", runtime.NumCPU())
	if bi, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(sb, "Module: %v %v\n", bi.Main.Path, bi.Main.Version)
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" || s.Key == "GOAMD64" || s.Key == "CGO_ENABLED" {
				fmt.Fprintf(sb, "%v: %v\n", s.Key, s.Value)
			}
		}
	}
	return sb.String()
}
