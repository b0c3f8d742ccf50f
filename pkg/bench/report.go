package bench

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"strconv"
	"time"
)

const kiloThreshold = 10_000_000

// NodesPerSecond formats nodes*1000/ms. Rates of ten million and above are
// printed in thousands with a "k" suffix.
func NodesPerSecond(nodes, ms uint64) string {
	if ms == 0 {
		ms = 1
	}
	var hi, lo = bits.Mul64(nodes, 1000)
	var nps uint64
	if hi >= ms {
		nps = math.MaxUint64
	} else {
		nps, _ = bits.Div64(hi, lo, ms)
	}
	if nps < kiloThreshold {
		return strconv.FormatUint(nps, 10)
	}
	return strconv.FormatUint(nodes/ms, 10) + "k"
}

type Lap struct {
	FEN     string
	Nodes   uint64
	Elapsed time.Duration
}

type Report struct {
	Positions int
	Nodes     uint64
	Elapsed   time.Duration
	Laps      []Lap
}

// Recorder accumulates bench statistics and writes the human readable report.
type Recorder struct {
	w        io.Writer
	now      func() time.Time
	total    int
	count    int
	start    time.Time
	lapStart time.Time
	report   Report
}

func NewRecorder(w io.Writer, total int) *Recorder {
	return NewRecorderWithClock(w, total, time.Now)
}

func NewRecorderWithClock(w io.Writer, total int, now func() time.Time) *Recorder {
	var t = now()
	return &Recorder{
		w:        w,
		now:      now,
		total:    total,
		start:    t,
		lapStart: t,
	}
}

// ResetClock restarts the total timer. Called after a new game has cleared
// the search state so that clearing is not counted.
func (r *Recorder) ResetClock() {
	r.start = r.now()
}

func (r *Recorder) BeginPosition(fen string) {
	r.count++
	fmt.Fprintf(r.w, "\nPosition: %d/%d\nFEN: %v\n", r.count, r.total, fen)
	r.report.Positions++
	r.report.Laps = append(r.report.Laps, Lap{FEN: fen})
	r.lapStart = r.now()
}

// EndSearch records the nodes of the search started by the last BeginPosition.
func (r *Recorder) EndSearch(nodes uint64, evalInfo string) {
	var elapsed = r.now().Sub(r.lapStart)
	r.report.Nodes += nodes
	if n := len(r.report.Laps); n > 0 {
		r.report.Laps[n-1].Nodes = nodes
		r.report.Laps[n-1].Elapsed = elapsed
	}
	fmt.Fprintf(r.w, "Nodes/Second: %v\n", NodesPerSecond(nodes, uint64(elapsed.Milliseconds())+1))
	if evalInfo != "" {
		fmt.Fprintln(r.w, evalInfo)
	}
}

func (r *Recorder) Finish() Report {
	var elapsed = r.now().Sub(r.start)
	var ms = uint64(elapsed.Milliseconds()) + 1
	r.report.Elapsed = elapsed
	fmt.Fprintf(r.w, "\n=================================\nTotal time (ms) : %d\nNodes searched  : %d\n", ms, r.report.Nodes)
	fmt.Fprintf(r.w, "\nNodes/second    : %v\n", NodesPerSecond(r.report.Nodes, ms))
	return r.report
}
