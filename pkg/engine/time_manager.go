package engine

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/ChizhovVadim/CounterUci/pkg/common"
)

type timeManager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	start     time.Time
	limits    LimitsType
	softLimit time.Duration
	hardLimit time.Duration
	nodesTime int64
	nodeCap   int64
	nodes     atomic.Int64
	ponder    *atomic.Bool
}

func newTimeManager(ctx context.Context, start time.Time, limits LimitsType,
	whiteMove bool, s settings, ponder *atomic.Bool) *timeManager {

	var tm = &timeManager{
		start:  start,
		limits: limits,
		ponder: ponder,
	}
	tm.ctx, tm.cancel = context.WithCancel(ctx)

	if limits.Infinite {
		return tm
	}
	var overhead = time.Duration(s.moveOverhead) * time.Millisecond
	if limits.MoveTime > 0 {
		tm.hardLimit = max(time.Duration(limits.MoveTime)*time.Millisecond-overhead, time.Millisecond)
	} else if limits.UseTimeManagement() {
		var main, inc time.Duration
		if whiteMove {
			main = time.Duration(limits.WhiteTime) * time.Millisecond
			inc = time.Duration(limits.WhiteIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
		tm.softLimit, tm.hardLimit = calcLimits(main, inc, limits.MovesToGo, overhead, s.slowMover)
		tm.nodesTime = int64(s.nodesTime)
	}
	if s.limitStrength && tm.hardLimit > 0 {
		// thousands of nodes per second equals nodes per millisecond
		tm.nodeCap = max(1, int64(s.strengthNPS)*tm.hardLimit.Milliseconds())
	}
	return tm
}

// elapsed is wall time, or the nodes searched converted to time when the
// clock is measured in nodes.
func (tm *timeManager) elapsed() time.Duration {
	if tm.nodesTime > 0 {
		return time.Duration(tm.nodes.Load()/tm.nodesTime) * time.Millisecond
	}
	return time.Since(tm.start)
}

func (tm *timeManager) pondering() bool {
	return tm.ponder != nil && tm.ponder.Load()
}

// IsDone is polled by the search threads.
func (tm *timeManager) IsDone() bool {
	select {
	case <-tm.ctx.Done():
		return true
	default:
	}
	if tm.hardLimit != 0 && !tm.pondering() &&
		tm.elapsed() >= tm.hardLimit {
		tm.cancel()
		return true
	}
	return false
}

func (tm *timeManager) OnNodesChanged(nodes int64) {
	tm.nodes.Store(nodes)
	if tm.limits.Nodes > 0 && nodes >= int64(tm.limits.Nodes) {
		tm.cancel()
	}
	if tm.nodeCap > 0 && nodes >= tm.nodeCap && !tm.pondering() {
		tm.cancel()
	}
}

func (tm *timeManager) OnIterationComplete(line mainLine) {
	if tm.limits.Depth != 0 && line.depth >= tm.limits.Depth {
		tm.cancel()
		return
	}
	if tm.limits.Mate != 0 && line.score >= winIn(2*tm.limits.Mate) {
		tm.cancel()
		return
	}
	if tm.limits.Infinite || tm.pondering() {
		return
	}
	if line.score >= winIn(line.depth-5) ||
		line.score <= lossIn(line.depth-5) {
		tm.cancel()
		return
	}
	if tm.softLimit != 0 &&
		tm.elapsed() >= tm.softLimit {
		tm.cancel()
		return
	}
}

func (tm *timeManager) Close() {
	tm.cancel()
}

func calcLimits(main, inc time.Duration, moves int, overhead time.Duration,
	slowMover int) (soft, hard time.Duration) {
	const (
		DefaultMovesToGo = 40
		MinTimeLimit     = 1 * time.Millisecond
	)

	main -= overhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	if moves == 0 {
		var ideal = main/35 + inc/2
		soft = ideal * 7 / 10
		hard = ideal * 21 / 10
	} else {
		moves = min(moves, DefaultMovesToGo)
		soft = (main/time.Duration(moves+1) + inc) * 7 / 10
		hard = (main/time.Duration(moves+1) + inc) * 21 / 10
	}

	soft = soft * time.Duration(slowMover) / 100
	hard = hard * time.Duration(slowMover) / 100

	hard = limitDuration(hard, MinTimeLimit, main)
	soft = limitDuration(soft, MinTimeLimit, main)

	return
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
