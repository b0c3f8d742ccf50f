package uci

import (
	"strconv"
	"time"

	"github.com/ChizhovVadim/CounterUci/pkg/common"
)

// parseLimits reads the arguments of a go command. A missing or malformed
// number leaves its field at zero. searchmoves must come last: every
// following token is read as a move of p, unknown moves are skipped.
func parseLimits(args []string, p common.Position) (result common.LimitsType) {
	result.StartTime = time.Now()

	var next = func(i *int) int {
		if *i+1 >= len(args) {
			return 0
		}
		*i++
		var v, _ = strconv.Atoi(args[*i])
		return v
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "searchmoves", "sm":
			for _, lan := range args[i+1:] {
				if m, ok := p.ParseMove(lan); ok {
					result.SearchMoves = append(result.SearchMoves, common.NewMove(m))
				}
			}
			i = len(args)
		case "ponder":
			result.Ponder = true
		case "wtime":
			result.WhiteTime = next(&i)
		case "btime":
			result.BlackTime = next(&i)
		case "winc":
			result.WhiteIncrement = next(&i)
		case "binc":
			result.BlackIncrement = next(&i)
		case "movestogo":
			result.MovesToGo = next(&i)
		case "depth", "d":
			result.Depth = next(&i)
		case "nodes":
			result.Nodes = next(&i)
		case "mate", "m":
			result.Mate = next(&i)
		case "movetime":
			result.MoveTime = next(&i)
		case "mt":
			result.MoveTime = next(&i) * 1000
		case "perft":
			result.Perft = next(&i)
		case "infinite", "i":
			result.Infinite = true
		}
	}
	return
}

// hasLimit reports whether the search would stop without a stop command.
func hasLimit(l *common.LimitsType) bool {
	return l.Depth != 0 || l.Nodes != 0 || l.MoveTime != 0 || l.Mate != 0 ||
		l.Perft != 0 || l.Infinite || l.UseTimeManagement()
}
