package uci

import (
	"math"

	"github.com/ChizhovVadim/CounterUci/pkg/common"
)

// pawnValueEg is the internal endgame pawn value the win rate model was fitted on.
const pawnValueEg = 208

// WinRate returns the win probability in per mille for internal evaluation v
// at game ply.
func WinRate(v, ply int) int {
	// the model captures only up to 240 plies
	var m = float64(min(192, ply) / 32)

	var as = [4]float64{-8.24404295, 64.23892342, -95.73056462, 153.86478679}
	var bs = [4]float64{-3.37154371, 28.44489198, -56.67657741, 72.05858751}
	var a = ((as[0]*m+as[1])*m+as[2])*m + as[3]
	var b = ((bs[0]*m+bs[1])*m+bs[2])*m + bs[3]

	var x = math.Max(-2000, math.Min(2000, float64(100*v)/pawnValueEg))

	return int(0.5 + 1000/(1+math.Exp((a-x)/b)))
}

// WDL splits v into win, draw and loss per mille.
func WDL(v, ply int) (w, d, l int) {
	w = WinRate(v, ply)
	l = WinRate(-v, ply)
	d = 1000 - w - l
	return
}

// internalValue converts a reported score back to model units. Mate scores
// saturate the model.
func internalValue(score common.UciScore) int {
	switch {
	case score.Mate > 0:
		return 100 * pawnValueEg
	case score.Mate < 0:
		return -100 * pawnValueEg
	}
	return score.Centipawns * pawnValueEg / 100
}
