package engine

import (
	"math"
)

type lmrTable [64][64]int

func (r *lmrTable) get(d, m int) int {
	return r[min(d, 63)][min(m, 63)]
}

func initLmr(reductions *lmrTable, f func(d, m float64) float64) {
	for d := 1; d < 64; d++ {
		for m := 1; m < 64; m++ {
			var r = f(float64(d), float64(m))
			reductions[d][m] = int(r)
		}
	}
}

// lmrMult is milder than usual because move ordering has no SEE.
func lmrMult(d, m float64) float64 {
	return lirp(math.Log(d)*math.Log(m), math.Log(5)*math.Log(22), math.Log(63)*math.Log(63), 2, 5)
}

func lirp(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}
