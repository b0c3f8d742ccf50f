package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChizhovVadim/CounterUci/pkg/common"
)

func TestWinRate(t *testing.T) {
	var tests = []struct {
		v, ply  int
		w, d, l int
	}{
		{0, 0, 106, 788, 106},
		{208, 0, 321, 650, 29},
		{208, 60, 414, 581, 5},
		{-208, 60, 5, 581, 414},
		{416, 100, 418, 580, 2},
		{20800, 0, 1000, 0, 0},
	}
	for _, test := range tests {
		var w, d, l = WDL(test.v, test.ply)
		assert.Equal(t, [3]int{test.w, test.d, test.l}, [3]int{w, d, l}, "v=%v ply=%v", test.v, test.ply)
	}
}

func TestWinRateBounded(t *testing.T) {
	for ply := 0; ply <= 300; ply += 7 {
		for v := -5000; v <= 5000; v += 37 {
			var w, d, l = WDL(v, ply)
			assert.LessOrEqual(t, w+l, 1000)
			assert.GreaterOrEqual(t, d, 0)
			assert.Equal(t, WinRate(-v, ply), l)
		}
	}
}

func TestInternalValue(t *testing.T) {
	assert.Equal(t, 208, internalValue(common.UciScore{Centipawns: 100}))
	assert.Equal(t, 1000, WinRate(internalValue(common.UciScore{Mate: 3}), 40))
	assert.Equal(t, 0, WinRate(internalValue(common.UciScore{Mate: -1}), 40))
}
