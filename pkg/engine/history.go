package engine

import "github.com/notnil/chess"

const historyMax = 1 << 14

type historyService struct {
	mainHistory [2][64 * 64]int16
}

func sideIndex(c chess.Color) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

func fromToIndex(m *chess.Move) int {
	return int(m.S1())<<6 | int(m.S2())
}

func (h *historyService) Read(side chess.Color, m *chess.Move) int {
	return int(h.mainHistory[sideIndex(side)][fromToIndex(m)])
}

// Update rewards bestMove and penalizes the quiet moves searched before it.
func (h *historyService) Update(side chess.Color, quietsSearched []*chess.Move, bestMove *chess.Move, depth int) {
	var bonus = min(depth*depth, 400)
	var table = &h.mainHistory[sideIndex(side)]
	for _, m := range quietsSearched {
		var good = m == bestMove
		updateHistory(&table[fromToIndex(m)], bonus, good)
		if good {
			break
		}
	}
}

// Exponential moving average
func updateHistory(v *int16, bonus int, good bool) {
	var newVal int
	if good {
		newVal = historyMax
	} else {
		newVal = -historyMax
	}
	*v += int16((newVal - int(*v)) * bonus / 512)
}

func (h *historyService) Clear() {
	for side := range h.mainHistory {
		for i := range h.mainHistory[side] {
			h.mainHistory[side][i] = 0
		}
	}
}
