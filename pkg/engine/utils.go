package engine

import (
	"math/rand/v2"

	"github.com/notnil/chess"

	. "github.com/ChizhovVadim/CounterUci/pkg/common"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}

	if v <= valueLoss {
		return v - height
	}

	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}

	if v <= valueLoss {
		return v + height
	}

	return v
}

func newUciScore(v int) UciScore {
	if v >= valueWin {
		return UciScore{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Mate: (-valueMate - v) / 2}
	} else {
		return UciScore{Centipawns: v}
	}
}

func isCaptureOrPromotion(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant) ||
		m.Promo() != chess.NoPieceType
}

// packMove stores from, to and promotion in 15 bits. Zero is never a legal move.
func packMove(m *chess.Move) uint32 {
	if m == nil {
		return 0
	}
	return uint32(m.S1()) | uint32(m.S2())<<6 | uint32(m.Promo())<<12
}

func findMove(ml []*chess.Move, packed uint32) int {
	if packed == 0 {
		return -1
	}
	for i, m := range ml {
		if packMove(m) == packed {
			return i
		}
	}
	return -1
}

func moveToBegin(ml []*chess.Move, index int) {
	if index == 0 {
		return
	}
	var m = ml[index]
	copy(ml[1:index+1], ml[:index])
	ml[0] = m
}

func positionKey(p *chess.Position) uint64 {
	return PositionKey(p)
}

// newRootBonus draws a bonus in [0, variety] for every root move.
func newRootBonus(rootMoves []*chess.Move, variety int) map[uint32]int {
	if variety <= 0 {
		return nil
	}
	var result = make(map[uint32]int, len(rootMoves))
	for _, m := range rootMoves {
		result[packMove(m)] = rand.IntN(variety + 1)
	}
	return result
}
