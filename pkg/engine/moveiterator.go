package engine

import (
	"sort"

	"github.com/notnil/chess"
)

const sortTableKeyImportant = 100000

var pieceOrder = map[chess.PieceType]int{
	chess.Pawn:   1,
	chess.Knight: 2,
	chess.Bishop: 3,
	chess.Rook:   4,
	chess.Queen:  5,
	chess.King:   6,
}

type orderedMove struct {
	move *chess.Move
	key  int
}

func mvvlva(b *chess.Board, m *chess.Move) int {
	var victim = pieceOrder[b.Piece(m.S2()).Type()]
	if m.HasTag(chess.EnPassant) {
		victim = pieceOrder[chess.Pawn]
	}
	var attacker = pieceOrder[b.Piece(m.S1()).Type()]
	var promotion = pieceOrder[m.Promo()]
	return 8*(victim+promotion) - attacker
}

func sortMoves(moves []orderedMove) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].key > moves[j].key
	})
}

// orderMoves sorts the legal moves of a node: transposition move, captures and
// promotions, killers, then quiet moves by history.
func orderMoves(buffer []orderedMove, p *chess.Position, moves []*chess.Move,
	transMove, killer1, killer2 uint32, history *historyService) []orderedMove {
	var b = p.Board()
	var side = p.Turn()
	buffer = buffer[:0]
	for _, m := range moves {
		var packed = packMove(m)
		var key int
		if packed == transMove {
			key = sortTableKeyImportant + 2000
		} else if isCaptureOrPromotion(m) {
			key = sortTableKeyImportant + 1000 + mvvlva(b, m)
		} else if packed == killer1 {
			key = sortTableKeyImportant + 1
		} else if packed == killer2 {
			key = sortTableKeyImportant
		} else {
			key = history.Read(side, m)
		}
		buffer = append(buffer, orderedMove{move: m, key: key})
	}
	sortMoves(buffer)
	return buffer
}

// orderNoisyMoves keeps only captures and promotions, most valuable victim first.
func orderNoisyMoves(buffer []orderedMove, p *chess.Position, moves []*chess.Move) []orderedMove {
	var b = p.Board()
	buffer = buffer[:0]
	for _, m := range moves {
		if isCaptureOrPromotion(m) {
			buffer = append(buffer, orderedMove{move: m, key: mvvlva(b, m)})
		}
	}
	sortMoves(buffer)
	return buffer
}
