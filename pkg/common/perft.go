package common

import "github.com/notnil/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p *chess.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var moves = p.ValidMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var result int64
	for _, m := range moves {
		result += Perft(p.Update(m), depth-1)
	}
	return result
}

type DivideEntry struct {
	Move  Move
	Nodes int64
}

// Divide reports the perft count below every legal move of p.
func Divide(p Position, depth int) []DivideEntry {
	var board = p.Board()
	var moves = board.ValidMoves()
	var result = make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		result = append(result, DivideEntry{
			Move:  NewMove(m),
			Nodes: Perft(board.Update(m), depth-1),
		})
	}
	return result
}
