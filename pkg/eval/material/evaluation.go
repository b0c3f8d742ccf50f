package eval

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

var pieceValues = map[chess.PieceType]int{
	chess.Pawn:   100,
	chess.Knight: 400,
	chess.Bishop: 400,
	chess.Rook:   600,
	chess.Queen:  1200,
}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns the material balance from the side to move point of view.
func (e *EvaluationService) Evaluate(p *chess.Position) int {
	var eval = materialBalance(p.Board())
	if p.Turn() == chess.Black {
		eval = -eval
	}
	return eval
}

func materialBalance(b *chess.Board) int {
	var eval = 0
	for _, piece := range b.SquareMap() {
		var v = pieceValues[piece.Type()]
		if piece.Color() == chess.White {
			eval += v
		} else {
			eval -= v
		}
	}
	return eval
}

func (e *EvaluationService) Explain(p *chess.Position) string {
	var counts = [2]map[chess.PieceType]int{{}, {}}
	for _, piece := range p.Board().SquareMap() {
		var side = 0
		if piece.Color() == chess.Black {
			side = 1
		}
		counts[side][piece.Type()]++
	}
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "%8s | %5s | %5s\n", "Piece", "White", "Black")
	for _, pt := range []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn} {
		fmt.Fprintf(sb, "%8s | %5d | %5d\n", pieceName(pt), counts[0][pt], counts[1][pt])
	}
	fmt.Fprintf(sb, "\nMaterial evaluation: %+.2f (white side)\n", float64(materialBalance(p.Board()))/100)
	return sb.String()
}

func pieceName(pt chess.PieceType) string {
	switch pt {
	case chess.Queen:
		return "Queen"
	case chess.Rook:
		return "Rook"
	case chess.Bishop:
		return "Bishop"
	case chess.Knight:
		return "Knight"
	case chess.Pawn:
		return "Pawn"
	}
	return "King"
}
