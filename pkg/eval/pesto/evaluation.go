package eval

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/CounterUci/pkg/common"
)

const (
	minorPhase = 4
	rookPhase  = 6
	queenPhase = 12
	totalPhase = 2 * (4*minorPhase + 2*rookPhase + queenPhase)
)

const (
	sideWhite = 0
	sideBlack = 1
)

const (
	scaleDraw   = 0
	scaleHard   = 1
	scaleNormal = 2
)

type score struct {
	mg, eg int
}

func (s *score) add(o score) {
	s.mg += o.mg
	s.eg += o.eg
}

func (s score) sub(o score) score {
	return score{s.mg - o.mg, s.eg - o.eg}
}

var material = map[chess.PieceType]score{
	chess.Pawn:   {82, 94},
	chess.Knight: {337, 281},
	chess.Bishop: {365, 297},
	chess.Rook:   {477, 512},
	chess.Queen:  {1025, 936},
}

var bishopPair = score{30, 50}

type trace struct {
	material   [2]score
	pst        [2]score
	bishopPair [2]score
	pieceCount [2]map[chess.PieceType]int
	force      [2]int
	phase      int
	factor     int
	result     int
}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns a phase tapered piece-square evaluation from the side to
// move point of view.
func (e *EvaluationService) Evaluate(p *chess.Position) int {
	var t = evaluate(p.Board())
	if p.Turn() == chess.Black {
		return -t.result
	}
	return t.result
}

func evaluate(b *chess.Board) *trace {
	var t = &trace{
		pieceCount: [2]map[chess.PieceType]int{{}, {}},
	}
	for sq, piece := range b.SquareMap() {
		var side = sideWhite
		var index = common.FlipSquare(int(sq))
		if piece.Color() == chess.Black {
			side = sideBlack
			index = int(sq)
		}
		var pt = piece.Type()
		t.material[side].add(material[pt])
		t.pst[side].add(pieceSquare(pt, index))
		t.pieceCount[side][pt]++
	}

	for side := sideWhite; side <= sideBlack; side++ {
		var pc = t.pieceCount[side]
		t.force[side] = minorPhase*(pc[chess.Knight]+pc[chess.Bishop]) +
			rookPhase*pc[chess.Rook] + queenPhase*pc[chess.Queen]
		if pc[chess.Bishop] >= 2 {
			t.bishopPair[side] = bishopPair
		}
	}

	var s score
	s.add(t.material[sideWhite].sub(t.material[sideBlack]))
	s.add(t.pst[sideWhite].sub(t.pst[sideBlack]))
	s.add(t.bishopPair[sideWhite].sub(t.bishopPair[sideBlack]))

	// mix score
	t.phase = min(t.force[sideWhite]+t.force[sideBlack], totalPhase)
	var result = (s.mg*t.phase + s.eg*(totalPhase-t.phase)) / totalPhase

	if result > 0 {
		t.factor = computeFactor(t, sideWhite)
	} else {
		t.factor = computeFactor(t, sideBlack)
	}
	t.result = result * t.factor / scaleNormal
	return t
}

func computeFactor(t *trace, side int) int {
	var own, opp = t.pieceCount[side], t.pieceCount[side^1]
	if t.force[side] >= queenPhase+rookPhase {
		return scaleNormal
	}
	if own[chess.Pawn] == 0 {
		if t.force[side] <= minorPhase {
			return scaleDraw
		}
		if t.force[side] == 2*minorPhase && own[chess.Knight] == 2 && opp[chess.Pawn] == 0 {
			return scaleDraw
		}
		if t.force[side]-t.force[side^1] <= minorPhase {
			return scaleHard
		}
	} else if own[chess.Pawn] == 1 {
		if t.force[side] <= minorPhase && opp[chess.Knight]+opp[chess.Bishop] != 0 {
			return scaleHard
		}
	}
	return scaleNormal
}

func (e *EvaluationService) Explain(p *chess.Position) string {
	var t = evaluate(p.Board())
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "%13s | %13s | %13s | %13s\n", "Term", "White", "Black", "Total")
	fmt.Fprintf(sb, "%13s | %6s %6s | %6s %6s | %6s %6s\n", "", "MG", "EG", "MG", "EG", "MG", "EG")
	sb.WriteString(" ------------+---------------+---------------+--------------\n")
	var row = func(name string, terms [2]score) {
		var total = terms[sideWhite].sub(terms[sideBlack])
		fmt.Fprintf(sb, "%13s | %6.2f %6.2f | %6.2f %6.2f | %6.2f %6.2f\n", name,
			pawns(terms[sideWhite].mg), pawns(terms[sideWhite].eg),
			pawns(terms[sideBlack].mg), pawns(terms[sideBlack].eg),
			pawns(total.mg), pawns(total.eg))
	}
	row("Material", t.material)
	row("Piece-square", t.pst)
	row("Bishop pair", t.bishopPair)
	sb.WriteString(" ------------+---------------+---------------+--------------\n")
	fmt.Fprintf(sb, "\nPhase: %d/%d\nScale: %d/%d\n", t.phase, totalPhase, t.factor, scaleNormal)
	fmt.Fprintf(sb, "Final evaluation: %+.2f (white side)\n", pawns(t.result))
	return sb.String()
}

func pawns(v int) float64 {
	return float64(v) / 100
}
