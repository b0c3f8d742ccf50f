package eval

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

func positionFromFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	var opt, err = chess.FEN(fen)
	require.NoError(t, err)
	return chess.NewGame(opt).Position()
}

func TestEvaluateSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	require.Equal(t, 0, e.Evaluate(chess.StartingPosition()))

	var white = positionFromFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var black = positionFromFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.Equal(t, e.Evaluate(white), -e.Evaluate(black))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	var e = NewEvaluationService()
	var fen = "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	require.Greater(t, e.Evaluate(positionFromFEN(t, fen)), 500)

	fen = "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"
	require.Less(t, e.Evaluate(positionFromFEN(t, fen)), -500)
}

func TestEvaluateScaling(t *testing.T) {
	var e = NewEvaluationService()
	// a lone minor piece cannot win
	require.Equal(t, 0, e.Evaluate(positionFromFEN(t, "8/8/4k3/8/8/3NK3/8/8 w - - 0 1")))
}

func TestExplain(t *testing.T) {
	var text = NewEvaluationService().Explain(chess.StartingPosition())
	require.Contains(t, text, "Material")
	require.Contains(t, text, "Final evaluation: +0.00 (white side)")
}
