package eval

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

func TestMaterial(t *testing.T) {
	var e = NewEvaluationService()
	require.Equal(t, 0, e.Evaluate(chess.StartingPosition()))

	var opt, err = chess.FEN("4k3/8/8/8/8/8/PPP5/R3K3 b - - 0 1")
	require.NoError(t, err)
	var p = chess.NewGame(opt).Position()
	require.Equal(t, -900, e.Evaluate(p))
	require.Contains(t, e.Explain(p), "Material evaluation: +9.00 (white side)")
}
