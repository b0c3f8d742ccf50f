package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int64
	}{
		{InitialPositionFen, 1, 20},
		{InitialPositionFen, 2, 400},
		{InitialPositionFen, 3, 8902},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, test := range tests {
		t.Run(test.fen, func(t *testing.T) {
			p, err := NewPositionFromFEN(test.fen)
			require.NoError(t, err)
			require.Equal(t, test.nodes, Perft(p.Board(), test.depth))
		})
	}
}

func TestDivide(t *testing.T) {
	p, err := NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)

	var entries = Divide(p, 2)
	require.Len(t, entries, 20)
	var total int64
	for _, e := range entries {
		require.Equal(t, int64(20), e.Nodes, e.Move.String())
		total += e.Nodes
	}
	require.Equal(t, int64(400), total)
}
