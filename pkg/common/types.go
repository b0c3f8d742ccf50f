package common

import (
	"sync/atomic"
	"time"

	"github.com/notnil/chess"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Move is a move in coordinate form. The zero value is MoveEmpty.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

var MoveEmpty Move

func NewMove(m *chess.Move) Move {
	if m == nil {
		return MoveEmpty
	}
	return Move{From: m.S1(), To: m.S2(), Promotion: m.Promo()}
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var s = m.From.String() + m.To.String()
	switch m.Promotion {
	case chess.Queen:
		s += "q"
	case chess.Rook:
		s += "r"
	case chess.Bishop:
		s += "b"
	case chess.Knight:
		s += "n"
	}
	return s
}

func (m Move) Matches(cm *chess.Move) bool {
	return cm != nil && m.From == cm.S1() && m.To == cm.S2() && m.Promotion == cm.Promo()
}

type LimitsType struct {
	Ponder         bool
	Infinite       bool
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MoveTime       int
	MovesToGo      int
	Depth          int
	Nodes          int
	Mate           int
	Perft          int
	SearchMoves    []Move
	StartTime      time.Time
}

// UseTimeManagement reports whether the search is governed by clock times.
func (l *LimitsType) UseTimeManagement() bool {
	return l.WhiteTime != 0 || l.BlackTime != 0
}

type SearchParams struct {
	Positions []Position
	Limits    LimitsType
	// Ponder is set while the search is speculative; the engine must not
	// stop on time until it is cleared.
	Ponder   *atomic.Bool
	Progress func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	SelDepth int
	MultiPV  int
	Nodes    int64
	Time     time.Duration
	HashFull int
	MainLine []Move
}

type UciScore struct {
	Centipawns int
	Mate       int
}
