package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/notnil/chess"
)

var ErrInvalidFen = errors.New("invalid fen")

// Position is an immutable board state. MakeMove returns a new value and never
// touches the receiver.
type Position struct {
	pos      *chess.Position
	key      uint64
	rule50   int
	ply      int
	Chess960 bool
}

// NormalizeFEN drops trailing annotations (text after ';'), keeps at most six
// fields and fills in missing move counters.
func NormalizeFEN(fen string) (string, error) {
	if i := strings.IndexByte(fen, ';'); i >= 0 {
		fen = fen[:i]
	}
	var fields = strings.Fields(fen)
	if len(fields) < 4 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFen, fen)
	}
	if len(fields) > 6 {
		fields = fields[:6]
	}
	if len(fields) == 4 {
		fields = append(fields, "0")
	}
	if len(fields) == 5 {
		fields = append(fields, "1")
	}
	return strings.Join(fields, " "), nil
}

func NewPositionFromFEN(fen string) (Position, error) {
	return NewPosition(fen, false)
}

func NewPosition(fen string, chess960 bool) (Position, error) {
	var normalized, err = NormalizeFEN(fen)
	if err != nil {
		return Position{}, err
	}
	opt, err := chess.FEN(normalized)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %v", ErrInvalidFen, err)
	}
	var p = newPosition(chess.NewGame(opt).Position())
	p.Chess960 = chess960
	return p, nil
}

func newPosition(pos *chess.Position) Position {
	var p = Position{
		pos: pos,
		key: PositionKey(pos),
	}
	var fields = strings.Fields(pos.String())
	if len(fields) == 6 {
		p.rule50, _ = strconv.Atoi(fields[4])
		var fullMove, _ = strconv.Atoi(fields[5])
		p.ply = 2*max(fullMove-1, 0) + btoi(fields[1] == "b")
	}
	return p
}

// PositionKey identifies a position by placement, side to move, castling
// rights and en passant square. Move counters are ignored.
func PositionKey(pos *chess.Position) uint64 {
	var d = xxhash.New()
	var board, _ = pos.Board().MarshalBinary()
	d.Write(board)
	d.WriteString(string(pos.CastleRights()))
	d.Write([]byte{byte(pos.Turn()), byte(pos.EnPassantSquare())})
	return d.Sum64()
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Clone returns a position that shares no state with p.
func (p Position) Clone() Position {
	var opt, err = chess.FEN(p.FEN())
	if err != nil {
		panic(err)
	}
	var result = newPosition(chess.NewGame(opt).Position())
	result.Chess960 = p.Chess960
	return result
}

func (p Position) Board() *chess.Position {
	return p.pos
}

func (p Position) FEN() string {
	return p.pos.String()
}

func (p Position) Key() uint64 {
	return p.key
}

func (p Position) Rule50() int {
	return p.rule50
}

// GamePly is the number of half moves played since the game start.
func (p Position) GamePly() int {
	return p.ply
}

func (p Position) WhiteMove() bool {
	return p.pos.Turn() == chess.White
}

func (p Position) LegalMoves() []Move {
	var moves = p.pos.ValidMoves()
	var result = make([]Move, len(moves))
	for i, m := range moves {
		result[i] = NewMove(m)
	}
	return result
}

func (p Position) MakeMove(m *chess.Move) Position {
	var child = newPosition(p.pos.Update(m))
	child.Chess960 = p.Chess960
	return child
}

// ParseMove resolves coordinate text (e2e4, e7e8q) against the legal moves.
// The promotion letter is case-insensitive.
func (p Position) ParseMove(lan string) (*chess.Move, bool) {
	if len(lan) == 5 {
		lan = lan[:4] + strings.ToLower(lan[4:])
	}
	for _, m := range p.pos.ValidMoves() {
		if NewMove(m).String() == lan {
			return m, true
		}
	}
	return nil, false
}

func (p Position) MakeMoveLAN(lan string) (Position, bool) {
	var m, ok = p.ParseMove(lan)
	if !ok {
		return Position{}, false
	}
	return p.MakeMove(m), true
}

func (p Position) Flip() (Position, error) {
	var fen, err = FlipFEN(p.FEN())
	if err != nil {
		return Position{}, err
	}
	return NewPosition(fen, p.Chess960)
}

func (p Position) String() string {
	var sb = &strings.Builder{}
	sb.WriteString(p.pos.Board().Draw())
	fmt.Fprintf(sb, "\nFen: %v\nKey: %016X\n", p.FEN(), p.key)
	if p.Chess960 {
		sb.WriteString("Chess960: true\n")
	}
	return sb.String()
}
