package common

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceType int

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Piece sits on a board square. Empty squares hold a zero Piece.
// AttackedValue and DefendedValue are sums of the action values of the
// enemy and own pieces bearing on its square. ValidMoves is a bitboard of
// pseudo-legal destinations; all four are owned by the board and rebuilt
// by GenerateValidMoves.
type Piece struct {
	Type          PieceType
	Color         Color
	Value         int
	ActionValue   int
	AttackedValue int
	DefendedValue int
	Moved         bool
	ValidMoves    uint64
}

var pieceValues = [...]int{Empty: 0, Pawn: 100, Knight: 320, Bishop: 325, Rook: 500, Queen: 975, King: 32767}

// cheaper pieces act more: a pawn threat matters more than a queen threat
var pieceActionValues = [...]int{Empty: 0, Pawn: 6, Knight: 3, Bishop: 3, Rook: 2, Queen: 1, King: 1}

func NewPiece(pieceType PieceType, color Color) Piece {
	return Piece{
		Type:        pieceType,
		Color:       color,
		Value:       pieceValues[pieceType],
		ActionValue: pieceActionValues[pieceType],
	}
}

func (p *Piece) IsEmpty() bool {
	return p.Type == Empty
}

func PieceValue(pieceType PieceType) int {
	return pieceValues[pieceType]
}

// BookMove is one known continuation from an opening book. EndingKey is
// the PositionKey of the position reached after the move.
type BookMove struct {
	Move      string
	EndingKey string
}
