package common

import (
	"bytes"
	"fmt"
	"strconv"
	s "strings"
	"unicode"
)

func isInitialSquare(pt PieceType, side Color, sq int) bool {
	if side == Black {
		sq = FlipSquare(sq)
	}
	switch pt {
	case Pawn:
		return Rank(sq) == Rank2
	case Knight:
		return sq == SquareB1 || sq == SquareG1
	case Bishop:
		return sq == SquareC1 || sq == SquareF1
	case Rook:
		return sq == SquareA1 || sq == SquareH1
	case Queen:
		return sq == SquareD1
	case King:
		return sq == SquareE1
	}
	return false
}

func NewBoardFromFEN(fen string) (Board, error) {
	var tokens = s.Fields(fen)
	if len(tokens) < 4 {
		return Board{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var b = Board{
		EpSquare:   SquareNone,
		MoveNumber: 1,
		LastMove:   MoveEmpty,
	}

	var i = 0
	for _, ch := range tokens[0] {
		if unicode.IsDigit(ch) {
			var n, _ = strconv.Atoi(string(ch))
			i += n
		} else if unicode.IsLetter(ch) {
			var pt, side, ok = parsePiece(ch)
			if !ok || i >= 64 {
				return Board{}, fmt.Errorf("parse fen failed %v", fen)
			}
			var sq = FlipSquare(i)
			var piece = NewPiece(pt, side)
			piece.Moved = !isInitialSquare(pt, side, sq)
			b.Squares[sq] = piece
			i++
		}
	}
	if i != 64 {
		return Board{}, fmt.Errorf("parse fen failed %v", fen)
	}

	switch tokens[1] {
	case "w":
		b.WhoseMove = White
	case "b":
		b.WhoseMove = Black
	default:
		return Board{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var sCastleRights = tokens[2]
	if s.Contains(sCastleRights, "K") {
		b.CastleRights |= WhiteKingSide
	}
	if s.Contains(sCastleRights, "Q") {
		b.CastleRights |= WhiteQueenSide
	}
	if s.Contains(sCastleRights, "k") {
		b.CastleRights |= BlackKingSide
	}
	if s.Contains(sCastleRights, "q") {
		b.CastleRights |= BlackQueenSide
	}
	b.CastleRights &= consistentCastleRights(&b)

	var epSquare, err = ParseSquare(tokens[3])
	if err != nil {
		return Board{}, fmt.Errorf("parse fen failed %v: %w", fen, err)
	}
	if epSquare != SquareNone && canCaptureEnPassant(&b, epSquare, b.WhoseMove.Opposite()) {
		b.EpSquare = epSquare
	}

	if len(tokens) > 4 {
		b.HalfMoveClock, _ = strconv.Atoi(tokens[4])
	}
	if len(tokens) > 5 {
		if n, err := strconv.Atoi(tokens[5]); err == nil && n > 0 {
			b.MoveNumber = n
		}
	}

	if b.KingSquare(White) == SquareNone || b.KingSquare(Black) == SquareNone {
		return Board{}, fmt.Errorf("parse fen failed %v", fen)
	}

	b.Key = b.computeKey()
	b.pushHistory()
	GenerateValidMoves(&b)
	if b.InCheck(b.WhoseMove.Opposite()) {
		return Board{}, fmt.Errorf("parse fen failed %v", fen)
	}
	return b, nil
}

// rights whose king and rook still stand unmoved on their home squares
func consistentCastleRights(b *Board) int {
	var home = func(sq int, pt PieceType, side Color) bool {
		var p = &b.Squares[sq]
		return p.Type == pt && p.Color == side && !p.Moved
	}
	var result = 0
	if home(SquareE1, King, White) {
		if home(SquareH1, Rook, White) {
			result |= WhiteKingSide
		}
		if home(SquareA1, Rook, White) {
			result |= WhiteQueenSide
		}
	}
	if home(SquareE8, King, Black) {
		if home(SquareH8, Rook, Black) {
			result |= BlackKingSide
		}
		if home(SquareA8, Rook, Black) {
			result |= BlackQueenSide
		}
	}
	return result
}

func parsePiece(ch rune) (PieceType, Color, bool) {
	var side = White
	if unicode.IsLower(ch) {
		side = Black
	}
	var i = s.IndexRune("pnbrqk", unicode.ToLower(ch))
	if i < 0 {
		return Empty, side, false
	}
	return PieceType(i + 1), side, true
}

func pieceToChar(p *Piece) string {
	var result = string("pnbrqk"[p.Type-Pawn])
	if p.Color == White {
		result = s.ToUpper(result)
	}
	return result
}

// Fen returns the full six-field FEN of b.
func (b *Board) Fen() string {
	return PositionKey(b) + " " + strconv.Itoa(b.HalfMoveClock) + " " + strconv.Itoa(b.MoveNumber)
}

// PositionKey is the first four FEN fields: placement, side, castling and
// en passant. Two boards with the same key are the same position.
func PositionKey(b *Board) string {
	var sb bytes.Buffer

	var emptyCount = 0

	for i := 0; i < 64; i++ {
		var sq = FlipSquare(i)
		var piece = &b.Squares[sq]
		if piece.IsEmpty() {
			emptyCount++
		} else {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(pieceToChar(piece))
		}

		if File(sq) == FileH {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteString("/")
			}
		}
	}
	sb.WriteString(" ")

	if b.WhoseMove == White {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}
	sb.WriteString(" ")

	if b.CastleRights == 0 {
		sb.WriteString("-")
	} else {
		if (b.CastleRights & WhiteKingSide) != 0 {
			sb.WriteString("K")
		}
		if (b.CastleRights & WhiteQueenSide) != 0 {
			sb.WriteString("Q")
		}
		if (b.CastleRights & BlackKingSide) != 0 {
			sb.WriteString("k")
		}
		if (b.CastleRights & BlackQueenSide) != 0 {
			sb.WriteString("q")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(SquareName(b.EpSquare))

	return sb.String()
}

func (b *Board) String() string {
	return b.Fen()
}
