package common

// Board is a position snapshot. It is a plain value: Copy returns an
// independent board, and search frames own the copies they create.
type Board struct {
	Squares       [64]Piece
	WhoseMove     Color
	CastleRights  int
	EpSquare      int
	HalfMoveClock int
	MoveNumber    int
	RepeatedMove  int
	WhiteCheck    bool
	BlackCheck    bool
	WhiteMate     bool
	BlackMate     bool
	StaleMate     bool
	Score         int
	Key           uint64
	LastMove      Move
	history       *keyHistory
}

func (b *Board) Copy() Board {
	return *b
}

// InCheck reports whether the king of the given side is attacked.
// Valid after GenerateValidMoves.
func (b *Board) InCheck(side Color) bool {
	if side == White {
		return b.WhiteCheck
	}
	return b.BlackCheck
}

func (b *Board) IsCheck() bool {
	return b.WhiteCheck || b.BlackCheck
}

func (b *Board) KingSquare(side Color) int {
	for sq := range b.Squares {
		var p = &b.Squares[sq]
		if p.Type == King && p.Color == side {
			return sq
		}
	}
	return SquareNone
}

// Occupancy is the set of occupied squares.
func (b *Board) Occupancy() uint64 {
	var result uint64
	for sq := range b.Squares {
		if !b.Squares[sq].IsEmpty() {
			result |= SquareMask[sq]
		}
	}
	return result
}

func (b *Board) PieceCount() int {
	return PopCount(b.Occupancy())
}

// ApplyMove plays from-to on b in place. b must be a copy owned by the
// caller. Pawns reaching the last rank become promotion, or a queen when
// promotion is Empty. Check flags are stale until GenerateValidMoves.
func ApplyMove(b *Board, from, to int, promotion PieceType) {
	var piece = b.Squares[from]
	var side = piece.Color
	var capturedType = b.Squares[to].Type

	if b.EpSquare != SquareNone {
		b.Key ^= enpassantKey[File(b.EpSquare)]
	}

	if piece.Type == Pawn && to == b.EpSquare && capturedType == Empty {
		var capSq = to + let(side == White, -8, 8)
		removePiece(b, capSq)
		capturedType = Pawn
	} else if capturedType != Empty {
		removePiece(b, to)
	}

	movePiece(b, from, to)

	var appliedPromotion = Empty
	if piece.Type == Pawn && (Rank(to) == Rank8 || Rank(to) == Rank1) {
		if promotion == Empty {
			promotion = Queen
		}
		removePiece(b, to)
		var promoted = NewPiece(promotion, side)
		promoted.Moved = true
		putPiece(b, to, promoted)
		appliedPromotion = promotion
	}

	if piece.Type == King && FileDistance(from, to) == 2 {
		if to > from {
			movePiece(b, from+3, from+1)
		} else {
			movePiece(b, from-4, from-1)
		}
	}

	b.EpSquare = SquareNone
	if piece.Type == Pawn && Abs(to-from) == 16 {
		var ep = (from + to) / 2
		if canCaptureEnPassant(b, ep, side) {
			b.EpSquare = ep
			b.Key ^= enpassantKey[File(ep)]
		}
	}

	var castleRights = b.CastleRights & castleMask[from] & castleMask[to]
	b.Key ^= castlingKey[castleRights^b.CastleRights]
	b.CastleRights = castleRights

	if piece.Type == Pawn || capturedType != Empty {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}
	if side == Black {
		b.MoveNumber++
	}

	b.WhoseMove = side.Opposite()
	b.Key ^= sideKey
	b.LastMove = MakeMove(from, to, piece.Type, capturedType, appliedPromotion)
	b.WhiteCheck, b.BlackCheck = false, false
	b.WhiteMate, b.BlackMate, b.StaleMate = false, false, false
	b.Score = 0
	b.pushHistory()
}

func canCaptureEnPassant(b *Board, ep int, mover Color) bool {
	for x := PawnAttacks(ep, mover == White); x != 0; x &= x - 1 {
		var p = &b.Squares[FirstOne(x)]
		if p.Type == Pawn && p.Color != mover {
			return true
		}
	}
	return false
}

func removePiece(b *Board, sq int) {
	var p = &b.Squares[sq]
	if p.IsEmpty() {
		return
	}
	b.Key ^= pieceSquareKey[p.Color][p.Type][sq]
	*p = Piece{}
}

func putPiece(b *Board, sq int, p Piece) {
	b.Squares[sq] = p
	b.Key ^= pieceSquareKey[p.Color][p.Type][sq]
}

func movePiece(b *Board, from, to int) {
	var p = b.Squares[from]
	removePiece(b, from)
	p.Moved = true
	p.ValidMoves = 0
	putPiece(b, to, p)
}
