package common

type Move int32

const MoveEmpty = Move(0)

func MakeMove(from, to int, movingPiece, capturedPiece, promotion PieceType) Move {
	return Move(from ^ (to << 6) ^ (int(movingPiece) << 12) ^ (int(capturedPiece) << 15) ^ (int(promotion) << 18))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() PieceType {
	return PieceType((m >> 12) & 7)
}

func (m Move) CapturedPiece() PieceType {
	return PieceType((m >> 15) & 7)
}

func (m Move) Promotion() PieceType {
	return PieceType((m >> 18) & 7)
}

// String returns long algebraic notation, e.g. e2e4 or e7e8q.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}
