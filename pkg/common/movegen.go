package common

const (
	f1g1Mask = (uint64(1) << SquareF1) | (uint64(1) << SquareG1)
	b1d1Mask = (uint64(1) << SquareB1) | (uint64(1) << SquareC1) | (uint64(1) << SquareD1)
	f8g8Mask = (uint64(1) << SquareF8) | (uint64(1) << SquareG8)
	b8d8Mask = (uint64(1) << SquareB8) | (uint64(1) << SquareC8) | (uint64(1) << SquareD8)
)

var promotionPieces = [...]PieceType{Queen, Rook, Bishop, Knight}

// GenerateValidMoves rebuilds the per-piece state of b: pseudo-legal
// destinations in ValidMoves, attacked and defended values, and the check
// flags. Moves that leave the own king attacked are still listed; callers
// apply a move and test InCheck on the result.
func GenerateValidMoves(b *Board) {
	var colorOcc [2]uint64
	for sq := range b.Squares {
		var p = &b.Squares[sq]
		p.AttackedValue = 0
		p.DefendedValue = 0
		p.ValidMoves = 0
		if !p.IsEmpty() {
			colorOcc[p.Color] |= SquareMask[sq]
		}
	}
	var allPieces = colorOcc[White] | colorOcc[Black]

	var attacks [2]uint64
	var pieceAttacks [64]uint64
	for sq := range b.Squares {
		var p = &b.Squares[sq]
		if p.IsEmpty() {
			continue
		}
		var att = attacksFrom(p, sq, allPieces)
		pieceAttacks[sq] = att
		attacks[p.Color] |= att
		for x := att & allPieces; x != 0; x &= x - 1 {
			var target = &b.Squares[FirstOne(x)]
			if target.Color == p.Color {
				target.DefendedValue += p.ActionValue
			} else {
				target.AttackedValue += p.ActionValue
			}
		}
	}

	for sq := range b.Squares {
		var p = &b.Squares[sq]
		if p.IsEmpty() {
			continue
		}
		var own = colorOcc[p.Color]
		var opp = colorOcc[p.Color.Opposite()]
		switch p.Type {
		case Pawn:
			p.ValidMoves = pawnDestinations(b, sq, p.Color, allPieces, opp)
		case King:
			p.ValidMoves = pieceAttacks[sq] &^ own &^ attacks[p.Color.Opposite()]
			if p.Color == b.WhoseMove {
				p.ValidMoves |= castleDestinations(b, p.Color, allPieces, attacks[p.Color.Opposite()])
			}
		default:
			p.ValidMoves = pieceAttacks[sq] &^ own
		}
	}

	b.WhiteCheck = attacks[Black]&kingMask(b, White) != 0
	b.BlackCheck = attacks[White]&kingMask(b, Black) != 0
}

func attacksFrom(p *Piece, sq int, allPieces uint64) uint64 {
	switch p.Type {
	case Pawn:
		return PawnAttacks(sq, p.Color == White)
	case Knight:
		return KnightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, allPieces)
	case Rook:
		return RookAttacks(sq, allPieces)
	case Queen:
		return QueenAttacks(sq, allPieces)
	case King:
		return KingAttacks[sq]
	}
	return 0
}

func pawnDestinations(b *Board, from int, side Color, allPieces, opp uint64) uint64 {
	var result = PawnAttacks(from, side == White) & opp
	if side == b.WhoseMove && b.EpSquare != SquareNone &&
		PawnAttacks(from, side == White)&SquareMask[b.EpSquare] != 0 {
		result |= SquareMask[b.EpSquare]
	}
	if side == White {
		var one = Up(SquareMask[from]) &^ allPieces
		result |= one
		if Rank(from) == Rank2 {
			result |= Up(one) &^ allPieces
		}
	} else {
		var one = Down(SquareMask[from]) &^ allPieces
		result |= one
		if Rank(from) == Rank7 {
			result |= Down(one) &^ allPieces
		}
	}
	return result
}

func castleDestinations(b *Board, side Color, allPieces, oppAttacks uint64) uint64 {
	var result uint64
	if side == White {
		if oppAttacks&SquareMask[SquareE1] != 0 {
			return 0
		}
		if (b.CastleRights&WhiteKingSide) != 0 &&
			(allPieces&f1g1Mask) == 0 &&
			(oppAttacks&f1g1Mask) == 0 {
			result |= SquareMask[SquareG1]
		}
		if (b.CastleRights&WhiteQueenSide) != 0 &&
			(allPieces&b1d1Mask) == 0 &&
			(oppAttacks&(SquareMask[SquareC1]|SquareMask[SquareD1])) == 0 {
			result |= SquareMask[SquareC1]
		}
	} else {
		if oppAttacks&SquareMask[SquareE8] != 0 {
			return 0
		}
		if (b.CastleRights&BlackKingSide) != 0 &&
			(allPieces&f8g8Mask) == 0 &&
			(oppAttacks&f8g8Mask) == 0 {
			result |= SquareMask[SquareG8]
		}
		if (b.CastleRights&BlackQueenSide) != 0 &&
			(allPieces&b8d8Mask) == 0 &&
			(oppAttacks&(SquareMask[SquareC8]|SquareMask[SquareD8])) == 0 {
			result |= SquareMask[SquareC8]
		}
	}
	return result
}

func kingMask(b *Board, side Color) uint64 {
	var sq = b.KingSquare(side)
	if sq == SquareNone {
		return 0
	}
	return SquareMask[sq]
}

// GenerateLegalMoves lists the legal moves of the side to move, one entry
// per promotion piece. b must have been through GenerateValidMoves.
func GenerateLegalMoves(b *Board) []Move {
	var result []Move
	var side = b.WhoseMove
	for from := range b.Squares {
		var p = &b.Squares[from]
		if p.IsEmpty() || p.Color != side {
			continue
		}
		for x := p.ValidMoves; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			if p.Type == Pawn && (Rank(to) == Rank8 || Rank(to) == Rank1) {
				for _, promotion := range promotionPieces {
					if m, ok := tryMove(b, from, to, promotion); ok {
						result = append(result, m)
					}
				}
			} else if m, ok := tryMove(b, from, to, Empty); ok {
				result = append(result, m)
			}
		}
	}
	return result
}

func tryMove(b *Board, from, to int, promotion PieceType) (Move, bool) {
	var child = b.Copy()
	ApplyMove(&child, from, to, promotion)
	GenerateValidMoves(&child)
	if child.InCheck(b.WhoseMove) {
		return MoveEmpty, false
	}
	return child.LastMove, true
}

// MakeLegalMove applies m to a copy of b and returns the regenerated child.
func MakeLegalMove(b *Board, m Move) (Board, bool) {
	var child = b.Copy()
	ApplyMove(&child, m.From(), m.To(), m.Promotion())
	GenerateValidMoves(&child)
	if child.InCheck(b.WhoseMove) {
		return Board{}, false
	}
	return child, true
}
