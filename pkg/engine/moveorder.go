package engine

import (
	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

const (
	killerBonus      = 5000
	notMovedBonus    = 10
	castlingBonus    = 40
	castlingSquareWK = SquareG1
	castlingSquareWQ = SquareC1
	castlingSquareBK = SquareG8
	castlingSquareBQ = SquareC8
)

// orderMoves lists every pseudo-move of the side to move, best first.
// Squares are scanned a1..h8 and destinations in ascending order, which
// decides ties.
func orderMoves(b *Board, killers *killerTable, depth int) []MoveCandidate {
	var side = b.WhoseMove
	var canCastle = b.CastleRights&castleRightsOf(side) != 0
	var result = make([]MoveCandidate, 0, 40)
	for from := range b.Squares {
		var piece = &b.Squares[from]
		if piece.IsEmpty() || piece.Color != side {
			continue
		}
		for x := piece.ValidMoves; x != 0; x &= x - 1 {
			var m = MoveCandidate{From: from, To: FirstOne(x)}
			if killers.isKiller(depth, m) {
				m.Score = killerBonus
				result = append(result, m)
				continue
			}
			m.Score = captureScore(piece, &b.Squares[m.To])
			if !piece.Moved {
				m.Score += notMovedBonus
			}
			m.Score += piece.ActionValue
			if canCastle {
				switch piece.Type {
				case King:
					if isCastlingSquare(m.To, side) {
						m.Score += castlingBonus
					} else {
						m.Score -= castlingBonus
					}
				case Rook:
					m.Score -= castlingBonus
				}
			}
			result = append(result, m)
		}
	}
	sortMoves(result)
	return result
}

// orderCaptures is orderMoves restricted to occupied destinations, with
// the quiescence killer in place of the per-depth ones.
func orderCaptures(b *Board, killers *killerTable) []MoveCandidate {
	var side = b.WhoseMove
	var result = make([]MoveCandidate, 0, 8)
	for from := range b.Squares {
		var piece = &b.Squares[from]
		if piece.IsEmpty() || piece.Color != side {
			continue
		}
		for x := piece.ValidMoves; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			var victim = &b.Squares[to]
			if victim.IsEmpty() {
				continue
			}
			var m = MoveCandidate{From: from, To: to}
			if m.sameMove(killers.quiescence) {
				m.Score = killerBonus
				result = append(result, m)
				continue
			}
			m.Score = captureScore(piece, victim) + piece.ActionValue
			result = append(result, m)
		}
	}
	sortMoves(result)
	return result
}

func captureScore(attacker, victim *Piece) int {
	if victim.IsEmpty() {
		return 0
	}
	var score = victim.Value
	if attacker.Value < victim.Value {
		score += victim.Value - attacker.Value
	}
	return score
}

func castleRightsOf(side Color) int {
	if side == White {
		return WhiteKingSide | WhiteQueenSide
	}
	return BlackKingSide | BlackQueenSide
}

func isCastlingSquare(sq int, side Color) bool {
	if side == White {
		return sq == castlingSquareWK || sq == castlingSquareWQ
	}
	return sq == castlingSquareBK || sq == castlingSquareBQ
}

// sortMoves is a stable insertion sort, descending by score.
func sortMoves(moves []MoveCandidate) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Score < t.Score; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
