package engine

import (
	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

// quiescence searches captures only (all moves when in check) until the
// position is quiet. When nothing is worth expanding it returns the
// stand-pat score.
func (s *searcher) quiescence(b *Board, alpha, beta int) int {
	s.checkCancel()
	s.qnodes++

	var standPat = s.evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var moves []MoveCandidate
	if b.IsCheck() {
		moves = orderMoves(b, s.killers, 0)
	} else {
		moves = orderCaptures(b, s.killers)
	}
	if len(moves) == 0 {
		return standPat
	}

	var side = b.WhoseMove
	for _, m := range moves {
		if staticExchange(&b.Squares[m.To]) >= 0 {
			continue
		}
		var child = s.play(b, m)
		if child.InCheck(side) {
			continue
		}
		var value = -s.quiescence(&child, -beta, -alpha)
		if value >= beta {
			s.killers.recordQuiescence(m)
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}
