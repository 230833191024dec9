package engine

import (
	"context"
	"errors"

	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

var errSearchCancelled = errors.New("search cancelled")

// searcher holds the state of one root search. It is not safe for
// concurrent use.
type searcher struct {
	ctx       context.Context
	evaluator Evaluator
	killers   *killerTable
	nodes     int64
	qnodes    int64
	copies    int64
}

func (s *searcher) checkCancel() {
	if s.ctx.Err() != nil {
		panic(errSearchCancelled)
	}
}

// play returns a regenerated copy of b with m applied. Pawns promote to
// a queen.
func (s *searcher) play(b *Board, m MoveCandidate) Board {
	s.copies++
	var child = b.Copy()
	ApplyMove(&child, m.From, m.To, Queen)
	GenerateValidMoves(&child)
	return child
}

func (s *searcher) evaluate(b *Board) int {
	b.Score = sideToMoveScore(s.evaluator.Evaluate(b), b.WhoseMove)
	return b.Score
}

// terminalScore scores a board searchForMate marked as finished: the side
// to move is mated or it is stalemate.
func terminalScore(b *Board, depth int) int {
	if b.WhiteMate || b.BlackMate {
		return -MateValue - depth
	}
	return valueDraw
}

func (s *searcher) alphaBeta(b *Board, depth, alpha, beta int, extended bool, pv *pvLine) int {
	s.checkCancel()
	s.nodes++
	pv.clear()

	if b.HalfMoveClock >= 100 || b.RepeatedMove >= 3 {
		return valueDraw
	}

	if depth <= 0 {
		if !extended && b.IsCheck() {
			depth = 1
			extended = true
		} else {
			return s.quiescence(b, alpha, beta)
		}
	}

	var moves = orderMoves(b, s.killers, depth)

	if b.IsCheck() || len(moves) == 0 {
		if searchForMate(b) {
			return terminalScore(b, depth)
		}
	}

	var side = b.WhoseMove
	var childPV pvLine
	var hasLegalMove = false
	for _, m := range moves {
		var child = s.play(b, m)
		if child.InCheck(side) {
			continue
		}
		hasLegalMove = true
		var value = -s.alphaBeta(&child, depth-1, -beta, -alpha, extended, &childPV)
		if value >= beta {
			s.killers.record(depth, m)
			return beta
		}
		if value > alpha {
			m.Label = child.LastMove.String()
			pv.assign(m, &childPV)
			alpha = value
		}
	}

	if !hasLegalMove && searchForMate(b) {
		return terminalScore(b, depth)
	}

	return alpha
}
