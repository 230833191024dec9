package engine

import (
	"fmt"

	. "github.com/ChizhovVadim/chesscore/pkg/common"
)

// iterativeSearch runs one root search of root to the requested depth.
// root must have been through GenerateValidMoves.
func (e *Engine) iterativeSearch(s *searcher, root *Board, depth int, params SearchParams) (SearchResult, error) {
	var moves, children, piecesRemaining = s.rootMoves(root)
	var result = SearchResult{
		BestMove:  emptyCandidate,
		RootMoves: len(moves),
	}
	if len(moves) == 0 {
		return result, fmt.Errorf("%w: %v", ErrNoLegalMoves, root.Fen())
	}

	if len(moves) == 1 {
		e.Logger.Debug().Str("move", moves[0].String()).Msg("forced-move")
		e.setBest(&result, s, moves[0], moves[0].Score, nil)
		e.progress.Store(100)
		return result, nil
	}

	var pv pvLine
	for i := range moves {
		s.checkCancel()
		var value = -s.alphaBeta(&children[i], 1, -valueInfinity, valueInfinity, true, &pv)
		if value >= MateValue {
			e.Logger.Debug().Str("move", moves[i].String()).Msg("mate-found")
			e.setBest(&result, s, moves[i], value, &pv)
			result.Depth = 1
			e.progress.Store(100)
			return result, nil
		}
	}

	depth--
	if e.SimplifiedExtension {
		depth = modifyDepth(depth, len(moves), piecesRemaining)
	}
	result.Depth = depth + 1

	var alpha = -valueInfinity
	for i := range moves {
		s.checkCancel()
		e.progress.Store(int32((i + 1) * 100 / len(moves)))

		var value = -s.alphaBeta(&children[i], depth, -valueInfinity, -alpha, false, &pv)
		if value >= MateValue {
			e.Logger.Debug().Str("move", moves[i].String()).Int("score", value).Msg("mate-found")
			e.setBest(&result, s, moves[i], value, &pv)
			e.progress.Store(100)
			return result, nil
		}

		if root.RepeatedMove == 2 && isBookEnding(params.Book, &children[i]) {
			value = valueDraw
		}

		if value > alpha || result.BestMove.IsEmpty() {
			alpha = value
			e.setBest(&result, s, moves[i], value, &pv)
			if params.Progress != nil && s.nodes >= int64(e.ProgressMinNodes) {
				params.Progress(result)
			}
		}
	}

	e.progress.Store(100)
	result.Nodes = s.nodes
	result.QNodes = s.qnodes
	return result, nil
}

// setBest records m as the best root move so far and publishes it.
func (e *Engine) setBest(result *SearchResult, s *searcher, m MoveCandidate, score int, child *pvLine) {
	var line pvLine
	if child != nil {
		line.assign(m, child)
	} else {
		line.moves = []MoveCandidate{m}
	}
	result.BestMove = m
	result.Score = score
	result.MainLine = line.moves
	result.PV = line.String()
	result.Nodes = s.nodes
	result.QNodes = s.qnodes
	var best = m
	e.bestSoFar.Store(&best)
}

// rootMoves plays every legal move of the side to move and orders the
// results by static score for the mover, best first.
func (s *searcher) rootMoves(b *Board) (moves []MoveCandidate, children []Board, piecesRemaining int) {
	var side = b.WhoseMove
	piecesRemaining = b.PieceCount()
	for from := range b.Squares {
		var piece = &b.Squares[from]
		if piece.IsEmpty() || piece.Color != side {
			continue
		}
		for x := piece.ValidMoves; x != 0; x &= x - 1 {
			var m = MoveCandidate{From: from, To: FirstOne(x)}
			var child = s.play(b, m)
			if child.InCheck(side) {
				continue
			}
			m.Label = child.LastMove.String()
			m.Score = sideToMoveScore(s.evaluator.Evaluate(&child), side)
			moves = append(moves, m)
			children = append(children, child)
		}
	}
	sortRoot(moves, children)
	return
}

func sortRoot(moves []MoveCandidate, children []Board) {
	for i := 1; i < len(moves); i++ {
		j, t, c := i, moves[i], children[i]
		for ; j > 0 && moves[j-1].Score < t.Score; j-- {
			moves[j] = moves[j-1]
			children[j] = children[j-1]
		}
		moves[j] = t
		children[j] = c
	}
}
